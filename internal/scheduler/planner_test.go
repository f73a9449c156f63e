package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rhyrak/section-planner/pkg/model"
)

type staticSource struct {
	rows []model.RawSection
	err  error
}

func (s staticSource) Sections() ([]model.RawSection, error) {
	return s.rows, s.err
}

type recordingSink struct {
	results []*Result
	err     error
}

func (s *recordingSink) Export(_ *model.Catalog, r *Result) error {
	s.results = append(s.results, r)
	return s.err
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog(staticSource{rows: []model.RawSection{
		row("E1", "Etica", "x", "L", "0700", "0759"),
	}}, model.DefaultBucketWidth)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())

	boom := errors.New("boom")
	_, err = LoadCatalog(staticSource{err: boom}, model.DefaultBucketWidth)
	assert.ErrorIs(t, err, boom)

	_, err = LoadCatalog(staticSource{rows: []model.RawSection{row("E1", "Etica", "x", "", "0700", "0759")}}, model.DefaultBucketWidth)
	assert.ErrorIs(t, err, model.ErrMalformedSection)
}

func TestPlannerPlan(t *testing.T) {
	planner := NewPlanner(nil, zap.NewNop())
	catalog := newCatalog(t,
		row("E1", "Etica", "Lucia Vega", "LA", "0700", "0759"),
		row("E2", "Etica", "Lucia Vega", "LA", "0900", "0959"),
		row("Q1", "Quimica", "Omar Ruiz", "L", "0900", "0959"),
		row("Q2", "Quimica", "Omar Ruiz", "L", "0800", "0859"),
	)

	result, err := planner.Plan(catalog, Request{
		Courses:   []string{"Etica", "Quimica"},
		StartHour: 7,
		EndHour:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Schedule{{"E1", "Q1"}, {"E1", "Q2"}, {"E2", "Q2"}}, result.Accepted)
	require.NotEmpty(t, result.Ranking)
	assert.Equal(t, 3, result.Ranking.Len())
	// Tuesday leaves one edge bucket empty in both compact options.
	assert.Equal(t, 5, result.Ranking[0].Score)
	assert.Equal(t, []model.Schedule{{"E1", "Q2"}, {"E2", "Q2"}}, []model.Schedule{
		result.Ranking[0].Schedules[0].Schedule,
		result.Ranking[0].Schedules[1].Schedule,
	})
	assert.Equal(t, 45, result.Ranking[1].Score)
}

func TestPlannerPlanDistinguishesOutcomes(t *testing.T) {
	planner := NewPlanner(NewDefaultConfiguration(), nil)
	catalog := clashCatalog(t)

	result, err := planner.Plan(catalog, Request{})
	require.NoError(t, err)
	assert.Empty(t, result.Accepted)
	assert.Empty(t, result.Ranking)

	_, err = planner.Plan(catalog, Request{Courses: []string{"Historia"}, StartHour: 7, EndHour: 12})
	assert.ErrorIs(t, err, model.ErrUnknownCourse)

	result, err = planner.Plan(catalog, Request{Courses: []string{"Algebra", "Biologia"}, Blacklist: []string{"Ivan Soto"}, StartHour: 7, EndHour: 12})
	assert.ErrorIs(t, err, ErrNoFeasibleSchedule)
	require.NotNil(t, result)
	assert.Empty(t, result.Accepted)

	_, err = planner.Plan(catalog, Request{Courses: []string{"Algebra"}, StartHour: 12, EndHour: 7})
	assert.ErrorIs(t, err, model.ErrInvalidWindow)
}

func TestPlannerExport(t *testing.T) {
	planner := NewPlanner(nil, nil)
	first, second := &recordingSink{}, &recordingSink{}
	result := &Result{}

	require.NoError(t, planner.Export(nil, result, first, second))
	assert.Len(t, first.results, 1)
	assert.Len(t, second.results, 1)

	failing := &recordingSink{err: errors.New("disk full")}
	err := planner.Export(nil, result, failing, second)
	assert.ErrorContains(t, err, "disk full")
	assert.Len(t, second.results, 1)
}

func TestConfigurationValidate(t *testing.T) {
	cfg := NewDefaultConfiguration()
	require.NoError(t, cfg.Validate())

	cfg.BucketWidth = 50
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfiguration()
	cfg.PreferredBonus = -1
	assert.Error(t, cfg.Validate())
}
