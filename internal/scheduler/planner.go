package scheduler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rhyrak/section-planner/pkg/model"
)

// Source supplies raw section rows, e.g. from a CSV export of a timetable.
type Source interface {
	Sections() ([]model.RawSection, error)
}

// Sink receives the outcome of a run.
type Sink interface {
	Export(catalog *model.Catalog, result *Result) error
}

// Request is what the student asks for.
type Request struct {
	Courses   []string `json:"courses"`
	Blacklist []string `json:"blacklist"`
	Preferred []string `json:"preferred"`
	StartHour int      `json:"start_hour" binding:"gte=0,lte=24"`
	EndHour   int      `json:"end_hour" binding:"gte=0,lte=24"`
}

// Result carries the accepted schedules in generation order plus their ranking.
type Result struct {
	Requested []string
	Accepted  []model.Schedule
	Ranking   Ranking
}

type Planner struct {
	cfg    *Configuration
	logger *zap.Logger
}

func NewPlanner(cfg *Configuration, logger *zap.Logger) *Planner {
	if cfg == nil {
		cfg = NewDefaultConfiguration()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{cfg: cfg, logger: logger}
}

// LoadCatalog reads every row from src and builds the catalog.
func LoadCatalog(src Source, width int) (*model.Catalog, error) {
	rows, err := src.Sections()
	if err != nil {
		return nil, fmt.Errorf("read sections: %w", err)
	}
	return model.NewCatalog(rows, width)
}

// Plan generates, filters, scores and ranks schedules for req. An empty
// request returns an empty result without error.
func (p *Planner) Plan(catalog *model.Catalog, req Request) (*Result, error) {
	result := &Result{Requested: req.Courses, Ranking: Ranking{}}
	if len(req.Courses) == 0 {
		return result, nil
	}
	window, err := model.HourWindow(req.StartHour, req.EndHour, p.cfg.BucketWidth)
	if err != nil {
		return nil, err
	}
	combos, err := Generate(catalog, req.Courses, NewConstraints(req.Blacklist, window))
	if err != nil {
		p.logger.Warn("cannot generate schedules", zap.Error(err))
		return nil, err
	}
	result.Accepted, err = combos.Collect()
	if err != nil {
		p.logger.Info("every combination was rejected",
			zap.Strings("courses", req.Courses),
			zap.Int("start_hour", req.StartHour),
			zap.Int("end_hour", req.EndHour),
		)
		return result, err
	}

	scorer := NewScorer(p.cfg, req.Preferred)
	scored := make([]model.ScoredSchedule, 0, len(result.Accepted))
	for _, s := range result.Accepted {
		ss, err := scorer.Score(catalog, s)
		if err != nil {
			return nil, err
		}
		scored = append(scored, ss)
	}
	result.Ranking = Rank(scored)

	p.logger.Info("schedules ranked",
		zap.Int("accepted", len(result.Accepted)),
		zap.Int("groups", len(result.Ranking)),
		zap.Int("best_score", result.Ranking[0].Score),
	)
	return result, nil
}

// Export hands the result to every sink, stopping at the first failure.
func (p *Planner) Export(catalog *model.Catalog, result *Result, sinks ...Sink) error {
	for _, sink := range sinks {
		if err := sink.Export(catalog, result); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	return nil
}
