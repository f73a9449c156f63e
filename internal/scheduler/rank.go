package scheduler

import (
	"slices"

	"github.com/rhyrak/section-planner/pkg/model"
)

// ScoreGroup holds every schedule that earned the same score, in the order
// they were generated.
type ScoreGroup struct {
	Score     int
	Schedules []model.ScoredSchedule
}

// Ranking is a list of score groups in ascending score order.
type Ranking []ScoreGroup

// Rank groups schedules by score. The sort is stable so generation order
// survives inside each group.
func Rank(scored []model.ScoredSchedule) Ranking {
	sorted := slices.Clone(scored)
	slices.SortStableFunc(sorted, func(a, b model.ScoredSchedule) int {
		return a.Score - b.Score
	})
	ranking := Ranking{}
	for _, s := range sorted {
		if n := len(ranking); n > 0 && ranking[n-1].Score == s.Score {
			ranking[n-1].Schedules = append(ranking[n-1].Schedules, s)
			continue
		}
		ranking = append(ranking, ScoreGroup{Score: s.Score, Schedules: []model.ScoredSchedule{s}})
	}
	return ranking
}

// Lookup returns the group for a score.
func (r Ranking) Lookup(score int) ([]model.ScoredSchedule, bool) {
	i, found := slices.BinarySearchFunc(r, score, func(g ScoreGroup, s int) int {
		return g.Score - s
	})
	if !found {
		return nil, false
	}
	return r[i].Schedules, true
}

// Len counts schedules across all groups.
func (r Ranking) Len() int {
	n := 0
	for _, g := range r {
		n += len(g.Schedules)
	}
	return n
}

// Flatten lists every schedule, best first.
func (r Ranking) Flatten() []model.ScoredSchedule {
	out := make([]model.ScoredSchedule, 0, r.Len())
	for _, g := range r {
		out = append(out, g.Schedules...)
	}
	return out
}
