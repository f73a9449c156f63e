package scheduler

import (
	"fmt"
	"slices"

	"github.com/rhyrak/section-planner/pkg/model"
)

// Scorer rates accepted schedules; lower is better.
type Scorer struct {
	BucketWidth     int
	DeadHourWeight  int
	BoundaryPenalty int
	PreferredBonus  int
	// Preferred holds normalized instructor names.
	Preferred map[string]struct{}
}

// NewScorer takes its weights from cfg.
func NewScorer(cfg *Configuration, preferred []string) *Scorer {
	return &Scorer{
		BucketWidth:     cfg.BucketWidth,
		DeadHourWeight:  cfg.DeadHourWeight,
		BoundaryPenalty: cfg.BoundaryPenalty,
		PreferredBonus:  cfg.PreferredBonus,
		Preferred:       model.NormalizeNames(preferred),
	}
}

// Score lays the schedule out on a timetable and computes its cost.
func (sc *Scorer) Score(catalog *model.Catalog, schedule model.Schedule) (model.ScoredSchedule, error) {
	sections, ok := catalog.Resolve(schedule)
	if !ok {
		return model.ScoredSchedule{}, fmt.Errorf("schedule %s references a section missing from the catalog", schedule)
	}
	table := sc.timetable(sections)
	return model.ScoredSchedule{
		Schedule:  schedule,
		Score:     sc.cost(table, sections),
		Timetable: table,
	}, nil
}

// timetable builds a grid running from the earliest to the latest bucket
// any section occupies.
func (sc *Scorer) timetable(sections []*model.Section) *model.Timetable {
	var first, last model.Interval
	for i, s := range sections {
		lo, hi := s.Intervals[0], s.Intervals[len(s.Intervals)-1]
		if i == 0 || lo.Compare(first) < 0 {
			first = lo
		}
		if i == 0 || hi.Compare(last) > 0 {
			last = hi
		}
	}
	var slots []model.Interval
	if len(sections) > 0 {
		slots = model.BucketRange(first, last, sc.BucketWidth)
	}
	table := model.NewTimetable(slots)
	for _, s := range sections {
		table.Place(s)
	}
	return table
}

func (sc *Scorer) cost(table *model.Timetable, sections []*model.Section) int {
	dead, boundary := idleBuckets(table)
	score := dead*sc.DeadHourWeight + boundary*sc.BoundaryPenalty
	for _, s := range sections {
		if _, ok := sc.Preferred[s.Instructor]; ok {
			score -= sc.PreferredBonus
		}
	}
	return score
}

// idleBuckets counts empty cells inside the effective span on every day that
// has classes. Cells on the first or last row of the span are boundary gaps,
// the rest are dead hours.
func idleBuckets(table *model.Timetable) (dead int, boundary int) {
	lo, hi, ok := effectiveSpan(table)
	if !ok {
		return 0, 0
	}
	for _, day := range table.Days {
		if table.Load(day.DayOfWeek) == 0 {
			continue
		}
		for i := lo; i <= hi; i++ {
			if table.Occupied(day.DayOfWeek, i) {
				continue
			}
			if i == lo || i == hi {
				boundary++
			} else {
				dead++
			}
		}
	}
	return dead, boundary
}

// effectiveSpan finds the first and last occupied rows, looking only at days
// other than the two anchor days. When those days are empty every day counts.
func effectiveSpan(table *model.Timetable) (int, int, bool) {
	anchors := anchorDays(table)
	lo, hi, ok := occupiedRows(table, func(d model.Weekday) bool { return !anchors.Has(d) })
	if !ok {
		lo, hi, ok = occupiedRows(table, func(model.Weekday) bool { return true })
	}
	return lo, hi, ok
}

func occupiedRows(table *model.Timetable, include func(model.Weekday) bool) (int, int, bool) {
	lo, hi := -1, -1
	for _, day := range table.Days {
		if !include(day.DayOfWeek) {
			continue
		}
		for i := range table.Slots {
			if !table.Occupied(day.DayOfWeek, i) {
				continue
			}
			if lo < 0 || i < lo {
				lo = i
			}
			if i > hi {
				hi = i
			}
		}
	}
	return lo, hi, lo >= 0
}

// anchorDays picks the two densest days, preferring mid-week on ties.
func anchorDays(table *model.Timetable) model.DaySet {
	days := make([]model.Weekday, 0, model.NumberOfDays)
	for d := model.Monday; d <= model.Friday; d++ {
		days = append(days, d)
	}
	load := make(map[model.Weekday]int, len(days))
	for _, d := range days {
		load[d] = table.Load(d)
	}
	slices.SortStableFunc(days, func(a, b model.Weekday) int {
		if load[a] != load[b] {
			return load[b] - load[a]
		}
		return distance(a, model.Wednesday) - distance(b, model.Wednesday)
	})
	return model.NewDaySet(days[:2]...)
}

func distance(a, b model.Weekday) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
