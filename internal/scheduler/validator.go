package scheduler

import (
	"github.com/rhyrak/section-planner/pkg/model"
)

// Constraints are the hard rules a schedule must pass.
type Constraints struct {
	// Blacklist holds normalized instructor names.
	Blacklist map[string]struct{}
	// AllowedHours is the set of buckets a section may occupy.
	AllowedHours map[model.Interval]struct{}
}

// NewConstraints normalizes the blacklist and indexes the allowed buckets.
func NewConstraints(blacklist []string, allowed []model.Interval) Constraints {
	hours := make(map[model.Interval]struct{}, len(allowed))
	for _, iv := range allowed {
		hours[iv] = struct{}{}
	}
	return Constraints{Blacklist: model.NormalizeNames(blacklist), AllowedHours: hours}
}

// Accepts checks a schedule against the blacklist, the hour window and
// day/time collisions. Ids missing from the catalog reject the schedule.
func (c Constraints) Accepts(catalog *model.Catalog, schedule model.Schedule) bool {
	sections, ok := catalog.Resolve(schedule)
	if !ok {
		return false
	}
	return c.AcceptsSections(sections)
}

// AcceptsSections is Accepts over already resolved sections.
func (c Constraints) AcceptsSections(sections []*model.Section) bool {
	for i, s := range sections {
		if !c.admits(sections[:i], s) {
			return false
		}
	}
	return true
}

// admits checks one section against the rules and the sections placed before it.
func (c Constraints) admits(placed []*model.Section, s *model.Section) bool {
	if _, banned := c.Blacklist[s.Instructor]; banned {
		return false
	}
	for _, iv := range s.Intervals {
		if _, ok := c.AllowedHours[iv]; !ok {
			return false
		}
	}
	key := s.Key()
	for _, p := range placed {
		if p.ID != s.ID && p.Key().Collides(key) {
			return false
		}
	}
	return true
}
