package scheduler

import (
	"errors"

	"github.com/rhyrak/section-planner/pkg/model"
)

// ErrNoFeasibleSchedule means every combination was rejected.
var ErrNoFeasibleSchedule = errors.New("no feasible schedule")

// Combinations walks the cartesian product of the requested courses'
// sections, first course outermost and last course fastest. It is consumed
// once, like bufio.Scanner:
//
//	for combos.Next() {
//		use(combos.Schedule())
//	}
//	if err := combos.Err(); err != nil { ... }
type Combinations struct {
	lists       [][]*model.Section
	constraints Constraints

	idx    []int
	prefix []*model.Section
	depth  int

	current  model.Schedule
	accepted int
	done     bool
	err      error
}

// Generate prepares the enumeration for the requested courses. A course the
// catalog does not offer fails here, before anything is enumerated. Repeated
// course names count once.
func Generate(catalog *model.Catalog, courses []string, constraints Constraints) (*Combinations, error) {
	seen := make(map[string]bool, len(courses))
	lists := make([][]*model.Section, 0, len(courses))
	for _, course := range courses {
		if seen[course] {
			continue
		}
		seen[course] = true
		ids, err := catalog.Offerings(course)
		if err != nil {
			return nil, err
		}
		list := make([]*model.Section, len(ids))
		for i, id := range ids {
			list[i], _ = catalog.Section(id)
		}
		lists = append(lists, list)
	}
	return &Combinations{
		lists:       lists,
		constraints: constraints,
		idx:         make([]int, len(lists)),
		prefix:      make([]*model.Section, len(lists)),
		done:        len(lists) == 0,
	}, nil
}

// Next advances to the next accepted schedule. A rejected prefix skips every
// combination that extends it.
func (c *Combinations) Next() bool {
	if c.done {
		return false
	}
	last := len(c.lists) - 1
	for c.depth >= 0 {
		if c.idx[c.depth] >= len(c.lists[c.depth]) {
			c.idx[c.depth] = 0
			c.depth--
			if c.depth >= 0 {
				c.idx[c.depth]++
			}
			continue
		}
		s := c.lists[c.depth][c.idx[c.depth]]
		if !c.constraints.admits(c.prefix[:c.depth], s) {
			c.idx[c.depth]++
			continue
		}
		c.prefix[c.depth] = s
		if c.depth < last {
			c.depth++
			continue
		}
		c.current = make(model.Schedule, len(c.prefix))
		for i, p := range c.prefix {
			c.current[i] = p.ID
		}
		c.idx[c.depth]++
		c.accepted++
		return true
	}
	c.done = true
	c.current = nil
	if c.accepted == 0 {
		c.err = ErrNoFeasibleSchedule
	}
	return false
}

// Schedule returns the schedule produced by the last successful Next.
func (c *Combinations) Schedule() model.Schedule {
	return c.current
}

// Err reports ErrNoFeasibleSchedule once the enumeration has finished without
// accepting anything. It is nil while iterating and for an empty request.
func (c *Combinations) Err() error {
	return c.err
}

// Count is the number of schedules accepted so far.
func (c *Combinations) Count() int {
	return c.accepted
}

// Collect drains the remaining schedules.
func (c *Combinations) Collect() ([]model.Schedule, error) {
	var out []model.Schedule
	for c.Next() {
		out = append(out, c.Schedule())
	}
	return out, c.Err()
}
