package model

import "slices"

// Catalog groups sections by course name. It is read-only once built.
type Catalog struct {
	sections map[string]*Section
	offers   map[string][]string
	courses  []string
}

// NewCatalog normalizes raw rows into sections, merging rows that share an id.
// Any row that fails to normalize aborts the build.
func NewCatalog(records []RawSection, width int) (*Catalog, error) {
	c := &Catalog{
		sections: make(map[string]*Section),
		offers:   make(map[string][]string),
	}
	for _, r := range records {
		s, err := parseSection(r, width)
		if err != nil {
			return nil, err
		}
		if prev, ok := c.sections[s.ID]; ok {
			if err := prev.merge(s); err != nil {
				return nil, err
			}
			continue
		}
		c.sections[s.ID] = s
		if _, ok := c.offers[s.CourseName]; !ok {
			c.courses = append(c.courses, s.CourseName)
		}
		c.offers[s.CourseName] = append(c.offers[s.CourseName], s.ID)
	}
	return c, nil
}

// Section looks a section up by id.
func (c *Catalog) Section(id string) (*Section, bool) {
	s, ok := c.sections[id]
	return s, ok
}

// Offerings returns the section ids of a course in input order.
func (c *Catalog) Offerings(course string) ([]string, error) {
	ids, ok := c.offers[course]
	if !ok || len(ids) == 0 {
		return nil, &UnknownCourseError{Course: course}
	}
	return slices.Clone(ids), nil
}

// Courses lists course names in the order they first appeared.
func (c *Catalog) Courses() []string {
	return slices.Clone(c.courses)
}

// Len is the number of distinct sections.
func (c *Catalog) Len() int {
	return len(c.sections)
}

// Resolve maps a schedule's ids to sections.
func (c *Catalog) Resolve(s Schedule) ([]*Section, bool) {
	out := make([]*Section, len(s))
	for i, id := range s {
		sec, ok := c.sections[id]
		if !ok {
			return nil, false
		}
		out[i] = sec
	}
	return out, true
}
