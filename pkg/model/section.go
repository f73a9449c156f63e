package model

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RawSection is one row as delivered by an input provider. A section that
// meets in several slots usually arrives as several rows with the same ID.
type RawSection struct {
	ID             string
	CourseName     string
	Instructor     string
	Days           string
	TimeRangeStart string
	TimeRangeEnd   string
	Room           string
}

// Section is one offered instance of a course.
type Section struct {
	ID         string
	CourseName string
	Instructor string
	Room       string
	Days       DaySet
	Intervals  []Interval
}

// TimeKey is the day/time signature used to detect clashes.
type TimeKey struct {
	Days      DaySet
	Intervals []Interval
}

func (s *Section) Key() TimeKey {
	return TimeKey{Days: s.Days, Intervals: s.Intervals}
}

// Equal reports exact equality of both days and intervals.
func (k TimeKey) Equal(o TimeKey) bool {
	return k.Days == o.Days && slices.Equal(k.Intervals, o.Intervals)
}

// Collides reports whether two keys share a day and the same intervals.
func (k TimeKey) Collides(o TimeKey) bool {
	return k.Days.Intersects(o.Days) && slices.Equal(k.Intervals, o.Intervals)
}

// NormalizeName lower-cases a person name and collapses inner whitespace,
// including the stray carriage returns left by table extraction.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// DisplayName title-cases a normalized name, e.g. "lucia vega" -> "Lucia Vega".
func DisplayName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// NormalizeNames normalizes a list of names into a set, dropping blanks.
func NormalizeNames(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n = NormalizeName(n); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// parseSection validates a single raw row into a partial Section.
func parseSection(r RawSection, width int) (*Section, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return nil, malformed(r.ID, "missing id")
	}
	course := strings.Join(strings.Fields(r.CourseName), " ")
	if course == "" {
		return nil, malformed(id, "missing course name")
	}
	days, err := ParseDays(r.Days)
	if err != nil {
		return nil, malformed(id, "%v", err)
	}
	start, err := ParseHHMM(r.TimeRangeStart)
	if err != nil {
		return nil, malformed(id, "start: %v", err)
	}
	end, err := ParseHHMM(r.TimeRangeEnd)
	if err != nil {
		return nil, malformed(id, "end: %v", err)
	}
	intervals, err := Buckets(start, end, width)
	if err != nil {
		return nil, malformed(id, "%v", err)
	}
	return &Section{
		ID:         id,
		CourseName: course,
		Instructor: NormalizeName(r.Instructor),
		Room:       strings.TrimSpace(r.Room),
		Days:       days,
		Intervals:  intervals,
	}, nil
}

// merge folds another row of the same section into s.
func (s *Section) merge(o *Section) error {
	if s.CourseName != o.CourseName {
		return malformed(s.ID, "listed under %q and %q", s.CourseName, o.CourseName)
	}
	s.Days = s.Days.Union(o.Days)
	s.Intervals = append(s.Intervals, o.Intervals...)
	slices.SortFunc(s.Intervals, Interval.Compare)
	s.Intervals = slices.Compact(s.Intervals)
	return nil
}
