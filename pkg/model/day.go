package model

import (
	"fmt"
	"math/bits"
	"strings"
)

// NumberOfDays is the length of the teaching week (Monday to Friday).
const NumberOfDays = 5

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayNames = [NumberOfDays]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Day letters used by the published timetables.
var weekdayCodes = map[rune]Weekday{
	'L': Monday,
	'A': Tuesday,
	'M': Wednesday,
	'J': Thursday,
	'V': Friday,
}

func (d Weekday) String() string {
	if d < Monday || d > Friday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// DaySet is a set of weekdays stored as a bitmask. The zero value is empty.
type DaySet uint8

// NewDaySet builds a set from the given days.
func NewDaySet(days ...Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

func (s DaySet) With(d Weekday) DaySet {
	return s | 1<<uint(d)
}

func (s DaySet) Has(d Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s DaySet) Union(o DaySet) DaySet {
	return s | o
}

// Intersects reports whether both sets share at least one day.
func (s DaySet) Intersects(o DaySet) bool {
	return s&o != 0
}

func (s DaySet) Empty() bool {
	return s == 0
}

func (s DaySet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Days returns the members in weekday order.
func (s DaySet) Days() []Weekday {
	days := make([]Weekday, 0, s.Len())
	for d := Monday; d <= Friday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s DaySet) String() string {
	names := make([]string, 0, s.Len())
	for _, d := range s.Days() {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, ",")
}

// ParseDays reads a day field such as "L", "LMV", "Monday" or "Mon, Wed".
func ParseDays(raw string) (DaySet, error) {
	var set DaySet
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '/'
	})
	for _, field := range fields {
		if d, ok := weekdayByName(field); ok {
			set = set.With(d)
			continue
		}
		for _, r := range strings.ToUpper(field) {
			d, ok := weekdayCodes[r]
			if !ok {
				return 0, fmt.Errorf("unknown day %q", field)
			}
			set = set.With(d)
		}
	}
	if set.Empty() {
		return 0, fmt.Errorf("empty day set")
	}
	return set, nil
}

func weekdayByName(name string) (Weekday, bool) {
	if len(name) < 3 {
		return 0, false
	}
	for i, full := range weekdayNames {
		if strings.EqualFold(name, full) || strings.EqualFold(name, full[:3]) {
			return Weekday(i), true
		}
	}
	return 0, false
}
