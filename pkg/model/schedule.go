package model

import (
	"slices"
	"strings"
)

// Schedule is one candidate combination: a section id per requested course,
// in request order.
type Schedule []string

func (s Schedule) Equal(o Schedule) bool {
	return slices.Equal(s, o)
}

// String renders the schedule as a tuple, e.g. "(12345, 67890)".
func (s Schedule) String() string {
	return "(" + strings.Join(s, ", ") + ")"
}

type ScoredSchedule struct {
	Schedule  Schedule
	Score     int
	Timetable *Timetable
}

type TimeSlot struct {
	Sections []string
}

type Day struct {
	DayOfWeek Weekday
	Slots     []*TimeSlot
}

// Timetable is the weekly grid of a schedule: one row per bucket, one column
// per weekday.
type Timetable struct {
	Days  []*Day
	Slots []Interval
}

type ScheduleCSVRow struct {
	Rank       int    `csv:"rank"`
	Score      int    `csv:"score"`
	SectionID  string `csv:"nrc"`
	CourseName string `csv:"course_name"`
	Instructor string `csv:"instructor"`
	Room       string `csv:"room"`
	Days       string `csv:"days"`
	Hours      string `csv:"hours"`
}

/* NewTimetable creates an empty grid over the given buckets. */
func NewTimetable(slots []Interval) *Timetable {
	t := Timetable{Days: make([]*Day, NumberOfDays), Slots: slots}
	for i := range t.Days {
		t.Days[i] = &Day{DayOfWeek: Weekday(i), Slots: make([]*TimeSlot, len(slots))}
		for j := range slots {
			t.Days[i].Slots[j] = new(TimeSlot)
		}
	}
	return &t
}

// Place marks the section on every day and bucket it meets.
// Buckets outside the grid are ignored.
func (t *Timetable) Place(s *Section) {
	for _, iv := range s.Intervals {
		idx := t.SlotIndex(iv)
		if idx < 0 {
			continue
		}
		for _, d := range s.Days.Days() {
			slot := t.Days[d].Slots[idx]
			slot.Sections = append(slot.Sections, s.ID)
		}
	}
}

// SlotIndex returns the row of a bucket, or -1.
func (t *Timetable) SlotIndex(iv Interval) int {
	return slices.Index(t.Slots, iv)
}

// Occupied reports whether any section sits in the cell.
func (t *Timetable) Occupied(d Weekday, slot int) bool {
	return len(t.Days[d].Slots[slot].Sections) > 0
}

// Load counts the occupied cells of a day.
func (t *Timetable) Load(d Weekday) int {
	n := 0
	for i := range t.Slots {
		if t.Occupied(d, i) {
			n++
		}
	}
	return n
}
