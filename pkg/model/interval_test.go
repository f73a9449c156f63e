package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuckets(t *testing.T) {
	buckets, err := Buckets(700, 859, DefaultBucketWidth)
	require.NoError(t, err)
	assert.Equal(t, []Interval{{700, 759}, {800, 859}}, buckets)
	assert.Equal(t, "0700-0759", buckets[0].String())

	wide, err := Buckets(700, 1059, 200)
	require.NoError(t, err)
	assert.Equal(t, []Interval{{700, 859}, {900, 1059}}, wide)

	_, err = Buckets(700, 859, 30)
	assert.Error(t, err)

	// 0750-0809 spans exactly one width but sits between two buckets.
	_, err = Buckets(750, 809, DefaultBucketWidth)
	assert.ErrorContains(t, err, "does not start on the hour")
}

func TestHourWindow(t *testing.T) {
	window, err := HourWindow(7, 10, DefaultBucketWidth)
	require.NoError(t, err)
	assert.Equal(t, []Interval{{700, 759}, {800, 859}, {900, 959}}, window)

	_, err = HourWindow(10, 10, DefaultBucketWidth)
	assert.ErrorIs(t, err, ErrInvalidWindow)
	_, err = HourWindow(9, 25, DefaultBucketWidth)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestBucketRange(t *testing.T) {
	got := BucketRange(Interval{700, 759}, Interval{1000, 1059}, DefaultBucketWidth)
	assert.Len(t, got, 4)
	assert.Equal(t, Interval{900, 959}, got[2])
}

func TestParseDays(t *testing.T) {
	cases := map[string]DaySet{
		"L":            NewDaySet(Monday),
		"LMV":          NewDaySet(Monday, Wednesday, Friday),
		"a j":          NewDaySet(Tuesday, Thursday),
		"Monday":       NewDaySet(Monday),
		"mon, Wed":     NewDaySet(Monday, Wednesday),
		"Thursday;FRI": NewDaySet(Thursday, Friday),
	}
	for in, want := range cases {
		got, err := ParseDays(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDays("  ")
	assert.Error(t, err)
	_, err = ParseDays("S")
	assert.Error(t, err)
}

func TestDaySet(t *testing.T) {
	s := NewDaySet(Friday, Monday)
	assert.Equal(t, []Weekday{Monday, Friday}, s.Days())
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Intersects(NewDaySet(Friday)))
	assert.False(t, s.Intersects(NewDaySet(Tuesday)))
	assert.Equal(t, "Mon,Fri", s.String())
}

func TestTimeKeyCollides(t *testing.T) {
	morning := []Interval{{900, 959}}
	a := TimeKey{Days: NewDaySet(Monday, Wednesday), Intervals: morning}
	b := TimeKey{Days: NewDaySet(Wednesday), Intervals: morning}
	c := TimeKey{Days: NewDaySet(Tuesday), Intervals: morning}
	d := TimeKey{Days: NewDaySet(Monday), Intervals: []Interval{{1000, 1059}}}

	assert.True(t, a.Collides(b))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Collides(c))
	assert.False(t, a.Collides(d))
	assert.True(t, a.Equal(TimeKey{Days: NewDaySet(Monday, Wednesday), Intervals: []Interval{{900, 959}}}))
}
