package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(id, course, instructor, days, start, end string) RawSection {
	return RawSection{ID: id, CourseName: course, Instructor: instructor, Days: days, TimeRangeStart: start, TimeRangeEnd: end, Room: "A-101"}
}

func TestNewCatalogMergesRowsSharingAnID(t *testing.T) {
	catalog, err := NewCatalog([]RawSection{
		raw("100", "Calculo", "Ana  PEREZ", "L", "0700", "0859"),
		raw("200", "Fisica", "Luis Mora", "A", "0900", "0959"),
		raw("100", "Calculo", "Ana Perez", "M", "0800", "0959"),
	}, DefaultBucketWidth)
	require.NoError(t, err)

	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []string{"Calculo", "Fisica"}, catalog.Courses())

	s, ok := catalog.Section("100")
	require.True(t, ok)
	assert.Equal(t, "ana perez", s.Instructor)
	assert.Equal(t, NewDaySet(Monday, Wednesday), s.Days)
	assert.Equal(t, []Interval{{700, 759}, {800, 859}, {900, 959}}, s.Intervals)
}

func TestNewCatalogKeepsOfferingOrder(t *testing.T) {
	catalog, err := NewCatalog([]RawSection{
		raw("3", "Redes", "x", "L", "0700", "0759"),
		raw("1", "Redes", "y", "A", "0700", "0759"),
		raw("2", "Redes", "z", "M", "0700", "0759"),
	}, DefaultBucketWidth)
	require.NoError(t, err)

	ids, err := catalog.Offerings("Redes")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}

func TestNewCatalogRejectsMalformedRecords(t *testing.T) {
	cases := map[string]RawSection{
		"missing id":       raw("", "Redes", "x", "L", "0700", "0759"),
		"missing course":   raw("9", "", "x", "L", "0700", "0759"),
		"empty days":       raw("9", "Redes", "x", "", "0700", "0759"),
		"unknown day":      raw("9", "Redes", "x", "LZ", "0700", "0759"),
		"missing start":    raw("9", "Redes", "x", "L", "", "0759"),
		"unaligned range":  raw("9", "Redes", "x", "L", "0700", "0830"),
		"reversed range":   raw("9", "Redes", "x", "L", "0900", "0759"),
		"minutes overflow": raw("9", "Redes", "x", "L", "0775", "0859"),
		"off-grid start":   raw("9", "Redes", "x", "L", "0750", "0809"),
	}
	for name, record := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewCatalog([]RawSection{record}, DefaultBucketWidth)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedSection)

			var malformedErr *MalformedSectionError
			require.True(t, errors.As(err, &malformedErr))
			assert.Equal(t, record.ID, malformedErr.ID)
		})
	}
}

func TestNewCatalogRejectsIDReusedAcrossCourses(t *testing.T) {
	_, err := NewCatalog([]RawSection{
		raw("7", "Redes", "x", "L", "0700", "0759"),
		raw("7", "Compiladores", "x", "A", "0700", "0759"),
	}, DefaultBucketWidth)
	assert.ErrorIs(t, err, ErrMalformedSection)
}

func TestCatalogOfferingsUnknownCourse(t *testing.T) {
	catalog, err := NewCatalog(nil, DefaultBucketWidth)
	require.NoError(t, err)

	_, err = catalog.Offerings("Algebra")
	assert.ErrorIs(t, err, ErrUnknownCourse)
	var unknown *UnknownCourseError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Algebra", unknown.Course)
}

func TestCatalogResolve(t *testing.T) {
	catalog, err := NewCatalog([]RawSection{raw("1", "Redes", "x", "L", "0700", "0759")}, DefaultBucketWidth)
	require.NoError(t, err)

	sections, ok := catalog.Resolve(Schedule{"1"})
	require.True(t, ok)
	assert.Equal(t, "Redes", sections[0].CourseName)

	_, ok = catalog.Resolve(Schedule{"1", "404"})
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Lucia Vega", DisplayName("lucia  VEGA"))
	assert.Equal(t, "Ángel Núñez", DisplayName("ángel núñez"))
	assert.Equal(t, "", DisplayName("  "))
}
