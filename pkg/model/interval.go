package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultBucketWidth is one hour in HHMM units.
const DefaultBucketWidth = 100

// A bucket that starts at h ends at h + width - bucketEndOffset,
// so a one hour bucket starting at 0800 is "0800-0859".
const bucketEndOffset = 41

var ErrInvalidWindow = errors.New("invalid hour window")

// Interval is a fixed-width time bucket in HHMM form.
type Interval struct {
	Start int
	End   int
}

func (i Interval) String() string {
	return fmt.Sprintf("%04d-%04d", i.Start, i.End)
}

// Compare orders intervals by start, then end.
func (i Interval) Compare(o Interval) int {
	if i.Start != o.Start {
		return i.Start - o.Start
	}
	return i.End - o.End
}

// Buckets partitions the HHMM range [start, end] into consecutive buckets of
// the given width. The range has to start on the hour and line up with the
// width exactly.
func Buckets(start int, end int, width int) ([]Interval, error) {
	if width <= 0 || width%100 != 0 {
		return nil, fmt.Errorf("bucket width %d is not a positive multiple of 100", width)
	}
	if !validHHMM(start) || !validHHMM(end) {
		return nil, fmt.Errorf("time range %04d-%04d is not HHMM", start, end)
	}
	if start%100 != 0 {
		return nil, fmt.Errorf("time range %04d-%04d does not start on the hour", start, end)
	}
	span := end - start + bucketEndOffset
	if span <= 0 || span%width != 0 {
		return nil, fmt.Errorf("time range %04d-%04d does not align to %d", start, end, width)
	}
	buckets := make([]Interval, 0, span/width)
	for h := start; h < start+span; h += width {
		buckets = append(buckets, bucketAt(h, width))
	}
	return buckets, nil
}

// BucketRange lists every bucket from first to last inclusive.
func BucketRange(first Interval, last Interval, width int) []Interval {
	var out []Interval
	for h := first.Start; h <= last.Start; h += width {
		out = append(out, bucketAt(h, width))
	}
	return out
}

// HourWindow expands a [startHour, endHour) request into the allowed buckets.
func HourWindow(startHour int, endHour int, width int) ([]Interval, error) {
	if startHour < 0 || endHour > 24 || endHour <= startHour {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidWindow, startHour, endHour)
	}
	buckets, err := Buckets(startHour*100, endHour*100-bucketEndOffset, width)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	return buckets, nil
}

// ParseHHMM reads "0700" or "700" style times.
func ParseHHMM(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("missing time")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("time %q: %w", raw, err)
	}
	if !validHHMM(v) {
		return 0, fmt.Errorf("time %q is not HHMM", raw)
	}
	return v, nil
}

func bucketAt(h int, width int) Interval {
	return Interval{Start: h, End: h + width - bucketEndOffset}
}

func validHHMM(v int) bool {
	return v >= 0 && v/100 <= 24 && v%100 < 60
}
