package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCourse    = errors.New("unknown course")
	ErrMalformedSection = errors.New("malformed section")
)

// UnknownCourseError names a requested course the catalog does not offer.
type UnknownCourseError struct {
	Course string
}

func (e *UnknownCourseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownCourse, e.Course)
}

func (e *UnknownCourseError) Is(target error) bool {
	return target == ErrUnknownCourse
}

// MalformedSectionError is returned when a raw record cannot become a Section.
type MalformedSectionError struct {
	ID     string
	Reason string
}

func (e *MalformedSectionError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedSection, e.ID, e.Reason)
}

func (e *MalformedSectionError) Is(target error) bool {
	return target == ErrMalformedSection
}

func malformed(id string, format string, args ...any) error {
	return &MalformedSectionError{ID: id, Reason: fmt.Sprintf(format, args...)}
}
