package store

import (
	"errors"
	"fmt"
)

// Typed failures raised by the store; the controllers map these to HTTP codes.
var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateSubmission  = errors.New("assignment has already been submitted")
	ErrDuplicateEnrollment  = errors.New("student is already enrolled in this course")
	ErrNotCourseInstructor  = errors.New("course belongs to another instructor")
)

// ValidationError flags malformed input, optionally naming the offending field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}
