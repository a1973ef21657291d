package service

import (
	"errors"
	"fmt"
)

var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrStudentAmbiguous    = errors.New("student reference matches more than one student")
	ErrNoReport            = errors.New("no report imported for student")
	ErrInvalidReport       = errors.New("invalid report")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrActivityExists      = errors.New("activity already recorded")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrLocationUnavailable = errors.New("location unavailable")
)

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("report validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w: %s", ErrInvalidReport, msg)
}
