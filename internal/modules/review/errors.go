package review

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation_failed")
	ErrNotFound   = errors.New("not_found")
)

// MissingFieldError names every required field absent from a submission.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// DuplicateError is returned when the caller already reviewed the promotion.
// ExistingID references the prior review when the advisory pre-check caught
// it; it is zero when the unique index caught a concurrent insert.
type DuplicateError struct {
	ExistingID int64
}

func (e *DuplicateError) Error() string {
	return "user already reviewed this promotion"
}
