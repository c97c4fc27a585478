package report

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound  = errors.New("not_found")
	ErrDuplicate = errors.New("duplicate_report")
	ErrConflict  = errors.New("concurrent_update")
)

type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
