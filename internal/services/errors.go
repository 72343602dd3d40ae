package services

import (
	"errors"
	"fmt"

	"TRECGEN/internal/contract"
)

// ErrNotFound is returned when a requested record does not exist or belongs
// to another team.
var ErrNotFound = errors.New("not found")

// InsufficientCreditsError is returned when a generation requires more
// credits than the team holds. No balance mutation happens when it is
// returned.
type InsufficientCreditsError struct {
	Required  int `json:"required"`
	Available int `json:"available"`
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: %d required, %d available", e.Required, e.Available)
}

// ValidationFailedError carries the per-leaf findings that stopped a
// generation before any credit was debited.
type ValidationFailedError struct {
	Errors []contract.FieldError `json:"errors"`
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed with %d field error(s)", len(e.Errors))
}
