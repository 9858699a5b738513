package grid

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("invalid time of day")
	ErrInvalidInterval = errors.New("invalid interval")
	ErrDuplicateID     = errors.New("duplicate item id")
	ErrMissingID       = errors.New("item id is empty")
)

// ParseError reports a malformed or out-of-range time string.
// ItemID and Field are empty when the string was parsed outside of an item.
type ParseError struct {
	ItemID string
	Field  string // "start" or "end"
	Input  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.ItemID == "" {
		return fmt.Sprintf("invalid time of day %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("item %q: invalid %s time %q: %v", e.ItemID, e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// InvalidIntervalError reports an item whose end is not after its start.
type InvalidIntervalError struct {
	ItemID string
	Start  TimeOfDay
	End    TimeOfDay
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("item %q: end %s must be after start %s", e.ItemID, e.End, e.Start)
}

func (e *InvalidIntervalError) Unwrap() error {
	return ErrInvalidInterval
}

// DuplicateIDError reports two items sharing an id. First and Second are the
// positions of the two items in the caller's input.
type DuplicateIDError struct {
	ItemID string
	First  int
	Second int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("item %q appears at positions %d and %d", e.ItemID, e.First, e.Second)
}

func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}
