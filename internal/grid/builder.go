package grid

import (
	"errors"
	"fmt"

	"github.com/JacekPodanowski/ZPI-sub002/types"
)

// SkippedItem is an item left out of the layout because one of its times did not parse.
type SkippedItem struct {
	ItemID string
	Reason error
}

// ItemSet is the outcome of validating the caller's items.
type ItemSet struct {
	Items   []ScheduledItem
	Skipped []SkippedItem
}

// ItemSetBuilder parses and validates item specs one at a time. Parse failures are
// recorded as skipped items; contract violations are collected and returned by Build.
type ItemSetBuilder struct {
	errors  []error
	ids     map[string]int
	items   []ScheduledItem
	skipped []SkippedItem
	next    int
}

func NewItemSet() *ItemSetBuilder {
	return &ItemSetBuilder{
		ids: make(map[string]int),
	}
}

// tryClaimID records id as used by the current position.
// A repeated id is added to the builder's errors.
func (b *ItemSetBuilder) tryClaimID(id string) bool {
	if id == "" {
		b.errors = append(b.errors, &missingIDError{position: b.next})
		return false
	}
	if first, ok := b.ids[id]; ok {
		b.errors = append(b.errors, &DuplicateIDError{ItemID: id, First: first, Second: b.next})
		return false
	}
	b.ids[id] = b.next
	return true
}

// Add parses spec and adds it to the set. It returns the builder for chaining.
func (b *ItemSetBuilder) Add(spec types.ItemSpec) *ItemSetBuilder {
	defer func() { b.next++ }()

	if !b.tryClaimID(spec.ID) {
		return b
	}

	start, startErr := ParseTimeOfDay(string(spec.Start))
	end, endErr := ParseTimeOfDay(string(spec.End))
	if startErr != nil || endErr != nil {
		var reasons []error
		if startErr != nil {
			reasons = append(reasons, withField(startErr, spec.ID, "start"))
		}
		if endErr != nil {
			reasons = append(reasons, withField(endErr, spec.ID, "end"))
		}
		reason := reasons[0]
		if len(reasons) > 1 {
			reason = errors.Join(reasons...)
		}
		b.skipped = append(b.skipped, SkippedItem{ItemID: spec.ID, Reason: reason})
		return b
	}

	item, err := NewScheduledItem(spec.ID, start, end, spec.Kind, spec.Payload)
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}

	b.items = append(b.items, item)
	return b
}

// Build returns the accepted and skipped items, or the contract violations found.
// A single violation is returned as is; several are joined.
func (b *ItemSetBuilder) Build() (ItemSet, error) {
	switch len(b.errors) {
	case 0:
		return ItemSet{Items: b.items, Skipped: b.skipped}, nil
	case 1:
		return ItemSet{}, b.errors[0]
	default:
		return ItemSet{}, errors.Join(b.errors...)
	}
}

// withField attaches the item context to a *ParseError.
func withField(err error, id, field string) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	out := *pe
	out.ItemID = id
	out.Field = field
	return &out
}

type missingIDError struct {
	position int
}

func (e *missingIDError) Error() string {
	return fmt.Sprintf("item at position %d has no id", e.position)
}

func (e *missingIDError) Unwrap() error {
	return ErrMissingID
}
