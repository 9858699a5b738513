package grid

import (
	"cmp"
	"slices"

	"github.com/JacekPodanowski/ZPI-sub002/types"
)

// ScheduledItem is one parsed item of the day. Only ID, Start and End take part in
// layout; Kind is carried to the descriptor and Payload is never inspected.
type ScheduledItem struct {
	ID      string
	Start   TimeOfDay
	End     TimeOfDay
	Kind    types.ItemKind
	Payload any
}

// NewScheduledItem builds an item, rejecting intervals whose end is not after the start.
func NewScheduledItem(id string, start, end TimeOfDay, kind types.ItemKind, payload any) (ScheduledItem, error) {
	if !start.Before(end) {
		return ScheduledItem{}, &InvalidIntervalError{ItemID: id, Start: start, End: end}
	}
	if kind == "" {
		kind = types.Event
	}
	return ScheduledItem{ID: id, Start: start, End: end, Kind: kind, Payload: payload}, nil
}

// Duration returns the length of the item in minutes. It is only negative or zero
// for items built without NewScheduledItem.
func (i ScheduledItem) Duration() int {
	return i.End.Minutes() - i.Start.Minutes()
}

// Overlaps reports whether the half-open ranges [start,end) of a and b intersect.
// Touching endpoints do not overlap, and an item without a positive duration
// overlaps nothing.
func Overlaps(a, b ScheduledItem) bool {
	if a.Duration() <= 0 || b.Duration() <= 0 {
		return false
	}
	return a.Start.Minutes() < b.End.Minutes() && b.Start.Minutes() < a.End.Minutes()
}

// compareForLayout orders items by start ascending, then duration descending, then id.
// Callers break remaining ties by input position.
func compareForLayout(a, b ScheduledItem) int {
	return cmp.Or(
		cmp.Compare(a.Start.Minutes(), b.Start.Minutes()),
		cmp.Compare(b.Duration(), a.Duration()),
		cmp.Compare(a.ID, b.ID),
	)
}

// layoutOrder returns the indexes of items in layout order. The order is total:
// equal items keep their input order.
func layoutOrder(items []ScheduledItem) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Or(compareForLayout(items[a], items[b]), cmp.Compare(a, b))
	})
	return order
}
