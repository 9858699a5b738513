package daygrid

import (
	"fmt"

	"github.com/JacekPodanowski/ZPI-sub002/types"
)

// Item is a scheduled item as supplied by the caller. Its times are kept as strings
// and parsed by Render, so that a bad time only skips the item it belongs to.
type Item struct {
	id      string
	start   types.TimeString
	end     types.TimeString
	kind    types.ItemKind
	payload any
}

// itemBuilder is used in the fluent API to build items step by step.
type itemBuilder struct {
	item Item
}

// itemBuilderID is the state after setting the id.
type itemBuilderID struct {
	item Item
}

// itemBuilderEnd is the final state where times are set.
type itemBuilderEnd struct {
	item Item
}

// NewItem starts building an item. Items are events unless marked otherwise:
//
//	NewItem().ID("standup").Between("09:00", "09:15").Build()
func NewItem() itemBuilder {
	return itemBuilder{Item{kind: types.Event}}
}

// ID sets the id the item's descriptor is addressed by. Ids must be unique per day.
func (b itemBuilder) ID(id string) itemBuilderID {
	b.item.id = id
	return itemBuilderID(b)
}

// Between sets the start and end in 24-hour "HH:MM" or "HH:MM:SS" format.
func (b itemBuilderID) Between(start, end types.TimeString) itemBuilderEnd {
	b.item.start = start
	b.item.end = end
	return itemBuilderEnd(b)
}

// Event marks the item as a fixed appointment. This is the default.
func (b itemBuilderEnd) Event() itemBuilderEnd {
	b.item.kind = types.Event
	return b
}

// Availability marks the item as an open availability window.
func (b itemBuilderEnd) Availability() itemBuilderEnd {
	b.item.kind = types.Availability
	return b
}

// Payload attaches caller data. It is never inspected.
func (b itemBuilderEnd) Payload(v any) itemBuilderEnd {
	b.item.payload = v
	return b
}

func (b itemBuilderEnd) Build() Item {
	return b.item
}

func (i Item) ID() string {
	return i.id
}

func (i Item) Kind() types.ItemKind {
	return i.kind
}

func (i Item) Payload() any {
	return i.payload
}

// String returns a human-readable representation of the item.
func (i Item) String() string {
	return fmt.Sprintf("Item{ %s %q %s-%s }", i.kind, i.id, i.start, i.end)
}

func (i Item) spec() types.ItemSpec {
	return types.ItemSpec{
		ID:      i.id,
		Start:   i.start,
		End:     i.end,
		Kind:    i.kind,
		Payload: i.payload,
	}
}

// ItemsFromSpecs converts decoded specs into items. A spec without a kind is an event.
func ItemsFromSpecs(specs []types.ItemSpec) []Item {
	items := make([]Item, len(specs))
	for i, s := range specs {
		kind := s.Kind
		if kind == "" {
			kind = types.Event
		}
		items[i] = Item{id: s.ID, start: s.Start, end: s.End, kind: kind, payload: s.Payload}
	}
	return items
}
