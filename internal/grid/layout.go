package grid

import (
	"github.com/JacekPodanowski/ZPI-sub002/internal"
	"github.com/JacekPodanowski/ZPI-sub002/types"
)

// MinVisibleMinutes is the shortest vertical extent an item is drawn with.
const MinVisibleMinutes = 15

// LayoutDescriptor is where one item sits in the rendered window.
type LayoutDescriptor struct {
	ItemID         string
	Kind           types.ItemKind
	TopFraction    float64
	HeightFraction float64
	Column         int
	ColumnCount    int
	// Group is the index of the item's overlap group within the layout.
	Group int
	// Outside is set when the item does not intersect the window. Such an item is
	// still placed, pinned to the nearest window edge with the minimum height.
	Outside bool
}

// Layout computes a descriptor for every item.
//
// Items are clipped to the window vertically and drawn at least MinVisibleMinutes
// tall. Overlap groups and columns use the real, unclipped times, so items outside
// the window still receive a descriptor. Descriptors are returned in layout order.
// The window must span at least MinVisibleMinutes.
func Layout(items []ScheduledItem, window DisplayWindow) []LayoutDescriptor {
	descriptors := make([]LayoutDescriptor, len(items))

	for g, members := range OverlapGroups(items) {
		group := make([]ScheduledItem, len(members))
		for n, i := range members {
			group[n] = items[i]
		}

		for n, p := range AssignColumns(group) {
			i := members[n]
			top, height := verticalPlacement(items[i], window)
			descriptors[i] = LayoutDescriptor{
				ItemID:         items[i].ID,
				Kind:           items[i].Kind,
				TopFraction:    top,
				HeightFraction: height,
				Column:         p.Column,
				ColumnCount:    p.ColumnCount,
				Group:          g,
				Outside:        outsideWindow(items[i], window),
			}
		}
	}

	ordered := make([]LayoutDescriptor, 0, len(items))
	for _, i := range layoutOrder(items) {
		ordered = append(ordered, descriptors[i])
	}
	return ordered
}

// outsideWindow reports whether item misses window entirely. An item without a
// positive duration is a point in time and is outside unless the window contains it.
func outsideWindow(item ScheduledItem, window DisplayWindow) bool {
	start := item.Start.Minutes()
	if item.Duration() <= 0 {
		return !window.Contains(start)
	}
	return item.End.Minutes() <= window.StartMinutes || start >= window.EndMinutes
}

// verticalPlacement clips item to window, stretches it to the minimum visible
// duration and keeps the result inside the window.
func verticalPlacement(item ScheduledItem, window DisplayWindow) (top, height float64) {
	start := internal.Clamp(item.Start.Minutes(), window.StartMinutes, window.EndMinutes)
	end := internal.Clamp(item.End.Minutes(), window.StartMinutes, window.EndMinutes)

	duration := max(end-start, MinVisibleMinutes)
	if start+duration > window.EndMinutes {
		start = max(window.EndMinutes-duration, window.StartMinutes)
	}

	span := float64(window.Span())
	return float64(start-window.StartMinutes) / span, float64(duration) / span
}
