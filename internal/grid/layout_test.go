package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fractionDelta = 1e-9

func byID(descriptors []LayoutDescriptor) map[string]LayoutDescriptor {
	out := make(map[string]LayoutDescriptor, len(descriptors))
	for _, d := range descriptors {
		out[d.ItemID] = d
	}
	return out
}

func TestLayout_SeparateItems(t *testing.T) {
	items := []ScheduledItem{
		rawItem("morning", "09:00", "11:00"),
		rawItem("afternoon", "14:00", "16:00"),
	}
	window := DisplayWindow{StartMinutes: 8 * 60, EndMinutes: 17 * 60}

	descriptors := Layout(items, window)
	require.Len(t, descriptors, 2)

	morning := byID(descriptors)["morning"]
	assert.InDelta(t, 60.0/540, morning.TopFraction, fractionDelta)
	assert.InDelta(t, 120.0/540, morning.HeightFraction, fractionDelta)

	for _, d := range descriptors {
		assert.Equal(t, 0, d.Column)
		assert.Equal(t, 1, d.ColumnCount)
	}
	assert.NotEqual(t, descriptors[0].Group, descriptors[1].Group)
}

func TestLayout_OverlappingPair(t *testing.T) {
	items := []ScheduledItem{
		rawItem("first", "10:00", "11:00"),
		rawItem("second", "10:30", "11:30"),
	}

	got := byID(Layout(items, DisplayWindow{StartMinutes: 9 * 60, EndMinutes: 13 * 60}))

	assert.Equal(t, 0, got["first"].Column)
	assert.Equal(t, 1, got["second"].Column)
	assert.Equal(t, 2, got["first"].ColumnCount)
	assert.Equal(t, 2, got["second"].ColumnCount)
	assert.Equal(t, got["first"].Group, got["second"].Group)
}

func TestLayout_MinimumVisibleDuration(t *testing.T) {
	window := DisplayWindow{StartMinutes: 8 * 60, EndMinutes: 12 * 60}

	tests := []struct {
		name        string
		item        ScheduledItem
		expectedTop int // minutes from window start
	}{
		{name: "short item", item: rawItem("a", "09:00", "09:05"), expectedTop: 60},
		{name: "zero duration", item: rawItem("a", "10:00", "10:00"), expectedTop: 120},
		{name: "negative duration", item: rawItem("a", "10:00", "09:00"), expectedTop: 120},
		{name: "short item at window end", item: rawItem("a", "11:55", "12:00"), expectedTop: 225},
		{name: "before window", item: rawItem("a", "06:00", "07:00"), expectedTop: 0},
		{name: "after window", item: rawItem("a", "13:00", "14:00"), expectedTop: 225},
		{name: "clipped at window start", item: rawItem("a", "07:00", "08:05"), expectedTop: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptors := Layout([]ScheduledItem{tt.item}, window)
			require.Len(t, descriptors, 1)

			d := descriptors[0]
			span := float64(window.Span())
			assert.InDelta(t, float64(tt.expectedTop)/span, d.TopFraction, fractionDelta)
			assert.InDelta(t, float64(MinVisibleMinutes)/span, d.HeightFraction, fractionDelta)
		})
	}
}

func TestLayout_Outside(t *testing.T) {
	window := DisplayWindow{StartMinutes: 8 * 60, EndMinutes: 12 * 60}

	tests := []struct {
		name     string
		item     ScheduledItem
		expected bool
	}{
		{name: "inside", item: rawItem("a", "09:00", "10:00"), expected: false},
		{name: "ends at window end", item: rawItem("a", "11:45", "12:00"), expected: false},
		{name: "clipped at window start", item: rawItem("a", "07:00", "08:05"), expected: false},
		{name: "ends at window start", item: rawItem("a", "07:00", "08:00"), expected: true},
		{name: "starts at window end", item: rawItem("a", "12:00", "13:00"), expected: true},
		{name: "after window", item: rawItem("a", "13:00", "14:00"), expected: true},
		{name: "zero duration on window edge", item: rawItem("a", "12:00", "12:00"), expected: false},
		{name: "zero duration before window", item: rawItem("a", "07:00", "07:00"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Layout([]ScheduledItem{tt.item}, window)[0]
			assert.Equal(t, tt.expected, d.Outside)
		})
	}

	// An item after the window sits where a real one ending at the edge would.
	late := Layout([]ScheduledItem{rawItem("a", "13:00", "14:00")}, window)[0]
	edge := Layout([]ScheduledItem{rawItem("a", "11:45", "12:00")}, window)[0]
	assert.Equal(t, edge.TopFraction, late.TopFraction)
	assert.NotEqual(t, edge.Outside, late.Outside)
}

func TestLayout_ClipsToWindow(t *testing.T) {
	window := DisplayWindow{StartMinutes: 9 * 60, EndMinutes: 17 * 60}
	d := Layout([]ScheduledItem{rawItem("all-day", "06:00", "20:00")}, window)[0]

	assert.InDelta(t, 0, d.TopFraction, fractionDelta)
	assert.InDelta(t, 1, d.HeightFraction, fractionDelta)
}

func TestLayout_OrderFollowsLayoutOrder(t *testing.T) {
	items := []ScheduledItem{
		rawItem("c", "12:00", "13:00"),
		rawItem("b", "09:00", "09:30"),
		rawItem("a", "09:00", "10:00"),
	}

	descriptors := Layout(items, DisplayWindow{StartMinutes: 8 * 60, EndMinutes: 14 * 60})

	var ids []string
	for _, d := range descriptors {
		ids = append(ids, d.ItemID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestLayout_CarriesKind(t *testing.T) {
	item := rawItem("slot", "09:00", "10:00")
	item.Kind = "availability"

	d := Layout([]ScheduledItem{item}, DisplayWindow{StartMinutes: 8 * 60, EndMinutes: 12 * 60})[0]
	assert.Equal(t, "availability", d.Kind.String())
}

// busyDay is a dense day with chains, nested items, a capped group and items outside
// the window.
func busyDay() []ScheduledItem {
	items := []ScheduledItem{
		rawItem("early", "05:00", "05:30"),
		rawItem("standup", "09:00", "09:15"),
		rawItem("review", "09:00", "10:30"),
		rawItem("pairing", "09:10", "09:40"),
		rawItem("lunch", "12:00", "13:00"),
		rawItem("call", "12:30", "12:45"),
		rawItem("marker", "15:00", "15:00"),
		rawItem("late", "21:00", "22:30"),
	}
	for i := 0; i < 7; i++ {
		items = append(items, rawItem(fmt.Sprintf("workshop-%d", i), "14:00", "16:00"))
	}
	return items
}

func TestLayout_Properties(t *testing.T) {
	items := busyDay()
	window := DisplayWindow{StartMinutes: 8 * 60, EndMinutes: 18 * 60}
	span := float64(window.Span())

	descriptors := Layout(items, window)
	require.Len(t, descriptors, len(items))

	got := byID(descriptors)
	for _, d := range descriptors {
		// containment
		assert.GreaterOrEqual(t, d.TopFraction, 0.0, d.ItemID)
		assert.LessOrEqual(t, d.TopFraction, 1.0, d.ItemID)
		assert.LessOrEqual(t, d.TopFraction+d.HeightFraction, 1.0+fractionDelta, d.ItemID)

		// minimum visible height
		assert.GreaterOrEqual(t, d.HeightFraction*span, float64(MinVisibleMinutes)-fractionDelta, d.ItemID)

		// column bound
		assert.GreaterOrEqual(t, d.Column, 0, d.ItemID)
		assert.Less(t, d.Column, d.ColumnCount, d.ItemID)
		assert.LessOrEqual(t, d.ColumnCount, MaxColumns, d.ItemID)
	}

	// Overlapping items share a group and column count, and only a capped group may
	// reuse a column.
	for _, a := range items {
		for _, b := range items {
			if a.ID == b.ID || !Overlaps(a, b) {
				continue
			}
			da, db := got[a.ID], got[b.ID]
			assert.Equal(t, da.Group, db.Group)
			assert.Equal(t, da.ColumnCount, db.ColumnCount)
			if da.ColumnCount < MaxColumns {
				assert.NotEqual(t, da.Column, db.Column, "%s and %s", a.ID, b.ID)
			}
		}
	}

	assert.Equal(t, MaxColumns, got["workshop-0"].ColumnCount)
	assert.Equal(t, FallbackColumn, got["workshop-5"].Column)
	assert.Equal(t, FallbackColumn, got["workshop-6"].Column)
	assert.Equal(t, 1, got["marker"].ColumnCount)
	assert.Equal(t, 3, got["review"].ColumnCount)
}

func TestLayout_Idempotent(t *testing.T) {
	items := busyDay()
	window := DisplayWindow{StartMinutes: 0, EndMinutes: MinutesPerDay}

	first := Layout(items, window)
	second := Layout(items, window)
	assert.Equal(t, first, second)

	// Input order does not matter either.
	reversed := make([]ScheduledItem, len(items))
	for i, item := range items {
		reversed[len(items)-1-i] = item
	}
	assert.Equal(t, first, Layout(reversed, window))
}
