package grid

const (
	// MaxColumns caps the number of columns a group is divided into.
	MaxColumns = 5
	// FallbackColumn is reused when every column of a capped group is taken.
	// Items placed there may visually collide; this is accepted.
	FallbackColumn = 0
)

// Placement is the horizontal slot of one item.
type Placement struct {
	Column      int
	ColumnCount int
}

// AssignColumns places the members of one overlap group into columns.
//
// Items are visited in layout order (start, longest first, id) and each takes the
// lowest column not held by an earlier overlapping item. The group is split into
// min(len(group), MaxColumns) columns; once they are all taken FallbackColumn is
// reused. The result is aligned with the input slice, whose order does not matter.
func AssignColumns(group []ScheduledItem) []Placement {
	columnCount := min(len(group), MaxColumns)
	order := layoutOrder(group)

	columns := make([]int, len(group))
	for n, i := range order {
		columns[i] = freeColumn(group, order[:n], columns, group[i], columnCount)
	}

	placements := make([]Placement, len(group))
	for i, c := range columns {
		placements[i] = Placement{Column: c, ColumnCount: columnCount}
	}
	return placements
}

// freeColumn returns the first column not used by a placed item overlapping item.
func freeColumn(group []ScheduledItem, placed []int, columns []int, item ScheduledItem, columnCount int) int {
	taken := make([]bool, columnCount)
	for _, p := range placed {
		if Overlaps(group[p], item) {
			taken[columns[p]] = true
		}
	}
	for c, used := range taken {
		if !used {
			return c
		}
	}
	return FallbackColumn
}
