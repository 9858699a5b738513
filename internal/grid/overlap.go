package grid

import (
	"github.com/Workiva/go-datastructures/augmentedtree"
)

// span adapts an item to the interval tree. Only dimension 1 (minutes) is used.
type span struct {
	index      int
	start, end int64
}

func (s span) LowAtDimension(uint64) int64 {
	return s.start
}

func (s span) HighAtDimension(uint64) int64 {
	return s.end
}

// OverlapsAtDimension applies the half-open rule. The tree may still report
// touching intervals on its first dimension, so hits are rechecked with Overlaps.
func (s span) OverlapsAtDimension(other augmentedtree.Interval, dimension uint64) bool {
	return s.start < other.HighAtDimension(dimension) && other.LowAtDimension(dimension) < s.end
}

func (s span) ID() uint64 {
	return uint64(s.index)
}

// disjointSet is a union-find over item indexes. The root of a set is always its
// smallest member so that set identity does not depend on union order.
type disjointSet struct {
	parent []int
}

func newDisjointSet(n int) *disjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent}
}

func (d *disjointSet) find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

func (d *disjointSet) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	switch {
	case ra < rb:
		d.parent[rb] = ra
	case rb < ra:
		d.parent[ra] = rb
	}
}

// overlapEdges returns every pair (i, j), i < j, of overlapping items.
func overlapEdges(items []ScheduledItem) [][2]int {
	if len(items) < 2 {
		return nil
	}

	// Items without a positive duration overlap nothing and would be inverted
	// intervals in the tree.
	spans := make([]augmentedtree.Interval, 0, len(items))
	for i, item := range items {
		if item.Duration() <= 0 {
			continue
		}
		spans = append(spans, span{
			index: i,
			start: int64(item.Start.Minutes()),
			end:   int64(item.End.Minutes()),
		})
	}
	if len(spans) < 2 {
		return nil
	}

	tree := augmentedtree.New(1)
	tree.Add(spans...)

	var edges [][2]int
	for _, s := range spans {
		i := int(s.ID())
		hits := tree.Query(s)
		for _, hit := range hits {
			j := int(hit.ID())
			if j > i && Overlaps(items[i], items[j]) {
				edges = append(edges, [2]int{i, j})
			}
		}
		hits.Dispose()
	}
	return edges
}

// OverlapGroups partitions items into connected components of the overlap graph:
// two items share a group when a chain of pairwise overlaps links them.
//
// Each group lists input indexes in layout order, and groups are ordered by their
// first member, so the result is the same for any permutation of distinct items.
func OverlapGroups(items []ScheduledItem) [][]int {
	sets := newDisjointSet(len(items))
	for _, e := range overlapEdges(items) {
		sets.union(e[0], e[1])
	}

	var groups [][]int
	slot := make(map[int]int, len(items))
	for _, i := range layoutOrder(items) {
		root := sets.find(i)
		g, ok := slot[root]
		if !ok {
			g = len(groups)
			slot[root] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}
