// Package overlap verifies the no-overlap invariant (spec §8) for a
// decoded placement using an R-tree spatial index instead of the O(n²)
// pairwise scan a naive check would require. It wires
// github.com/tidwall/rtree, present in the teacher's go.mod for a planned
// spatial index that teacher code never ended up exercising (the router
// uses a flat sorted grid in pkg/routing/snap.go instead) — here it gets a
// real job: large floorplans with thousands of macros can check the
// invariant in O(n log n).
package overlap

import (
	"fmt"

	"github.com/tidwall/rtree"

	"github.com/YTNIEN/PDA-PA3/internal/model"
)

// CheckNoOverlap reports the first pair of blocks whose rectangles overlap
// by more than a shared edge, or nil if the placement is legal. Two
// rectangles that merely touch (share an edge or corner with zero-area
// intersection) are not considered overlapping, matching spec §8's
// invariant: "right_xᵢ ≤ left_xⱼ or right_xⱼ ≤ left_xᵢ or top_yᵢ ≤
// bottom_yⱼ or top_yⱼ ≤ bottom_yᵢ".
func CheckNoOverlap(blocks []model.Block) error {
	var tr rtree.RTree

	for i := range blocks {
		b := &blocks[i]
		min := [2]float64{float64(b.LeftX), float64(b.BottomY)}
		max := [2]float64{float64(b.RightX), float64(b.TopY)}
		tr.Insert(min, max, i)
	}

	for i := range blocks {
		b := &blocks[i]
		min := [2]float64{float64(b.LeftX), float64(b.BottomY)}
		max := [2]float64{float64(b.RightX), float64(b.TopY)}

		var collision error
		tr.Search(min, max, func(hitMin, hitMax [2]float64, data interface{}) bool {
			j := data.(int)
			if j == i {
				return true
			}
			other := &blocks[j]
			if rectanglesOverlap(b, other) {
				collision = fmt.Errorf("blocks %q and %q overlap", b.Name, other.Name)
				return false
			}
			return true
		})
		if collision != nil {
			return collision
		}
	}
	return nil
}

// rectanglesOverlap reports true only for a positive-area intersection;
// edge- or corner-touching rectangles are legal under spec §8.
func rectanglesOverlap(a, b *model.Block) bool {
	if a.RightX <= b.LeftX || b.RightX <= a.LeftX {
		return false
	}
	if a.TopY <= b.BottomY || b.TopY <= a.BottomY {
		return false
	}
	return true
}
