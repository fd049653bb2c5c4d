// Package packer decodes a sequence pair into absolute block coordinates
// by building the HCG and VCG constraint DAGs and evaluating their longest
// paths (spec §4.2).
package packer

import (
	"github.com/YTNIEN/PDA-PA3/internal/dag"
	"github.com/YTNIEN/PDA-PA3/internal/model"
)

// Decode builds HCG and VCG from the sequence pair, evaluates both, and
// updates every block's coordinates as a side effect. It returns the
// resulting envelope width and height.
//
// For every ordered pair (a, b) with a before b in P, their relative order
// in N determines the constraint: a before b in N too means a is left of
// b (HCG edge a->b); a after b in N means a sits on top of b (VCG edge
// b->a, i.e. b is below a) (spec §4.2). sp is assumed to already be a
// permutation pair; Decode does not call Validate, since this runs on
// every candidate. The annealer's moves only swap entries, which keeps
// P and N permutations.
func Decode(fp *model.Floorplan, sp model.SequencePair) (width, height int) {
	n := len(fp.Blocks)
	if n == 0 {
		return 0, 0
	}

	blockPtrs := make([]*model.Block, n)
	for i := range fp.Blocks {
		blockPtrs[i] = &fp.Blocks[i]
	}

	hcg := dag.New(dag.Horizontal, blockPtrs)
	vcg := dag.New(dag.Vertical, blockPtrs)

	// posInN[blockIdx] = position of blockIdx within N, for O(1) lookup
	// in place of the original's O(n) list.index() call per comparison
	// (original_source/PA3.py's itertools.combinations + .index() loop).
	posInN := make([]int, n)
	for pos, blockIdx := range sp.N {
		posInN[blockIdx] = pos
	}

	for i := 0; i < len(sp.P); i++ {
		a := sp.P[i]
		for j := i + 1; j < len(sp.P); j++ {
			b := sp.P[j]
			switch {
			case posInN[a] < posInN[b]:
				hcg.Connect(a, b)
			case posInN[a] > posInN[b]:
				vcg.Connect(b, a)
			default:
				panic("packer: duplicate block index in sequence pair")
			}
		}
	}

	hcg.ConnectToST()
	vcg.ConnectToST()

	width = hcg.GetTargetWeight()
	height = vcg.GetTargetWeight()
	return width, height
}
