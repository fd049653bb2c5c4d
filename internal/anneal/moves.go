package anneal

import (
	"math/rand"

	"github.com/YTNIEN/PDA-PA3/internal/model"
)

// searchState wraps a sequence pair with an auxiliary position-lookup
// array per block index, so that move 2 (which swaps by block index, not
// by position) finds its positions in O(1) instead of the O(n) scan
// spec §9 calls the "simple fallback" (option (a) over option (b) there).
type searchState struct {
	sp   model.SequencePair
	posP []int // posP[blockIdx] = index of blockIdx within sp.P
	posN []int
}

func newSearchState(sp model.SequencePair) *searchState {
	n := len(sp.P)
	s := &searchState{sp: sp, posP: make([]int, n), posN: make([]int, n)}
	s.reindex()
	return s
}

func (s *searchState) reindex() {
	for pos, blockIdx := range s.sp.P {
		s.posP[blockIdx] = pos
	}
	for pos, blockIdx := range s.sp.N {
		s.posN[blockIdx] = pos
	}
}

func (s *searchState) swapPositionsInP(i, j int) {
	s.sp.P[i], s.sp.P[j] = s.sp.P[j], s.sp.P[i]
	s.posP[s.sp.P[i]] = i
	s.posP[s.sp.P[j]] = j
}

func (s *searchState) swapPositionsInN(i, j int) {
	s.sp.N[i], s.sp.N[j] = s.sp.N[j], s.sp.N[i]
	s.posN[s.sp.N[i]] = i
	s.posN[s.sp.N[j]] = j
}

func (s *searchState) swapBlockInP(a, b int) {
	s.swapPositionsInP(s.posP[a], s.posP[b])
}

func (s *searchState) swapBlockInN(a, b int) {
	s.swapPositionsInN(s.posN[a], s.posN[b])
}

// moveKind tags which of the three perturbation moves (spec §4.4) was
// drawn, so a rejected move is undone by calling apply again with the same
// move — swap is its own inverse, so undo is just redo (spec §8: "applying move 1 or move 2
// twice with the same index selection is the identity").
type moveKind int

const (
	moveSwapP moveKind = iota
	moveSwapBoth
	moveRotate
	moveNone
)

// move records enough of a drawn perturbation to reverse it.
type move struct {
	kind moveKind
	i, j int // positions (moveSwapP) or block indices (moveSwapBoth)
	blockIdx int // block rotated (moveRotate)
}

// drawMove picks one of the active perturbation moves uniformly (spec
// §4.4). Rotation only participates when enabled (spec §9). Both swap
// moves require at least two blocks to pick a distinct pair from (spec §8
// scenario "n = 1"); with fewer than two blocks there is nothing to swap,
// so the draw falls back to rotation if enabled, else a no-op move that
// leaves the sequence pair untouched.
func drawMove(rng *rand.Rand, n int, enableRotation bool, blocks []model.Block) move {
	if n < 2 {
		if enableRotation && len(blocks) > 0 {
			return move{kind: moveRotate, blockIdx: rng.Intn(len(blocks))}
		}
		return move{kind: moveNone}
	}

	numKinds := 2
	if enableRotation {
		numKinds = 3
	}
	switch rng.Intn(numKinds) {
	case 0:
		i, j := distinctPair(rng, n)
		return move{kind: moveSwapP, i: i, j: j}
	case 1:
		a, b := distinctPair(rng, n)
		return move{kind: moveSwapBoth, i: a, j: b}
	default:
		idx := rng.Intn(len(blocks))
		return move{kind: moveRotate, blockIdx: idx}
	}
}

// distinctPair draws two distinct values in [0, n).
func distinctPair(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// apply performs the move on s (and, for rotation, on the block's
// dimensions), returning nothing — undo is achieved by calling apply
// again with the same move value.
func (s *searchState) apply(m move, blocks []model.Block) {
	switch m.kind {
	case moveSwapP:
		s.swapPositionsInP(m.i, m.j)
	case moveSwapBoth:
		s.swapBlockInP(m.i, m.j)
		s.swapBlockInN(m.i, m.j)
	case moveRotate:
		blocks[m.blockIdx].Rotate()
	case moveNone:
		// nothing to do: fewer than two blocks means no swap is possible.
	}
}
