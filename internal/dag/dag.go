// Package dag builds the horizontal and vertical constraint DAGs (HCG,
// VCG) described in spec §4.1 and evaluates them with a Kahn-style longest
// path pass. Both variants share one Graph type parameterized by an Axis
// policy (spec §9: "shared DAG value type parameterized by an axis policy,
// not subtyping with virtual calls") — mirroring the way the teacher keeps
// its CSR graph construction in plain pre-sized slices with no recursion
// (pkg/graph/builder.go's prefix-sum pass, pkg/ch/contractor.go's worklist).
package dag

import "github.com/YTNIEN/PDA-PA3/internal/model"

// Axis supplies the one piece of per-variant behavior a Graph needs: which
// dimension of a block contributes to its node weight, and where the
// propagated weight gets written back as a coordinate. HCG and VCG are
// both just a Graph built with a different Axis (spec §9).
type Axis struct {
	// Dimension returns the block's extent along this axis (width for
	// HCG, height for VCG).
	Dimension func(b *model.Block) int
	// SetCoord writes the propagated weight back onto the block as its
	// high coordinate along this axis and derives the low coordinate by
	// subtracting Dimension(b).
	SetCoord func(b *model.Block, weight int)
}

// Horizontal is the HCG axis: edge u->v means "u is left of v"; node
// weight is the block's width; propagated weight becomes RightX.
var Horizontal = Axis{
	Dimension: func(b *model.Block) int { return b.Width },
	SetCoord: func(b *model.Block, weight int) {
		b.RightX = weight
		b.LeftX = weight - b.Width
	},
}

// Vertical is the VCG axis: edge u->v means "u is below v"; node weight is
// the block's height; propagated weight becomes TopY.
var Vertical = Axis{
	Dimension: func(b *model.Block) int { return b.Height },
	SetCoord: func(b *model.Block, weight int) {
		b.TopY = weight
		b.BottomY = weight - b.Height
	},
}

// nodeKind tags a node as a real block, or one of the two synthetic
// sentinels — a total pattern match instead of the original's nil-block
// sentinel + swallowed AttributeError (spec §9).
type nodeKind int

const (
	kindBlock nodeKind = iota
	kindSource
	kindTarget
)

// Graph is one constraint DAG: n block nodes plus a synthetic source and
// target. It holds non-owning references into the caller's block slice
// (spec §3, "Ownership": DAGs are ephemeral and never copy blocks).
type Graph struct {
	axis   Axis
	blocks []*model.Block

	kind   []nodeKind // len n+2; source = n, target = n+1
	out    [][]int    // adjacency list of out-edges per node
	inDeg  []int      // in-degree per node, incremented by Connect/connect-to-st
	weight []int      // propagated weight per node
	stDone bool       // true once ConnectToST has run
}

// New builds a Graph with one node per block, in the same order as blocks.
// No edges exist yet; call Connect for each constraint pair, then
// ConnectToST, then GetTargetWeight.
func New(axis Axis, blocks []*model.Block) *Graph {
	n := len(blocks)
	g := &Graph{
		axis:   axis,
		blocks: blocks,
		kind:   make([]nodeKind, n+2),
		out:    make([][]int, n+2),
		inDeg:  make([]int, n+2),
		weight: make([]int, n+2),
	}
	for i := 0; i < n; i++ {
		g.kind[i] = kindBlock
	}
	g.kind[g.sourceIdx()] = kindSource
	g.kind[g.targetIdx()] = kindTarget
	return g
}

func (g *Graph) n() int { return len(g.blocks) }

func (g *Graph) sourceIdx() int { return g.n() }
func (g *Graph) targetIdx() int { return g.n() + 1 }

// Connect adds directed edge u -> v between two block nodes (spec §4.1).
func (g *Graph) Connect(uIdx, vIdx int) {
	g.out[uIdx] = append(g.out[uIdx], vIdx)
	g.inDeg[vIdx]++
}

// ConnectToST attaches every node with no incoming block-to-block edge to
// source, and every node with no outgoing edge to target (spec §4.1). A
// node with neither is attached to both. Must run after all Connect calls
// and before GetTargetWeight.
func (g *Graph) ConnectToST() {
	src, tgt := g.sourceIdx(), g.targetIdx()
	for i := 0; i < g.n(); i++ {
		if g.inDeg[i] == 0 {
			g.out[src] = append(g.out[src], i)
			g.inDeg[i]++
		}
		if len(g.out[i]) == 0 {
			g.out[i] = append(g.out[i], tgt)
			g.inDeg[tgt]++
		}
	}
	g.stDone = true
}

// GetTargetWeight runs the longest-path propagation, writes each block's
// coordinates via the Axis's SetCoord, and returns target.weight: the
// envelope width (HCG) or height (VCG) (spec §4.1).
//
// Calling this before ConnectToST is a programming error per spec §4.1's
// failure mode ("a node may have zero in-count yet be unreachable from
// source"): it panics rather than silently returning a wrong answer.
func (g *Graph) GetTargetWeight() int {
	if !g.stDone {
		panic("dag: GetTargetWeight called before ConnectToST")
	}
	g.propagate()
	g.setCoords()
	return g.weight[g.targetIdx()]
}

// propagate runs the Kahn-style worklist relaxation of spec §4.1: source
// starts at weight 0; each dequeue decrements its out-neighbors' in-count
// and raises their weight to the max of current and predecessor's weight;
// when a block's in-count reaches zero it adds its own dimension and is
// enqueued. Complexity O(V+E).
func (g *Graph) propagate() {
	total := g.n() + 2
	remaining := make([]int, total)
	copy(remaining, g.inDeg)
	for i := range g.weight {
		g.weight[i] = 0
	}

	// Plain slice FIFO with a read cursor — no recursion, pre-sized,
	// matching the teacher's worklist style (pkg/ch/contractor.go).
	queue := make([]int, 0, total)
	queue = append(queue, g.sourceIdx())

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, next := range g.out[cur] {
			remaining[next]--
			if g.weight[cur] > g.weight[next] {
				g.weight[next] = g.weight[cur]
			}
			if remaining[next] == 0 {
				switch g.kind[next] {
				case kindBlock:
					g.weight[next] += g.axis.Dimension(g.blocks[next])
				case kindTarget:
					// no dimension added for the synthetic target
				}
				queue = append(queue, next)
			}
		}
	}
}

// setCoords writes the propagated weight of each block node back onto its
// block via the axis policy (spec §4.1, "Coordinate assignment").
func (g *Graph) setCoords() {
	for i := 0; i < g.n(); i++ {
		g.axis.SetCoord(g.blocks[i], g.weight[i])
	}
}
