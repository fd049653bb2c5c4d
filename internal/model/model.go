// Package model holds the Block/Terminal/Net data model and the Floorplan
// aggregate that owns them, mirroring the teacher's index-based CSR graph
// representation (pkg/graph.Graph) rather than a pointer graph: blocks and
// terminals live in dense slices, referenced everywhere else by integer
// index.
package model

import "fmt"

// Block is a rectangular hard macro. Width and Height are immutable for the
// lifetime of a run (rotation is a reserved, flag-gated move per spec §9.1
// and swaps them in place when enabled). LeftX/BottomY/RightX/TopY are
// set by the sequence-pair packer on every decode; Rotated is flipped only
// by Rotate.
type Block struct {
	Name   string
	Width  int
	Height int

	Rotated bool

	LeftX   int
	BottomY int
	RightX  int
	TopY    int
}

// CenterX returns the pin position used by HPWL, using integer division as
// spec §4.3 requires.
func (b *Block) CenterX() int {
	return (b.LeftX + b.RightX) / 2
}

// CenterY returns the pin position used by HPWL, using integer division as
// spec §4.3 requires.
func (b *Block) CenterY() int {
	return (b.TopY + b.BottomY) / 2
}

// Rotate swaps width and height and flips the Rotated flag. Reserved for
// the annealer's optional rotation move (spec §4.4, not exercised unless
// explicitly enabled); a subsequent decode re-derives coordinates as usual.
func (b *Block) Rotate() {
	b.Rotated = !b.Rotated
	b.Width, b.Height = b.Height, b.Width
}

// Terminal is a fixed-position pin. It is never placed and never rotated.
type Terminal struct {
	Name string
	X    int
	Y    int
}

// PinKind tags a PinRef as referring to a Block or a Terminal.
type PinKind int

const (
	PinBlock PinKind = iota
	PinTerminal
)

// PinRef is a tagged reference into a Floorplan's Blocks or Terminals slice.
// Nets are built from PinRefs rather than pointers so that a Net never
// copies block state — coordinate updates made by the packer are visible
// through the index immediately (spec §3, "Ownership").
type PinRef struct {
	Kind PinKind
	Idx  int
}

// Net is an ordered list of pin references.
type Net struct {
	Pins []PinRef
}

// Floorplan is the aggregate that exclusively owns blocks, terminals, and
// nets for the lifetime of a run (spec §3, "Ownership"). Constraint DAGs
// are rebuilt from it on every cost evaluation and never outlive one call.
type Floorplan struct {
	WMax int
	HMax int

	Blocks    []Block
	Terminals []Terminal
	Nets      []Net

	blockIndex    map[string]int
	terminalIndex map[string]int
}

// NewFloorplan creates an empty Floorplan with the given fixed outline.
func NewFloorplan(wMax, hMax int) *Floorplan {
	return &Floorplan{
		WMax:          wMax,
		HMax:          hMax,
		blockIndex:    make(map[string]int),
		terminalIndex: make(map[string]int),
	}
}

// AddBlock appends a new block and returns its index. Names must be unique
// across both blocks and terminals.
func (fp *Floorplan) AddBlock(name string, width, height int) (int, error) {
	if err := fp.checkNameFree(name); err != nil {
		return 0, err
	}
	idx := len(fp.Blocks)
	fp.Blocks = append(fp.Blocks, Block{Name: name, Width: width, Height: height})
	fp.blockIndex[name] = idx
	return idx, nil
}

// AddTerminal appends a new fixed-position terminal and returns its index.
func (fp *Floorplan) AddTerminal(name string, x, y int) (int, error) {
	if err := fp.checkNameFree(name); err != nil {
		return 0, err
	}
	idx := len(fp.Terminals)
	fp.Terminals = append(fp.Terminals, Terminal{Name: name, X: x, Y: y})
	fp.terminalIndex[name] = idx
	return idx, nil
}

func (fp *Floorplan) checkNameFree(name string) error {
	if _, ok := fp.blockIndex[name]; ok {
		return fmt.Errorf("duplicate pin name %q", name)
	}
	if _, ok := fp.terminalIndex[name]; ok {
		return fmt.Errorf("duplicate pin name %q", name)
	}
	return nil
}

// ResolvePin looks up a name among blocks and terminals, in that order, and
// returns the PinRef for use in a Net.
func (fp *Floorplan) ResolvePin(name string) (PinRef, error) {
	if idx, ok := fp.blockIndex[name]; ok {
		return PinRef{Kind: PinBlock, Idx: idx}, nil
	}
	if idx, ok := fp.terminalIndex[name]; ok {
		return PinRef{Kind: PinTerminal, Idx: idx}, nil
	}
	return PinRef{}, fmt.Errorf("unknown pin name %q", name)
}

// AddNet appends a net built from the given pin names.
func (fp *Floorplan) AddNet(names []string) error {
	pins := make([]PinRef, 0, len(names))
	for _, name := range names {
		ref, err := fp.ResolvePin(name)
		if err != nil {
			return err
		}
		pins = append(pins, ref)
	}
	fp.Nets = append(fp.Nets, Net{Pins: pins})
	return nil
}

// PinXY resolves a PinRef to its current (x, y) position: a block's center
// if Kind is PinBlock, else the terminal's fixed position.
func (fp *Floorplan) PinXY(ref PinRef) (x, y int) {
	switch ref.Kind {
	case PinBlock:
		b := &fp.Blocks[ref.Idx]
		return b.CenterX(), b.CenterY()
	default:
		t := &fp.Terminals[ref.Idx]
		return t.X, t.Y
	}
}

// Width returns the current envelope width: the maximum RightX across all
// blocks (0 if there are none).
func (fp *Floorplan) Width() int {
	w := 0
	for i := range fp.Blocks {
		if fp.Blocks[i].RightX > w {
			w = fp.Blocks[i].RightX
		}
	}
	return w
}

// Height returns the current envelope height: the maximum TopY across all
// blocks (0 if there are none).
func (fp *Floorplan) Height() int {
	h := 0
	for i := range fp.Blocks {
		if fp.Blocks[i].TopY > h {
			h = fp.Blocks[i].TopY
		}
	}
	return h
}
