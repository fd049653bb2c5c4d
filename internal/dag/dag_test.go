package dag

import (
	"testing"

	"github.com/YTNIEN/PDA-PA3/internal/model"
)

func TestHorizontalChain(t *testing.T) {
	// A -> B: A is left of B. Widths 10, 10: envelope width should be 20.
	blocks := []model.Block{{Name: "A", Width: 10, Height: 10}, {Name: "B", Width: 10, Height: 10}}
	ptrs := []*model.Block{&blocks[0], &blocks[1]}

	g := New(Horizontal, ptrs)
	g.Connect(0, 1)
	g.ConnectToST()

	if w := g.GetTargetWeight(); w != 20 {
		t.Fatalf("width = %d, want 20", w)
	}
	if blocks[0].LeftX != 0 || blocks[0].RightX != 10 {
		t.Errorf("block A = [%d,%d], want [0,10]", blocks[0].LeftX, blocks[0].RightX)
	}
	if blocks[1].LeftX != 10 || blocks[1].RightX != 20 {
		t.Errorf("block B = [%d,%d], want [10,20]", blocks[1].LeftX, blocks[1].RightX)
	}
}

func TestVerticalNoEdges(t *testing.T) {
	// No edges: both blocks independently attach to source and target, so
	// height is just the taller one's own height.
	blocks := []model.Block{{Name: "A", Width: 10, Height: 10}, {Name: "B", Width: 10, Height: 10}}
	ptrs := []*model.Block{&blocks[0], &blocks[1]}

	g := New(Vertical, ptrs)
	g.ConnectToST()

	if h := g.GetTargetWeight(); h != 10 {
		t.Fatalf("height = %d, want 10", h)
	}
}

func TestThreeBlockVerticalStack(t *testing.T) {
	// Spec scenario 3: three blocks 10x20, 20x10, 15x15 all stacked
	// vertically (chained VCG edges); height should be 20+10+15=45.
	blocks := []model.Block{
		{Name: "A", Width: 10, Height: 20},
		{Name: "B", Width: 20, Height: 10},
		{Name: "C", Width: 15, Height: 15},
	}
	ptrs := []*model.Block{&blocks[0], &blocks[1], &blocks[2]}

	g := New(Vertical, ptrs)
	g.Connect(0, 1) // A below B
	g.Connect(1, 2) // B below C
	g.ConnectToST()

	if h := g.GetTargetWeight(); h != 45 {
		t.Fatalf("height = %d, want 45", h)
	}
}

func TestDiamondTakesLongestPath(t *testing.T) {
	// source -> A -> C -> target
	// source -> B -> C -> target
	// A width 5, B width 20: C's left edge must be max(5,20)=20.
	blocks := []model.Block{
		{Name: "A", Width: 5, Height: 1},
		{Name: "B", Width: 20, Height: 1},
		{Name: "C", Width: 3, Height: 1},
	}
	ptrs := []*model.Block{&blocks[0], &blocks[1], &blocks[2]}

	g := New(Horizontal, ptrs)
	g.Connect(0, 2)
	g.Connect(1, 2)
	g.ConnectToST()

	if w := g.GetTargetWeight(); w != 23 {
		t.Fatalf("width = %d, want 23", w)
	}
	if blocks[2].LeftX != 20 {
		t.Errorf("C.LeftX = %d, want 20 (longest incoming path)", blocks[2].LeftX)
	}
}

func TestGetTargetWeightBeforeConnectToSTPanics(t *testing.T) {
	blocks := []model.Block{{Name: "A", Width: 1, Height: 1}}
	ptrs := []*model.Block{&blocks[0]}
	g := New(Horizontal, ptrs)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling GetTargetWeight before ConnectToST")
		}
	}()
	g.GetTargetWeight()
}

func TestSingleBlock(t *testing.T) {
	blocks := []model.Block{{Name: "Solo", Width: 7, Height: 9}}
	ptrs := []*model.Block{&blocks[0]}

	hg := New(Horizontal, ptrs)
	hg.ConnectToST()
	if w := hg.GetTargetWeight(); w != 7 {
		t.Fatalf("width = %d, want 7", w)
	}

	vg := New(Vertical, ptrs)
	vg.ConnectToST()
	if h := vg.GetTargetWeight(); h != 9 {
		t.Fatalf("height = %d, want 9", h)
	}

	if blocks[0].LeftX != 0 || blocks[0].BottomY != 0 {
		t.Errorf("single block should sit at origin, got (%d,%d)", blocks[0].LeftX, blocks[0].BottomY)
	}
}
