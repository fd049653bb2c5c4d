package packer

import (
	"testing"

	"github.com/YTNIEN/PDA-PA3/internal/model"
)

func twoSquareFloorplan(t *testing.T) *model.Floorplan {
	t.Helper()
	fp := model.NewFloorplan(20, 20)
	if _, err := fp.AddBlock("A", 10, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := fp.AddBlock("B", 10, 10); err != nil {
		t.Fatal(err)
	}
	if err := fp.AddNet([]string{"A", "B"}); err != nil {
		t.Fatal(err)
	}
	return fp
}

// Spec §8 scenario 1: P=[0,1], N=[0,1] -> A left of B, width 20, height 10.
func TestDecodeScenario1(t *testing.T) {
	fp := twoSquareFloorplan(t)
	sp := model.SequencePair{P: []int{0, 1}, N: []int{0, 1}}

	w, h := Decode(fp, sp)
	if w != 20 || h != 10 {
		t.Fatalf("got (%d,%d), want (20,10)", w, h)
	}

	cx0, cy0 := fp.Blocks[0].CenterX(), fp.Blocks[0].CenterY()
	cx1, cy1 := fp.Blocks[1].CenterX(), fp.Blocks[1].CenterY()
	if cx0 != 5 || cy0 != 5 || cx1 != 15 || cy1 != 5 {
		t.Fatalf("centers = (%d,%d) (%d,%d), want (5,5) (15,5)", cx0, cy0, cx1, cy1)
	}
}

// Spec §8 scenario 2: P=[0,1], N=[1,0] -> B below A (VCG), width 10, height 20.
func TestDecodeScenario2(t *testing.T) {
	fp := twoSquareFloorplan(t)
	sp := model.SequencePair{P: []int{0, 1}, N: []int{1, 0}}

	w, h := Decode(fp, sp)
	if w != 10 || h != 20 {
		t.Fatalf("got (%d,%d), want (10,20)", w, h)
	}
}

func TestDecodeEmptyFloorplan(t *testing.T) {
	fp := model.NewFloorplan(100, 100)
	w, h := Decode(fp, model.SequencePair{})
	if w != 0 || h != 0 {
		t.Fatalf("got (%d,%d), want (0,0)", w, h)
	}
}

func TestDecodeIsPureFunctionOfSeqPair(t *testing.T) {
	fp := twoSquareFloorplan(t)
	sp := model.SequencePair{P: []int{0, 1}, N: []int{0, 1}}

	Decode(fp, sp)
	first := [4]int{fp.Blocks[0].LeftX, fp.Blocks[0].RightX, fp.Blocks[1].LeftX, fp.Blocks[1].RightX}

	Decode(fp, sp)
	second := [4]int{fp.Blocks[0].LeftX, fp.Blocks[0].RightX, fp.Blocks[1].LeftX, fp.Blocks[1].RightX}

	if first != second {
		t.Fatalf("decoding the same sequence pair twice gave different coordinates: %v vs %v", first, second)
	}
}
