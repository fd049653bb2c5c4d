// Package cost scores a decoded placement: area, the outline-penalty
// variant, half-perimeter wirelength, and their weighted combination
// (spec §4.3).
package cost

import "github.com/YTNIEN/PDA-PA3/internal/model"

// Evaluator holds the parameters a cost evaluation needs: the alpha weight
// between area and wirelength, and the fixed outline.
type Evaluator struct {
	Alpha float64
	WMax  int
	HMax  int

	// StrictAreaCost selects the mathematically clean outline-penalty
	// formula (max(width,WMax)*max(height,HMax)) instead of the
	// original's orthogonal-limit substitution (spec §9's calibration
	// toggle). Defaults to false, i.e. the original behavior.
	StrictAreaCost bool
}

// Result is the outcome of one evaluation.
type Result struct {
	Width    int
	Height   int
	Area     int
	AreaCost int
	HPWL     int
	Cost     float64
}

// Evaluate scores the floorplan's current decoded placement (spec §4.3).
// Callers must decode (via internal/packer) before calling this.
func (e *Evaluator) Evaluate(fp *model.Floorplan) Result {
	width := fp.Width()
	height := fp.Height()

	area := width * height
	areaCost := e.areaCost(width, height)
	hpwl := e.hpwl(fp)

	combined := e.Alpha*float64(areaCost) + (1-e.Alpha)*float64(hpwl)

	return Result{
		Width:    width,
		Height:   height,
		Area:     area,
		AreaCost: areaCost,
		HPWL:     hpwl,
		Cost:     combined,
	}
}

// areaCost implements the outline-penalty variant of spec §4.3: zero only
// if width and height are both strictly below their limits (a dimension
// equal to its limit does not count); otherwise a product of "effective"
// width and height where a dimension strictly below its own limit is
// replaced by the *orthogonal* limit.
//
// That cross-substitution looks like a transposition bug and is preserved
// here verbatim for parity with the published heuristic this system is
// reproducing (spec §9); e.StrictAreaCost switches to the clean
// max(width,WMax)*max(height,HMax) formulation instead.
func (e *Evaluator) areaCost(width, height int) int {
	if width < e.WMax && height < e.HMax {
		return 0
	}

	if e.StrictAreaCost {
		return maxInt(width, e.WMax) * maxInt(height, e.HMax)
	}

	effWidth := width
	if width < e.WMax {
		effWidth = e.HMax
	}
	effHeight := height
	if height < e.HMax {
		effHeight = e.WMax
	}
	return effWidth * effHeight
}

// hpwl sums the half-perimeter wirelength of every net (spec §4.3). Nets
// with fewer than two pins contribute 0.
func (e *Evaluator) hpwl(fp *model.Floorplan) int {
	total := 0
	for _, net := range fp.Nets {
		if len(net.Pins) < 2 {
			continue
		}
		minX, maxX := 0, 0
		minY, maxY := 0, 0
		for i, ref := range net.Pins {
			x, y := fp.PinXY(ref)
			if i == 0 {
				minX, maxX = x, x
				minY, maxY = y, y
				continue
			}
			minX = minInt(minX, x)
			maxX = maxInt(maxX, x)
			minY = minInt(minY, y)
			maxY = maxInt(maxY, y)
		}
		total += (maxX - minX) + (maxY - minY)
	}
	return total
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
