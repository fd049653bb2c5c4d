package ioformat

import (
	"bufio"
	"fmt"
	"os"

	"github.com/YTNIEN/PDA-PA3/internal/model"
)

// Report holds the leading fields written before the per-block coordinate
// lines: cost, HPWL, area, width and height (on one line), and elapsed
// seconds.
type Report struct {
	Cost           float64
	HPWL           int
	Area           int
	Width          int
	Height         int
	ElapsedSeconds int
}

// WriteReport emits the final report in the format spec §6 defines: the
// leading fields, then one "<name> <left_x> <bottom_y> <right_x> <top_y>"
// line per block in declaration order. Writes to a temp file and renames
// into place, the same crash-safe pattern the teacher uses for its binary
// graph output (pkg/graph/binary.go's WriteBinary).
func WriteReport(path string, rep Report, fp *model.Floorplan) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(tmpPath)
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%g\n", rep.Cost)
	fmt.Fprintf(w, "%d\n", rep.HPWL)
	fmt.Fprintf(w, "%d\n", rep.Area)
	fmt.Fprintf(w, "%d %d\n", rep.Width, rep.Height)
	fmt.Fprintf(w, "%d\n", rep.ElapsedSeconds)
	for i := range fp.Blocks {
		b := &fp.Blocks[i]
		fmt.Fprintf(w, "%s %d %d %d %d\n", b.Name, b.LeftX, b.BottomY, b.RightX, b.TopY)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename report into place: %w", err)
	}
	return nil
}
