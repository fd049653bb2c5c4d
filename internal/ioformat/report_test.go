package ioformat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YTNIEN/PDA-PA3/internal/model"
)

func TestWriteReportFormat(t *testing.T) {
	fp := model.NewFloorplan(100, 100)
	fp.AddBlock("A", 10, 20)
	fp.Blocks[0].LeftX, fp.Blocks[0].RightX = 0, 10
	fp.Blocks[0].BottomY, fp.Blocks[0].TopY = 0, 20

	rep := Report{Cost: 12.5, HPWL: 7, Area: 200, Width: 10, Height: 20, ElapsedSeconds: 3}

	dir := t.TempDir()
	path := filepath.Join(dir, "report.out")
	if err := WriteReport(path, rep, fp); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	want := []string{"12.5", "7", "200", "10 20", "3", "A 0 0 10 20"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteReportLeavesNoTempFileBehind(t *testing.T) {
	fp := model.NewFloorplan(10, 10)
	rep := Report{}

	dir := t.TempDir()
	path := filepath.Join(dir, "report.out")
	if err := WriteReport(path, rep, fp); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "report.out" {
		t.Fatalf("directory contains unexpected entries: %v", entries)
	}
}

func TestWriteReportOverwritesExisting(t *testing.T) {
	fp := model.NewFloorplan(10, 10)
	dir := t.TempDir()
	path := filepath.Join(dir, "report.out")

	if err := os.WriteFile(path, []byte("stale contents\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	rep := Report{Cost: 1, Width: 5, Height: 5}
	if err := WriteReport(path, rep, fp); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "stale") {
		t.Fatalf("report was not overwritten: %q", data)
	}
}
