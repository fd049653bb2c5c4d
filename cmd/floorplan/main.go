// Command floorplan runs fixed-outline floorplanning by simulated
// annealing over the sequence-pair representation (spec §1). Grounded on
// the teacher's cmd/preprocess/main.go: a positional-argument CLI (spec
// §6 requires four positional args, not flags), step-by-step log.Printf
// progress, wrapped errors, and a final elapsed-time line.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/YTNIEN/PDA-PA3/internal/anneal"
	"github.com/YTNIEN/PDA-PA3/internal/cost"
	"github.com/YTNIEN/PDA-PA3/internal/ioformat"
	"github.com/YTNIEN/PDA-PA3/internal/overlap"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, "Usage: floorplan <alpha> <input.block> <input.net> <output>")
		os.Exit(1)
	}

	alpha, err := strconv.ParseFloat(os.Args[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid alpha %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}
	blockPath, netPath, outputPath := os.Args[2], os.Args[3], os.Args[4]

	start := time.Now()

	log.Println("Parsing block file...")
	fp, err := ioformat.ParseBlockFile(blockPath)
	if err != nil {
		log.Fatalf("Failed to parse block file: %v", err)
	}

	log.Println("Parsing net file...")
	if err := ioformat.ParseNetFile(netPath, fp); err != nil {
		log.Fatalf("Failed to parse net file: %v", err)
	}

	log.Printf("Outline %dx%d, alpha=%.3f", fp.WMax, fp.HMax, alpha)

	evaluator := cost.Evaluator{Alpha: alpha, WMax: fp.WMax, HMax: fp.HMax}
	params := anneal.DefaultParams()

	log.Println("Running simulated annealing...")
	driver := anneal.New(fp, evaluator, params)
	driver.Verbose = true
	result := driver.Run(context.Background())

	log.Printf("Best: cost=%.3f area=%d hpwl=%d width=%d height=%d (outline %dx%d)",
		result.Cost.Cost, result.Cost.Area, result.Cost.HPWL, result.Cost.Width, result.Cost.Height, fp.WMax, fp.HMax)

	if err := overlap.CheckNoOverlap(fp.Blocks); err != nil {
		log.Printf("Warning: final placement has an overlap: %v", err)
	}

	elapsed := time.Since(start)
	report := ioformat.Report{
		Cost:           result.Cost.Cost,
		HPWL:           result.Cost.HPWL,
		Area:           result.Cost.Area,
		Width:          result.Cost.Width,
		Height:         result.Cost.Height,
		ElapsedSeconds: int(elapsed.Seconds()),
	}

	log.Printf("Writing report to %s...", outputPath)
	if err := ioformat.WriteReport(outputPath, report, fp); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	log.Printf("Done in %s.", elapsed.Round(time.Millisecond))
}
