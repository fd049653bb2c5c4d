// Package ioformat parses the block and net input files (spec §6) and
// writes the final report, in the teacher's line-scanning, wrapped-error
// style (pkg/osm/parser.go), adapted from a binary PBF scan to a plain
// text line scan since the floorplan input format is small and line
// oriented.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/YTNIEN/PDA-PA3/internal/model"
)

// ParseBlockFile reads the block file format of spec §6: an Outline
// header, NumBlocks/NumTerminals counts, then one block or terminal per
// line. Header and count mismatches are fatal input-format errors (spec
// §7), returned rather than panicked since they originate from untrusted
// input.
func ParseBlockFile(path string) (*model.Floorplan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open block file: %w", err)
	}
	defer f.Close()

	fp, err := parseBlockFile(f)
	if err != nil {
		return nil, fmt.Errorf("parse block file %s: %w", path, err)
	}
	log.Printf("Parsed %d blocks, %d terminals (outline %dx%d)", len(fp.Blocks), len(fp.Terminals), fp.WMax, fp.HMax)
	return fp, nil
}

func parseBlockFile(r io.Reader) (*model.Floorplan, error) {
	scanner := bufio.NewScanner(r)

	wMax, hMax, err := readOutlineHeader(scanner)
	if err != nil {
		return nil, err
	}
	nBlocks, err := readCountHeader(scanner, "NumBlocks:")
	if err != nil {
		return nil, err
	}
	nTerminals, err := readCountHeader(scanner, "NumTerminals:")
	if err != nil {
		return nil, err
	}

	fp := model.NewFloorplan(wMax, hMax)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 4 && fields[1] == "terminal" {
			x, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("terminal %s: invalid x %q: %w", fields[0], fields[2], err)
			}
			y, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("terminal %s: invalid y %q: %w", fields[0], fields[3], err)
			}
			if _, err := fp.AddTerminal(fields[0], x, y); err != nil {
				return nil, err
			}
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed block/terminal line: %q", line)
		}
		width, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("block %s: invalid width %q: %w", fields[0], fields[1], err)
		}
		height, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("block %s: invalid height %q: %w", fields[0], fields[2], err)
		}
		if _, err := fp.AddBlock(fields[0], width, height); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	if len(fp.Blocks) != nBlocks {
		return nil, fmt.Errorf("block count mismatch: header says %d, found %d", nBlocks, len(fp.Blocks))
	}
	if len(fp.Terminals) != nTerminals {
		return nil, fmt.Errorf("terminal count mismatch: header says %d, found %d", nTerminals, len(fp.Terminals))
	}

	return fp, nil
}

// readOutlineHeader parses "Outline: <W_max> <H_max>".
func readOutlineHeader(scanner *bufio.Scanner) (wMax, hMax int, err error) {
	if !scanner.Scan() {
		return 0, 0, fmt.Errorf("missing Outline header")
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 3 || fields[0] != "Outline:" {
		return 0, 0, fmt.Errorf("malformed Outline header: %q", scanner.Text())
	}
	wMax, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid W_max %q: %w", fields[1], err)
	}
	hMax, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid H_max %q: %w", fields[2], err)
	}
	return wMax, hMax, nil
}

// readCountHeader parses a "<keyword> <n>" header line.
func readCountHeader(scanner *bufio.Scanner, keyword string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("missing %s header", keyword)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 || fields[0] != keyword {
		return 0, fmt.Errorf("malformed %s header: %q", keyword, scanner.Text())
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", keyword, fields[1], err)
	}
	return n, nil
}
