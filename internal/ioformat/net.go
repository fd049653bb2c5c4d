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

// ParseNetFile reads the net file format of spec §6 into fp's Nets. Every
// pin name must already resolve against fp's blocks/terminals; an unknown
// name is a fatal input-format error (spec §7).
func ParseNetFile(path string, fp *model.Floorplan) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open net file: %w", err)
	}
	defer f.Close()

	if err := parseNetFile(f, fp); err != nil {
		return fmt.Errorf("parse net file %s: %w", path, err)
	}
	log.Printf("Parsed %d nets", len(fp.Nets))
	return nil
}

func parseNetFile(r io.Reader, fp *model.Floorplan) error {
	scanner := bufio.NewScanner(r)

	nNets, err := readCountHeader(scanner, "NumNets:")
	if err != nil {
		return err
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != "NetDegree:" {
			return fmt.Errorf("expected NetDegree line, got %q", line)
		}
		degree, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("invalid NetDegree %q: %w", fields[1], err)
		}

		names := make([]string, 0, degree)
		for i := 0; i < degree; i++ {
			if !scanner.Scan() {
				return fmt.Errorf("net truncated: expected %d pins, got %d", degree, i)
			}
			name := strings.TrimSpace(scanner.Text())
			names = append(names, name)
		}
		if err := fp.AddNet(names); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	if len(fp.Nets) != nNets {
		return fmt.Errorf("net count mismatch: header says %d, found %d", nNets, len(fp.Nets))
	}
	return nil
}
