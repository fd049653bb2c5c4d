package model

import "fmt"

// SequencePair is the (P, N) permutation pair that encodes a non-slicing
// floorplan (spec §3). Both slices must be permutations of {0 .. n-1}.
type SequencePair struct {
	P []int
	N []int
}

// IdentitySequencePair returns P = N = identity, the seed used before the
// shuffle phase (spec §4.4).
func IdentitySequencePair(n int) SequencePair {
	p := make([]int, n)
	nn := make([]int, n)
	for i := 0; i < n; i++ {
		p[i] = i
		nn[i] = i
	}
	return SequencePair{P: p, N: nn}
}

// Clone returns a deep copy. The annealer uses it to record the best pair
// found and to build shuffle candidates; rejected perturbation moves are
// reverted by reapplying the swap, not from a Clone snapshot.
func (sp SequencePair) Clone() SequencePair {
	p := make([]int, len(sp.P))
	copy(p, sp.P)
	n := make([]int, len(sp.N))
	copy(n, sp.N)
	return SequencePair{P: p, N: n}
}

// CopyFrom overwrites sp's contents from other without reallocating,
// the snapshot-and-revert fallback spec §9 calls out as the simple baseline.
func (sp SequencePair) CopyFrom(other SequencePair) {
	copy(sp.P, other.P)
	copy(sp.N, other.N)
}

// Validate checks that both P and N are permutations of {0 .. n-1}. A
// violation is a programming bug (spec §8 invariant), not a recoverable
// input error, so callers that hit it should panic rather than propagate
// an error value.
func (sp SequencePair) Validate(n int) error {
	if len(sp.P) != n || len(sp.N) != n {
		return fmt.Errorf("sequence pair length mismatch: want %d, got P=%d N=%d", n, len(sp.P), len(sp.N))
	}
	if err := checkPermutation(sp.P, n); err != nil {
		return fmt.Errorf("P: %w", err)
	}
	if err := checkPermutation(sp.N, n); err != nil {
		return fmt.Errorf("N: %w", err)
	}
	return nil
}

func checkPermutation(seq []int, n int) error {
	seen := make([]bool, n)
	for _, v := range seq {
		if v < 0 || v >= n {
			return fmt.Errorf("index %d out of range [0,%d)", v, n)
		}
		if seen[v] {
			return fmt.Errorf("duplicate index %d", v)
		}
		seen[v] = true
	}
	return nil
}
