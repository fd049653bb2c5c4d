package anneal

import "time"

// Params holds the simulated-annealing parameters spec §4.4 requires an
// implementer to honor unless made configurable. The zero value is not
// usable; call DefaultParams.
type Params struct {
	// InitialTemp is T0.
	InitialTemp float64
	// CoolingRatio is r, applied once per outer round.
	CoolingRatio float64
	// MovesPerBlock is the multiplier used to derive the per-round
	// uphill cap N = MovesPerBlock * n.
	MovesPerBlock int
	// ShuffleAreaFactor bounds the shuffle-seed acceptance test: a
	// shuffled candidate is adopted only if its area is below
	// ShuffleAreaFactor * WMax * HMax.
	ShuffleAreaFactor float64
	// ShuffleIterCap bounds the number of shuffle-seed iterations.
	ShuffleIterCap int
	// GlobalAbortDeadline and ShuffleDeadline are durations measured
	// from Run's start time (spec §5: "wall-clock epochs").
	GlobalAbortDeadline time.Duration
	ShuffleDeadline     time.Duration
	// RejectRatioThreshold ends the outer loop once a round's
	// rejects/moves ratio exceeds this.
	RejectRatioThreshold float64
	// EnableRotation turns on the reserved rotation move (spec §4.4
	// move 3, §9); off by default since the spec's Non-goals exclude
	// macro rotation from the active annealer.
	EnableRotation bool
	// StrictAreaCost is forwarded to the cost evaluator (spec §9).
	StrictAreaCost bool
	// Seed seeds the random source when HasSeed is true. DefaultParams
	// leaves HasSeed false, so New falls back to FPLAN_SEED / time-based
	// seeding (spec §5).
	Seed int64
	HasSeed bool
}

// DefaultParams returns the parameter set spec §4.4 names as defaults.
func DefaultParams() Params {
	return Params{
		InitialTemp:          200.0,
		CoolingRatio:         0.98,
		MovesPerBlock:        50,
		ShuffleAreaFactor:    3.5,
		ShuffleIterCap:       50_000,
		GlobalAbortDeadline:  295 * time.Second,
		ShuffleDeadline:      150 * time.Second,
		RejectRatioThreshold: 0.99,
	}
}
