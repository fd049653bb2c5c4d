// Package anneal implements the simulated-annealing driver (spec §4.4):
// shuffle-seeding, perturbation moves with Metropolis acceptance, cooling,
// best-so-far tracking, and a time budget. Structured the way the teacher
// structures its main contraction loop in pkg/ch/contractor.go — one
// driver type owning all mutable search state, a Run method doing the
// outer loop, small private helpers per concern, and log.Printf progress
// lines at round boundaries.
package anneal

import (
	"context"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/YTNIEN/PDA-PA3/internal/cost"
	"github.com/YTNIEN/PDA-PA3/internal/model"
	"github.com/YTNIEN/PDA-PA3/internal/packer"
)

// Result is the outcome of a completed Run: the best sequence pair found
// and its evaluated cost, with the floorplan's blocks already holding its
// coordinates (Run re-decodes the best pair before returning).
type Result struct {
	SeqPair model.SequencePair
	Cost    cost.Result
	Elapsed time.Duration
	Rounds  int
}

// Driver owns the mutable search state for one annealing run.
type Driver struct {
	fp     *model.Floorplan
	eval   cost.Evaluator
	params Params
	rng    *rand.Rand

	Verbose bool
}

// New creates a Driver for fp using eval's cost parameters and params'
// schedule. The random source is seeded from params.Seed if HasSeed is
// set, else from the FPLAN_SEED environment variable, else from wall
// clock time — the single centralized, seedable source spec §5/§9 calls
// for, never process-global rand state.
func New(fp *model.Floorplan, eval cost.Evaluator, params Params) *Driver {
	eval.StrictAreaCost = params.StrictAreaCost
	return &Driver{
		fp:     fp,
		eval:   eval,
		params: params,
		rng:    rand.New(rand.NewSource(resolveSeed(params))),
	}
}

func resolveSeed(params Params) int64 {
	if params.HasSeed {
		return params.Seed
	}
	if raw := os.Getenv("FPLAN_SEED"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return v
		}
	}
	return time.Now().UnixNano()
}

// Run executes the shuffle-seed phase followed by the cooling loop, then
// restores and re-decodes the best sequence pair found (spec §4.4,
// "Finalization"). ctx is checked at outer-loop boundaries alongside the
// absolute wall-clock deadlines computed from start.
func (d *Driver) Run(ctx context.Context) Result {
	start := time.Now()
	n := len(d.fp.Blocks)

	if n == 0 {
		return Result{SeqPair: model.SequencePair{}, Cost: d.eval.Evaluate(d.fp), Elapsed: time.Since(start)}
	}

	state := newSearchState(model.IdentitySequencePair(n))
	bestSP, bestResult := d.shuffleSeed(ctx, state, start)

	state = newSearchState(bestSP.Clone())
	packer.Decode(d.fp, state.sp)
	currentResult := d.eval.Evaluate(d.fp)
	if currentResult.Cost < bestResult.Cost {
		bestResult = currentResult
		bestSP = state.sp.Clone()
	}

	globalDeadline := start.Add(d.params.GlobalAbortDeadline)
	temperature := d.params.InitialTemp
	uphillLimit := d.params.MovesPerBlock * n
	moveCap := 2 * uphillLimit

	rounds := 0
	for {
		rounds++
		uphill, moves, rejects := 0, 0, 0

		for uphill <= uphillLimit && moves <= moveCap {
			if ctx.Err() != nil || time.Now().After(globalDeadline) {
				break
			}

			m := drawMove(d.rng, n, d.params.EnableRotation, d.fp.Blocks)
			state.apply(m, d.fp.Blocks)

			w, h := packer.Decode(d.fp, state.sp)
			newResult := d.eval.Evaluate(d.fp)
			delta := newResult.Cost - currentResult.Cost
			feasible := w <= d.fp.WMax && h < d.fp.HMax

			accept := delta < 0
			if !accept {
				u := d.rng.Float64()
				accept = u < math.Exp(-delta/temperature)
			}
			if feasible {
				accept = true
			}

			moves++
			if accept {
				if delta > 0 {
					uphill++
				}
				currentResult = newResult
				if feasible || newResult.Cost < bestResult.Cost {
					bestResult = newResult
					bestSP = state.sp.Clone()
				}
			} else {
				rejects++
				state.apply(m, d.fp.Blocks) // swap is self-inverse: redo == undo
			}
		}

		rejectRatio := 0.0
		if moves > 0 {
			rejectRatio = float64(rejects) / float64(moves)
		}
		temperature *= d.params.CoolingRatio

		if d.Verbose {
			log.Printf("anneal: round %d done, T=%.3f, moves=%d uphill=%d rejects=%d (%.1f%% reject), best cost=%.2f",
				rounds, temperature, moves, uphill, rejects, rejectRatio*100, bestResult.Cost)
		}

		if rejectRatio > d.params.RejectRatioThreshold || time.Now().After(globalDeadline) || ctx.Err() != nil {
			break
		}
	}

	packer.Decode(d.fp, bestSP)
	finalResult := d.eval.Evaluate(d.fp)

	return Result{
		SeqPair: bestSP,
		Cost:    finalResult,
		Elapsed: time.Since(start),
		Rounds:  rounds,
	}
}

// shuffleSeed repeatedly independently shuffles both P and N, keeping the
// result only if it both beats the outline-area bound and strictly
// improves on the best area seen so far (spec §4.4, "Seeding phase").
func (d *Driver) shuffleSeed(ctx context.Context, state *searchState, start time.Time) (model.SequencePair, cost.Result) {
	n := len(state.sp.P)
	deadline := start.Add(d.params.ShuffleDeadline)
	areaBound := d.params.ShuffleAreaFactor * float64(d.fp.WMax) * float64(d.fp.HMax)

	packer.Decode(d.fp, state.sp)
	bestArea := d.fp.Width() * d.fp.Height()
	bestSP := state.sp.Clone()

	for iter := 0; iter < d.params.ShuffleIterCap; iter++ {
		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}

		candidate := state.sp.Clone()
		shufflePermutation(d.rng, candidate.P)
		shufflePermutation(d.rng, candidate.N)

		packer.Decode(d.fp, candidate)
		area := d.fp.Width() * d.fp.Height()

		if float64(area) < areaBound && area < bestArea {
			bestArea = area
			bestSP = candidate.Clone()
			state = newSearchState(candidate)
		} else {
			packer.Decode(d.fp, bestSP)
		}
	}

	packer.Decode(d.fp, bestSP)
	return bestSP, d.eval.Evaluate(d.fp)
}

// shufflePermutation does an in-place Fisher-Yates shuffle.
func shufflePermutation(rng *rand.Rand, seq []int) {
	for i := len(seq) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
}
