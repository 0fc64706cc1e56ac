// Package solver implements the contig orientation optimizer: a parallel
// genetic-algorithm / local-search solver for the Boolean quadratic problem
// f(x) = xᵀQx + c derived from a weighted contig-link graph. It decides,
// for each contig, a binary orientation flip maximizing the total weight of
// satisfied link constraints.
package solver

import (
	"errors"
	"fmt"
	"math"
)

// Eps is the numeric tolerance used everywhere the spec ties behavior to
// "Helpers::Eps" in the original: gain significance, objective-improvement
// gating, and objective-equality de-duplication.
const Eps = 1e-9

// Sentinel errors. Validation and state-transition failures are reported
// this way, never by panicking - the core is pure computation over
// already-validated data and has no recoverable per-iteration errors.
var (
	// ErrNotClean is returned by Formulate when the solver is not in StatusClean.
	ErrNotClean = errors.New("solver: Formulate requires Clean status")

	// ErrNotFormulated is returned by Solve when the solver is not in StatusFormulated.
	ErrNotFormulated = errors.New("solver: Solve requires Formulated status")

	// ErrInvalidOptions is returned when Options fail validation.
	ErrInvalidOptions = errors.New("solver: invalid options")
)

// Status is the solver's lifecycle state: Clean -> Formulated -> Success|Fail.
type Status int

const (
	StatusClean Status = iota
	StatusFormulated
	StatusSuccess
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "Clean"
	case StatusFormulated:
		return "Formulated"
	case StatusSuccess:
		return "Success"
	case StatusFail:
		return "Fail"
	default:
		return "Unknown"
	}
}

// negInf is the sentinel "no solution yet" objective value.
var negInf = math.Inf(-1)

// LinkSource is the immutable external input Formulate consumes: a contig
// count plus an iterator over the weighted, oriented links between contig
// pairs. store.DataStore implements this; the solver package never imports
// store; the dependency runs the other way.
type LinkSource interface {
	// ContigCount returns n, the number of contigs (ids in [0, n)).
	ContigCount() int
	// ForEachLink calls fn once per distinct contig pair with a recorded
	// link, in implementation-defined but stable order.
	ForEachLink(fn func(i, j int, weight float64, equalOrientation bool))
}

// Options configures a GASolver. Defaults match the original tool's
// defaults exactly; see DefaultOptions.
type Options struct {
	// SelectionSize is the target population size after selection.
	SelectionSize int
	// CrossoverRate is the fraction of SelectionSize used to size each
	// crossover batch.
	CrossoverRate float64
	// RestartGenerations is the number of iterations without incumbent
	// improvement before a restart.
	RestartGenerations int
	// LocalSearchM bounds how many consecutive sweeps local search tolerates
	// without a new best before ending the current round.
	LocalSearchM int
	// Threads is the parallel worker count for the three data-parallel
	// phases (population generation, local search, crossover).
	Threads int
	// TimeLimit is a wall-clock bound in seconds; 0 means unbounded.
	TimeLimit int
	// GARestarts bounds the number of restarts; 0 means unbounded.
	GARestarts int
	// VerboseOutput, when set, emits human-readable progress lines through
	// the solver's Logger.
	VerboseOutput bool
	// Seed is the root RNG seed; 0 derives a time-based seed (the
	// original's non-reproducible default). Any other value makes worker
	// RNG streams, and therefore runs, reproducible.
	Seed int64
	// Logger receives progress lines when VerboseOutput is set. If nil,
	// progress lines are discarded.
	Logger Logger
}

// Logger is the side channel for human-readable progress lines; its exact
// text is not part of the contract. *log.Logger satisfies this interface.
type Logger interface {
	Printf(format string, args ...any)
}

// DefaultOptions returns the original tool's default tuning.
func DefaultOptions() Options {
	return Options{
		SelectionSize:      40,
		CrossoverRate:      0.5,
		RestartGenerations: 30,
		LocalSearchM:       50,
		Threads:            1,
	}
}

// Validate checks Options for internally-consistent values, giving
// field-specific messages the way the teacher's ValidateConfig does.
func (o Options) Validate() error {
	if o.SelectionSize <= 0 {
		return fmt.Errorf("%w: SelectionSize must be positive (got %d)", ErrInvalidOptions, o.SelectionSize)
	}
	if o.CrossoverRate < 0 {
		return fmt.Errorf("%w: CrossoverRate must be non-negative (got %f)", ErrInvalidOptions, o.CrossoverRate)
	}
	if o.RestartGenerations <= 0 {
		return fmt.Errorf("%w: RestartGenerations must be positive (got %d)", ErrInvalidOptions, o.RestartGenerations)
	}
	if o.LocalSearchM <= 0 {
		return fmt.Errorf("%w: LocalSearchM must be positive (got %d)", ErrInvalidOptions, o.LocalSearchM)
	}
	if o.Threads < 0 {
		return fmt.Errorf("%w: Threads must be non-negative (got %d)", ErrInvalidOptions, o.Threads)
	}
	if o.TimeLimit < 0 {
		return fmt.Errorf("%w: TimeLimit must be non-negative (got %d)", ErrInvalidOptions, o.TimeLimit)
	}
	if o.GARestarts < 0 {
		return fmt.Errorf("%w: GARestarts must be non-negative (got %d)", ErrInvalidOptions, o.GARestarts)
	}
	return nil
}
