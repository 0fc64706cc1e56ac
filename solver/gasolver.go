package solver

import (
	"context"
	"math/rand"
	"time"

	"scaffolder/pool"
)

// GASolver drives the genetic-algorithm / local-search optimizer described
// in GASolver.cpp: a population of candidate orientation vectors is
// generated, descended to a local optimum, crossed over, selected down,
// and periodically restarted, until a termination condition fires.
type GASolver struct {
	opts Options
	q    *GainMatrix

	status Status

	population []*Individual

	bestObjective float64
	bestX         []bool

	iteration    int
	restartCount int
	lastSuccess  int

	seed    int64
	streams uint64

	startedAt time.Time
}

// NewGASolver constructs a solver with the given Options, filling any
// unset tuning fields from DefaultOptions.
func NewGASolver(opts Options) *GASolver {
	def := DefaultOptions()
	if opts.SelectionSize <= 0 {
		opts.SelectionSize = def.SelectionSize
	}
	if opts.CrossoverRate <= 0 {
		opts.CrossoverRate = def.CrossoverRate
	}
	if opts.RestartGenerations <= 0 {
		opts.RestartGenerations = def.RestartGenerations
	}
	if opts.LocalSearchM <= 0 {
		opts.LocalSearchM = def.LocalSearchM
	}
	if opts.Threads <= 0 {
		opts.Threads = 1
	}

	return &GASolver{
		opts:          opts,
		status:        StatusClean,
		bestObjective: negInf,
	}
}

// Status returns the solver's current lifecycle state.
func (s *GASolver) Status() Status {
	return s.status
}

// Objective returns the best objective found so far; -Inf until Solve
// reaches StatusSuccess.
func (s *GASolver) Objective() float64 {
	if s.status != StatusSuccess {
		return negInf
	}
	return s.bestObjective
}

// Orientation returns the best orientation vector found; nil until Solve
// reaches StatusSuccess. Callers must not mutate the result.
func (s *GASolver) Orientation() []bool {
	if s.status != StatusSuccess {
		return nil
	}
	return s.bestX
}

// Formulate builds the GainMatrix from src. The solver must be Clean;
// on success it transitions to Formulated.
func (s *GASolver) Formulate(src LinkSource) error {
	if s.status != StatusClean {
		return ErrNotClean
	}
	if err := s.opts.Validate(); err != nil {
		return err
	}
	s.q = Formulate(src)
	s.bestX = make([]bool, s.q.N())
	s.status = StatusFormulated
	return nil
}

// Solve runs the GA to completion or until ctx is cancelled, the time
// limit elapses, or the restart budget is exhausted. The solver must be
// Formulated. Cancellation is checked only at phase/iteration boundaries,
// never mid-phase. On success the solver transitions to Success; if ctx is
// cancelled before any feasible solution is recorded the solver transitions
// to Fail and the error is returned. With no links every assignment scores
// the constant term, so Solve returns right after the initial population.
func (s *GASolver) Solve(ctx context.Context) error {
	if s.status != StatusFormulated {
		return ErrNotFormulated
	}

	s.seed = rootSeed(s.opts.Seed)
	s.startedAt = time.Now()
	s.iteration = 0
	s.restartCount = 0
	s.lastSuccess = 0
	s.bestObjective = negInf

	p := pool.New(s.opts.Threads)
	defer p.Close()

	s.generatePopulation(p, 0)
	s.localSearch(p, 0)
	s.logf("generated population: %d individuals", len(s.population))
	s.selectInitialSolution()

	degenerate := true
	for i := 0; i < s.q.N(); i++ {
		if len(s.q.Neighbors(i)) > 0 {
			degenerate = false
			break
		}
	}

	for !degenerate && !s.shouldTerminate(ctx) {
		from := s.crossover(p)
		s.localSearch(p, from)
		s.selectTruncate()
		s.logf("iteration %d: objective %.4f", s.iteration+1, s.bestObjective)

		if s.iteration-s.lastSuccess >= s.opts.RestartGenerations {
			s.restartCount++
			s.lastSuccess = s.iteration
			prevSize := len(s.population)
			s.restart(p, 1)
			s.localSearch(p, 1)
			s.generatePopulation(p, prevSize)
			s.localSearch(p, prevSize)
			s.logf("restarted: attempt %d", s.restartCount)
		}
		s.iteration++
	}

	if ctx.Err() != nil && s.bestObjective == negInf {
		s.status = StatusFail
		return ctx.Err()
	}
	s.status = StatusSuccess
	return nil
}

func (s *GASolver) logf(format string, args ...any) {
	if s.opts.VerboseOutput && s.opts.Logger != nil {
		s.opts.Logger.Printf(format, args...)
	}
}

func (s *GASolver) shouldTerminate(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	if s.opts.TimeLimit > 0 && time.Since(s.startedAt) > time.Duration(s.opts.TimeLimit)*time.Second {
		return true
	}
	if s.opts.GARestarts > 0 && s.restartCount >= s.opts.GARestarts {
		return true
	}
	return false
}

func (s *GASolver) nextStream() uint64 {
	stream := s.streams
	s.streams++
	return stream
}

// generatePopulation grows the population to SelectionSize (if it isn't
// already that large) and fills every slot from `from` onward with a fresh
// greedy-initialized individual, one worker-local RNG stream per index.
func (s *GASolver) generatePopulation(p *pool.WorkerPool, from int) {
	if len(s.population) < s.opts.SelectionSize {
		grown := make([]*Individual, s.opts.SelectionSize)
		copy(grown, s.population)
		s.population = grown
	}

	base := s.nextStream()
	p.Range(from, s.opts.SelectionSize, func(i int) {
		rng := deriveRNG(s.seed, base+uint64(i))
		s.population[i] = newGreedyInitializer(s.q).MakeSolution(rng)
	})
}

// localSearch runs randomized k-opt descent on every individual from index
// `from` to the end of the population, in parallel.
func (s *GASolver) localSearch(p *pool.WorkerPool, from int) {
	base := s.nextStream()
	n := len(s.population)
	p.Range(from, n, func(i int) {
		rng := deriveRNG(s.seed, base+uint64(i))
		localSearch(s.population[i], s.q, s.opts.LocalSearchM, rng)
	})
}

// crossover appends CrossoverRate*SelectionSize new offspring produced by
// InnovativeCrossover on random parent pairs, and returns the index of the
// first new offspring (the `from` boundary localSearch should start at).
func (s *GASolver) crossover(p *pool.WorkerPool) int {
	count := int(s.opts.CrossoverRate * float64(s.opts.SelectionSize))
	from := len(s.population)
	newSize := from + count

	grown := make([]*Individual, newSize)
	copy(grown, s.population)
	s.population = grown

	base := s.nextStream()
	populationSize := from
	p.Range(0, count, func(i int) {
		rng := deriveRNG(s.seed, base+uint64(i))
		a := rng.Intn(populationSize)
		b := rng.Intn(populationSize)
		s.population[from+i] = innovativeCrossover(s.population[a], s.population[b], s.q, rng)
	})

	return from
}

// selectInitialSolution records the best individual in the initial
// population without truncating it, mirroring GASolver::selectInitialSolution.
func (s *GASolver) selectInitialSolution() {
	best := 0
	for i := 1; i < len(s.population); i++ {
		if s.population[i].Objective() > s.population[best].Objective() {
			best = i
		}
	}
	s.updateSolution(s.population[best])
}

// selectTruncate sorts the population by descending objective, removes
// consecutive duplicates (same assignment), and truncates to SelectionSize.
func (s *GASolver) selectTruncate() {
	sortIndividualsDesc(s.population)

	j := 1
	for i := 1; i < len(s.population); i++ {
		if !s.population[i].Equal(s.population[j-1]) {
			s.population[j] = s.population[i]
			j++
		}
	}
	if j > s.opts.SelectionSize {
		j = s.opts.SelectionSize
	}
	s.population = s.population[:j]
	s.updateSolution(s.population[0])
}

// restart mutates every individual from index `from` onward by flipping a
// random third of their bits, the GA's immigrant-style diversity injection.
func (s *GASolver) restart(p *pool.WorkerPool, from int) {
	base := s.nextStream()
	n := len(s.population)
	p.Range(from, n, func(i int) {
		rng := deriveRNG(s.seed, base+uint64(i))
		mutate(s.population[i], s.q, rng)
	})
}

// updateSolution records ind as the new incumbent if it strictly improves
// on bestObjective by more than Eps.
func (s *GASolver) updateSolution(ind *Individual) {
	if ind.Objective() > s.bestObjective+Eps {
		s.bestObjective = ind.Objective()
		copy(s.bestX, ind.Bits())
		s.lastSuccess = s.iteration
		s.logf("best found: %.4f", s.bestObjective)
	}
}

// mutate flips a random third of ind's bits, mirroring GASolver::Mutate.
func mutate(ind *Individual, q *GainMatrix, rng *rand.Rand) {
	n := ind.Len()
	vars := n / 3
	perm := rng.Perm(n)
	for i := 0; i < vars; i++ {
		ind.Flip(perm[i], q)
	}
}

// sortIndividualsDesc sorts individuals by descending objective in place.
func sortIndividualsDesc(pop []*Individual) {
	// insertion sort is adequate here: SelectionSize is small (tens, not
	// thousands) and the population is already near-sorted between
	// generations.
	for i := 1; i < len(pop); i++ {
		for j := i; j > 0 && pop[j].Objective() > pop[j-1].Objective(); j-- {
			pop[j], pop[j-1] = pop[j-1], pop[j]
		}
	}
}
