package solver

// Individual is one candidate assignment x in the population: the bit
// vector itself plus its objective value and per-variable gain vector,
// maintained incrementally so a single flip costs O(deg(k)) instead of a
// full O(n) re-evaluation.
type Individual struct {
	x    []bool
	obj  float64
	gain []float64
}

// newIndividual builds an Individual from a complete assignment, computing
// its objective and gain vector from scratch against q.
func newIndividual(x []bool, q *GainMatrix) *Individual {
	ind := &Individual{
		x:    append([]bool(nil), x...),
		gain: make([]float64, q.N()),
	}
	ind.obj = q.Objective(x)
	for k := 0; k < q.N(); k++ {
		ind.gain[k] = q.Gain(k, ind.x)
	}
	return ind
}

// clone returns a deep copy, independent of ind for further mutation.
func (ind *Individual) clone() *Individual {
	return &Individual{
		x:    append([]bool(nil), ind.x...),
		obj:  ind.obj,
		gain: append([]float64(nil), ind.gain...),
	}
}

// Len returns the number of variables.
func (ind *Individual) Len() int {
	return len(ind.x)
}

// Bit returns the current value of variable k.
func (ind *Individual) Bit(k int) bool {
	return ind.x[k]
}

// Bits returns the assignment vector. Callers must not mutate the result.
func (ind *Individual) Bits() []bool {
	return ind.x
}

// Objective returns the current f(x) for this individual.
func (ind *Individual) Objective() float64 {
	return ind.obj
}

// GainOf returns the cached marginal gain of flipping variable k.
func (ind *Individual) GainOf(k int) float64 {
	return ind.gain[k]
}

// Flip toggles variable k and incrementally updates obj and every affected
// gain entry (k itself and its neighbors in q), mirroring the incremental
// update the original local search relies on to stay fast on sparse graphs.
func (ind *Individual) Flip(k int, q *GainMatrix) {
	ind.obj += ind.gain[k]
	ind.x[k] = !ind.x[k]
	ind.gain[k] = -ind.gain[k]

	deltaK := -1.0
	if ind.x[k] {
		deltaK = 1.0
	}

	for _, j := range q.Neighbors(k) {
		w := q.At(k, j)
		if w == 0 {
			continue
		}
		step := 2 * w * deltaK
		if ind.x[j] {
			ind.gain[j] -= step
		} else {
			ind.gain[j] += step
		}
	}
}

// Equal reports whether two individuals encode the same assignment, used by
// selection to de-duplicate the population.
func (ind *Individual) Equal(other *Individual) bool {
	if len(ind.x) != len(other.x) {
		return false
	}
	for i := range ind.x {
		if ind.x[i] != other.x[i] {
			return false
		}
	}
	return true
}
