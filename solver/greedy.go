package solver

import "math/rand"

// greedyInitializer builds one Individual by repeatedly committing the
// single highest-confidence undecided bit, fixing it to whichever value
// (0 or 1) looks most promising given the bits committed so far. It mirrors
// RandomizedGreedyInitializer.cpp: every contig starts "undecided" at a
// fuzzy value of 0.5, and gainZero[i]/gainOne[i] track the marginal
// objective contribution of resolving i to 0 or to 1 against whatever
// neighbors are already decided (still-undecided neighbors contribute at
// their 0.5 weight). The first bit is chosen uniformly at random to break
// the symmetry that would otherwise make gainZero/gainOne identical for
// every variable.
type greedyInitializer struct {
	q        *GainMatrix
	n        int
	x        []float64 // fuzzy value per variable: 0, 0.5 (undecided), or 1
	gainZero []float64
	gainOne  []float64
	selected []bool
	unset    int
}

func newGreedyInitializer(q *GainMatrix) *greedyInitializer {
	g := &greedyInitializer{
		q:        q,
		n:        q.N(),
		x:        make([]float64, q.N()),
		gainZero: make([]float64, q.N()),
		gainOne:  make([]float64, q.N()),
		selected: make([]bool, q.N()),
		unset:    q.N(),
	}
	for i := range g.x {
		g.x[i] = 0.5
	}
	g.initializeGains()
	return g
}

func (g *greedyInitializer) initializeGains() {
	for i := 0; i < g.n; i++ {
		g.gainZero[i] = -0.25 * g.q.Diag(i)
		g.gainOne[i] = 0.75 * g.q.Diag(i)
		for _, j := range g.q.Neighbors(i) {
			w := g.q.At(i, j)
			g.gainZero[i] -= w * g.x[j]
			g.gainOne[i] += w * g.x[j]
		}
	}
}

func (g *greedyInitializer) updateGains(k int, value bool) {
	sign := -1.0
	if value {
		sign = 1.0
	}
	for _, i := range g.q.Neighbors(k) {
		if i == k {
			continue
		}
		w := g.q.At(i, k)
		g.gainZero[i] -= sign * 0.5 * w
		g.gainOne[i] += sign * 0.5 * w
	}
}

func (g *greedyInitializer) commit(k int, value bool) {
	g.updateGains(k, value)
	g.selected[k] = true
	g.unset--
	if value {
		g.x[k] = 1
	} else {
		g.x[k] = 0
	}
}

// MakeSolution runs the greedy fixing procedure to completion and returns
// the resulting Individual.
func (g *greedyInitializer) MakeSolution(rng *rand.Rand) *Individual {
	if g.unset > 0 {
		k := rng.Intn(g.n)
		g.commit(k, rng.Intn(2) == 1)

		for g.unset > 0 {
			k0, k1 := -1, -1
			for i := 0; i < g.n; i++ {
				if g.selected[i] {
					continue
				}
				if k0 < 0 || g.gainZero[i] > g.gainZero[k0] {
					k0 = i
				}
				if k1 < 0 || g.gainOne[i] > g.gainOne[k1] {
					k1 = i
				}
			}

			sum := g.gainZero[k0] + g.gainOne[k1]
			p := 0.5
			if sum >= Eps {
				p = g.gainZero[k0] / sum
			}

			if rng.Float64() < p {
				g.commit(k0, false)
			} else {
				g.commit(k1, true)
			}
		}
	}

	x := make([]bool, g.n)
	for i := range x {
		x[i] = g.x[i] == 1
	}
	return newIndividual(x, g.q)
}
