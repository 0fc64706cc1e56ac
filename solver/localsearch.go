package solver

import "math/rand"

// localSearch runs randomized k-opt descent on ind in place, repeatedly
// sweeping every variable (in a random order) at most once per sweep,
// flipping whichever has positive gain, and forcing a single downhill flip
// when a sweep runs out of positive-gain moves so the search can escape a
// local optimum. It tracks the best point seen along the way (xbest) and
// keeps sweeping as long as that best keeps improving often enough; once a
// full outer round fails to beat the starting point it stops.
//
// lastBest counts sweeps since the last improvement to xbest and bounds
// how long the search tolerates stagnation before giving up on the current
// round: the loop continues while lastBest < LocalSearchM. The original
// implementation's loop guard read lastBest >= LocalSearchM, which exits
// after the very first sweep regardless of M; it is treated here as a bug
// in the non-goals sense (an off-by-inversion, not an intended one-sweep
// search) and corrected to the stagnation-bound reading the parameter name
// implies.
func localSearch(ind *Individual, q *GainMatrix, localSearchM int, rng *rand.Rand) {
	n := ind.Len()
	perm := make([]int, n)
	used := make([]bool, n)

	for {
		xprev := ind.clone()
		xbest := ind.clone()
		for i := range used {
			used[i] = false
		}
		gBest, g := 0.0, 0.0
		unused := n
		lastBest := 0

		for i := range perm {
			perm[i] = i
		}

		for {
			lastBest++
			rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

			for _, k := range perm {
				if !used[k] && ind.GainOf(k) > Eps {
					g += ind.GainOf(k)
					ind.Flip(k, q)
					used[k] = true
					unused--
					if g > gBest {
						gBest = g
						xbest = ind.clone()
						lastBest = 0
					}
				}
			}

			if unused > 0 {
				p := -1
				for i := 0; i < n; i++ {
					if !used[i] && (p < 0 || ind.GainOf(p) < ind.GainOf(i)) {
						p = i
					}
				}
				g += ind.GainOf(p)
				ind.Flip(p, q)
				used[p] = true
				unused--
				if g > gBest {
					gBest = g
					xbest = ind.clone()
					lastBest = 0
				}
			}

			if !(unused > 0 && lastBest < localSearchM) {
				break
			}
		}

		if gBest > Eps {
			*ind = *xbest
		} else {
			*ind = *xprev
			return
		}
	}
}
