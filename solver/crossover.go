package solver

import "math/rand"

// innovativeCrossover builds one offspring from two parents by repeatedly
// resolving one disagreeing bit and one agreeing bit per round, mirroring
// GASolver::InnovativeCrossover. Bits where the parents agree start as
// "agreed" in the offspring (copied from p1); bits where they disagree are
// resolved one at a time, each round preferring whichever disagreeing bit
// currently has positive gain (in random order, first hit wins) and then
// forcing a flip on whichever still-agreeing bit has the largest gain, so
// agreement bits that turn out to be most beneficial to flip get
// reconsidered too.
func innovativeCrossover(p1, p2 *Individual, q *GainMatrix, rng *rand.Rand) *Individual {
	n := p1.Len()
	offspring := p1.clone()

	eq := make([]int, 0, n)
	neq := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if p1.Bit(i) == p2.Bit(i) {
			eq = append(eq, i)
		} else {
			neq = append(neq, i)
		}
	}

	// The round count is fixed at the initial disagreement count, not at
	// however many rounds it takes to drain neq: a round with no
	// positive-gain disagreeing bit still consumes one agreeing bit,
	// mirroring the original's plain counted loop.
	rounds := len(neq)
	for r := 0; r < rounds; r++ {
		if len(neq) > 0 {
			rng.Shuffle(len(neq), func(i, j int) { neq[i], neq[j] = neq[j], neq[i] })

			p := -1
			for j, k := range neq {
				if offspring.GainOf(k) > Eps {
					p = j
					break
				}
			}
			if p >= 0 {
				offspring.Flip(neq[p], q)
				last := len(neq) - 1
				neq[p], neq[last] = neq[last], neq[p]
				neq = neq[:last]
			}
		}

		if len(eq) > 0 {
			p := 0
			for j := 1; j < len(eq); j++ {
				if offspring.GainOf(eq[p]) < offspring.GainOf(eq[j]) {
					p = j
				}
			}
			offspring.Flip(eq[p], q)
			last := len(eq) - 1
			eq[p], eq[last] = eq[last], eq[p]
			eq = eq[:last]
		}
	}

	return offspring
}
