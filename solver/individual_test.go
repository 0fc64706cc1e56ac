package solver

import "testing"

func triangleMatrix() *GainMatrix {
	return Formulate(linkSlice{n: 3, links: []linkRec{
		{0, 1, 1.0, true},
		{1, 2, 2.0, false},
		{0, 2, 0.5, true},
	}})
}

// TestFlipFlipIsIdentity checks that flipping the same bit twice restores
// both the assignment and the objective (within Eps).
func TestFlipFlipIsIdentity(t *testing.T) {
	q := triangleMatrix()
	x := []bool{false, true, false}
	ind := newIndividual(x, q)
	before := ind.Objective()

	ind.Flip(1, q)
	ind.Flip(1, q)

	if ind.Objective() < before-Eps || ind.Objective() > before+Eps {
		t.Fatalf("objective after flip-flip = %v, want %v", ind.Objective(), before)
	}
	for i := range x {
		if ind.Bit(i) != x[i] {
			t.Fatalf("bit %d = %v after flip-flip, want %v", i, ind.Bit(i), x[i])
		}
	}
}

// TestFlipMatchesObjectiveFromScratch checks that after an arbitrary
// sequence of flips, the incrementally maintained objective matches a
// from-scratch Objective evaluation.
func TestFlipMatchesObjectiveFromScratch(t *testing.T) {
	q := triangleMatrix()
	ind := newIndividual([]bool{false, false, false}, q)

	for _, k := range []int{0, 2, 1, 0} {
		ind.Flip(k, q)
	}

	want := q.Objective(ind.Bits())
	if diff := ind.Objective() - want; diff > Eps || diff < -Eps {
		t.Fatalf("incremental objective = %v, from-scratch = %v", ind.Objective(), want)
	}
}

// TestFlipMaintainsGainVector checks that after a flip, every cached gain
// entry matches what GainMatrix.Gain would recompute from scratch.
func TestFlipMaintainsGainVector(t *testing.T) {
	q := triangleMatrix()
	ind := newIndividual([]bool{false, true, false}, q)
	ind.Flip(0, q)

	for k := 0; k < ind.Len(); k++ {
		want := q.Gain(k, ind.Bits())
		if diff := ind.GainOf(k) - want; diff > Eps || diff < -Eps {
			t.Fatalf("GainOf(%d) = %v, want %v", k, ind.GainOf(k), want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	q := triangleMatrix()
	ind := newIndividual([]bool{false, false, false}, q)
	clone := ind.clone()

	clone.Flip(0, q)

	if ind.Bit(0) == clone.Bit(0) {
		t.Fatalf("mutating clone affected original")
	}
}

func TestEqual(t *testing.T) {
	q := triangleMatrix()
	a := newIndividual([]bool{true, false, true}, q)
	b := newIndividual([]bool{true, false, true}, q)
	c := newIndividual([]bool{true, true, true}, q)

	if !a.Equal(b) {
		t.Fatalf("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Fatalf("expected !a.Equal(c)")
	}
}
