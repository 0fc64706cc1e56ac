package scaffold

import "math"

// Compare returns the minimum mismatch distance between a and b, trying b
// both as given and reversed (a scaffold and its reverse are the same
// physical sequence).
func Compare(a, b Scaffold) int {
	forward := compareOriented(a, b)
	reversed := compareOriented(a, b.Reverse())

	return min(forward, reversed)
}

// CompareSets sums, for every scaffold in a, the minimum Compare distance to
// any scaffold in b.
func CompareSets(a, b []Scaffold) int {
	mismatch := 0
	for _, ai := range a {
		best := math.MaxInt
		for _, bj := range b {
			if d := Compare(ai, bj); d < best {
				best = d
			}
		}
		mismatch += best
	}
	return mismatch
}

// compareOriented counts the adjacent pairs of a that b does not preserve:
// a pair with a contig missing from b, a pair in the opposite order in b, or
// a pair whose relative orientation differs in b.
func compareOriented(a, b Scaffold) int {
	pos := make(map[int]int, len(b))
	for i, c := range b {
		pos[c.ID] = i
	}

	mismatch := 0
	for i := 1; i < len(a); i++ {
		p, q := a[i-1], a[i]

		pi, pok := pos[p.ID]
		qi, qok := pos[q.ID]
		if !pok || !qok {
			mismatch++
			continue
		}
		if pi > qi {
			mismatch++
			continue
		}
		if (b[pi].Orientation != b[qi].Orientation) != (p.Orientation != q.Orientation) {
			mismatch++
		}
	}

	return mismatch
}

// OrientationDistance counts per-contig orientation mismatches between a and
// b, taking the better of treating a as forward or reversed relative to b.
// Contigs in a absent from b count toward both forward and reverse.
func OrientationDistance(a, b Scaffold) int {
	orient := make(map[int]bool, len(b))
	for _, c := range b {
		orient[c.ID] = c.Orientation
	}

	forward, reverse := 0, 0
	for i := 0; i < len(a); i++ {
		t, ok := orient[a[i].ID]
		switch {
		case !ok:
			forward++
			reverse++
		case a[i].Orientation == t:
			reverse++
		default:
			forward++
		}
	}

	return min(forward, reverse)
}

// OrientationDistanceSets sums, for every scaffold in a, the minimum
// OrientationDistance to any scaffold in b.
func OrientationDistanceSets(a, b []Scaffold) int {
	mismatch := 0
	for _, ai := range a {
		best := math.MaxInt
		for _, bj := range b {
			if d := OrientationDistance(ai, bj); d < best {
				best = d
			}
		}
		mismatch += best
	}
	return mismatch
}
