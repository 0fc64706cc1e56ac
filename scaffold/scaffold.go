// Package scaffold models ordered, oriented contig sequences and the
// similarity/mismatch metrics used to validate orientation results. It is
// the consumer side of the solver's orientation vector: scaffold never
// decides contig order or orientation itself (that stays out of scope per
// the optimizer's non-goals), it only represents and compares the result.
package scaffold

// Contig is one oriented element of a Scaffold.
type Contig struct {
	ID          int
	Orientation bool
}

// Scaffold is an ordered sequence of oriented contigs.
type Scaffold []Contig

// Reverse returns a new Scaffold with the order reversed and every
// orientation flipped, matching the original C++ Scaffold::Reverse.
func (s Scaffold) Reverse() Scaffold {
	out := make(Scaffold, len(s))
	n := len(s)
	for i, c := range s {
		out[n-1-i] = Contig{ID: c.ID, Orientation: !c.Orientation}
	}
	return out
}

// FromOrientation builds a Scaffold from a linear contig order (produced by
// an out-of-scope ordering stage) and the solver's per-contig orientation
// vector. It is a convenience for driving ScaffoldComparer from a GASolver
// result; it performs no ordering of its own.
func FromOrientation(order []int, t []bool) Scaffold {
	s := make(Scaffold, len(order))
	for i, id := range order {
		var orientation bool
		if id >= 0 && id < len(t) {
			orientation = t[id]
		}
		s[i] = Contig{ID: id, Orientation: orientation}
	}
	return s
}
