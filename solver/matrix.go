package solver

// GainMatrix is the sparse symmetric quadratic form Q (plus diagonal and
// constant) backing f(x) = xᵀQx + diag·x + c, where x is the per-contig
// orientation-flip vector. Each contig link contributes to three places at
// once, mirroring GASolver::formulateMatrix in the original:
//
//   - equal-orientation link (i,j,w): diag[i] -= w, diag[j] -= w,
//     Q[i][j] += w, c += w
//   - opposite-orientation link (i,j,w): diag[i] += w, diag[j] += w,
//     Q[i][j] -= w
//
// Expanding f(x) for a single link shows why: an equal-orientation link is
// satisfied (contributes +w) when both endpoints flip together (both 0 or
// both 1) and broken (contributes 0) when exactly one flips; an
// opposite-orientation link is the mirror image. f(x) is therefore always
// the total weight of links whose orientation constraint is satisfied by x.
//
// GainMatrix is built once by Formulate and never mutated afterward, so
// concurrent readers (the GA's parallel phases) need no locking.
type GainMatrix struct {
	n int
	// diag[i] is the per-variable linear coefficient.
	diag []float64
	// row[i][j] = Q[i][j] (j != i), symmetric: row[i][j] == row[j][i].
	row []map[int]float64
	// pos[i] lists the neighbors of i in stable order, so incremental gain
	// recomputation after a flip of i touches only deg(i) entries.
	pos [][]int
	// c is the orientation-independent constant term of the objective.
	c float64
}

// N returns the number of variables (contigs).
func (q *GainMatrix) N() int {
	return q.n
}

// Const returns c, the constant term of the objective.
func (q *GainMatrix) Const() float64 {
	return q.c
}

// Diag returns the diagonal linear coefficient for variable i.
func (q *GainMatrix) Diag(i int) float64 {
	return q.diag[i]
}

// At returns Q[i][j] (0 if i==j or no link was recorded between them).
func (q *GainMatrix) At(i, j int) float64 {
	if i == j {
		return 0
	}
	return q.row[i][j]
}

// Neighbors returns the stable-order adjacency list for i, i.e. Pos[i] from
// the spec: every j with a nonzero Q[i][j].
func (q *GainMatrix) Neighbors(i int) []int {
	return q.pos[i]
}

// Formulate builds a GainMatrix from a LinkSource. Each distinct contig
// pair contributes one signed weight; self-links are rejected upstream by
// store.DataStore and are never seen here.
func Formulate(src LinkSource) *GainMatrix {
	n := src.ContigCount()
	q := &GainMatrix{
		n:    n,
		diag: make([]float64, n),
		row:  make([]map[int]float64, n),
		pos:  make([][]int, n),
	}
	for i := range q.row {
		q.row[i] = make(map[int]float64)
	}

	src.ForEachLink(func(i, j int, weight float64, equalOrientation bool) {
		sign := -1.0
		if !equalOrientation {
			sign = 1.0
		}
		q.diag[i] += sign * weight
		q.diag[j] += sign * weight
		q.addEntry(i, j, -sign*weight)
		q.addEntry(j, i, -sign*weight)
		if equalOrientation {
			q.c += weight
		}
	})

	return q
}

func (q *GainMatrix) addEntry(i, j int, weight float64) {
	if _, exists := q.row[i][j]; !exists {
		q.pos[i] = append(q.pos[i], j)
	}
	q.row[i][j] += weight
}

// Objective evaluates f(x) = c + diag·x + xᵀQx from scratch. Used to
// validate the incrementally-maintained Individual.obj and by tests; not on
// the hot path.
func (q *GainMatrix) Objective(x []bool) float64 {
	total := q.c
	for i := 0; i < q.n; i++ {
		if !x[i] {
			continue
		}
		total += q.diag[i]
		for _, j := range q.pos[i] {
			if !x[j] {
				continue
			}
			total += q.row[i][j]
		}
	}
	return total
}

// Gain returns the change in objective from flipping bit k alone, given the
// current assignment x: Gain(k) = (x[k] ? -1 : 1) * (diag[k] + 2*S_k), where
// S_k = sum_{j in Pos[k], x[j]} Q[k][j]. The factor of 2 on S_k reflects
// that Q[i][j] and Q[j][i] both contribute to xᵀQx.
func (q *GainMatrix) Gain(k int, x []bool) float64 {
	sum := 0.0
	for _, j := range q.pos[k] {
		if x[j] {
			sum += q.row[k][j]
		}
	}
	delta := q.diag[k] + 2*sum
	if x[k] {
		return -delta
	}
	return delta
}
