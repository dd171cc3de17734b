package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// simplex solves programs with gonum's dense simplex method. A simplex value
// holds no per-solve state and is safe for concurrent use.
type simplex struct {
	tol float64
}

func newSimplex(opts Options) Solver {
	return &simplex{tol: opts.Tolerance}
}

// Solve converts the equality program to standard form and runs the simplex
// method. Non-negativity is passed as -x <= 0 inequality rows so that the
// converted program always has more columns than rows, which keeps phase 1
// well posed for any variable count.
func (s *simplex) Solve(p Program) (sol Solution, err error) {
	n := len(p.C)
	if n == 0 {
		return Solution{}, fmt.Errorf("solver: program has no variables")
	}
	if len(p.A) != len(p.B) {
		return Solution{}, fmt.Errorf("solver: %d constraint rows but %d right-hand sides", len(p.A), len(p.B))
	}
	for i, row := range p.A {
		if len(row) != n {
			return Solution{}, fmt.Errorf("solver: constraint %d has %d coefficients, want %d", i, len(row), n)
		}
	}

	// gonum panics on some degenerate inputs; report that as a backend
	// failure rather than taking the process down.
	defer func() {
		if r := recover(); r != nil {
			sol = Solution{}
			err = fmt.Errorf("solver: simplex backend panicked: %v", r)
		}
	}()

	// gonum reports rank-deficient equality systems as singular rather than
	// infeasible, so reduce to an independent row set first. A dependent row
	// that disagrees with the rows it depends on makes the whole system
	// unsatisfiable.
	rows, rhs, consistent := reduceEqualities(p.A, p.B, s.tol)
	if !consistent {
		return Solution{Termination: TerminationInfeasible}, nil
	}
	if len(rows) == 0 {
		for _, coeff := range p.C {
			if coeff < 0 {
				return Solution{Termination: TerminationUnbounded}, nil
			}
		}
		return Solution{Termination: TerminationOptimal, X: make([]float64, n)}, nil
	}

	g := mat.NewDense(n, n, nil)
	h := make([]float64, n)
	for i := 0; i < n; i++ {
		g.Set(i, i, -1)
	}

	a := mat.NewDense(len(rows), n, nil)
	for i, row := range rows {
		a.SetRow(i, row)
	}

	cStd, aStd, bStd := lp.Convert(p.C, g, h, a, rhs)
	opt, xStd, simplexErr := lp.Simplex(cStd, aStd, bStd, s.tol, nil)
	switch simplexErr {
	case nil:
	case lp.ErrInfeasible:
		return Solution{Termination: TerminationInfeasible}, nil
	case lp.ErrUnbounded:
		return Solution{Termination: TerminationUnbounded}, nil
	default:
		return Solution{}, fmt.Errorf("solver: simplex failed: %w", simplexErr)
	}

	// Convert splits each original variable into positive and negative parts;
	// recombine them in the original variable order.
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = xStd[i] - xStd[n+i]
	}

	return Solution{Termination: TerminationOptimal, Objective: opt, X: x}, nil
}

// reduceEqualities selects a maximal linearly independent subset of the
// equality rows via Gaussian elimination with partial pivoting on a copy of
// the augmented system. Dependent rows whose right-hand side agrees with the
// rows they depend on carry no information and are dropped; a disagreeing
// one means no assignment can satisfy the system and consistent is false.
// Coefficients with magnitude at or below tol are treated as zero.
func reduceEqualities(a [][]float64, b []float64, tol float64) (rows [][]float64, rhs []float64, consistent bool) {
	m := len(a)
	if m == 0 {
		return nil, nil, true
	}
	n := len(a[0])

	aug := make([][]float64, m)
	order := make([]int, m)
	for i := range a {
		aug[i] = make([]float64, n+1)
		copy(aug[i], a[i])
		aug[i][n] = b[i]
		order[i] = i
	}

	rank := 0
	for col := 0; col < n && rank < m; col++ {
		pivot := -1
		best := tol
		for r := rank; r < m; r++ {
			if v := math.Abs(aug[r][col]); v > best {
				best = v
				pivot = r
			}
		}
		if pivot < 0 {
			continue
		}
		aug[rank], aug[pivot] = aug[pivot], aug[rank]
		order[rank], order[pivot] = order[pivot], order[rank]
		for r := rank + 1; r < m; r++ {
			f := aug[r][col] / aug[rank][col]
			if f == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				aug[r][c] -= f * aug[rank][c]
			}
		}
		rank++
	}

	// Rows beyond the rank eliminated to zero coefficients; any residual
	// right-hand side is unsatisfiable.
	for r := rank; r < m; r++ {
		if math.Abs(aug[r][n]) > tol {
			return nil, nil, false
		}
	}

	rows = make([][]float64, rank)
	rhs = make([]float64, rank)
	for i := 0; i < rank; i++ {
		rows[i] = a[order[i]]
		rhs[i] = b[order[i]]
	}
	return rows, rhs, true
}
