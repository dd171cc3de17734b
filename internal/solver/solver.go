// Package solver defines the linear-programming boundary: an equality-form
// program, the Solver interface, and a registry of named backends.
package solver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/openblend/blend-planner/pkg/constants"
)

// Termination classifies how the backend finished.
type Termination string

const (
	TerminationOptimal    Termination = "optimal"
	TerminationFeasible   Termination = "feasible"
	TerminationInfeasible Termination = "infeasible"
	TerminationUnbounded  Termination = "unbounded"
	TerminationOther      Termination = "other"
)

// Program is a linear program in equality form: minimize C·x subject to
// A x = B with x >= 0. Each row of A must have exactly len(C) coefficients.
// A Program is built fresh per solve and never reused.
type Program struct {
	C []float64
	A [][]float64
	B []float64
}

// Solution is what a backend reports for a completed run. X and Objective are
// only meaningful when Termination is optimal or feasible.
type Solution struct {
	Termination Termination
	Objective   float64
	X           []float64
}

// Solver solves equality-form linear programs. Infeasible and unbounded
// programs are ordinary Solutions, not errors; an error means the backend
// itself failed to run.
type Solver interface {
	Solve(p Program) (Solution, error)
}

// Options configures a backend at construction time.
type Options struct {
	// Tolerance is the feasibility/optimality tolerance. Zero or negative
	// falls back to the default.
	Tolerance float64
}

type factory func(Options) Solver

var backends = map[string]factory{
	"simplex": newSimplex,
}

// ErrUnknownBackend is returned by New for an unregistered backend name. It
// indicates a configuration problem, not an unsolvable program.
var ErrUnknownBackend = errors.New("solver: unknown backend")

// New resolves a backend by name. An empty name selects the default backend.
func New(name string, opts Options) (Solver, error) {
	if name == "" {
		name = constants.DefaultSolverBackend
	}
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, name, Backends())
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = constants.DefaultSolverTolerance
	}
	return f(opts), nil
}

// Backends lists the registered backend names in lexical order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
