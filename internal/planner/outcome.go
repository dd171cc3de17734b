package planner

import (
	"github.com/openblend/blend-planner/internal/solver"
)

// Solver status vocabulary reported to clients alongside the termination
// condition: ok for solved programs, warning for well-formed programs with
// no usable answer, error for a backend misreport.
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Outcome is the result of one solve request. Cost and Volumes are present
// only when the termination condition is optimal or feasible; their absence
// is the explicit signal that no usable blend exists.
type Outcome struct {
	Termination string             `json:"termination_condition"`
	Status      string             `json:"status"`
	Cost        *float64           `json:"cost,omitempty"`
	Volumes     map[string]float64 `json:"volumes,omitempty"`
}

// Usable reports whether the outcome carries a blend recipe.
func (o Outcome) Usable() bool {
	return o.Cost != nil && o.Volumes != nil
}

// mapSolution turns a raw solver solution into an Outcome. Solved programs
// get a volume entry for every ingredient, zero-valued ones included, with
// the solver's floating-point values passed through unrounded. Everything
// else gets absent cost and volumes.
func mapSolution(problem Problem, sol solver.Solution) Outcome {
	switch sol.Termination {
	case solver.TerminationOptimal, solver.TerminationFeasible:
		cost := sol.Objective
		volumes := make(map[string]float64, len(problem.Ingredients))
		for i, ing := range problem.Ingredients {
			volumes[ing.Name] = sol.X[i]
		}
		return Outcome{
			Termination: string(sol.Termination),
			Status:      StatusOK,
			Cost:        &cost,
			Volumes:     volumes,
		}
	case solver.TerminationInfeasible, solver.TerminationUnbounded:
		return Outcome{
			Termination: string(sol.Termination),
			Status:      StatusWarning,
		}
	default:
		// A termination outside the known vocabulary means the backend
		// misreported; still no usable answer, but flagged as an error.
		return Outcome{
			Termination: string(solver.TerminationOther),
			Status:      StatusError,
		}
	}
}
