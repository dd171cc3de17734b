// Package blendplanner computes least-cost recipes for blending a target
// liquid from priced ingredients. This file is a thin convenience facade over
// the planner core for library consumers; the cmd/blend-planner binary and
// the HTTP API build on the same core.
package blendplanner

import (
	"github.com/openblend/blend-planner/internal/planner"
	"github.com/openblend/blend-planner/internal/solver"
	"go.uber.org/zap"
)

// Core types re-exported for callers.
type (
	Ingredient = planner.Ingredient
	Product    = planner.Product
	Problem    = planner.Problem
	Outcome    = planner.Outcome
)

// Solve plans a least-cost blend using the default simplex backend. A nil
// logger disables logging.
func Solve(logger *zap.Logger, problem Problem) (Outcome, error) {
	return SolveWith(logger, problem, "", 0)
}

// SolveWith plans a least-cost blend using the named LP backend and
// tolerance. Empty backend and zero tolerance select the defaults.
func SolveWith(logger *zap.Logger, problem Problem, backend string, tolerance float64) (Outcome, error) {
	lp, err := solver.New(backend, solver.Options{Tolerance: tolerance})
	if err != nil {
		return Outcome{}, err
	}
	return planner.Solve(logger, problem, lp)
}
