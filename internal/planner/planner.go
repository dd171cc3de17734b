// Package planner defines the data structures related to a blend request and
// includes functions for building and solving the least-cost blend program.
package planner

import (
	"fmt"

	"github.com/openblend/blend-planner/internal/solver"
	"github.com/openblend/blend-planner/pkg/constants"
	"github.com/openblend/blend-planner/pkg/mathutil"
	"github.com/openblend/blend-planner/pkg/validation"
	"go.uber.org/zap"
)

// Ingredient is one priced option for the blend. ABV is a fraction in [0,1]
// and Cost is the price per unit volume. Values are supplied per request and
// never mutated.
type Ingredient struct {
	Name string  `json:"name" yaml:"name"`
	ABV  float64 `json:"abv" yaml:"abv"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// Product is the desired blend: total volume and alcohol by volume.
type Product struct {
	Volume float64 `json:"volume" yaml:"volume"`
	ABV    float64 `json:"abv" yaml:"abv"`
}

// Problem pairs the desired product with the ingredient options. Ingredient
// names must be unique within one problem; they key the LP variables.
type Problem struct {
	Product     Product      `json:"desired_product" yaml:"desired_product"`
	Ingredients []Ingredient `json:"options" yaml:"options"`
}

// Validate checks the problem against the input contract: abv values in
// [0,1], non-negative costs, strictly positive target volume, unique
// ingredient names, at least one ingredient.
func (p Problem) Validate() error {
	target := validation.Target{Volume: p.Product.Volume, ABV: p.Product.ABV}
	opts := make([]validation.Option, len(p.Ingredients))
	for i, ing := range p.Ingredients {
		opts[i] = validation.Option{Name: ing.Name, ABV: ing.ABV, Cost: ing.Cost}
	}
	return validation.CheckProblem(target, opts)
}

// BuildProgram translates a validated problem into an equality-form linear
// program. Variable i is the volume of ingredient i, in input order. The
// objective is total cost, the first row fixes total volume, and the second
// is the shifted abv balance Σ vᵢ(abvᵢ − target) = 0, which holds the blend's
// weighted abv at the target while staying linear in the volumes.
func BuildProgram(p Problem) solver.Program {
	n := len(p.Ingredients)
	c := make([]float64, n)
	volumeRow := make([]float64, n)
	abvRow := make([]float64, n)
	for i, ing := range p.Ingredients {
		c[i] = ing.Cost
		volumeRow[i] = 1
		abvRow[i] = ing.ABV - p.Product.ABV
	}
	return solver.Program{
		C: c,
		A: [][]float64{volumeRow, abvRow},
		B: []float64{p.Product.Volume, 0},
	}
}

// Solve validates the problem, builds the LP, submits it to the solver, and
// maps the result into an Outcome. Validation failures and solver failures
// are errors; an infeasible blend is an ordinary Outcome.
func Solve(logger *zap.Logger, problem Problem, s solver.Solver) (Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := problem.Validate(); err != nil {
		return Outcome{}, err
	}

	program := BuildProgram(problem)
	sol, err := s.Solve(program)
	if err != nil {
		return Outcome{}, fmt.Errorf("lp solve failed: %w", err)
	}

	outcome := mapSolution(problem, sol)

	if outcome.Usable() {
		total := mathutil.Sum(sol.X)
		if !mathutil.WithinTolerance(total, problem.Product.Volume, constants.VolumeCheckTolerance) {
			logger.Warn("blend volume drifts from requested volume",
				zap.String("op", "planner.Solve"),
				zap.Float64("requested", problem.Product.Volume),
				zap.Float64("blended", total),
			)
		}
	}

	logger.Debug("blend solved",
		zap.String("op", "planner.Solve"),
		zap.Int("ingredients", len(problem.Ingredients)),
		zap.String("termination", outcome.Termination),
		zap.String("status", outcome.Status),
	)

	return outcome, nil
}
