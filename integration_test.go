package blendplanner

import (
	"errors"
	"math"
	"testing"

	"github.com/openblend/blend-planner/internal/solver"
	"github.com/openblend/blend-planner/pkg/validation"
	"go.uber.org/zap"
)

// TestSolveEndToEnd exercises the full pipeline through the facade:
// validation, program construction, simplex solve, and outcome mapping.
func TestSolveEndToEnd(t *testing.T) {
	problem := Problem{
		Product: Product{Volume: 10, ABV: 0.1},
		Ingredients: []Ingredient{
			{Name: "water", ABV: 0, Cost: 0},
			{Name: "spirit", ABV: 0.4, Cost: 10},
		},
	}

	outcome, err := Solve(zap.NewNop(), problem)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if outcome.Termination != "optimal" {
		t.Fatalf("expected optimal termination, got %s", outcome.Termination)
	}
	if outcome.Cost == nil || math.Abs(*outcome.Cost-25) > 1e-6 {
		t.Fatalf("expected cost 25, got %v", outcome.Cost)
	}

	total := 0.0
	for _, v := range outcome.Volumes {
		total += v
	}
	if math.Abs(total-10) > 1e-6 {
		t.Errorf("expected volumes to sum to 10, got %v", total)
	}
}

func TestSolveEndToEndInfeasible(t *testing.T) {
	problem := Problem{
		Product: Product{Volume: 5, ABV: 0.1},
		Ingredients: []Ingredient{
			{Name: "juice", ABV: 0, Cost: 2},
		},
	}

	outcome, err := Solve(nil, problem)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if outcome.Termination != "infeasible" {
		t.Fatalf("expected infeasible termination, got %s", outcome.Termination)
	}
	if outcome.Cost != nil || outcome.Volumes != nil {
		t.Error("expected absent cost and volumes")
	}
}

func TestSolveEndToEndValidation(t *testing.T) {
	problem := Problem{
		Product: Product{Volume: 10, ABV: 0.1},
		Ingredients: []Ingredient{
			{Name: "water", ABV: 0, Cost: 0},
			{Name: "water", ABV: 0.4, Cost: 10},
		},
	}

	_, err := Solve(nil, problem)
	if err == nil {
		t.Fatal("expected duplicate names to be rejected")
	}
	if !validation.IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestSolveWithUnknownBackend(t *testing.T) {
	problem := Problem{
		Product:     Product{Volume: 10, ABV: 0.1},
		Ingredients: []Ingredient{{Name: "water", ABV: 0, Cost: 0}},
	}

	_, err := SolveWith(nil, problem, "interior-point", 0)
	if err == nil {
		t.Fatal("expected unknown backend to fail")
	}
	if !errors.Is(err, solver.ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}
