// Package testutil provides common fixtures for testing.
package testutil

import (
	"github.com/openblend/blend-planner/internal/planner"
)

// WaterSpirit returns the canonical two-ingredient problem: 10 units at 0.1
// abv from free water and spirit at 0.4 abv costing 10 per unit. Its unique
// optimum is 7.5 water + 2.5 spirit at total cost 25.
func WaterSpirit() planner.Problem {
	return planner.Problem{
		Product: planner.Product{Volume: 10, ABV: 0.1},
		Ingredients: []planner.Ingredient{
			{Name: "water", ABV: 0, Cost: 0},
			{Name: "spirit", ABV: 0.4, Cost: 10},
		},
	}
}

// JuiceOnly returns a problem with a single zero-abv ingredient and a target
// abv above zero, which has no feasible blend.
func JuiceOnly() planner.Problem {
	return planner.Problem{
		Product: planner.Product{Volume: 5, ABV: 0.1},
		Ingredients: []planner.Ingredient{
			{Name: "juice", ABV: 0, Cost: 2},
		},
	}
}
