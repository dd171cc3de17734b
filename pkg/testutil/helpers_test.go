package testutil

import (
	"testing"
)

func TestWaterSpirit(t *testing.T) {
	problem := WaterSpirit()
	if err := problem.Validate(); err != nil {
		t.Fatalf("fixture should validate: %v", err)
	}
	if len(problem.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(problem.Ingredients))
	}
}

func TestJuiceOnly(t *testing.T) {
	problem := JuiceOnly()
	if err := problem.Validate(); err != nil {
		t.Fatalf("fixture should validate: %v", err)
	}
}
