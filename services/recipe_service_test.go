package services

import (
	"reflect"
	"testing"
)

func TestBuildIngredientRowsDropsBlankNames(t *testing.T) {
	reqs := []RecipeIngredientRequest{
		{IngredientName: "Flour", Quantity: 500, Unit: "g"},
		{IngredientName: "   ", Quantity: 10, Unit: "g"},
		{IngredientName: "Butter", Quantity: 100, Unit: "g"},
	}
	rows := BuildIngredientRows(7, reqs)
	if len(rows) != 2 {
		t.Fatalf("expected 2 kept rows, got %d", len(rows))
	}
	if rows[0].IngredientName != "Flour" || rows[0].OrderIndex != 1 {
		t.Errorf("row 0 = %+v, want Flour at order 1", rows[0])
	}
	// order index numbers the kept entries, not the original positions
	if rows[1].IngredientName != "Butter" || rows[1].OrderIndex != 2 {
		t.Errorf("row 1 = %+v, want Butter at order 2", rows[1])
	}
	for i, r := range rows {
		if r.RecipeID != 7 {
			t.Errorf("row %d recipe id = %d, want 7", i, r.RecipeID)
		}
	}
}

func TestBuildInstructionRows(t *testing.T) {
	reqs := []RecipeInstructionRequest{
		{Description: "Preheat the oven."},
		{Description: ""},
		{Description: "Mix everything."},
	}
	rows := BuildInstructionRows(3, reqs)
	if len(rows) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(rows))
	}
	if rows[0].StepNumber != 1 || rows[1].StepNumber != 2 {
		t.Errorf("step numbers = %d, %d, want 1, 2", rows[0].StepNumber, rows[1].StepNumber)
	}
}

func TestValidateRecipeCollectsAllViolations(t *testing.T) {
	req := &RecipeRequest{
		Ingredients:  []RecipeIngredientRequest{{IngredientName: "  "}},
		Instructions: nil,
	}
	got := ValidateRecipe(req)
	want := []string{
		"title is required",
		"author is required",
		"at least one ingredient is required",
		"at least one instruction step is required",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("violations = %v, want %v", got, want)
	}
}

func TestValidateRecipeOK(t *testing.T) {
	req := &RecipeRequest{
		Title:        "Porridge",
		Author:       "sam",
		Ingredients:  []RecipeIngredientRequest{{IngredientName: "Oats", Quantity: 80, Unit: "g"}},
		Instructions: []RecipeInstructionRequest{{Description: "Simmer oats in milk."}},
	}
	if got := ValidateRecipe(req); len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}
