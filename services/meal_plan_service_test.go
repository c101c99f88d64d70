package services

import (
	"reflect"
	"testing"
)

func TestValidateMealPlanCollectsAllViolations(t *testing.T) {
	req := &MealPlanRequest{
		Title:  "  ",
		Author: "",
		Items:  nil,
	}
	got := ValidateMealPlan(req)
	want := []string{
		"title is required",
		"author is required",
		"at least one meal item is required",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("violations = %v, want %v", got, want)
	}
}

func TestValidateMealPlanItemWithoutFood(t *testing.T) {
	req := &MealPlanRequest{
		Title:  "Cutting week",
		Author: "sam",
		Items: []MealPlanItemRequest{
			{FoodID: "10", Quantity: 100, MealSlot: SlotMorning},
			{FoodID: "  ", Quantity: 50, MealSlot: SlotLunch},
		},
	}
	got := ValidateMealPlan(req)
	want := []string{"item 2 has no food selected"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("violations = %v, want %v", got, want)
	}
}

func TestValidateMealPlanOK(t *testing.T) {
	req := &MealPlanRequest{
		Title:  "Bulk plan",
		Author: "sam",
		Items:  []MealPlanItemRequest{{FoodID: "10", Quantity: 100, MealSlot: SlotDinner}},
	}
	if got := ValidateMealPlan(req); len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}

func TestComputeTotalKcal(t *testing.T) {
	// 200g of a 150 kcal/100g food is 300 kcal
	quantities := map[int]int{10: 200}
	energy := map[int]float64{10: 150}
	if got := ComputeTotalKcal(quantities, energy); got != 300 {
		t.Errorf("ComputeTotalKcal = %d, want 300", got)
	}
}

func TestComputeTotalKcalMissingEnergy(t *testing.T) {
	quantities := map[int]int{10: 200, 11: 500}
	energy := map[int]float64{10: 150}
	// food 11 has no energy reading and contributes nothing
	if got := ComputeTotalKcal(quantities, energy); got != 300 {
		t.Errorf("ComputeTotalKcal = %d, want 300", got)
	}
}

func TestComputeTotalKcalRounds(t *testing.T) {
	quantities := map[int]int{10: 150}
	energy := map[int]float64{10: 52.1}
	// 52.1 * 150 / 100 = 78.15 → 78
	if got := ComputeTotalKcal(quantities, energy); got != 78 {
		t.Errorf("ComputeTotalKcal = %d, want 78", got)
	}
}

func TestSumQuantitiesByFood(t *testing.T) {
	items := []MealPlanItemRequest{
		{FoodID: "10", Quantity: 100},
		{FoodID: "10", Quantity: 50},
		{FoodID: "11", Quantity: 30},
		{FoodID: "not-a-number", Quantity: 999},
	}
	got := sumQuantitiesByFood(items)
	want := map[int]int{10: 150, 11: 30}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sumQuantitiesByFood = %v, want %v", got, want)
	}
}
