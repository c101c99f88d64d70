package services

import (
	"testing"

	"backend/models"
)

func TestBuildCartSnapshot(t *testing.T) {
	items := []models.CartItem{
		{FoodID: 10, Quantity: 200},
		{FoodID: 11, Quantity: 50},
	}
	items[0].ID = 1
	items[1].ID = 2

	names := map[int]string{10: "Apple, raw", 11: "Cheddar"}
	energy := map[int]float64{10: 52}

	lines := BuildCartSnapshot(items, names, energy)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	if lines[0].Name != "Apple, raw" || lines[0].Kcal == nil || *lines[0].Kcal != 52 {
		t.Errorf("line 0 = %+v, want name Apple, kcal 52", lines[0])
	}
	// missing energy row shows as nil kcal rather than dropping the line
	if lines[1].Kcal != nil {
		t.Errorf("line 1 kcal = %v, want nil", *lines[1].Kcal)
	}
	if lines[1].Quantity != 50 {
		t.Errorf("line 1 quantity = %d, want 50", lines[1].Quantity)
	}
}

func TestCartTotalKcal(t *testing.T) {
	k52 := 52.0
	k10 := 10.4
	lines := []CartLine{
		{Quantity: 2, Kcal: &k52},
		{Quantity: 3, Kcal: &k10},
		{Quantity: 100, Kcal: nil}, // no energy reading, contributes 0
	}
	// 2*52 + 3*10.4 = 135.2 → 135
	if got := CartTotalKcal(lines); got != 135 {
		t.Errorf("CartTotalKcal = %d, want 135", got)
	}
}

func TestCartTotalKcalEmpty(t *testing.T) {
	if got := CartTotalKcal(nil); got != 0 {
		t.Errorf("CartTotalKcal(nil) = %d, want 0", got)
	}
}
