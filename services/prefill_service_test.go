package services

import "testing"

func cartOf(n int) []CartLine {
	lines := make([]CartLine, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, CartLine{
			ID:       uint(i + 1),
			FoodID:   10 + i,
			Name:     "food",
			Quantity: 100 * (i + 1),
		})
	}
	return lines
}

func TestPrefillMealPlanRoundRobin(t *testing.T) {
	items := PrefillMealPlanFromCart(cartOf(4))
	if len(items) != 4 {
		t.Fatalf("expected 4 draft items, got %d", len(items))
	}

	counts := map[string]int{}
	for _, it := range items {
		counts[it.MealSlot]++
	}
	if counts[SlotMorning] != 2 || counts[SlotLunch] != 1 || counts[SlotDinner] != 1 {
		t.Errorf("slot distribution = %v, want morning:2 lunch:1 dinner:1", counts)
	}

	// indices 0 and 3 land in morning, 1 in lunch, 2 in dinner
	wantSlots := []string{SlotMorning, SlotLunch, SlotDinner, SlotMorning}
	for i, it := range items {
		if it.MealSlot != wantSlots[i] {
			t.Errorf("item %d slot = %s, want %s", i, it.MealSlot, wantSlots[i])
		}
	}
}

func TestPrefillMealPlanCopiesFields(t *testing.T) {
	items := PrefillMealPlanFromCart([]CartLine{{ID: 1, FoodID: 42, Quantity: 250}})
	if items[0].FoodID != "42" {
		t.Errorf("food id = %q, want \"42\"", items[0].FoodID)
	}
	if items[0].Quantity != 250 {
		t.Errorf("quantity = %d, want 250", items[0].Quantity)
	}
	if items[0].ID == "" {
		t.Error("draft item should carry a generated id")
	}
}

func TestPrefillSlotsCoverWholeCart(t *testing.T) {
	for n := 1; n <= 10; n++ {
		items := PrefillMealPlanFromCart(cartOf(n))
		if len(items) != n {
			t.Errorf("cart of %d produced %d draft items", n, len(items))
		}
	}
}

func TestPrefillEmptyCartIsNil(t *testing.T) {
	if got := PrefillMealPlanFromCart(nil); got != nil {
		t.Errorf("nil cart should prefill to nil, got %v", got)
	}
	if got := PrefillMealPlanFromCart([]CartLine{}); got != nil {
		t.Errorf("empty cart should prefill to nil, got %v", got)
	}
	if got := PrefillRecipeFromCart(nil); got != nil {
		t.Errorf("nil cart should prefill to nil, got %v", got)
	}
	if got := PrefillRecipeFromCart([]CartLine{}); got != nil {
		t.Errorf("empty cart should prefill to nil, got %v", got)
	}
}

func TestPrefillRecipeFromCart(t *testing.T) {
	lines := []CartLine{
		{ID: 1, FoodID: 7, Name: "Oats", Quantity: 80},
		{ID: 2, FoodID: 9, Name: "Milk", Quantity: 200},
	}
	drafts := PrefillRecipeFromCart(lines)
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
	for i, d := range drafts {
		if d.Unit != "g" {
			t.Errorf("draft %d unit = %q, want \"g\"", i, d.Unit)
		}
		if d.Preparation != "" {
			t.Errorf("draft %d preparation = %q, want empty", i, d.Preparation)
		}
		if d.IngredientName != lines[i].Name {
			t.Errorf("draft %d name = %q, want %q", i, d.IngredientName, lines[i].Name)
		}
		if d.Quantity != lines[i].Quantity {
			t.Errorf("draft %d quantity = %d, want %d", i, d.Quantity, lines[i].Quantity)
		}
	}
}
