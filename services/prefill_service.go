// services/prefill_service.go
package services

import (
	"strconv"

	"github.com/google/uuid"
)

// Meal slots a plan day is divided into.
const (
	SlotMorning = "morning"
	SlotLunch   = "lunch"
	SlotDinner  = "dinner"
)

var mealSlotOrder = []string{SlotMorning, SlotLunch, SlotDinner}

// MealDraftItem is one unsaved plan entry prefilled from the cart.
type MealDraftItem struct {
	ID       string `json:"id"`
	FoodID   string `json:"food_id"`
	Quantity int    `json:"quantity"`
	MealSlot string `json:"meal_slot"`
}

// IngredientDraft is one unsaved recipe ingredient prefilled from the cart.
type IngredientDraft struct {
	ID             string `json:"id"`
	FoodID         string `json:"food_id"`
	IngredientName string `json:"ingredient_name"`
	Quantity       int    `json:"quantity"`
	Unit           string `json:"unit"`
	Preparation    string `json:"preparation"`
}

// PrefillMealPlanFromCart distributes cart lines round-robin over the three
// meal slots in cart order: line i lands in slot i mod 3. No attempt is made
// to pick breakfast-appropriate foods for the morning slot. An empty or nil
// cart yields nil, meaning there is nothing to prefill.
func PrefillMealPlanFromCart(lines []CartLine) []MealDraftItem {
	if len(lines) == 0 {
		return nil
	}
	items := make([]MealDraftItem, 0, len(lines))
	for i, l := range lines {
		items = append(items, MealDraftItem{
			ID:       uuid.NewString(),
			FoodID:   strconv.Itoa(l.FoodID),
			Quantity: l.Quantity,
			MealSlot: mealSlotOrder[i%len(mealSlotOrder)],
		})
	}
	return items
}

// PrefillRecipeFromCart maps cart lines 1:1 onto ingredient drafts, unit
// fixed to grams and preparation left blank. Empty or nil cart yields nil.
func PrefillRecipeFromCart(lines []CartLine) []IngredientDraft {
	if len(lines) == 0 {
		return nil
	}
	drafts := make([]IngredientDraft, 0, len(lines))
	for _, l := range lines {
		drafts = append(drafts, IngredientDraft{
			ID:             uuid.NewString(),
			FoodID:         strconv.Itoa(l.FoodID),
			IngredientName: l.Name,
			Quantity:       l.Quantity,
			Unit:           "g",
			Preparation:    "",
		})
	}
	return drafts
}
