// services/meal_plan_service.go
package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"backend/config"
	"backend/models"
)

type MealPlanItemRequest struct {
	FoodID   string `json:"food_id"`
	Quantity int    `json:"quantity"`
	MealSlot string `json:"meal_slot"`
}

type MealPlanRequest struct {
	Title       string                `json:"title"`
	Author      string                `json:"author"`
	Description string                `json:"description"`
	Items       []MealPlanItemRequest `json:"items"`
}

// ValidateMealPlan collects every violated rule, in rule order, so the
// caller can show them all at once. An empty result means the plan is
// saveable; nothing is written before validation passes.
func ValidateMealPlan(req *MealPlanRequest) []string {
	var violations []string
	if strings.TrimSpace(req.Title) == "" {
		violations = append(violations, "title is required")
	}
	if strings.TrimSpace(req.Author) == "" {
		violations = append(violations, "author is required")
	}
	if len(req.Items) == 0 {
		violations = append(violations, "at least one meal item is required")
	}
	for i, it := range req.Items {
		if strings.TrimSpace(it.FoodID) == "" {
			violations = append(violations, fmt.Sprintf("item %d has no food selected", i+1))
		}
	}
	return violations
}

// ComputeTotalKcal derives a plan's total from per-food summed quantities and
// per-100g energy values: round(Σ kcal[food] * qty[food] / 100). Foods with
// no energy reading contribute nothing.
func ComputeTotalKcal(quantities map[int]int, energy map[int]float64) int {
	var total float64
	for foodID, qty := range quantities {
		if kcal, ok := energy[foodID]; ok {
			total += kcal * float64(qty) / 100
		}
	}
	return int(math.Round(total))
}

// sumQuantitiesByFood folds request items into per-food gram totals,
// skipping items whose food id does not parse.
func sumQuantitiesByFood(items []MealPlanItemRequest) map[int]int {
	quantities := make(map[int]int, len(items))
	for _, it := range items {
		foodID, err := strconv.Atoi(strings.TrimSpace(it.FoodID))
		if err != nil {
			continue
		}
		quantities[foodID] += it.Quantity
	}
	return quantities
}

func mealPlanTotalKcal(items []MealPlanItemRequest) (int, error) {
	quantities := sumQuantitiesByFood(items)
	ids := make([]int, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	energy, err := FetchEnergyPer100g(ids)
	if err != nil {
		return 0, err
	}
	return ComputeTotalKcal(quantities, energy), nil
}

// CreateMealPlan writes the parent row, then its items tagged with the new
// plan id. The two phases are not wrapped in a transaction; an item insert
// failure leaves the parent in place.
func CreateMealPlan(userID uint, req *MealPlanRequest) (*models.MealPlan, error) {
	totalKcal, err := mealPlanTotalKcal(req.Items)
	if err != nil {
		return nil, err
	}

	plan := &models.MealPlan{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		Description: req.Description,
		TotalKcal:   totalKcal,
	}
	if err := config.DB.Create(plan).Error; err != nil {
		return nil, err
	}

	if err := insertMealPlanItems(plan.ID, req.Items); err != nil {
		return nil, err
	}

	var populated models.MealPlan
	if err := config.DB.Preload("Items").
		First(&populated, plan.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func insertMealPlanItems(planID uint, items []MealPlanItemRequest) error {
	for _, it := range items {
		foodID, err := strconv.Atoi(strings.TrimSpace(it.FoodID))
		if err != nil {
			continue
		}
		row := &models.MealPlanItem{
			MealPlanID: planID,
			FoodID:     foodID,
			Quantity:   it.Quantity,
			MealSlot:   it.MealSlot,
		}
		if err := config.DB.Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}

func ListMealPlans(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := config.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func GetMealPlan(userID, planID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := config.DB.
		Preload("Items").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateMealPlan replaces the plan wholesale: parent fields are saved, old
// items deleted, new ones re-inserted. Simpler than diffing, with the same
// mid-sequence failure caveat as creation.
func UpdateMealPlan(userID, planID uint, req *MealPlanRequest) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := config.DB.
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error; err != nil {
		return nil, err
	}

	totalKcal, err := mealPlanTotalKcal(req.Items)
	if err != nil {
		return nil, err
	}

	plan.Title = strings.TrimSpace(req.Title)
	plan.Author = strings.TrimSpace(req.Author)
	plan.Description = req.Description
	plan.TotalKcal = totalKcal
	if err := config.DB.Save(&plan).Error; err != nil {
		return nil, err
	}

	if err := config.DB.
		Where("meal_plan_id = ?", plan.ID).
		Delete(&models.MealPlanItem{}).Error; err != nil {
		return nil, err
	}
	if err := insertMealPlanItems(plan.ID, req.Items); err != nil {
		return nil, err
	}

	var updated models.MealPlan
	if err := config.DB.Preload("Items").
		First(&updated, plan.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteMealPlan(userID, planID uint) error {
	var plan models.MealPlan
	if err := config.DB.
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error; err != nil {
		return err
	}
	if err := config.DB.
		Where("meal_plan_id = ?", plan.ID).
		Delete(&models.MealPlanItem{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&plan).Error
}
