// services/recipe_service.go
package services

import (
	"strconv"
	"strings"

	"backend/config"
	"backend/models"
)

type RecipeIngredientRequest struct {
	FoodID         string `json:"food_id"`
	IngredientName string `json:"ingredient_name"`
	Quantity       int    `json:"quantity"`
	Unit           string `json:"unit"`
	Preparation    string `json:"preparation"`
}

type RecipeInstructionRequest struct {
	Description string `json:"description"`
}

type RecipeRequest struct {
	Title        string                     `json:"title"`
	Author       string                     `json:"author"`
	Description  string                     `json:"description"`
	Ingredients  []RecipeIngredientRequest  `json:"ingredients"`
	Instructions []RecipeInstructionRequest `json:"instructions"`
}

// ValidateRecipe mirrors ValidateMealPlan: all violated rules at once, in
// rule order, before anything touches the database.
func ValidateRecipe(req *RecipeRequest) []string {
	var violations []string
	if strings.TrimSpace(req.Title) == "" {
		violations = append(violations, "title is required")
	}
	if strings.TrimSpace(req.Author) == "" {
		violations = append(violations, "author is required")
	}
	if len(BuildIngredientRows(0, req.Ingredients)) == 0 {
		violations = append(violations, "at least one ingredient is required")
	}
	if len(BuildInstructionRows(0, req.Instructions)) == 0 {
		violations = append(violations, "at least one instruction step is required")
	}
	return violations
}

// BuildIngredientRows shapes the ingredient payload: entries with a blank
// name are dropped, and order_index numbers the kept entries from 1.
func BuildIngredientRows(recipeID uint, reqs []RecipeIngredientRequest) []models.RecipeIngredient {
	rows := make([]models.RecipeIngredient, 0, len(reqs))
	for _, r := range reqs {
		name := strings.TrimSpace(r.IngredientName)
		if name == "" {
			continue
		}
		foodID, _ := strconv.Atoi(strings.TrimSpace(r.FoodID))
		rows = append(rows, models.RecipeIngredient{
			RecipeID:       recipeID,
			FoodID:         foodID,
			IngredientName: name,
			Quantity:       r.Quantity,
			Unit:           r.Unit,
			Preparation:    r.Preparation,
			OrderIndex:     len(rows) + 1,
		})
	}
	return rows
}

// BuildInstructionRows drops blank steps and numbers the kept ones from 1.
func BuildInstructionRows(recipeID uint, reqs []RecipeInstructionRequest) []models.RecipeInstruction {
	rows := make([]models.RecipeInstruction, 0, len(reqs))
	for _, r := range reqs {
		desc := strings.TrimSpace(r.Description)
		if desc == "" {
			continue
		}
		rows = append(rows, models.RecipeInstruction{
			RecipeID:    recipeID,
			StepNumber:  len(rows) + 1,
			Description: desc,
		})
	}
	return rows
}

func recipeTotalKcal(ingredients []RecipeIngredientRequest) (int, error) {
	quantities := make(map[int]int, len(ingredients))
	for _, ing := range ingredients {
		foodID, err := strconv.Atoi(strings.TrimSpace(ing.FoodID))
		if err != nil {
			continue
		}
		quantities[foodID] += ing.Quantity
	}
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

// CreateRecipe follows the same two-phase, non-transactional write as meal
// plans: parent first, then ingredients and instructions.
func CreateRecipe(userID uint, req *RecipeRequest) (*models.Recipe, error) {
	totalKcal, err := recipeTotalKcal(req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		Description: req.Description,
		TotalKcal:   totalKcal,
	}
	if err := config.DB.Create(recipe).Error; err != nil {
		return nil, err
	}

	if err := insertRecipeRows(recipe.ID, req); err != nil {
		return nil, err
	}

	var populated models.Recipe
	if err := config.DB.
		Preload("Ingredients").
		Preload("Instructions").
		First(&populated, recipe.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func insertRecipeRows(recipeID uint, req *RecipeRequest) error {
	for _, row := range BuildIngredientRows(recipeID, req.Ingredients) {
		ing := row
		if err := config.DB.Create(&ing).Error; err != nil {
			return err
		}
	}
	for _, row := range BuildInstructionRows(recipeID, req.Instructions) {
		ins := row
		if err := config.DB.Create(&ins).Error; err != nil {
			return err
		}
	}
	return nil
}

func ListRecipes(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := config.DB.
		Preload("Ingredients").
		Preload("Instructions").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

func GetRecipe(userID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.
		Preload("Ingredients").
		Preload("Instructions").
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe is a full replace of the dependent rows, like meal plans.
func UpdateRecipe(userID, recipeID uint, req *RecipeRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := config.DB.
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error; err != nil {
		return nil, err
	}

	totalKcal, err := recipeTotalKcal(req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe.Title = strings.TrimSpace(req.Title)
	recipe.Author = strings.TrimSpace(req.Author)
	recipe.Description = req.Description
	recipe.TotalKcal = totalKcal
	if err := config.DB.Save(&recipe).Error; err != nil {
		return nil, err
	}

	if err := config.DB.
		Where("recipe_id = ?", recipe.ID).
		Delete(&models.RecipeIngredient{}).Error; err != nil {
		return nil, err
	}
	if err := config.DB.
		Where("recipe_id = ?", recipe.ID).
		Delete(&models.RecipeInstruction{}).Error; err != nil {
		return nil, err
	}
	if err := insertRecipeRows(recipe.ID, req); err != nil {
		return nil, err
	}

	var updated models.Recipe
	if err := config.DB.
		Preload("Ingredients").
		Preload("Instructions").
		First(&updated, recipe.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteRecipe(userID, recipeID uint) error {
	var recipe models.Recipe
	if err := config.DB.
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error; err != nil {
		return err
	}
	if err := config.DB.
		Where("recipe_id = ?", recipe.ID).
		Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if err := config.DB.
		Where("recipe_id = ?", recipe.ID).
		Delete(&models.RecipeInstruction{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&recipe).Error
}
