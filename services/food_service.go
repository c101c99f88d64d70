// services/food_service.go
package services

import (
	"backend/config"
	"backend/models"
)

func ListFoodGroups() ([]models.FoodGroup, error) {
	var groups []models.FoodGroup
	err := config.DB.
		Order(`"FoodGroupName"`).
		Find(&groups).Error
	return groups, err
}

func ListFoodsByGroup(groupID int) ([]models.FoodName, error) {
	var foods []models.FoodName
	err := config.DB.
		Where(`"FoodGroupID" = ?`, groupID).
		Order(`"FoodDescription"`).
		Find(&foods).Error
	return foods, err
}

func GetFood(foodID int) (*models.FoodName, error) {
	var food models.FoodName
	err := config.DB.
		Where(`"FoodID" = ?`, foodID).
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// row shape for the nutrient join below
type nutrientRow struct {
	NutrientCode int     `gorm:"column:nutrient_code"`
	Name         string  `gorm:"column:name"`
	Symbol       string  `gorm:"column:symbol"`
	Unit         string  `gorm:"column:unit"`
	Value        float64 `gorm:"column:value"`
}

// GetFoodNutrients returns the per-100g readings for one food, joined with
// the nutrient reference table. Ordering by code keeps the output stable.
func GetFoodNutrients(foodID int) ([]NutrientReading, error) {
	var rows []nutrientRow
	err := config.DB.
		Table("nutrient_amount").
		Select(`nutrient_amount."NutrientNameID" AS nutrient_code, nutrient_name."NutrientName" AS name, nutrient_name."NutrientSymbol" AS symbol, nutrient_name."NutrientUnit" AS unit, nutrient_amount."NutrientValue" AS value`).
		Joins(`JOIN nutrient_name ON nutrient_name."NutrientNameID" = nutrient_amount."NutrientNameID"`).
		Where(`nutrient_amount."FoodID" = ?`, foodID).
		Order(`nutrient_amount."NutrientNameID"`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	readings := make([]NutrientReading, 0, len(rows))
	for _, r := range rows {
		readings = append(readings, NutrientReading{
			NutrientCode: r.NutrientCode,
			Name:         r.Name,
			Symbol:       r.Symbol,
			Unit:         r.Unit,
			ValuePer100g: r.Value,
		})
	}
	return readings, nil
}

// FetchEnergyPer100g batch-fetches the kcal-per-100g reading (code 208) for
// the given foods. Foods without an energy row are simply absent from the map.
func FetchEnergyPer100g(foodIDs []int) (map[int]float64, error) {
	energy := make(map[int]float64, len(foodIDs))
	if len(foodIDs) == 0 {
		return energy, nil
	}
	var amounts []models.NutrientAmount
	err := config.DB.
		Where(`"NutrientNameID" = ? AND "FoodID" IN ?`, NutrientCodeEnergy, foodIDs).
		Find(&amounts).Error
	if err != nil {
		return nil, err
	}
	for _, a := range amounts {
		energy[a.FoodID] = a.NutrientValue
	}
	return energy, nil
}

// FetchFoodDescriptions maps food ids to their display names.
func FetchFoodDescriptions(foodIDs []int) (map[int]string, error) {
	names := make(map[int]string, len(foodIDs))
	if len(foodIDs) == 0 {
		return names, nil
	}
	var foods []models.FoodName
	err := config.DB.
		Where(`"FoodID" IN ?`, foodIDs).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	for _, f := range foods {
		names[f.FoodID] = f.FoodDescription
	}
	return names, nil
}
