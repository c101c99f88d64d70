package models

// Reference tables imported from the Canadian Nutrient File dump. They keep
// their legacy singular names and column casing so the seed scripts keep
// working unchanged.

type FoodGroup struct {
    FoodGroupID   int    `gorm:"primaryKey;column:FoodGroupID" json:"FoodGroupID"`
    FoodGroupName string `gorm:"column:FoodGroupName" json:"FoodGroupName"`
}

func (FoodGroup) TableName() string { return "food_group" }

type FoodName struct {
    FoodID          int    `gorm:"primaryKey;column:FoodID" json:"FoodID"`
    FoodGroupID     int    `gorm:"column:FoodGroupID" json:"FoodGroupID"`
    FoodDescription string `gorm:"column:FoodDescription" json:"FoodDescription"`
}

func (FoodName) TableName() string { return "food_name" }

type NutrientName struct {
    NutrientNameID int    `gorm:"primaryKey;column:NutrientNameID" json:"NutrientNameID"` // the nutrient code, e.g. 208 = energy (kcal)
    NutrientName   string `gorm:"column:NutrientName" json:"NutrientName"`
    NutrientSymbol string `gorm:"column:NutrientSymbol" json:"NutrientSymbol"`
    NutrientUnit   string `gorm:"column:NutrientUnit" json:"NutrientUnit"`
}

func (NutrientName) TableName() string { return "nutrient_name" }

// NutrientAmount holds one per-100g reading per (food, nutrient) pair.
type NutrientAmount struct {
    FoodID         int     `gorm:"primaryKey;column:FoodID" json:"FoodID"`
    NutrientNameID int     `gorm:"primaryKey;column:NutrientNameID" json:"NutrientNameID"`
    NutrientValue  float64 `gorm:"column:NutrientValue" json:"NutrientValue"`
}

func (NutrientAmount) TableName() string { return "nutrient_amount" }
