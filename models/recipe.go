package models

import (
    "gorm.io/gorm"
)

type Recipe struct {
    gorm.Model
    UserID       uint   `gorm:"index;not null"`
    Title        string `gorm:"not null"`
    Author       string `gorm:"not null"`
    Description  string
    TotalKcal    int
    Ingredients  []RecipeIngredient  `gorm:"foreignKey:RecipeID"`
    Instructions []RecipeInstruction `gorm:"foreignKey:RecipeID"`
}

type RecipeIngredient struct {
    gorm.Model
    RecipeID       uint `gorm:"index;not null"`
    FoodID         int
    IngredientName string `gorm:"not null"`
    Quantity       int
    Unit           string
    Preparation    string
    OrderIndex     int // 1-based position among kept entries
}

type RecipeInstruction struct {
    gorm.Model
    RecipeID    uint `gorm:"index;not null"`
    StepNumber  int
    Description string
}
