package models

import (
    "gorm.io/gorm"
)

type MealPlan struct {
    gorm.Model
    UserID      uint   `gorm:"index;not null"`
    Title       string `gorm:"not null"`
    Author      string `gorm:"not null"`
    Description string
    TotalKcal   int
    Items       []MealPlanItem `gorm:"foreignKey:MealPlanID"`
}

type MealPlanItem struct {
    gorm.Model
    MealPlanID uint   `gorm:"index;not null"`
    FoodID     int    `gorm:"not null"`
    Quantity   int    // grams
    MealSlot   string // "morning" | "lunch" | "dinner"
}
