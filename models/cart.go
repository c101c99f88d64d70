package models

import (
    "gorm.io/gorm"
)

// One line per (user, food); duplicate adds collapse onto the unique index.
type CartItem struct {
    gorm.Model
    UserID   uint `gorm:"uniqueIndex:idx_cart_user_food;not null"`
    FoodID   int  `gorm:"uniqueIndex:idx_cart_user_food;not null"`
    Quantity int  // grams
}
