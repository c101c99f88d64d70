// services/cart_service.go
package services

import (
	"errors"
	"math"

	"backend/config"
	"backend/models"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// CartLine is the denormalized view of one cart row: display name joined in,
// kcal is the per-100g energy value or nil when no energy reading exists.
type CartLine struct {
	ID       uint     `json:"id"`
	FoodID   int      `json:"food_id"`
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Kcal     *float64 `json:"kcal"`
}

// BuildCartSnapshot joins cart rows with their display names and per-100g
// energy values. Missing lookups degrade to an empty name / nil kcal rather
// than dropping the line.
func BuildCartSnapshot(items []models.CartItem, names map[int]string, energy map[int]float64) []CartLine {
	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		line := CartLine{
			ID:       it.ID,
			FoodID:   it.FoodID,
			Name:     names[it.FoodID],
			Quantity: it.Quantity,
		}
		if kcal, ok := energy[it.FoodID]; ok {
			v := kcal
			line.Kcal = &v
		}
		lines = append(lines, line)
	}
	return lines
}

// CartTotalKcal sums quantity*kcal over lines with a known energy value,
// rounded to the nearest integer. Lines without one contribute 0.
func CartTotalKcal(lines []CartLine) int {
	var total float64
	for _, l := range lines {
		if l.Kcal != nil {
			total += float64(l.Quantity) * *l.Kcal
		}
	}
	return int(math.Round(total))
}

// GetCartSnapshot loads the user's cart in insertion order and denormalizes
// it. A failed energy lookup leaves every kcal nil instead of failing the
// whole snapshot.
func GetCartSnapshot(userID uint) ([]CartLine, int, error) {
	var items []models.CartItem
	err := config.DB.
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.FoodID)
	}

	names, err := FetchFoodDescriptions(ids)
	if err != nil {
		return nil, 0, err
	}
	energy, err := FetchEnergyPer100g(ids)
	if err != nil {
		log.WithError(err).Warn("energy lookup failed, cart lines will have no kcal")
		energy = map[int]float64{}
	}

	lines := BuildCartSnapshot(items, names, energy)
	return lines, CartTotalKcal(lines), nil
}

// AddCartItem inserts a cart row. A duplicate (user, food) insert trips the
// unique index; that violation is the signal to increment the existing row's
// quantity instead, so the cart never holds two rows for one food.
func AddCartItem(userID uint, foodID, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}
	item := models.CartItem{UserID: userID, FoodID: foodID, Quantity: quantity}
	err := config.DB.Create(&item).Error
	if err == nil {
		return &item, nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil, err
	}

	var exist models.CartItem
	if err := config.DB.
		Where("user_id = ? AND food_id = ?", userID, foodID).
		First(&exist).Error; err != nil {
		return nil, err
	}
	exist.Quantity += quantity
	if err := config.DB.Save(&exist).Error; err != nil {
		return nil, err
	}
	return &exist, nil
}

// UpdateCartQuantity sets a line's quantity; dropping to zero or below
// removes the line.
func UpdateCartQuantity(userID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return RemoveCartItem(userID, itemID)
	}
	res := config.DB.
		Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func RemoveCartItem(userID, itemID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{}).Error
}

func ClearCart(userID uint) error {
	return config.DB.
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
