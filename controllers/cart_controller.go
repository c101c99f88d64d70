package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /cart
func GetCart(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	lines, totalKcal, err := services.GetCartSnapshot(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      lines,
		"total_kcal": totalKcal,
	})
}

type AddCartInput struct {
	FoodID   int `json:"food_id" binding:"required"`
	Quantity int `json:"quantity"`
}

// POST /cart — adding a food already in the cart bumps its quantity
func AddToCart(c *gin.Context) {
	var input AddCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.MustGet("userID").(uint)

	item, err := services.AddCartItem(userID, input.FoodID, input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PATCH /cart/:id — quantity at or below zero removes the line
func UpdateCartItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.MustGet("userID").(uint)

	if err := services.UpdateCartQuantity(userID, uint(itemID), input.Quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart updated"})
}

// DELETE /cart/:id
func RemoveCartItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	userID := c.MustGet("userID").(uint)

	if err := services.RemoveCartItem(userID, uint(itemID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}

// DELETE /cart
func ClearCart(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	if err := services.ClearCart(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// GET /cart/prefill/meal-plan — null when the cart is empty
func PrefillMealPlan(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	lines, _, err := services.GetCartSnapshot(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": services.PrefillMealPlanFromCart(lines)})
}

// GET /cart/prefill/recipe — null when the cart is empty
func PrefillRecipe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	lines, _, err := services.GetCartSnapshot(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": services.PrefillRecipeFromCart(lines)})
}
