package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /food/groups
func ListFoodGroups(c *gin.Context) {
	groups, err := services.ListFoodGroups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GET /food/groups/:id/foods
func ListFoodsByGroup(c *gin.Context) {
	groupID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}
	foods, err := services.ListFoodsByGroup(groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /food/:id
func GetFood(c *gin.Context) {
	foodID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}
	food, err := services.GetFood(foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}

// GET /food/:id/nutrients?quantity=150
// Returns the food's readings scaled to the requested quantity in grams
// (default 100), partitioned into the five display groups.
func GetFoodNutrients(c *gin.Context) {
	foodID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	quantity := 100.0
	if q := c.Query("quantity"); q != "" {
		if parsed, err := strconv.ParseFloat(q, 64); err == nil {
			quantity = parsed
		}
	}

	readings, err := services.GetFoodNutrients(foodID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"food_id":     foodID,
		"quantity":    quantity,
		"group_order": services.GroupOrder,
		"groups":      services.AggregateNutrients(readings, quantity),
	})
}
