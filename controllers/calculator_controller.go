package controllers

import (
	"net/http"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

type BMIInput struct {
	HeightCm float64 `json:"height_cm" binding:"required"`
	WeightKg float64 `json:"weight_kg" binding:"required"`
}

// POST /calculator/bmi
func CalculateBMI(c *gin.Context) {
	var input BMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmi, err := utils.CalculateBMI(input.HeightCm, input.WeightKg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi":      bmi,
		"category": utils.BMICategory(bmi),
	})
}

type CaloriesInput struct {
	HeightCm      float64 `json:"height_cm" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	AgeYears      int     `json:"age_years" binding:"required"`
	Sex           string  `json:"sex" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
}

// POST /calculator/calories
func CalculateCalories(c *gin.Context) {
	var input CaloriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmr, err := utils.CalculateBMR(input.HeightCm, input.WeightKg, input.AgeYears, input.Sex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	daily, err := utils.DailyCalories(bmr, input.ActivityLevel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmr":            bmr,
		"daily_calories": daily,
	})
}
