package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/services"
)

type FoodController struct {
	Svc *services.NutritionService
}

func NewFoodController(svc *services.NutritionService) *FoodController {
	return &FoodController{Svc: svc}
}

// SearchFoods proxies a free-text food query to the nutrition API.
func (h *FoodController) SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}

	results, err := h.Svc.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
