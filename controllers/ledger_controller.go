package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/services"
)

type LedgerController struct {
	Svc *services.LedgerService
}

func NewLedgerController(svc *services.LedgerService) *LedgerController {
	return &LedgerController{Svc: svc}
}

// GetToday returns the current day's meals and totals.
func (h *LedgerController) GetToday(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"date":   h.Svc.CurrentDate(),
		"meals":  h.Svc.Meals(),
		"totals": h.Svc.Totals(),
	})
}

type addMealRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Calories    int    `json:"calories" binding:"min=0,max=2000"`
	Protein     int    `json:"protein" binding:"min=0"`
	Carbs       int    `json:"carbs" binding:"min=0"`
	Fat         int    `json:"fat" binding:"min=0"`
}

func (h *LedgerController) AddMeal(c *gin.Context) {
	slot := models.Slot(c.Param("slot"))

	var req addMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := models.MealRecord{
		Name:        req.Name,
		Description: req.Description,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
	}
	if err := h.Svc.AddMeal(c.Request.Context(), slot, meal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": h.Svc.Totals()})
}

func (h *LedgerController) RemoveMeal(c *gin.Context) {
	slot := models.Slot(c.Param("slot"))
	index, ok := indexParam(c)
	if !ok {
		return
	}

	if err := h.Svc.RemoveMeal(c.Request.Context(), slot, index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": h.Svc.Totals()})
}

// --- helpers shared across controllers ---

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
