package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/services"
)

type CatalogController struct {
	Svc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: svc}
}

func (h *CatalogController) GetCategories(c *gin.Context) {
	cats, err := h.Svc.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

type catalogMealRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Calories    int    `json:"calories" binding:"min=0,max=2000"`
	Protein     int    `json:"protein" binding:"min=0"`
	Carbs       int    `json:"carbs" binding:"min=0"`
	Fat         int    `json:"fat" binding:"min=0"`
}

func (r catalogMealRequest) toRecord() models.MealRecord {
	return models.MealRecord{
		Name:        r.Name,
		Description: r.Description,
		Calories:    r.Calories,
		Protein:     r.Protein,
		Carbs:       r.Carbs,
		Fat:         r.Fat,
	}
}

func (h *CatalogController) AddMeal(c *gin.Context) {
	var req catalogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.AddMeal(c.Request.Context(), c.Param("category"), req.toRecord()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *CatalogController) UpdateMeal(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req catalogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.UpdateMeal(c.Request.Context(), c.Param("category"), index, req.toRecord()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *CatalogController) DeleteMeal(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteMeal(c.Request.Context(), c.Param("category"), index); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return 0, false
	}
	return index, true
}
