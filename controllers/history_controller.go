package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/services"
)

type HistoryController struct {
	Svc *services.HistoryService
}

func NewHistoryController(svc *services.HistoryService) *HistoryController {
	return &HistoryController{Svc: svc}
}

func (h *HistoryController) GetAll(c *gin.Context) {
	hist, err := h.Svc.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hist)
}

// GetByDate returns the archived entry for a date, or a zero-valued
// default when the date was never archived.
func (h *HistoryController) GetByDate(c *gin.Context) {
	dateStr := c.Param("date")
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	entry, err := h.Svc.Get(c.Request.Context(), dateStr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *HistoryController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
