package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/services"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/utils"
)

type ProfileController struct {
	Svc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: svc}
}

func (h *ProfileController) GetProfile(c *gin.Context) {
	user, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// SaveProfile upserts the profile and returns it with freshly computed
// nutrition goals.
func (h *ProfileController) SaveProfile(c *gin.Context) {
	var in services.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Svc.Save(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type bodyFatRequest struct {
	SumSkinfolds float64 `json:"sumSkinfolds" binding:"required,gt=0"`
	Gender       string  `json:"gender" binding:"required,oneof=male female"`
}

// CalculateBodyFat computes a body-fat estimate from skinfold sums and
// records it on the profile.
func (h *ProfileController) CalculateBodyFat(c *gin.Context) {
	var req bodyFatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pct, err := utils.CalculateBodyFat(req.SumSkinfolds, req.Gender)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.SetBodyFat(c.Request.Context(), pct); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bodyFat": pct})
}

// ---------- measurements ----------

func (h *ProfileController) GetMeasurements(c *gin.Context) {
	m, err := h.Svc.Measurements(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ProfileController) SaveMeasurement(c *gin.Context) {
	var snap models.MeasurementSnapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.SaveMeasurement(c.Request.Context(), c.Param("type"), snap); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *ProfileController) SwapMeasurements(c *gin.Context) {
	if err := h.Svc.SwapMeasurements(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *ProfileController) ClearMeasurement(c *gin.Context) {
	if err := h.Svc.ClearMeasurement(c.Request.Context(), c.Param("type")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
