package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/middleware"
	"github.com/lontso23/FitnessCoachApp/service"
)

// DietHandler interface
type DietHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Export(c *gin.Context)
}

// dietHandler struct
type dietHandler struct {
	dietService service.DietService
}

// NewDietHandler creates and returns a new DietHandler
func NewDietHandler(dietService service.DietService) DietHandler {
	return &dietHandler{
		dietService: dietService,
	}
}

// Create handles composing a new diet
func (h *dietHandler) Create(c *gin.Context) {
	var req entity.DietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	diet, err := h.dietService.CreateDiet(c.Request.Context(), middleware.CurrentTrainerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, diet)
}

// Get handles fetching a specific diet by ID
func (h *dietHandler) Get(c *gin.Context) {
	diet, err := h.dietService.GetDiet(c.Request.Context(), c.Param("id"), middleware.CurrentTrainerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, diet)
}

// List handles fetching the trainer's diets, optionally filtered by client
func (h *dietHandler) List(c *gin.Context) {
	diets, err := h.dietService.ListDiets(c.Request.Context(), middleware.CurrentTrainerID(c), c.Query("client_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, diets)
}

// Update handles replacing the name and meals of an existing diet
func (h *dietHandler) Update(c *gin.Context) {
	var req entity.DietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	diet, err := h.dietService.UpdateDiet(c.Request.Context(), c.Param("id"), middleware.CurrentTrainerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, diet)
}

// Delete handles removing a diet
func (h *dietHandler) Delete(c *gin.Context) {
	err := h.dietService.DeleteDiet(c.Request.Context(), c.Param("id"), middleware.CurrentTrainerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diet deleted successfully"})
}

// Export streams the rendered PDF as a download attachment
func (h *dietHandler) Export(c *gin.Context) {
	doc, filename, err := h.dietService.ExportDiet(c.Request.Context(), c.Param("id"), middleware.CurrentTrainerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}
