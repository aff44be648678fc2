package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/middleware"
	"github.com/lontso23/FitnessCoachApp/service"
)

// FoodHandler interface
type FoodHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// foodHandler struct
type foodHandler struct {
	foodService service.FoodService
}

// NewFoodHandler creates and returns a new FoodHandler
func NewFoodHandler(foodService service.FoodService) FoodHandler {
	return &foodHandler{
		foodService: foodService,
	}
}

// Create handles adding a new catalog food
func (h *foodHandler) Create(c *gin.Context) {
	var req entity.FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foodService.CreateFood(c.Request.Context(), middleware.CurrentTrainerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

// Get handles fetching a specific catalog food by ID
func (h *foodHandler) Get(c *gin.Context) {
	food, err := h.foodService.GetFood(c.Request.Context(), c.Param("id"), middleware.CurrentTrainerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

// List handles fetching the trainer's whole catalog
func (h *foodHandler) List(c *gin.Context) {
	foods, err := h.foodService.ListFoods(c.Request.Context(), middleware.CurrentTrainerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

// Update handles a full update of a catalog food
func (h *foodHandler) Update(c *gin.Context) {
	var req entity.FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foodService.UpdateFood(c.Request.Context(), c.Param("id"), middleware.CurrentTrainerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

// Delete handles removing a catalog food
func (h *foodHandler) Delete(c *gin.Context) {
	err := h.foodService.DeleteFood(c.Request.Context(), c.Param("id"), middleware.CurrentTrainerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food deleted successfully"})
}
