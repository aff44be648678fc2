package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/middleware"
	"github.com/lontso23/FitnessCoachApp/service"
)

// ClientHandler interface
type ClientHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// clientHandler struct
type clientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates and returns a new ClientHandler
func NewClientHandler(clientService service.ClientService) ClientHandler {
	return &clientHandler{
		clientService: clientService,
	}
}

// Create handles the registration of a new client
func (h *clientHandler) Create(c *gin.Context) {
	var req entity.ClientCreateRequest

	// Bind the incoming JSON to the request struct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), middleware.CurrentTrainerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// Get handles fetching a specific client by ID
func (h *clientHandler) Get(c *gin.Context) {
	client, err := h.clientService.GetClient(c.Request.Context(), c.Param("id"), middleware.CurrentTrainerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// List handles fetching every client of the current trainer
func (h *clientHandler) List(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context(), middleware.CurrentTrainerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// Update handles a partial update of an existing client
func (h *clientHandler) Update(c *gin.Context) {
	var req entity.ClientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("id"), middleware.CurrentTrainerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// Delete handles deleting a client and its diets
func (h *clientHandler) Delete(c *gin.Context) {
	err := h.clientService.DeleteClient(c.Request.Context(), c.Param("id"), middleware.CurrentTrainerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
