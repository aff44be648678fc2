package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/middleware"
	"github.com/lontso23/FitnessCoachApp/service"
)

// AuthHandler interface
type AuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
}

// authHandler struct
type authHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates and returns a new AuthHandler
func NewAuthHandler(authService service.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Register handles trainer registration
func (h *authHandler) Register(c *gin.Context) {
	var req entity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trainer, err := h.authService.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trainer)
}

// Login handles trainer authentication
func (h *authHandler) Login(c *gin.Context) {
	// Bind the incoming JSON to the loginRequest struct
	var req entity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Call the AuthService's Login method
	trainer, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	// Return the trainer and token with a 200 OK status code
	c.JSON(http.StatusOK, entity.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Trainer:     *trainer,
	})
}

// Me returns the trainer resolved from the bearer token
func (h *authHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentTrainer(c))
}
