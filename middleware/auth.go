// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/service"
)

// Context keys set by AuthenticateJWT.
const (
	TrainerKey   = "trainer"
	TrainerIDKey = "trainerID"
)

// AuthenticateJWT is a middleware function that verifies bearer tokens and
// resolves them to a stored trainer. Requests without a valid, unexpired
// token whose subject still exists are rejected with 401.
func AuthenticateJWT(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract the token from the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		// The token is prefixed with 'Bearer ', so we need to trim that
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		trainer, err := authService.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// Store the resolved identity for the handlers
		c.Set(TrainerKey, trainer)
		c.Set(TrainerIDKey, trainer.ID)

		// Continue to the next handler
		c.Next()
	}
}

// CurrentTrainer returns the trainer resolved by AuthenticateJWT.
func CurrentTrainer(c *gin.Context) *entity.Trainer {
	if v, ok := c.Get(TrainerKey); ok {
		if trainer, ok := v.(*entity.Trainer); ok {
			return trainer
		}
	}
	return nil
}

// CurrentTrainerID returns the trainer id resolved by AuthenticateJWT.
func CurrentTrainerID(c *gin.Context) string {
	return c.GetString(TrainerIDKey)
}
