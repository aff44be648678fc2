package route

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lontso23/FitnessCoachApp/config"
	"github.com/lontso23/FitnessCoachApp/db"
	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/handler"
	"github.com/lontso23/FitnessCoachApp/middleware"
	"github.com/lontso23/FitnessCoachApp/repository"
	"github.com/lontso23/FitnessCoachApp/service"

	"gorm.io/gorm"
)

// SetupRoutes is the composition root: it loads the configuration, opens
// the database, wires repositories into services and handlers, and mounts
// every route. It returns the gorm handle so the caller can close it.
func SetupRoutes(r *gin.Engine) (*gorm.DB, *entity.Config, error) {

	cfg, err := config.ReadConfig(config.Path())
	if err != nil {
		return nil, nil, err
	}
	gormDB, err := db.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Repositories
	trainerRepository := repository.NewTrainerRepository(gormDB)
	clientRepository := repository.NewClientRepository(gormDB)
	foodRepository := repository.NewFoodRepository(gormDB)
	dietRepository := repository.NewDietRepository(gormDB)

	// Services
	authService := service.NewAuthService(trainerRepository, cfg)
	clientService := service.NewClientService(clientRepository, dietRepository)
	foodService := service.NewFoodService(foodRepository)
	dietService := service.NewDietService(dietRepository, clientRepository)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	foodHandler := handler.NewFoodHandler(foodService)
	dietHandler := handler.NewDietHandler(dietService)

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Lontso Fitness API"})
	})

	// Public auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Everything else requires a resolved trainer
	protected := api.Group("/")
	protected.Use(middleware.AuthenticateJWT(authService))

	protected.GET("/auth/me", authHandler.Me)

	protected.POST("/clients", clientHandler.Create)
	protected.GET("/clients", clientHandler.List)
	protected.GET("/clients/:id", clientHandler.Get)
	protected.PUT("/clients/:id", clientHandler.Update)
	protected.DELETE("/clients/:id", clientHandler.Delete)

	protected.POST("/foods", foodHandler.Create)
	protected.GET("/foods", foodHandler.List)
	protected.GET("/foods/:id", foodHandler.Get)
	protected.PUT("/foods/:id", foodHandler.Update)
	protected.DELETE("/foods/:id", foodHandler.Delete)

	protected.POST("/diets", dietHandler.Create)
	protected.GET("/diets", dietHandler.List)
	protected.GET("/diets/:id", dietHandler.Get)
	protected.PUT("/diets/:id", dietHandler.Update)
	protected.DELETE("/diets/:id", dietHandler.Delete)
	protected.GET("/diets/:id/export", dietHandler.Export)

	return gormDB, cfg, nil
}
