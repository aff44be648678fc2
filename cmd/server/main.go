package main

import (
	"github.com/gin-gonic/gin"

	"github.com/lontso23/FitnessCoachApp/db"
	"github.com/lontso23/FitnessCoachApp/logger"
	"github.com/lontso23/FitnessCoachApp/route"
)

func main() {
	logger.InitializeLogger() // Initialize the logger
	defer logger.Close()      // Close the logger when the main function exits

	r := gin.Default()
	gormDB, cfg, err := route.SetupRoutes(r) // Setup routes for your app
	if err != nil {
		panic(err)
	}
	defer db.Close(gormDB) // Close the database connection on exit

	addr := cfg.ListenAddr
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		panic(err)
	}
}
