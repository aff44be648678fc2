// Command seed resets the trainer and food tables and loads the demo
// trainer plus a starter food catalog.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lontso23/FitnessCoachApp/config"
	"github.com/lontso23/FitnessCoachApp/db"
	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/logger"
	"github.com/lontso23/FitnessCoachApp/model"
	"github.com/lontso23/FitnessCoachApp/repository"
	"github.com/lontso23/FitnessCoachApp/util"
)

const (
	demoTrainerID = "trainer-001"
	demoEmail     = "trainer@lontso.com"
	demoPassword  = "admin123"
)

type seedFood struct {
	id      string
	name    string
	kcal    float64
	protein float64
	carbs   float64
	fats    float64
}

var seedFoods = []seedFood{
	{"f1", "Arroz blanco", 130, 2.7, 28, 0.3},
	{"f2", "Pechuga de pollo", 165, 31, 0, 3.6},
	{"f3", "Avena", 389, 16.9, 66.3, 6.9},
	{"f4", "Plátano", 89, 1.1, 22.8, 0.3},
	{"f5", "Huevos", 155, 13, 1.1, 11},
	{"f6", "Aceite de oliva", 884, 0, 0, 100},
	{"f7", "Brócoli", 34, 2.8, 7, 0.4},
	{"f8", "Pasta integral", 348, 13, 73, 1.5},
	{"f9", "Salmón", 208, 20, 0, 13},
	{"f10", "Yogur griego", 97, 10, 3.6, 5},
	{"f11", "Almendras", 579, 21, 21.6, 49.9},
	{"f12", "Batata", 86, 1.6, 20.1, 0.1},
	{"f13", "Atún en lata", 116, 26, 0, 0.8},
	{"f14", "Pan integral", 247, 13, 41, 3.4},
	{"f15", "Espinacas", 23, 2.9, 3.6, 0.4},
}

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	cfg, err := config.ReadConfig(config.Path())
	if err != nil {
		log.Fatalf("could not read config: %v", err)
	}
	gormDB, err := db.InitDB(cfg)
	if err != nil {
		log.Fatalf("could not open database: %v", err)
	}
	defer db.Close(gormDB)

	// Clear existing data
	if err := gormDB.Where("1 = 1").Delete(&model.Trainer{}).Error; err != nil {
		log.Fatalf("could not clear trainers: %v", err)
	}
	if err := gormDB.Where("1 = 1").Delete(&model.Food{}).Error; err != nil {
		log.Fatalf("could not clear foods: %v", err)
	}

	ctx := context.Background()
	trainerRepository := repository.NewTrainerRepository(gormDB)
	foodRepository := repository.NewFoodRepository(gormDB)

	hashed, err := util.HashPassword(demoPassword)
	if err != nil {
		log.Fatalf("could not hash password: %v", err)
	}

	trainer := &entity.Trainer{
		ID:        demoTrainerID,
		Email:     demoEmail,
		Name:      "Entrenador Demo",
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}
	if err := trainerRepository.CreateTrainer(ctx, trainer); err != nil {
		log.Fatalf("could not create demo trainer: %v", err)
	}
	fmt.Printf("Usuario creado: %s / %s\n", demoEmail, demoPassword)

	for _, f := range seedFoods {
		food := &entity.Food{
			ID:             f.id,
			Name:           f.name,
			KcalPer100g:    f.kcal,
			ProteinPer100g: f.protein,
			CarbsPer100g:   f.carbs,
			FatsPer100g:    f.fats,
			CreatedBy:      demoTrainerID,
			CreatedAt:      time.Now().UTC(),
		}
		if err := foodRepository.CreateFood(ctx, food); err != nil {
			log.Fatalf("could not create food %s: %v", f.name, err)
		}
	}
	fmt.Printf("%d alimentos creados\n", len(seedFoods))
	fmt.Println("Base de datos inicializada correctamente")
}
