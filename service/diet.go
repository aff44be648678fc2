package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/nutrition"
	"github.com/lontso23/FitnessCoachApp/report"
	"github.com/lontso23/FitnessCoachApp/repository"
)

// DietService interface
type DietService interface {
	CreateDiet(ctx context.Context, trainerID string, req *entity.DietRequest) (*entity.Diet, error)
	GetDiet(ctx context.Context, id, trainerID string) (*entity.Diet, error)
	ListDiets(ctx context.Context, trainerID, clientID string) ([]entity.Diet, error)
	UpdateDiet(ctx context.Context, id, trainerID string, req *entity.DietRequest) (*entity.Diet, error)
	DeleteDiet(ctx context.Context, id, trainerID string) error
	ExportDiet(ctx context.Context, id, trainerID string) ([]byte, string, error)
}

// dietService struct
type dietService struct {
	dietRepository   repository.DietRepository
	clientRepository repository.ClientRepository
}

// NewDietService creates and returns a new DietService
func NewDietService(dietRepository repository.DietRepository, clientRepository repository.ClientRepository) DietService {
	return &dietService{
		dietRepository:   dietRepository,
		clientRepository: clientRepository,
	}
}

// composeMeals rebuilds the submitted meals with server-computed totals.
// Caller-supplied totals are ignored at both the meal and the diet level.
func composeMeals(meals []entity.Meal) ([]entity.Meal, nutrition.Totals) {
	composed := make([]entity.Meal, 0, len(meals))
	for _, meal := range meals {
		mealTotals := nutrition.AggregateMeal(meal.Foods)
		meal.TotalKcal = mealTotals.Kcal
		meal.TotalProtein = mealTotals.Protein
		meal.TotalCarbs = mealTotals.Carbs
		meal.TotalFats = mealTotals.Fats
		composed = append(composed, meal)
	}
	return composed, nutrition.AggregateDiet(composed)
}

// CreateDiet composes and persists a new diet for a client owned by the
// trainer.
func (s *dietService) CreateDiet(ctx context.Context, trainerID string, req *entity.DietRequest) (*entity.Diet, error) {
	// Verify the client belongs to the trainer
	if _, err := s.clientRepository.GetClientByID(ctx, req.ClientID, trainerID); err != nil {
		return nil, mapNotFound(err)
	}

	meals, totals := composeMeals(req.Meals)

	now := time.Now().UTC()
	diet := &entity.Diet{
		ID:           uuid.NewString(),
		ClientID:     req.ClientID,
		TrainerID:    trainerID,
		Name:         req.Name,
		Meals:        meals,
		TotalKcal:    totals.Kcal,
		TotalProtein: totals.Protein,
		TotalCarbs:   totals.Carbs,
		TotalFats:    totals.Fats,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.dietRepository.CreateDiet(ctx, diet); err != nil {
		return nil, err
	}
	return diet, nil
}

// GetDiet fetches a single diet owned by the trainer.
func (s *dietService) GetDiet(ctx context.Context, id, trainerID string) (*entity.Diet, error) {
	diet, err := s.dietRepository.GetDietByID(ctx, id, trainerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return diet, nil
}

// ListDiets fetches the trainer's diets, optionally filtered by client.
func (s *dietService) ListDiets(ctx context.Context, trainerID, clientID string) ([]entity.Diet, error) {
	return s.dietRepository.ListDiets(ctx, trainerID, clientID)
}

// UpdateDiet replaces the name and meals of an existing diet, recomputing
// all totals. The client reference and created_at stay untouched.
func (s *dietService) UpdateDiet(ctx context.Context, id, trainerID string, req *entity.DietRequest) (*entity.Diet, error) {
	diet, err := s.dietRepository.GetDietByID(ctx, id, trainerID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	meals, totals := composeMeals(req.Meals)

	diet.Name = req.Name
	diet.Meals = meals
	diet.TotalKcal = totals.Kcal
	diet.TotalProtein = totals.Protein
	diet.TotalCarbs = totals.Carbs
	diet.TotalFats = totals.Fats
	diet.UpdatedAt = time.Now().UTC()

	if err := s.dietRepository.UpdateDiet(ctx, diet); err != nil {
		return nil, err
	}
	return diet, nil
}

// DeleteDiet removes a diet owned by the trainer.
func (s *dietService) DeleteDiet(ctx context.Context, id, trainerID string) error {
	return mapNotFound(s.dietRepository.DeleteDiet(ctx, id, trainerID))
}

// ExportDiet renders a diet as a printable PDF and returns the document
// bytes together with the download filename.
func (s *dietService) ExportDiet(ctx context.Context, id, trainerID string) ([]byte, string, error) {
	diet, err := s.dietRepository.GetDietByID(ctx, id, trainerID)
	if err != nil {
		return nil, "", mapNotFound(err)
	}

	client, err := s.clientRepository.GetClientByID(ctx, diet.ClientID, trainerID)
	if err != nil {
		return nil, "", mapNotFound(err)
	}

	doc, err := report.RenderDiet(diet, client)
	if err != nil {
		return nil, "", err
	}
	return doc, report.Filename(client.Name), nil
}
