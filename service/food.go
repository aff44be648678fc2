package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/repository"
)

// FoodService interface
type FoodService interface {
	CreateFood(ctx context.Context, trainerID string, req *entity.FoodRequest) (*entity.Food, error)
	GetFood(ctx context.Context, id, trainerID string) (*entity.Food, error)
	ListFoods(ctx context.Context, trainerID string) ([]entity.Food, error)
	UpdateFood(ctx context.Context, id, trainerID string, req *entity.FoodRequest) (*entity.Food, error)
	DeleteFood(ctx context.Context, id, trainerID string) error
}

// foodService struct
type foodService struct {
	foodRepository repository.FoodRepository
}

// NewFoodService creates and returns a new FoodService
func NewFoodService(foodRepository repository.FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
	}
}

// CreateFood adds a catalog entry owned by the trainer.
func (s *foodService) CreateFood(ctx context.Context, trainerID string, req *entity.FoodRequest) (*entity.Food, error) {
	food := &entity.Food{
		ID:             uuid.NewString(),
		Name:           req.Name,
		KcalPer100g:    req.KcalPer100g,
		ProteinPer100g: req.ProteinPer100g,
		CarbsPer100g:   req.CarbsPer100g,
		FatsPer100g:    req.FatsPer100g,
		CreatedBy:      trainerID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// GetFood fetches a single catalog entry owned by the trainer.
func (s *foodService) GetFood(ctx context.Context, id, trainerID string) (*entity.Food, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id, trainerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return food, nil
}

// ListFoods fetches the trainer's whole catalog.
func (s *foodService) ListFoods(ctx context.Context, trainerID string) ([]entity.Food, error) {
	return s.foodRepository.ListFoods(ctx, trainerID)
}

// UpdateFood replaces the nutrient fields and name of a catalog entry.
// Identity (id, owner, created_at) never changes.
func (s *foodService) UpdateFood(ctx context.Context, id, trainerID string, req *entity.FoodRequest) (*entity.Food, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id, trainerID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	food.Name = req.Name
	food.KcalPer100g = req.KcalPer100g
	food.ProteinPer100g = req.ProteinPer100g
	food.CarbsPer100g = req.CarbsPer100g
	food.FatsPer100g = req.FatsPer100g

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// DeleteFood removes a catalog entry owned by the trainer.
func (s *foodService) DeleteFood(ctx context.Context, id, trainerID string) error {
	return mapNotFound(s.foodRepository.DeleteFood(ctx, id, trainerID))
}
