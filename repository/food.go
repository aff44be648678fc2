package repository

import (
	"context"
	"errors"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/mapper"
	"github.com/lontso23/FitnessCoachApp/model"

	"gorm.io/gorm"
)

// FoodRepository is the data access contract for the per-trainer food
// catalog.
type FoodRepository interface {
	CreateFood(ctx context.Context, food *entity.Food) error
	GetFoodByID(ctx context.Context, id, trainerID string) (*entity.Food, error)
	ListFoods(ctx context.Context, trainerID string) ([]entity.Food, error)
	UpdateFood(ctx context.Context, food *entity.Food) error
	DeleteFood(ctx context.Context, id, trainerID string) error
}

// foodRepository holds the database connection.
type foodRepository struct {
	DB *gorm.DB
}

// NewFoodRepository creates and returns a new FoodRepository.
func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{
		DB: db,
	}
}

// CreateFood stores a new catalog entry in the database.
func (r *foodRepository) CreateFood(ctx context.Context, food *entity.Food) error {
	foodModel := mapper.FoodEntityToModel(food)
	if err := r.DB.WithContext(ctx).Create(foodModel).Error; err != nil {
		return err
	}
	return nil
}

// GetFoodByID fetches a catalog entry created by the given trainer.
func (r *foodRepository) GetFoodByID(ctx context.Context, id, trainerID string) (*entity.Food, error) {
	var foodModel model.Food
	err := r.DB.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, trainerID).
		First(&foodModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return mapper.FoodModelToEntity(&foodModel), nil
}

// ListFoods fetches the whole catalog of the given trainer.
func (r *foodRepository) ListFoods(ctx context.Context, trainerID string) ([]entity.Food, error) {
	var foodModels []model.Food
	err := r.DB.WithContext(ctx).
		Where("created_by = ?", trainerID).
		Order("name").
		Find(&foodModels).Error
	if err != nil {
		return nil, err
	}

	foods := make([]entity.Food, 0, len(foodModels))
	for i := range foodModels {
		foods = append(foods, *mapper.FoodModelToEntity(&foodModels[i]))
	}
	return foods, nil
}

// UpdateFood replaces the stored record with the given entity.
func (r *foodRepository) UpdateFood(ctx context.Context, food *entity.Food) error {
	foodModel := mapper.FoodEntityToModel(food)
	if err := r.DB.WithContext(ctx).Save(foodModel).Error; err != nil {
		return err
	}
	return nil
}

// DeleteFood removes a catalog entry created by the given trainer.
func (r *foodRepository) DeleteFood(ctx context.Context, id, trainerID string) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, trainerID).
		Delete(&model.Food{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
