package repository

import (
	"context"
	"errors"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/mapper"
	"github.com/lontso23/FitnessCoachApp/model"

	"gorm.io/gorm"
)

// DietRepository is the data access contract for composed diets.
type DietRepository interface {
	CreateDiet(ctx context.Context, diet *entity.Diet) error
	GetDietByID(ctx context.Context, id, trainerID string) (*entity.Diet, error)
	ListDiets(ctx context.Context, trainerID, clientID string) ([]entity.Diet, error)
	UpdateDiet(ctx context.Context, diet *entity.Diet) error
	DeleteDiet(ctx context.Context, id, trainerID string) error
	DeleteDietsByClientID(ctx context.Context, clientID string) error
}

// dietRepository holds the database connection.
type dietRepository struct {
	DB *gorm.DB
}

// NewDietRepository creates and returns a new DietRepository.
func NewDietRepository(db *gorm.DB) DietRepository {
	return &dietRepository{
		DB: db,
	}
}

// CreateDiet stores a new diet in the database.
func (r *dietRepository) CreateDiet(ctx context.Context, diet *entity.Diet) error {
	dietModel, err := mapper.DietEntityToModel(diet)
	if err != nil {
		return err
	}
	if err := r.DB.WithContext(ctx).Create(dietModel).Error; err != nil {
		return err
	}
	return nil
}

// GetDietByID fetches a diet owned by the given trainer.
func (r *dietRepository) GetDietByID(ctx context.Context, id, trainerID string) (*entity.Diet, error) {
	var dietModel model.Diet
	err := r.DB.WithContext(ctx).
		Where("id = ? AND trainer_id = ?", id, trainerID).
		First(&dietModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return mapper.DietModelToEntity(&dietModel)
}

// ListDiets fetches the diets owned by the given trainer, optionally
// filtered down to a single client. An empty clientID means no filter.
func (r *dietRepository) ListDiets(ctx context.Context, trainerID, clientID string) ([]entity.Diet, error) {
	query := r.DB.WithContext(ctx).Where("trainer_id = ?", trainerID)
	if clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var dietModels []model.Diet
	if err := query.Order("created_at").Find(&dietModels).Error; err != nil {
		return nil, err
	}

	diets := make([]entity.Diet, 0, len(dietModels))
	for i := range dietModels {
		diet, err := mapper.DietModelToEntity(&dietModels[i])
		if err != nil {
			return nil, err
		}
		diets = append(diets, *diet)
	}
	return diets, nil
}

// UpdateDiet replaces the stored record with the given entity.
func (r *dietRepository) UpdateDiet(ctx context.Context, diet *entity.Diet) error {
	dietModel, err := mapper.DietEntityToModel(diet)
	if err != nil {
		return err
	}
	if err := r.DB.WithContext(ctx).Save(dietModel).Error; err != nil {
		return err
	}
	return nil
}

// DeleteDiet removes a diet owned by the given trainer.
func (r *dietRepository) DeleteDiet(ctx context.Context, id, trainerID string) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND trainer_id = ?", id, trainerID).
		Delete(&model.Diet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDietsByClientID removes every diet referencing the client,
// regardless of diet ownership. Used by the client delete cascade. Zero
// matches is not an error.
func (r *dietRepository) DeleteDietsByClientID(ctx context.Context, clientID string) error {
	return r.DB.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.Diet{}).Error
}
