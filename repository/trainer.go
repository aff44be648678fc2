package repository

import (
	"context"
	"errors"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/mapper"
	"github.com/lontso23/FitnessCoachApp/model"

	"gorm.io/gorm"
)

// TrainerRepository is the data access contract for trainer accounts.
type TrainerRepository interface {
	CreateTrainer(ctx context.Context, trainer *entity.Trainer) error
	GetTrainerByID(ctx context.Context, id string) (*entity.Trainer, error)
	GetTrainerByEmail(ctx context.Context, email string) (*entity.Trainer, error)
}

// trainerRepository holds the database connection.
type trainerRepository struct {
	DB *gorm.DB
}

// NewTrainerRepository creates and returns a new TrainerRepository.
func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{
		DB: db,
	}
}

// CreateTrainer stores a new trainer in the database.
func (r *trainerRepository) CreateTrainer(ctx context.Context, trainer *entity.Trainer) error {
	// Convert entity to model
	trainerModel := mapper.TrainerEntityToModel(trainer)

	// Store in the database using GORM
	if err := r.DB.WithContext(ctx).Create(trainerModel).Error; err != nil {
		return err
	}
	return nil
}

// GetTrainerByID fetches a trainer from the database by ID.
func (r *trainerRepository) GetTrainerByID(ctx context.Context, id string) (*entity.Trainer, error) {
	var trainerModel model.Trainer
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&trainerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Convert model back to entity
	return mapper.TrainerModelToEntity(&trainerModel), nil
}

// GetTrainerByEmail fetches a trainer from the database by email. The match
// is a case-sensitive exact comparison on the stored value.
func (r *trainerRepository) GetTrainerByEmail(ctx context.Context, email string) (*entity.Trainer, error) {
	var trainerModel model.Trainer
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&trainerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Convert model back to entity
	return mapper.TrainerModelToEntity(&trainerModel), nil
}
