package repository

import (
	"context"
	"errors"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/mapper"
	"github.com/lontso23/FitnessCoachApp/model"

	"gorm.io/gorm"
)

// ClientRepository is the data access contract for coached clients. All
// read and write operations are scoped to the owning trainer.
type ClientRepository interface {
	CreateClient(ctx context.Context, client *entity.Client) error
	GetClientByID(ctx context.Context, id, trainerID string) (*entity.Client, error)
	ListClients(ctx context.Context, trainerID string) ([]entity.Client, error)
	UpdateClient(ctx context.Context, client *entity.Client) error
	DeleteClient(ctx context.Context, id, trainerID string) error
}

// clientRepository holds the database connection.
type clientRepository struct {
	DB *gorm.DB
}

// NewClientRepository creates and returns a new ClientRepository.
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{
		DB: db,
	}
}

// CreateClient stores a new client in the database.
func (r *clientRepository) CreateClient(ctx context.Context, client *entity.Client) error {
	clientModel := mapper.ClientEntityToModel(client)
	if err := r.DB.WithContext(ctx).Create(clientModel).Error; err != nil {
		return err
	}
	return nil
}

// GetClientByID fetches a client owned by the given trainer.
func (r *clientRepository) GetClientByID(ctx context.Context, id, trainerID string) (*entity.Client, error) {
	var clientModel model.Client
	err := r.DB.WithContext(ctx).
		Where("id = ? AND trainer_id = ?", id, trainerID).
		First(&clientModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return mapper.ClientModelToEntity(&clientModel), nil
}

// ListClients fetches every client owned by the given trainer.
func (r *clientRepository) ListClients(ctx context.Context, trainerID string) ([]entity.Client, error) {
	var clientModels []model.Client
	err := r.DB.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("created_at").
		Find(&clientModels).Error
	if err != nil {
		return nil, err
	}

	clients := make([]entity.Client, 0, len(clientModels))
	for i := range clientModels {
		clients = append(clients, *mapper.ClientModelToEntity(&clientModels[i]))
	}
	return clients, nil
}

// UpdateClient replaces the stored record with the given merged entity.
func (r *clientRepository) UpdateClient(ctx context.Context, client *entity.Client) error {
	clientModel := mapper.ClientEntityToModel(client)
	if err := r.DB.WithContext(ctx).Save(clientModel).Error; err != nil {
		return err
	}
	return nil
}

// DeleteClient removes a client owned by the given trainer. Diet cascade
// is handled by the service layer, not here.
func (r *clientRepository) DeleteClient(ctx context.Context, id, trainerID string) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND trainer_id = ?", id, trainerID).
		Delete(&model.Client{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
