package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/nutrition"
	"github.com/lontso23/FitnessCoachApp/repository"
)

// Default macro split applied when the caller does not supply percentages.
const (
	defaultProteinPercentage = 30.0
	defaultCarbsPercentage   = 40.0
	defaultFatsPercentage    = 30.0
)

// ClientService interface
type ClientService interface {
	CreateClient(ctx context.Context, trainerID string, req *entity.ClientCreateRequest) (*entity.Client, error)
	GetClient(ctx context.Context, id, trainerID string) (*entity.Client, error)
	ListClients(ctx context.Context, trainerID string) ([]entity.Client, error)
	UpdateClient(ctx context.Context, id, trainerID string, req *entity.ClientUpdateRequest) (*entity.Client, error)
	DeleteClient(ctx context.Context, id, trainerID string) error
}

// clientService struct
type clientService struct {
	clientRepository repository.ClientRepository
	dietRepository   repository.DietRepository
}

// NewClientService creates and returns a new ClientService
func NewClientService(clientRepository repository.ClientRepository, dietRepository repository.DietRepository) ClientService {
	return &clientService{
		clientRepository: clientRepository,
		dietRepository:   dietRepository,
	}
}

// CreateClient registers a client and derives TMB and maintenance
// calories from the physical profile. The calorie target starts out equal
// to maintenance.
func (s *clientService) CreateClient(ctx context.Context, trainerID string, req *entity.ClientCreateRequest) (*entity.Client, error) {
	tmb := nutrition.BasalMetabolicRate(req.Sex, req.Weight, req.Height, req.Age)
	maintenance := nutrition.MaintenanceKcal(tmb, req.ActivityLevel)

	now := time.Now().UTC()
	client := &entity.Client{
		ID:                uuid.NewString(),
		TrainerID:         trainerID,
		Name:              req.Name,
		Age:               req.Age,
		Sex:               req.Sex,
		Weight:            req.Weight,
		Height:            req.Height,
		ActivityLevel:     req.ActivityLevel,
		TMB:               tmb,
		MaintenanceKcal:   maintenance,
		TargetKcal:        maintenance,
		ProteinPercentage: valueOr(req.ProteinPercentage, defaultProteinPercentage),
		CarbsPercentage:   valueOr(req.CarbsPercentage, defaultCarbsPercentage),
		FatsPercentage:    valueOr(req.FatsPercentage, defaultFatsPercentage),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.clientRepository.CreateClient(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient fetches a single client owned by the trainer.
func (s *clientService) GetClient(ctx context.Context, id, trainerID string) (*entity.Client, error) {
	client, err := s.clientRepository.GetClientByID(ctx, id, trainerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return client, nil
}

// ListClients fetches every client owned by the trainer.
func (s *clientService) ListClients(ctx context.Context, trainerID string) ([]entity.Client, error) {
	return s.clientRepository.ListClients(ctx, trainerID)
}

// UpdateClient applies a partial update. When any of the physical profile
// fields (weight, height, age, sex, activity level) changes and the caller
// did not explicitly override tmb / maintenance_kcal, both derived values
// are recomputed from the merged profile.
func (s *clientService) UpdateClient(ctx context.Context, id, trainerID string, req *entity.ClientUpdateRequest) (*entity.Client, error) {
	client, err := s.clientRepository.GetClientByID(ctx, id, trainerID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	// Merge the supplied fields over the stored record
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Age != nil {
		client.Age = *req.Age
	}
	if req.Sex != nil {
		client.Sex = *req.Sex
	}
	if req.Weight != nil {
		client.Weight = *req.Weight
	}
	if req.Height != nil {
		client.Height = *req.Height
	}
	if req.ActivityLevel != nil {
		client.ActivityLevel = *req.ActivityLevel
	}
	if req.TargetKcal != nil {
		client.TargetKcal = *req.TargetKcal
	}
	if req.ProteinPercentage != nil {
		client.ProteinPercentage = *req.ProteinPercentage
	}
	if req.CarbsPercentage != nil {
		client.CarbsPercentage = *req.CarbsPercentage
	}
	if req.FatsPercentage != nil {
		client.FatsPercentage = *req.FatsPercentage
	}

	profileChanged := req.Weight != nil || req.Height != nil || req.Age != nil ||
		req.Sex != nil || req.ActivityLevel != nil

	switch {
	case profileChanged:
		// An explicit tmb wins over the recomputed one; maintenance is
		// then derived from whichever tmb ends up in effect unless it was
		// itself supplied.
		if req.TMB != nil {
			client.TMB = *req.TMB
		} else {
			client.TMB = nutrition.BasalMetabolicRate(client.Sex, client.Weight, client.Height, client.Age)
		}
		if req.MaintenanceKcal != nil {
			client.MaintenanceKcal = *req.MaintenanceKcal
		} else {
			client.MaintenanceKcal = nutrition.MaintenanceKcal(client.TMB, client.ActivityLevel)
		}
	default:
		// No profile change: only apply explicit overrides.
		if req.TMB != nil {
			client.TMB = *req.TMB
		}
		if req.MaintenanceKcal != nil {
			client.MaintenanceKcal = *req.MaintenanceKcal
		}
	}

	client.UpdatedAt = time.Now().UTC()

	if err := s.clientRepository.UpdateClient(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client and cascades deletion of every diet
// referencing it. The cascade matches on client_id alone.
func (s *clientService) DeleteClient(ctx context.Context, id, trainerID string) error {
	if err := s.clientRepository.DeleteClient(ctx, id, trainerID); err != nil {
		return mapNotFound(err)
	}
	return s.dietRepository.DeleteDietsByClientID(ctx, id)
}

func valueOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
