package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/repository"
	"github.com/lontso23/FitnessCoachApp/util"
)

// AuthService interface
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*entity.Trainer, error)
	Login(ctx context.Context, email, password string) (*entity.Trainer, string, error)
	Resolve(ctx context.Context, token string) (*entity.Trainer, error)
}

// authService struct
type authService struct {
	trainerRepository repository.TrainerRepository
	jwtSecretKey      []byte
}

// NewAuthService creates and returns a new AuthService
func NewAuthService(trainerRepository repository.TrainerRepository, config *entity.Config) AuthService {
	return &authService{
		trainerRepository: trainerRepository,
		jwtSecretKey:      []byte(config.JWTSecretKey),
	}
}

// Register creates a trainer account. The raw password is never stored,
// only its bcrypt digest.
func (a *authService) Register(ctx context.Context, email, name, password string) (*entity.Trainer, error) {
	// Reject duplicate emails (case-sensitive exact match)
	existing, err := a.trainerRepository.GetTrainerByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	trainer := &entity.Trainer{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}

	if err := a.trainerRepository.CreateTrainer(ctx, trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

// Login handles trainer authentication and issues a bearer token.
func (a *authService) Login(ctx context.Context, email, password string) (*entity.Trainer, string, error) {
	// Fetch the trainer by email
	trainer, err := a.trainerRepository.GetTrainerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUnauthorized
		}
		return nil, "", err
	}

	// Compare the provided password with the stored hashed password
	if !util.CheckPasswordHash(password, trainer.Password) {
		return nil, "", ErrUnauthorized
	}

	// Generate a JWT token
	token, err := util.GenerateJWT(trainer.ID, a.jwtSecretKey)
	if err != nil {
		return nil, "", err
	}

	return trainer, token, nil
}

// Resolve validates a bearer token and loads the trainer it names. It is
// side-effect-free; any failure (malformed, mis-signed, expired, vanished
// subject) comes back as ErrUnauthorized.
func (a *authService) Resolve(ctx context.Context, token string) (*entity.Trainer, error) {
	trainerID, err := util.ValidateJWT(token, a.jwtSecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	trainer, err := a.trainerRepository.GetTrainerByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return trainer, nil
}
