package service

import (
	"context"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/repository"
)

// In-memory repository fakes. They mirror the owner-scoping rules of the
// GORM implementations so service behavior can be tested without a
// database.

type fakeTrainerRepo struct {
	trainers map[string]*entity.Trainer // keyed by id
}

func newFakeTrainerRepo() *fakeTrainerRepo {
	return &fakeTrainerRepo{trainers: make(map[string]*entity.Trainer)}
}

func (f *fakeTrainerRepo) CreateTrainer(_ context.Context, trainer *entity.Trainer) error {
	cp := *trainer
	f.trainers[trainer.ID] = &cp
	return nil
}

func (f *fakeTrainerRepo) GetTrainerByID(_ context.Context, id string) (*entity.Trainer, error) {
	if t, ok := f.trainers[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTrainerRepo) GetTrainerByEmail(_ context.Context, email string) (*entity.Trainer, error) {
	for _, t := range f.trainers {
		if t.Email == email {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*entity.Client)}
}

func (f *fakeClientRepo) CreateClient(_ context.Context, client *entity.Client) error {
	cp := *client
	f.clients[client.ID] = &cp
	return nil
}

func (f *fakeClientRepo) GetClientByID(_ context.Context, id, trainerID string) (*entity.Client, error) {
	if c, ok := f.clients[id]; ok && c.TrainerID == trainerID {
		cp := *c
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeClientRepo) ListClients(_ context.Context, trainerID string) ([]entity.Client, error) {
	out := []entity.Client{}
	for _, c := range f.clients {
		if c.TrainerID == trainerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) UpdateClient(_ context.Context, client *entity.Client) error {
	cp := *client
	f.clients[client.ID] = &cp
	return nil
}

func (f *fakeClientRepo) DeleteClient(_ context.Context, id, trainerID string) error {
	if c, ok := f.clients[id]; ok && c.TrainerID == trainerID {
		delete(f.clients, id)
		return nil
	}
	return repository.ErrNotFound
}

type fakeFoodRepo struct {
	foods map[string]*entity.Food
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{foods: make(map[string]*entity.Food)}
}

func (f *fakeFoodRepo) CreateFood(_ context.Context, food *entity.Food) error {
	cp := *food
	f.foods[food.ID] = &cp
	return nil
}

func (f *fakeFoodRepo) GetFoodByID(_ context.Context, id, trainerID string) (*entity.Food, error) {
	if fd, ok := f.foods[id]; ok && fd.CreatedBy == trainerID {
		cp := *fd
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFoodRepo) ListFoods(_ context.Context, trainerID string) ([]entity.Food, error) {
	out := []entity.Food{}
	for _, fd := range f.foods {
		if fd.CreatedBy == trainerID {
			out = append(out, *fd)
		}
	}
	return out, nil
}

func (f *fakeFoodRepo) UpdateFood(_ context.Context, food *entity.Food) error {
	cp := *food
	f.foods[food.ID] = &cp
	return nil
}

func (f *fakeFoodRepo) DeleteFood(_ context.Context, id, trainerID string) error {
	if fd, ok := f.foods[id]; ok && fd.CreatedBy == trainerID {
		delete(f.foods, id)
		return nil
	}
	return repository.ErrNotFound
}

type fakeDietRepo struct {
	diets map[string]*entity.Diet
}

func newFakeDietRepo() *fakeDietRepo {
	return &fakeDietRepo{diets: make(map[string]*entity.Diet)}
}

func (f *fakeDietRepo) CreateDiet(_ context.Context, diet *entity.Diet) error {
	cp := *diet
	f.diets[diet.ID] = &cp
	return nil
}

func (f *fakeDietRepo) GetDietByID(_ context.Context, id, trainerID string) (*entity.Diet, error) {
	if d, ok := f.diets[id]; ok && d.TrainerID == trainerID {
		cp := *d
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDietRepo) ListDiets(_ context.Context, trainerID, clientID string) ([]entity.Diet, error) {
	out := []entity.Diet{}
	for _, d := range f.diets {
		if d.TrainerID != trainerID {
			continue
		}
		if clientID != "" && d.ClientID != clientID {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDietRepo) UpdateDiet(_ context.Context, diet *entity.Diet) error {
	cp := *diet
	f.diets[diet.ID] = &cp
	return nil
}

func (f *fakeDietRepo) DeleteDiet(_ context.Context, id, trainerID string) error {
	if d, ok := f.diets[id]; ok && d.TrainerID == trainerID {
		delete(f.diets, id)
		return nil
	}
	return repository.ErrNotFound
}

func (f *fakeDietRepo) DeleteDietsByClientID(_ context.Context, clientID string) error {
	for id, d := range f.diets {
		if d.ClientID == clientID {
			delete(f.diets, id)
		}
	}
	return nil
}
