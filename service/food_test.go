package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lontso23/FitnessCoachApp/entity"
)

func newFoodFixture() (FoodService, *fakeFoodRepo) {
	repo := newFakeFoodRepo()
	return NewFoodService(repo), repo
}

func TestCreateAndGetFood(t *testing.T) {
	svc, _ := newFoodFixture()
	ctx := context.Background()

	food, err := svc.CreateFood(ctx, trainerID, &entity.FoodRequest{
		Name:           "Arroz blanco",
		KcalPer100g:    130,
		ProteinPer100g: 2.7,
		CarbsPer100g:   28,
		FatsPer100g:    0.3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, food.ID)
	require.Equal(t, trainerID, food.CreatedBy)

	got, err := svc.GetFood(ctx, food.ID, trainerID)
	require.NoError(t, err)
	require.Equal(t, food.ID, got.ID)
	require.Equal(t, 130.0, got.KcalPer100g)
}

func TestGetFoodCrossTrainerHidden(t *testing.T) {
	svc, _ := newFoodFixture()
	ctx := context.Background()

	food, err := svc.CreateFood(ctx, trainerID, &entity.FoodRequest{Name: "Avena", KcalPer100g: 389})
	require.NoError(t, err)

	_, err = svc.GetFood(ctx, food.ID, "other-trainer")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateFoodKeepsIdentity(t *testing.T) {
	svc, _ := newFoodFixture()
	ctx := context.Background()

	food, err := svc.CreateFood(ctx, trainerID, &entity.FoodRequest{Name: "Atún", KcalPer100g: 116})
	require.NoError(t, err)

	updated, err := svc.UpdateFood(ctx, food.ID, trainerID, &entity.FoodRequest{Name: "Atún en lata", KcalPer100g: 120})
	require.NoError(t, err)
	require.Equal(t, food.ID, updated.ID)
	require.Equal(t, food.CreatedBy, updated.CreatedBy)
	require.Equal(t, food.CreatedAt, updated.CreatedAt)
	require.Equal(t, "Atún en lata", updated.Name)
	require.Equal(t, 120.0, updated.KcalPer100g)
}

func TestDeleteFoodNotFound(t *testing.T) {
	svc, _ := newFoodFixture()

	err := svc.DeleteFood(context.Background(), "missing", trainerID)
	require.ErrorIs(t, err, ErrNotFound)
}
