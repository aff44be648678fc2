package mapper

import (
	"encoding/json"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/model"
)

// TrainerEntityToModel maps a Trainer entity to the corresponding model.
func TrainerEntityToModel(entity *entity.Trainer) *model.Trainer {
	return &model.Trainer{
		ID:        entity.ID,
		Email:     entity.Email,
		Name:      entity.Name,
		Password:  entity.Password,
		CreatedAt: entity.CreatedAt,
	}
}

// TrainerModelToEntity maps a Trainer model to the corresponding entity.
func TrainerModelToEntity(model *model.Trainer) *entity.Trainer {
	return &entity.Trainer{
		ID:        model.ID,
		Email:     model.Email,
		Name:      model.Name,
		Password:  model.Password,
		CreatedAt: model.CreatedAt,
	}
}

// ClientEntityToModel maps a Client entity to the corresponding model.
func ClientEntityToModel(entity *entity.Client) *model.Client {
	return &model.Client{
		ID:                entity.ID,
		TrainerID:         entity.TrainerID,
		Name:              entity.Name,
		Age:               entity.Age,
		Sex:               entity.Sex,
		Weight:            entity.Weight,
		Height:            entity.Height,
		ActivityLevel:     entity.ActivityLevel,
		TMB:               entity.TMB,
		MaintenanceKcal:   entity.MaintenanceKcal,
		TargetKcal:        entity.TargetKcal,
		ProteinPercentage: entity.ProteinPercentage,
		CarbsPercentage:   entity.CarbsPercentage,
		FatsPercentage:    entity.FatsPercentage,
		CreatedAt:         entity.CreatedAt,
		UpdatedAt:         entity.UpdatedAt,
	}
}

// ClientModelToEntity maps a Client model to the corresponding entity.
func ClientModelToEntity(model *model.Client) *entity.Client {
	return &entity.Client{
		ID:                model.ID,
		TrainerID:         model.TrainerID,
		Name:              model.Name,
		Age:               model.Age,
		Sex:               model.Sex,
		Weight:            model.Weight,
		Height:            model.Height,
		ActivityLevel:     model.ActivityLevel,
		TMB:               model.TMB,
		MaintenanceKcal:   model.MaintenanceKcal,
		TargetKcal:        model.TargetKcal,
		ProteinPercentage: model.ProteinPercentage,
		CarbsPercentage:   model.CarbsPercentage,
		FatsPercentage:    model.FatsPercentage,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// FoodEntityToModel maps a Food entity to the corresponding model.
func FoodEntityToModel(entity *entity.Food) *model.Food {
	return &model.Food{
		ID:             entity.ID,
		Name:           entity.Name,
		KcalPer100g:    entity.KcalPer100g,
		ProteinPer100g: entity.ProteinPer100g,
		CarbsPer100g:   entity.CarbsPer100g,
		FatsPer100g:    entity.FatsPer100g,
		CreatedBy:      entity.CreatedBy,
		CreatedAt:      entity.CreatedAt,
	}
}

// FoodModelToEntity maps a Food model to the corresponding entity.
func FoodModelToEntity(model *model.Food) *entity.Food {
	return &entity.Food{
		ID:             model.ID,
		Name:           model.Name,
		KcalPer100g:    model.KcalPer100g,
		ProteinPer100g: model.ProteinPer100g,
		CarbsPer100g:   model.CarbsPer100g,
		FatsPer100g:    model.FatsPer100g,
		CreatedBy:      model.CreatedBy,
		CreatedAt:      model.CreatedAt,
	}
}

// DietEntityToModel maps a Diet entity to the corresponding model. The meal
// list is serialized into the JSON column.
func DietEntityToModel(diet *entity.Diet) (*model.Diet, error) {
	meals := diet.Meals
	if meals == nil {
		// Never store JSON null for the meal list
		meals = []entity.Meal{}
	}
	raw, err := json.Marshal(meals)
	if err != nil {
		return nil, err
	}
	return &model.Diet{
		ID:           diet.ID,
		ClientID:     diet.ClientID,
		TrainerID:    diet.TrainerID,
		Name:         diet.Name,
		Meals:        raw,
		TotalKcal:    diet.TotalKcal,
		TotalProtein: diet.TotalProtein,
		TotalCarbs:   diet.TotalCarbs,
		TotalFats:    diet.TotalFats,
		CreatedAt:    diet.CreatedAt,
		UpdatedAt:    diet.UpdatedAt,
	}, nil
}

// DietModelToEntity maps a Diet model to the corresponding entity. The JSON
// meal column is decoded back into the ordered meal list.
func DietModelToEntity(model *model.Diet) (*entity.Diet, error) {
	meals := []entity.Meal{}
	if len(model.Meals) > 0 {
		if err := json.Unmarshal(model.Meals, &meals); err != nil {
			return nil, err
		}
	}
	return &entity.Diet{
		ID:           model.ID,
		ClientID:     model.ClientID,
		TrainerID:    model.TrainerID,
		Name:         model.Name,
		Meals:        meals,
		TotalKcal:    model.TotalKcal,
		TotalProtein: model.TotalProtein,
		TotalCarbs:   model.TotalCarbs,
		TotalFats:    model.TotalFats,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}
