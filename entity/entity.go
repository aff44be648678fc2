package entity

import (
	"encoding/json"
	"time"
)

// Trainer represents an authenticated coach. Every other resource in the
// system is owned by exactly one trainer.
type Trainer struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"password"` // bcrypt digest, never serialized
	CreatedAt time.Time `json:"created_at"`
}

// Client represents a coached person. The tmb and maintenance_kcal fields
// are derived from the physical profile and kept consistent by the service
// layer on every write.
type Client struct {
	ID                string    `json:"id"`
	TrainerID         string    `json:"trainer_id"`
	Name              string    `json:"name"`
	Age               int       `json:"age"`
	Sex               string    `json:"sex"`            // H or M
	Weight            float64   `json:"weight"`         // kg
	Height            float64   `json:"height"`         // cm
	ActivityLevel     string    `json:"activity_level"` // sedentaria, ligera, moderada, alta, muy_alta
	TMB               float64   `json:"tmb"`
	MaintenanceKcal   float64   `json:"maintenance_kcal"`
	TargetKcal        float64   `json:"target_kcal"`
	ProteinPercentage float64   `json:"protein_percentage"`
	CarbsPercentage   float64   `json:"carbs_percentage"`
	FatsPercentage    float64   `json:"fats_percentage"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Food is a per-trainer catalog entry with nutrients per 100g.
type Food struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	KcalPer100g    float64   `json:"kcal_per_100g"`
	ProteinPer100g float64   `json:"protein_per_100g"`
	CarbsPer100g   float64   `json:"carbs_per_100g"`
	FatsPer100g    float64   `json:"fats_per_100g"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// FoodItem is one line of a meal. The food name is snapshotted at
// composition time and the nutrient fields are the already-scaled amounts
// for quantity_g, not per-100g values.
type FoodItem struct {
	FoodID    string  `json:"food_id"`
	FoodName  string  `json:"food_name"`
	QuantityG float64 `json:"quantity_g"`
	Kcal      float64 `json:"kcal"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
}

// Meal groups an ordered list of food items. Totals always equal the sum
// of the contained items; they are recomputed server-side on every write.
type Meal struct {
	MealNumber   int        `json:"meal_number"`
	MealName     string     `json:"meal_name"`
	Foods        []FoodItem `json:"foods"`
	TotalKcal    float64    `json:"total_kcal"`
	TotalProtein float64    `json:"total_protein"`
	TotalCarbs   float64    `json:"total_carbs"`
	TotalFats    float64    `json:"total_fats"`
}

// Diet is a structured meal plan for one client. Diet-level totals always
// equal the sum of the meal-level totals.
type Diet struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	TrainerID    string    `json:"trainer_id"`
	Name         string    `json:"name"`
	Meals        []Meal    `json:"meals"`
	TotalKcal    float64   `json:"total_kcal"`
	TotalProtein float64   `json:"total_protein"`
	TotalCarbs   float64   `json:"total_carbs"`
	TotalFats    float64   `json:"total_fats"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for trainer registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for trainer login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	Trainer     Trainer `json:"user"`
}

// ClientCreateRequest carries the fields needed to register a client.
// The derived fields (tmb, maintenance_kcal, target_kcal) are always
// computed server-side at creation.
type ClientCreateRequest struct {
	Name              string   `json:"name" binding:"required"`
	Age               int      `json:"age" binding:"required"`
	Sex               string   `json:"sex" binding:"required"`
	Weight            float64  `json:"weight" binding:"required"`
	Height            float64  `json:"height" binding:"required"`
	ActivityLevel     string   `json:"activity_level" binding:"required"`
	ProteinPercentage *float64 `json:"protein_percentage"`
	CarbsPercentage   *float64 `json:"carbs_percentage"`
	FatsPercentage    *float64 `json:"fats_percentage"`
}

// ClientUpdateRequest is a partial update; nil pointers mean "leave as is".
// Supplying tmb or maintenance_kcal explicitly suppresses the automatic
// recalculation of that field.
type ClientUpdateRequest struct {
	Name              *string  `json:"name"`
	Age               *int     `json:"age"`
	Sex               *string  `json:"sex"`
	Weight            *float64 `json:"weight"`
	Height            *float64 `json:"height"`
	ActivityLevel     *string  `json:"activity_level"`
	TMB               *float64 `json:"tmb"`
	MaintenanceKcal   *float64 `json:"maintenance_kcal"`
	TargetKcal        *float64 `json:"target_kcal"`
	ProteinPercentage *float64 `json:"protein_percentage"`
	CarbsPercentage   *float64 `json:"carbs_percentage"`
	FatsPercentage    *float64 `json:"fats_percentage"`
}

// FoodRequest is the payload for creating or fully updating a catalog food.
type FoodRequest struct {
	Name           string  `json:"name" binding:"required"`
	KcalPer100g    float64 `json:"kcal_per_100g"`
	ProteinPer100g float64 `json:"protein_per_100g"`
	CarbsPer100g   float64 `json:"carbs_per_100g"`
	FatsPer100g    float64 `json:"fats_per_100g"`
}

// DietRequest is the payload for creating or replacing a diet. Any totals
// present in the submitted meals are ignored and recomputed server-side.
type DietRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Meals    []Meal `json:"meals"`
}

// MarshalJSON implements the custom JSON serialization for Trainer
func (t Trainer) MarshalJSON() ([]byte, error) {
	type Alias Trainer // Create an alias to avoid infinite recursion
	return json.Marshal(&struct {
		*Alias
		Password string `json:"-"` // Exclude password field
	}{
		Alias:    (*Alias)(&t),
		Password: "",
	})
}
