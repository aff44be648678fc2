package model

import (
	"time"

	"gorm.io/datatypes"
)

// Trainer is the persistence model for a coach account.
type Trainer struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt digest
	CreatedAt time.Time `json:"created_at"`
}

// Client is the persistence model for a coached person.
type Client struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	TrainerID         string    `gorm:"size:36;not null;index" json:"trainer_id"`
	Name              string    `gorm:"size:255;not null" json:"name"`
	Age               int       `json:"age"`
	Sex               string    `gorm:"size:1" json:"sex"`
	Weight            float64   `json:"weight"`
	Height            float64   `json:"height"`
	ActivityLevel     string    `gorm:"size:50" json:"activity_level"`
	TMB               float64   `json:"tmb"`
	MaintenanceKcal   float64   `json:"maintenance_kcal"`
	TargetKcal        float64   `json:"target_kcal"`
	ProteinPercentage float64   `json:"protein_percentage"`
	CarbsPercentage   float64   `json:"carbs_percentage"`
	FatsPercentage    float64   `json:"fats_percentage"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Food is the persistence model for a catalog entry.
type Food struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	KcalPer100g    float64   `json:"kcal_per_100g"`
	ProteinPer100g float64   `json:"protein_per_100g"`
	CarbsPer100g   float64   `json:"carbs_per_100g"`
	FatsPer100g    float64   `json:"fats_per_100g"`
	CreatedBy      string    `gorm:"size:36;not null;index" json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// Diet is the persistence model for a meal plan. The ordered meal list is
// stored as a single JSON document; meals and food items are value objects
// that only ever change together with the diet.
type Diet struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	ClientID     string         `gorm:"size:36;not null;index" json:"client_id"`
	TrainerID    string         `gorm:"size:36;not null;index" json:"trainer_id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Meals        datatypes.JSON `json:"meals"`
	TotalKcal    float64        `json:"total_kcal"`
	TotalProtein float64        `json:"total_protein"`
	TotalCarbs   float64        `json:"total_carbs"`
	TotalFats    float64        `json:"total_fats"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
