package models

import (
	"time"

	"github.com/google/uuid"
)

// HouseholdDB represents a household record in the database
type HouseholdDB struct {
	HouseholdID uuid.UUID `json:"id" db:"household_id"`      // Primary key
	Name        string    `json:"name" db:"name"`            // Globally unique name
	OwnerID     uuid.UUID `json:"owner_id" db:"owner_id"`    // Creator, external user reference
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
