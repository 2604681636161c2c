package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskDB represents a task record in the database.
// household_id and creator_id are external references, not verified here.
type TaskDB struct {
	TaskID      uuid.UUID  `json:"id" db:"task_id"`                // Primary key
	Title       string     `json:"title" db:"title"`               // Required title
	Description string     `json:"description" db:"description"`   // Optional free text
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`     // Creation timestamp
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"` // Optional deadline
	Completed   bool       `json:"completed" db:"completed"`       // One-way flag, default false
	CreatorID   uuid.UUID  `json:"creator_id" db:"creator_id"`     // External user reference
	HouseholdID uuid.UUID  `json:"household_id" db:"household_id"` // External household reference
}
