package models

import "github.com/google/uuid"

// AssignmentDB binds a task to a responsible user. Several users may share
// one task, and nothing deduplicates repeat assignments of the same user.
type AssignmentDB struct {
	AssignmentID uuid.UUID `json:"id" db:"assignment_id"` // Primary key
	TaskID       uuid.UUID `json:"task_id" db:"task_id"`  // Owning task
	UserID       uuid.UUID `json:"user_id" db:"user_id"`  // External user reference
}
