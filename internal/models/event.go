package models

// Event types published to Kafka.
const (
	EventUserRegistered   = "user.registered"
	EventUserDeleted      = "user.deleted"
	EventHouseholdCreated = "household.created"
	EventHouseholdDeleted = "household.deleted"
	EventTaskCompleted    = "task.completed"
)

// Event is the JSON payload published for every domain event.
type Event struct {
	EventID   string `json:"event_id"`           // Unique event id
	Type      string `json:"type"`               // One of the Event* constants
	EntityID  string `json:"entity_id"`          // Id of the affected entity
	ActorID   string `json:"actor_id,omitempty"` // Caller that triggered the event, if known
	Timestamp int64  `json:"timestamp"`          // Unix seconds
}
