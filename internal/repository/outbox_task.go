package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// DonationEventPayload is the message body published for donation
// lifecycle changes (created, candidates computed, accepted, declined,
// picked up, collected).
type DonationEventPayload struct {
	Event      string    `json:"event"`
	DonationID string    `json:"donation_id"`
	DonorID    string    `json:"donor_id,omitempty"`
	AgentID    string    `json:"agent_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	Candidates int       `json:"candidates,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
