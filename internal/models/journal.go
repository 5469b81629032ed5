package models

import "time"

// Action is one journal row: a mutating call this client performed against
// the backend, recorded locally for audit and offline display.
type Action struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"` // event type, e.g. contract_created
	EntityID  string    `json:"entity_id"`
	Amount    float64   `json:"amount,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
