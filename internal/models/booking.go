package models

import "time"

type Booking struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	TenantID  string    `json:"tenantId"`
	Status    string    `json:"status"` // pending, approved, rejected, cancelled
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Approval is an admin/host decision record on a room listing or booking,
// independent of the room's operational status.
type Approval struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // room, booking
	TargetID  string    `json:"targetId"`
	Decision  string    `json:"decision"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
