package models

import "time"

// Contract is the agreement created from an approved booking. Duration is
// whole months; RentPrice is the total for the whole duration (monthly rate
// times duration), snapshotted at creation and never re-derived afterwards.
type Contract struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	TenantID  string    `json:"tenantId"`
	Duration  int       `json:"duration"`
	RentPrice float64   `json:"rentPrice"`
	Terms     string    `json:"terms,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"` // pending, active, expired, terminated, cancel
	BookingID string    `json:"bookingId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContractInput is the creation form: either derived from an approved
// booking or filled manually by the host.
type ContractInput struct {
	RoomID    string    `json:"roomId"`
	TenantID  string    `json:"tenantId"`
	Duration  int       `json:"duration"`
	RentPrice float64   `json:"rentPrice"`
	Terms     string    `json:"terms,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	BookingID string    `json:"bookingId,omitempty"`
}
