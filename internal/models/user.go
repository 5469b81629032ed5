package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"` // tenant, host, admin
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the client-held authentication state: the bearer token and a
// snapshot of the profile taken at login. Single source of truth for every
// component; nothing reads raw storage directly.
type Session struct {
	Token   string    `json:"token"`
	User    *User     `json:"user,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}
