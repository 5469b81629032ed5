package models

import "time"

type Room struct {
	ID          string    `json:"id"`
	HostID      string    `json:"hostId"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Price       float64   `json:"price"` // monthly rate, VND
	Area        float64   `json:"area,omitempty"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RoomSearch carries the filter form for POST /rooms/search.
type RoomSearch struct {
	Keyword  string  `json:"keyword,omitempty"`
	Address  string  `json:"address,omitempty"`
	MinPrice float64 `json:"minPrice,omitempty"`
	MaxPrice float64 `json:"maxPrice,omitempty"`
	Page     int     `json:"page,omitempty"`
	Limit    int     `json:"limit,omitempty"`
}
