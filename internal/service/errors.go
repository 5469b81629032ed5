package service

import "errors"

// Validation failures caught before any request fires.
var (
	ErrInvalidDuration     = errors.New("duration must be a positive whole number of months")
	ErrInvalidRentPrice    = errors.New("rent price must be positive")
	ErrMissingRoom         = errors.New("room is required")
	ErrMissingTenant       = errors.New("tenant is required")
	ErrMissingStartDate    = errors.New("start date is required")
	ErrMissingBillingMonth = errors.New("billing month is required")
	ErrNoInvoiceItems      = errors.New("invoice needs at least one item")
	ErrInvalidInvoiceItem  = errors.New("every item needs a type, a positive unit price and a positive quantity")
	ErrInvalidAmount       = errors.New("payment amount must be positive")
)
