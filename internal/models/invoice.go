package models

import "time"

type InvoiceItem struct {
	Type      string  `json:"type"` // room, electricity, water, service, other
	UnitPrice float64 `json:"unitPrice"`
	Quantity  float64 `json:"quantity"`
	Note      string  `json:"note,omitempty"`
}

// Amount is the line total.
func (i InvoiceItem) Amount() float64 {
	return i.UnitPrice * i.Quantity
}

type Invoice struct {
	ID           string        `json:"id"`
	ContractID   string        `json:"contractId"`
	RoomID       string        `json:"roomId"`
	UserID       string        `json:"userId"`
	BillingMonth string        `json:"billingMonth"` // YYYY-MM
	Items        []InvoiceItem `json:"items"`
	Status       string        `json:"status"` // pending, paid, unpaid
	Note         string        `json:"note,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Total recomputes the invoice amount from its line items. The displayed and
// submitted total is always this sum; a total field coming back from the
// server is never trusted on the create/edit path.
func (inv *Invoice) Total() float64 {
	return ItemsTotal(inv.Items)
}

// ItemsTotal sums unitPrice*quantity over the given items.
func ItemsTotal(items []InvoiceItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Amount()
	}
	return total
}
