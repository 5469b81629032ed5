package models

import "time"

// Payment is backend-owned; the client only asks for pay URLs and lists
// history, it never constructs payment status itself.
type Payment struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenantId"`
	ContractID string    `json:"contractId,omitempty"`
	InvoiceID  string    `json:"invoiceId,omitempty"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	Method     string    `json:"method,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PayRequest is the body for the VNPay create endpoints. InvoiceID is set
// only on the invoice variant.
type PayRequest struct {
	TenantID   string  `json:"tenantId"`
	ContractID string  `json:"contractId,omitempty"`
	InvoiceID  string  `json:"invoiceId,omitempty"`
	Amount     float64 `json:"amount"`
	ExtraNote  string  `json:"extraNote,omitempty"`
}

type PayResponse struct {
	PayURL string `json:"payUrl"`
}
