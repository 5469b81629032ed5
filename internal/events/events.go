package events

import (
	"encoding/json"
	"sync"
	"time"
)

const (
	EventBookingApproved   = "booking_approved"
	EventBookingRejected   = "booking_rejected"
	EventContractCreated   = "contract_created"
	EventContractCancelled = "contract_cancelled"
	EventInvoiceSaved      = "invoice_saved"
	EventInvoiceDeleted    = "invoice_deleted"
	EventPaymentInitiated  = "payment_initiated"
)

// ContractEventPayload is the minimal contract snapshot for event consumers.
type ContractEventPayload struct {
	ContractID string  `json:"contract_id,omitempty"`
	BookingID  string  `json:"booking_id,omitempty"`
	RoomID     string  `json:"room_id"`
	TenantID   string  `json:"tenant_id"`
	Duration   int     `json:"duration,omitempty"`
	RentPrice  float64 `json:"rent_price,omitempty"`
	Status     string  `json:"status,omitempty"`
}

// PaymentEventPayload describes an initiated checkout.
type PaymentEventPayload struct {
	TenantID   string  `json:"tenant_id"`
	ContractID string  `json:"contract_id,omitempty"`
	InvoiceID  string  `json:"invoice_id,omitempty"`
	Amount     float64 `json:"amount"`
	PayURL     string  `json:"pay_url,omitempty"`
}

// Event represents a lightweight domain event.
type Event struct {
	ID        int64
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

// EventHandler reacts to an event.
type EventHandler func(event *Event) error

// EventBus provides in-process pub/sub for events.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

// Subscribe registers a handler for a given event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *EventBus) Publish(event *Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		// Handlers run synchronously; caller decides concurrency model.
		_ = handler(event)
	}
}

// PublishJSON serializes the payload and publishes an event.
func (b *EventBus) PublishJSON(eventType string, payload interface{}) error {
	if b == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	b.Publish(&Event{Type: eventType, Payload: raw, CreatedAt: time.Now()})
	return nil
}
