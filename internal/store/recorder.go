package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/events"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/rs/zerolog"
)

// recordedEvents are the bus events worth a journal row.
var recordedEvents = []string{
	events.EventBookingApproved,
	events.EventBookingRejected,
	events.EventContractCreated,
	events.EventContractCancelled,
	events.EventInvoiceSaved,
	events.EventInvoiceDeleted,
	events.EventPaymentInitiated,
}

// RecordEvents subscribes the journal to the bus so every mutating call the
// client performs lands in the local actions table. Handlers run inline on
// the publishing goroutine; writes get a short independent timeout.
func RecordEvents(bus *events.EventBus, journal *Store, logger *zerolog.Logger) {
	handler := func(event *events.Event) error {
		action := &models.Action{
			Kind:      event.Type,
			Detail:    string(event.Payload),
			CreatedAt: event.CreatedAt,
		}

		var payload struct {
			ContractID string  `json:"contract_id"`
			BookingID  string  `json:"booking_id"`
			InvoiceID  string  `json:"invoice_id"`
			Amount     float64 `json:"amount"`
			RentPrice  float64 `json:"rent_price"`
		}
		if err := json.Unmarshal(event.Payload, &payload); err == nil {
			switch {
			case payload.ContractID != "":
				action.EntityID = payload.ContractID
			case payload.InvoiceID != "":
				action.EntityID = payload.InvoiceID
			case payload.BookingID != "":
				action.EntityID = payload.BookingID
			}
			action.Amount = payload.Amount
			if action.Amount == 0 {
				action.Amount = payload.RentPrice
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := journal.RecordAction(ctx, action); err != nil {
			logger.Warn().Err(err).Str("kind", event.Type).Msg("journal write failed")
		}
		return nil
	}

	for _, eventType := range recordedEvents {
		bus.Subscribe(eventType, handler)
	}
}
