package store

import (
	"context"
	"io"
	"testing"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/events"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEvents(t *testing.T) {
	s := newTestStore(t)
	logger := zerolog.New(io.Discard)
	bus := events.NewEventBus()
	RecordEvents(bus, s, &logger)

	require.NoError(t, bus.PublishJSON(events.EventContractCreated, events.ContractEventPayload{
		ContractID: "c-1",
		RoomID:     "room-1",
		TenantID:   "tenant-1",
		RentPrice:  4500000,
	}))
	require.NoError(t, bus.PublishJSON(events.EventPaymentInitiated, events.PaymentEventPayload{
		TenantID:  "tenant-1",
		InvoiceID: "i-1",
		Amount:    1850000,
	}))

	// Handlers run synchronously, rows are visible immediately.
	actions, err := s.RecentActions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, actions, 2)

	assert.Equal(t, events.EventPaymentInitiated, actions[0].Kind)
	assert.Equal(t, "i-1", actions[0].EntityID)
	assert.Equal(t, 1850000.0, actions[0].Amount)

	assert.Equal(t, events.EventContractCreated, actions[1].Kind)
	assert.Equal(t, "c-1", actions[1].EntityID)
	assert.Equal(t, 4500000.0, actions[1].Amount)
}

func TestRecordEventsIgnoresUnknownPayload(t *testing.T) {
	s := newTestStore(t)
	logger := zerolog.New(io.Discard)
	bus := events.NewEventBus()
	RecordEvents(bus, s, &logger)

	require.NoError(t, bus.PublishJSON(events.EventInvoiceDeleted, map[string]interface{}{
		"invoice_id": "i-9",
	}))

	actions, err := s.RecentActions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "i-9", actions[0].EntityID)
}
