package service

import (
	"context"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/dates"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/domain"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/events"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/rs/zerolog"
)

type BookingService struct {
	gateway   domain.Gateway
	contracts domain.ContractService
	eventBus  domain.EventPublisher
	logger    *zerolog.Logger
}

func NewBookingService(gateway domain.Gateway, contracts domain.ContractService, eventBus domain.EventPublisher, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		gateway:   gateway,
		contracts: contracts,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// PendingBookings lists the requests on the host's rooms still waiting for
// a decision.
func (s *BookingService) PendingBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.gateway.ListHostBookings(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == models.BookingPending {
			pending = append(pending, b)
		}
	}
	return pending, nil
}

// Approve marks the booking approved and converts it into a contract.
// Duration is the whole-month span of the requested dates, floored to one
// month; the rent price is the room's monthly rate times that duration,
// snapshotted now. When startDate is zero the booking's own start is used.
func (s *BookingService) Approve(ctx context.Context, booking *models.Booking, startDate time.Time, terms string) (*models.Contract, error) {
	room, err := s.gateway.GetRoom(ctx, booking.RoomID)
	if err != nil {
		return nil, err
	}

	duration := dates.MonthsBetween(booking.StartDate, booking.EndDate)
	if duration < 1 {
		duration = 1
	}
	rentPrice := room.Price * float64(duration)

	if startDate.IsZero() {
		startDate = booking.StartDate
	}

	if err := s.gateway.ApproveBooking(ctx, booking.ID); err != nil {
		return nil, err
	}

	_ = s.eventBus.PublishJSON(events.EventBookingApproved, events.ContractEventPayload{
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		TenantID:  booking.TenantID,
	})

	input := &models.ContractInput{
		RoomID:    booking.RoomID,
		TenantID:  booking.TenantID,
		Duration:  duration,
		RentPrice: rentPrice,
		Terms:     terms,
		StartDate: startDate,
		BookingID: booking.ID,
	}

	contract, err := s.contracts.Create(ctx, input)
	if err != nil {
		// The approval already happened; the host has to retry contract
		// creation manually. No compensating rollback exists client-side.
		s.logger.Error().Err(err).Str("booking_id", booking.ID).Msg("contract creation after approval failed")
		return nil, err
	}

	return contract, nil
}

// Reject declines the booking request.
func (s *BookingService) Reject(ctx context.Context, bookingID string) error {
	if err := s.gateway.RejectBooking(ctx, bookingID); err != nil {
		return err
	}
	_ = s.eventBus.PublishJSON(events.EventBookingRejected, events.ContractEventPayload{
		BookingID: bookingID,
	})
	return nil
}
