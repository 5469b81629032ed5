package service

import (
	"context"
	"math"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/dates"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/domain"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/events"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/rs/zerolog"
)

type ContractService struct {
	gateway  domain.Gateway
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewContractService(gateway domain.Gateway, eventBus domain.EventPublisher, logger *zerolog.Logger) *ContractService {
	return &ContractService{
		gateway:  gateway,
		eventBus: eventBus,
		logger:   logger,
	}
}

// ValidateInput is the client-side gate: nothing is sent when it fails.
// Duration and rent price must be finite and positive; the manual form path
// performs no cross-check against the room's listed price.
func ValidateInput(input *models.ContractInput) error {
	if input.RoomID == "" {
		return ErrMissingRoom
	}
	if input.TenantID == "" {
		return ErrMissingTenant
	}
	if input.StartDate.IsZero() {
		return ErrMissingStartDate
	}
	if input.Duration <= 0 {
		return ErrInvalidDuration
	}
	if input.RentPrice <= 0 || math.IsInf(input.RentPrice, 0) || math.IsNaN(input.RentPrice) {
		return ErrInvalidRentPrice
	}
	return nil
}

// Create validates, derives the end date from the start and duration, and
// posts the contract. RentPrice is a snapshot: it is never re-derived after
// this call, even if the room's listed price changes later.
func (s *ContractService) Create(ctx context.Context, input *models.ContractInput) (*models.Contract, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	if input.EndDate.IsZero() {
		input.EndDate = dates.CalcEndDate(input.StartDate, input.Duration)
	}

	contract, err := s.gateway.CreateContract(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", input.RoomID).Msg("create contract failed")
		return nil, err
	}

	_ = s.eventBus.PublishJSON(events.EventContractCreated, events.ContractEventPayload{
		ContractID: contract.ID,
		BookingID:  input.BookingID,
		RoomID:     input.RoomID,
		TenantID:   input.TenantID,
		Duration:   input.Duration,
		RentPrice:  input.RentPrice,
		Status:     contract.Status,
	})

	return contract, nil
}

// List returns the contract list for the caller's role.
func (s *ContractService) List(ctx context.Context, role string) ([]models.Contract, error) {
	switch role {
	case models.RoleHost:
		return s.gateway.ListHostContracts(ctx)
	case models.RoleTenant:
		return s.gateway.ListTenantContracts(ctx)
	default:
		return s.gateway.ListContracts(ctx)
	}
}

// Cancel sends the tenant cancellation request and re-fetches the tenant
// list so the caller renders server truth. The PUT is fire-and-forget: a
// granular error still triggers the re-fetch.
func (s *ContractService) Cancel(ctx context.Context, contractID string) ([]models.Contract, error) {
	if err := s.gateway.CancelContract(ctx, contractID); err != nil {
		s.logger.Warn().Err(err).Str("contract_id", contractID).Msg("cancel contract request failed")
	} else {
		_ = s.eventBus.PublishJSON(events.EventContractCancelled, events.ContractEventPayload{
			ContractID: contractID,
			Status:     models.ContractCancel,
		})
	}

	return s.gateway.ListTenantContracts(ctx)
}

// Terminate is the host-side termination, same one-way semantics.
func (s *ContractService) Terminate(ctx context.Context, contractID string) ([]models.Contract, error) {
	if err := s.gateway.TerminateContract(ctx, contractID); err != nil {
		s.logger.Warn().Err(err).Str("contract_id", contractID).Msg("terminate contract request failed")
	} else {
		_ = s.eventBus.PublishJSON(events.EventContractCancelled, events.ContractEventPayload{
			ContractID: contractID,
			Status:     models.ContractTerminated,
		})
	}

	return s.gateway.ListHostContracts(ctx)
}
