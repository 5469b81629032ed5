package service

import (
	"context"
	"math"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/domain"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/events"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/rs/zerolog"
)

type PaymentService struct {
	gateway  domain.Gateway
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewPaymentService(gateway domain.Gateway, eventBus domain.EventPublisher, logger *zerolog.Logger) *PaymentService {
	return &PaymentService{
		gateway:  gateway,
		eventBus: eventBus,
		logger:   logger,
	}
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// CheckoutContract requests a VNPay pay URL for a contract amount. The
// caller redirects the user there; result handling happens on the gateway's
// return page, never here.
func (s *PaymentService) CheckoutContract(ctx context.Context, contract *models.Contract, amount float64, note string) (string, error) {
	if amount == 0 {
		amount = contract.RentPrice
	}
	if !validAmount(amount) {
		return "", ErrInvalidAmount
	}

	resp, err := s.gateway.CreateVNPayPayment(ctx, models.PayRequest{
		TenantID:   contract.TenantID,
		ContractID: contract.ID,
		Amount:     amount,
		ExtraNote:  note,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("contract_id", contract.ID).Msg("create payment failed")
		return "", err
	}

	_ = s.eventBus.PublishJSON(events.EventPaymentInitiated, events.PaymentEventPayload{
		TenantID:   contract.TenantID,
		ContractID: contract.ID,
		Amount:     amount,
		PayURL:     resp.PayURL,
	})

	return resp.PayURL, nil
}

// CheckoutInvoice is the invoice variant; the amount is always the
// recomputed line item sum.
func (s *PaymentService) CheckoutInvoice(ctx context.Context, invoice *models.Invoice, note string) (string, error) {
	amount := invoice.Total()
	if !validAmount(amount) {
		return "", ErrInvalidAmount
	}

	resp, err := s.gateway.CreateVNPayInvoicePayment(ctx, models.PayRequest{
		TenantID:  invoice.UserID,
		InvoiceID: invoice.ID,
		Amount:    amount,
		ExtraNote: note,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("invoice_id", invoice.ID).Msg("create invoice payment failed")
		return "", err
	}

	_ = s.eventBus.PublishJSON(events.EventPaymentInitiated, events.PaymentEventPayload{
		TenantID:  invoice.UserID,
		InvoiceID: invoice.ID,
		Amount:    amount,
		PayURL:    resp.PayURL,
	})

	return resp.PayURL, nil
}

// History lists server-side payment records.
func (s *PaymentService) History(ctx context.Context) ([]models.Payment, error) {
	return s.gateway.ListPayments(ctx)
}
