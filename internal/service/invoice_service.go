package service

import (
	"context"
	"math"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/domain"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/events"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/rs/zerolog"
)

type InvoiceService struct {
	gateway  domain.Gateway
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewInvoiceService(gateway domain.Gateway, eventBus domain.EventPublisher, logger *zerolog.Logger) *InvoiceService {
	return &InvoiceService{
		gateway:  gateway,
		eventBus: eventBus,
		logger:   logger,
	}
}

// ReplaceItem returns a copy of items with the element at index swapped.
// Line item edits always replace the whole list; nothing mutates in place.
func ReplaceItem(items []models.InvoiceItem, index int, item models.InvoiceItem) []models.InvoiceItem {
	out := append([]models.InvoiceItem(nil), items...)
	if index >= 0 && index < len(out) {
		out[index] = item
	}
	return out
}

// RemoveItem returns a copy of items without the element at index.
func RemoveItem(items []models.InvoiceItem, index int) []models.InvoiceItem {
	if index < 0 || index >= len(items) {
		return append([]models.InvoiceItem(nil), items...)
	}
	out := make([]models.InvoiceItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out
}

// ValidateInvoice gates the save: billing month set, at least one item, and
// every item fully valid. No partial save of the valid subset happens, one
// bad item blocks the whole request.
func ValidateInvoice(invoice *models.Invoice) error {
	if invoice.BillingMonth == "" {
		return ErrMissingBillingMonth
	}
	if len(invoice.Items) == 0 {
		return ErrNoInvoiceItems
	}
	for _, item := range invoice.Items {
		if item.Type == "" || item.UnitPrice <= 0 || item.Quantity <= 0 {
			return ErrInvalidInvoiceItem
		}
		if math.IsInf(item.UnitPrice, 0) || math.IsNaN(item.UnitPrice) {
			return ErrInvalidInvoiceItem
		}
	}
	return nil
}

// ForContract lists the billing line items of one contract.
func (s *InvoiceService) ForContract(ctx context.Context, contractID string) ([]models.Invoice, error) {
	return s.gateway.ContractInvoices(ctx, contractID)
}

// Save validates and creates or updates the invoice. The submitted total is
// always the recomputed item sum; a server-stored total is never trusted on
// this path.
func (s *InvoiceService) Save(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	if err := ValidateInvoice(invoice); err != nil {
		return nil, err
	}

	var saved *models.Invoice
	var err error
	if invoice.ID == "" {
		saved, err = s.gateway.CreateInvoice(ctx, invoice)
	} else {
		saved, err = s.gateway.UpdateInvoice(ctx, invoice)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("contract_id", invoice.ContractID).Msg("save invoice failed")
		return nil, err
	}

	_ = s.eventBus.PublishJSON(events.EventInvoiceSaved, map[string]interface{}{
		"invoice_id":    saved.ID,
		"contract_id":   saved.ContractID,
		"billing_month": saved.BillingMonth,
		"total":         invoice.Total(),
	})

	return saved, nil
}

// Delete removes one invoice.
func (s *InvoiceService) Delete(ctx context.Context, invoiceID string) error {
	if err := s.gateway.DeleteInvoice(ctx, invoiceID); err != nil {
		return err
	}
	_ = s.eventBus.PublishJSON(events.EventInvoiceDeleted, map[string]interface{}{
		"invoice_id": invoiceID,
	})
	return nil
}
