package service

import (
	"context"
	"io"
	"testing"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentService(t *testing.T) {
	gateway := new(mockGateway)
	bus := new(mockEventBus)
	logger := zerolog.New(io.Discard)
	svc := NewPaymentService(gateway, bus, &logger)
	ctx := context.Background()

	contract := &models.Contract{
		ID:        "c-1",
		TenantID:  "tenant-1",
		RentPrice: 4500000,
		Status:    models.ContractActive,
	}

	t.Run("CheckoutContractDefaultsToRentPrice", func(t *testing.T) {
		gateway.On("CreateVNPayPayment", ctx, models.PayRequest{
			TenantID:   "tenant-1",
			ContractID: "c-1",
			Amount:     4500000,
		}).Return(&models.PayResponse{PayURL: "https://pay.vnpay.vn/c-1"}, nil).Once()
		bus.On("PublishJSON", mock.Anything, mock.Anything).Return(nil).Once()

		url, err := svc.CheckoutContract(ctx, contract, 0, "")
		assert.NoError(t, err)
		assert.Equal(t, "https://pay.vnpay.vn/c-1", url)
		gateway.AssertExpectations(t)
	})

	t.Run("CheckoutContractRejectsBadAmount", func(t *testing.T) {
		_, err := svc.CheckoutContract(ctx, contract, -100, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("CheckoutInvoiceUsesItemTotal", func(t *testing.T) {
		invoice := &models.Invoice{
			ID:     "i-1",
			UserID: "tenant-1",
			Items: []models.InvoiceItem{
				{Type: models.ItemRoom, UnitPrice: 1500000, Quantity: 1},
				{Type: models.ItemElectricity, UnitPrice: 3500, Quantity: 100},
			},
		}

		gateway.On("CreateVNPayInvoicePayment", ctx, models.PayRequest{
			TenantID:  "tenant-1",
			InvoiceID: "i-1",
			Amount:    1850000,
		}).Return(&models.PayResponse{PayURL: "https://pay.vnpay.vn/i-1"}, nil).Once()
		bus.On("PublishJSON", mock.Anything, mock.Anything).Return(nil).Once()

		url, err := svc.CheckoutInvoice(ctx, invoice, "")
		assert.NoError(t, err)
		assert.Equal(t, "https://pay.vnpay.vn/i-1", url)
		gateway.AssertExpectations(t)
	})

	t.Run("CheckoutInvoiceRejectsEmptyItems", func(t *testing.T) {
		invoice := &models.Invoice{ID: "i-2", UserID: "tenant-1"}

		_, err := svc.CheckoutInvoice(ctx, invoice, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
		gateway.AssertNotCalled(t, "CreateVNPayInvoicePayment", ctx, models.PayRequest{
			TenantID:  "tenant-1",
			InvoiceID: "i-2",
		})
	})

	t.Run("History", func(t *testing.T) {
		payments := []models.Payment{{ID: "p-1", Amount: 4500000}}
		gateway.On("ListPayments", ctx).Return(payments, nil).Once()

		got, err := svc.History(ctx)
		assert.NoError(t, err)
		assert.Equal(t, payments, got)
	})
}
