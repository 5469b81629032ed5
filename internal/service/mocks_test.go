package service

import (
	"context"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}
func (m *mockGateway) ListBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}
func (m *mockGateway) ListHostBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}
func (m *mockGateway) ApproveBooking(ctx context.Context, bookingID string) error {
	return m.Called(ctx, bookingID).Error(0)
}
func (m *mockGateway) RejectBooking(ctx context.Context, bookingID string) error {
	return m.Called(ctx, bookingID).Error(0)
}
func (m *mockGateway) ListContracts(ctx context.Context) ([]models.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contract), args.Error(1)
}
func (m *mockGateway) ListHostContracts(ctx context.Context) ([]models.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contract), args.Error(1)
}
func (m *mockGateway) ListTenantContracts(ctx context.Context) ([]models.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contract), args.Error(1)
}
func (m *mockGateway) CreateContract(ctx context.Context, input *models.ContractInput) (*models.Contract, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contract), args.Error(1)
}
func (m *mockGateway) CancelContract(ctx context.Context, contractID string) error {
	return m.Called(ctx, contractID).Error(0)
}
func (m *mockGateway) TerminateContract(ctx context.Context, contractID string) error {
	return m.Called(ctx, contractID).Error(0)
}
func (m *mockGateway) ContractInvoices(ctx context.Context, contractID string) ([]models.Invoice, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}
func (m *mockGateway) UserInvoices(ctx context.Context, userID string) ([]models.Invoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}
func (m *mockGateway) CreateInvoice(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}
func (m *mockGateway) UpdateInvoice(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}
func (m *mockGateway) DeleteInvoice(ctx context.Context, invoiceID string) error {
	return m.Called(ctx, invoiceID).Error(0)
}
func (m *mockGateway) CreateVNPayPayment(ctx context.Context, req models.PayRequest) (*models.PayResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PayResponse), args.Error(1)
}
func (m *mockGateway) CreateVNPayInvoicePayment(ctx context.Context, req models.PayRequest) (*models.PayResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PayResponse), args.Error(1)
}
func (m *mockGateway) ListPayments(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}
func (m *mockGateway) AdminStatistics(ctx context.Context, from, to time.Time) (*models.Statistics, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Statistics), args.Error(1)
}
func (m *mockGateway) HostStatistics(ctx context.Context, from, to time.Time) (*models.Statistics, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Statistics), args.Error(1)
}

type mockEventBus struct {
	mock.Mock
}

func (m *mockEventBus) PublishJSON(eventType string, payload interface{}) error {
	return m.Called(eventType, payload).Error(0)
}
