package domain

import (
	"context"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
)

// Gateway is the slice of the marketplace API the orchestration flows need.
// The full client carries more endpoints; services depend only on this.
type Gateway interface {
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)

	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListHostBookings(ctx context.Context) ([]models.Booking, error)
	ApproveBooking(ctx context.Context, bookingID string) error
	RejectBooking(ctx context.Context, bookingID string) error

	ListContracts(ctx context.Context) ([]models.Contract, error)
	ListHostContracts(ctx context.Context) ([]models.Contract, error)
	ListTenantContracts(ctx context.Context) ([]models.Contract, error)
	CreateContract(ctx context.Context, input *models.ContractInput) (*models.Contract, error)
	CancelContract(ctx context.Context, contractID string) error
	TerminateContract(ctx context.Context, contractID string) error

	ContractInvoices(ctx context.Context, contractID string) ([]models.Invoice, error)
	UserInvoices(ctx context.Context, userID string) ([]models.Invoice, error)
	CreateInvoice(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error

	CreateVNPayPayment(ctx context.Context, req models.PayRequest) (*models.PayResponse, error)
	CreateVNPayInvoicePayment(ctx context.Context, req models.PayRequest) (*models.PayResponse, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)

	AdminStatistics(ctx context.Context, from, to time.Time) (*models.Statistics, error)
	HostStatistics(ctx context.Context, from, to time.Time) (*models.Statistics, error)
}

// SessionRepository holds the one client session: bearer token plus profile
// snapshot. Implementations: redis, in-memory, failover.
type SessionRepository interface {
	GetSession(ctx context.Context) (*models.Session, error)
	SetSession(ctx context.Context, session *models.Session) error
	ClearSession(ctx context.Context) error
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Journal records performed actions and list snapshots locally.
type Journal interface {
	RecordAction(ctx context.Context, action *models.Action) error
	RecentActions(ctx context.Context, limit int) ([]*models.Action, error)
	SnapshotList(ctx context.Context, kind string, payload interface{}) error
	LoadSnapshot(ctx context.Context, kind string, out interface{}) (time.Time, error)
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

type BookingService interface {
	PendingBookings(ctx context.Context) ([]models.Booking, error)
	Approve(ctx context.Context, booking *models.Booking, startDate time.Time, terms string) (*models.Contract, error)
	Reject(ctx context.Context, bookingID string) error
}

type ContractService interface {
	Create(ctx context.Context, input *models.ContractInput) (*models.Contract, error)
	List(ctx context.Context, role string) ([]models.Contract, error)
	Cancel(ctx context.Context, contractID string) ([]models.Contract, error)
	Terminate(ctx context.Context, contractID string) ([]models.Contract, error)
}

type InvoiceService interface {
	ForContract(ctx context.Context, contractID string) ([]models.Invoice, error)
	Save(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	Delete(ctx context.Context, invoiceID string) error
}

type PaymentService interface {
	CheckoutContract(ctx context.Context, contract *models.Contract, amount float64, note string) (string, error)
	CheckoutInvoice(ctx context.Context, invoice *models.Invoice, note string) (string, error)
	History(ctx context.Context) ([]models.Payment, error)
}
