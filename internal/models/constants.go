package models

// Booking statuses as the backend reports them.
const (
	BookingPending   = "pending"
	BookingApproved  = "approved"
	BookingRejected  = "rejected"
	BookingCancelled = "cancelled"
)

// Contract statuses.
const (
	ContractPending    = "pending"
	ContractActive     = "active"
	ContractExpired    = "expired"
	ContractTerminated = "terminated"
	ContractCancel     = "cancel"
)

// Invoice statuses.
const (
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoiceUnpaid  = "unpaid"
)

// Roles.
const (
	RoleTenant = "tenant"
	RoleHost   = "host"
	RoleAdmin  = "admin"
)

// Invoice line item types.
const (
	ItemRoom        = "room"
	ItemElectricity = "electricity"
	ItemWater       = "water"
	ItemService     = "service"
	ItemOther       = "other"
)

const (
	// DefaultSessionTTL is how long a stored session lives.
	DefaultSessionTTL = 24 * 60 * 60 // 24 hours in seconds

	// DefaultPageSize is the CLI list page size.
	DefaultPageSize = 10

	// LoginRateLimit caps login attempts within LoginRateWindow seconds.
	LoginRateLimit  = 5
	LoginRateWindow = 60
)

// statusLabels maps backend status strings to the fixed Vietnamese labels
// shown to users.
var statusLabels = map[string]string{
	BookingPending:     "Chờ duyệt",
	BookingApproved:    "Đã duyệt",
	BookingRejected:    "Bị từ chối",
	BookingCancelled:   "Đã hủy",
	ContractActive:     "Đang hiệu lực",
	ContractExpired:    "Hết hạn",
	ContractTerminated: "Đã chấm dứt",
	ContractCancel:     "Yêu cầu hủy",
	InvoicePaid:        "Đã thanh toán",
	InvoiceUnpaid:      "Chưa thanh toán",
}

// StatusLabel returns the Vietnamese label for a known status and the
// literal fallback for anything else.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return "Không xác định"
}
