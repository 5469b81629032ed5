package api

import (
	"context"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
)

const areaPayments = "payments"

// CreateVNPayPayment asks the backend for a gateway pay URL covering a
// contract amount. The client never touches card or gateway details.
func (c *Client) CreateVNPayPayment(ctx context.Context, req models.PayRequest) (*models.PayResponse, error) {
	var resp models.PayResponse
	if err := c.doPost(ctx, areaPayments, "/payments/vnpay/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateVNPayInvoicePayment is the invoice variant: req carries InvoiceID.
func (c *Client) CreateVNPayInvoicePayment(ctx context.Context, req models.PayRequest) (*models.PayResponse, error) {
	var resp models.PayResponse
	if err := c.doPost(ctx, areaPayments, "/payments/vnpay/createInvoice", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPayments returns payment history; records are server-constructed.
func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.doGet(ctx, areaPayments, "/payments", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
