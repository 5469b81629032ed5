package api

import (
	"context"
	"net/url"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
)

const areaInvoices = "invoices"

func (c *Client) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.doGet(ctx, areaInvoices, "/invoices", &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) ContractInvoices(ctx context.Context, contractID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.doGet(ctx, areaInvoices, "/invoices/contract/"+url.PathEscape(contractID), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) UserInvoices(ctx context.Context, userID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.doGet(ctx, areaInvoices, "/invoices/user/"+url.PathEscape(userID), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) CreateInvoice(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	var created models.Invoice
	if err := c.doPost(ctx, areaInvoices, "/invoices", invoice, &created); err != nil {
		return nil, err
	}
	c.invalidateInvoices(ctx, invoice)
	return &created, nil
}

func (c *Client) UpdateInvoice(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	var updated models.Invoice
	if err := c.doPut(ctx, areaInvoices, "/invoices/"+url.PathEscape(invoice.ID), invoice, &updated); err != nil {
		return nil, err
	}
	c.invalidateInvoices(ctx, invoice)
	return &updated, nil
}

func (c *Client) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := c.doDelete(ctx, areaInvoices, "/invoices/"+url.PathEscape(invoiceID)); err != nil {
		return err
	}
	c.invalidate(ctx, "/invoices")
	return nil
}

func (c *Client) invalidateInvoices(ctx context.Context, invoice *models.Invoice) {
	paths := []string{"/invoices"}
	if invoice.ContractID != "" {
		paths = append(paths, "/invoices/contract/"+url.PathEscape(invoice.ContractID))
	}
	if invoice.UserID != "" {
		paths = append(paths, "/invoices/user/"+url.PathEscape(invoice.UserID))
	}
	c.invalidate(ctx, paths...)
}
