package api

import (
	"context"
	"net/url"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
)

const areaContracts = "contracts"

func (c *Client) ListContracts(ctx context.Context) ([]models.Contract, error) {
	var contracts []models.Contract
	if err := c.doGet(ctx, areaContracts, "/contracts", &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (c *Client) ListHostContracts(ctx context.Context) ([]models.Contract, error) {
	var contracts []models.Contract
	if err := c.doGet(ctx, areaContracts, "/contracts/host", &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (c *Client) ListTenantContracts(ctx context.Context) ([]models.Contract, error) {
	var contracts []models.Contract
	if err := c.doGet(ctx, areaContracts, "/contracts/tenant", &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (c *Client) CreateContract(ctx context.Context, input *models.ContractInput) (*models.Contract, error) {
	var created models.Contract
	if err := c.doPost(ctx, areaContracts, "/contracts", input, &created); err != nil {
		return nil, err
	}
	c.invalidateContracts(ctx)
	return &created, nil
}

// CancelContract is the tenant-initiated cancellation request: a single
// one-way PUT with no compensating action.
func (c *Client) CancelContract(ctx context.Context, contractID string) error {
	if err := c.doPut(ctx, areaContracts, "/contracts/"+url.PathEscape(contractID)+"/cancel", nil, nil); err != nil {
		return err
	}
	c.invalidateContracts(ctx)
	return nil
}

// TerminateContract is the host-side termination.
func (c *Client) TerminateContract(ctx context.Context, contractID string) error {
	if err := c.doPut(ctx, areaContracts, "/contracts/"+url.PathEscape(contractID)+"/terminated", nil, nil); err != nil {
		return err
	}
	c.invalidateContracts(ctx)
	return nil
}

func (c *Client) DeleteContract(ctx context.Context, contractID string) error {
	if err := c.doDelete(ctx, areaContracts, "/contracts/"+url.PathEscape(contractID)); err != nil {
		return err
	}
	c.invalidateContracts(ctx)
	return nil
}

func (c *Client) invalidateContracts(ctx context.Context) {
	c.invalidate(ctx, "/contracts", "/contracts/host", "/contracts/tenant")
}
