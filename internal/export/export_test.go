package export

import (
	"io"
	"testing"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestExporter(t *testing.T) *Exporter {
	logger := zerolog.New(io.Discard)
	return New(t.TempDir(), &logger)
}

func TestContractsExport(t *testing.T) {
	e := newTestExporter(t)

	contracts := []models.Contract{
		{
			ID:        "c-1",
			RoomID:    "room-1",
			TenantID:  "tenant-1",
			Duration:  3,
			RentPrice: 4500000,
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Status:    models.ContractActive,
		},
	}

	path, err := e.Contracts(contracts)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Hợp đồng", "H2")
	require.NoError(t, err)
	assert.Equal(t, "Đang hiệu lực", got)

	got, err = f.GetCellValue("Hợp đồng", "F2")
	require.NoError(t, err)
	assert.Equal(t, "01.01.2024", got)
}

func TestInvoicesExportTotals(t *testing.T) {
	e := newTestExporter(t)

	invoices := []models.Invoice{
		{
			ID:           "i-1",
			ContractID:   "c-1",
			BillingMonth: "2024-03",
			Status:       models.InvoiceUnpaid,
			Items: []models.InvoiceItem{
				{Type: models.ItemRoom, UnitPrice: 1500000, Quantity: 1},
				{Type: models.ItemElectricity, UnitPrice: 3500, Quantity: 100},
			},
		},
		{
			ID:           "i-2",
			ContractID:   "c-1",
			BillingMonth: "2024-04",
			Status:       models.InvoicePaid,
			Items: []models.InvoiceItem{
				{Type: models.ItemRoom, UnitPrice: 1500000, Quantity: 1},
			},
		},
	}

	path, err := e.Invoices(invoices)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Hóa đơn", "E2")
	require.NoError(t, err)
	assert.Equal(t, "1850000", got)

	// Grand total row below the list.
	got, err = f.GetCellValue("Hóa đơn", "E4")
	require.NoError(t, err)
	assert.Equal(t, "3350000", got)
}

func TestStatisticsExport(t *testing.T) {
	e := newTestExporter(t)

	dash := &service.Dashboard{
		Stats: &models.Statistics{
			TotalRooms:    10,
			RentedRooms:   5,
			TotalBookings: 8,
			TotalRevenue:  15000000,
			MonthlyRevenue: []models.MonthRevenue{
				{Month: "2024-01", Revenue: 15000000},
			},
		},
		OccupancyRate: 0.5,
		RevenueChart:  []service.ChartPoint{{Label: "2024-01", Value: 15000000}},
	}

	path, err := e.Statistics(dash,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Thống kê", "A1")
	require.NoError(t, err)
	assert.Contains(t, got, "01.01.2024")
}
