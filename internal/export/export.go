package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/service"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Exporter writes xlsx reports into a configured directory.
type Exporter struct {
	dir    string
	logger *zerolog.Logger
}

func New(dir string, logger *zerolog.Logger) *Exporter {
	return &Exporter{dir: dir, logger: logger}
}

const dateLayout = "02.01.2006"

// Contracts writes one row per contract with the Vietnamese status label.
func (e *Exporter) Contracts(contracts []models.Contract) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Hợp đồng"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"ID", "Phòng", "Người thuê", "Thời hạn (tháng)", "Tiền thuê",
		"Ngày bắt đầu", "Ngày kết thúc", "Trạng thái",
	}
	writeHeaderRow(f, sheet, headers)

	for i, c := range contracts {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), c.ID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.RoomID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), c.TenantID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), c.Duration)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), c.RentPrice)
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), c.StartDate.Format(dateLayout))
		_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), c.EndDate.Format(dateLayout))
		_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", row), models.StatusLabel(c.Status))
	}

	_ = f.SetColWidth(sheet, "A", "C", 20)
	_ = f.SetColWidth(sheet, "D", "H", 16)
	_ = f.DeleteSheet("Sheet1")

	return e.save(f, fmt.Sprintf("contracts_%s.xlsx", time.Now().Format("2006-01-02_15-04-05")))
}

// Invoices writes one row per invoice; the amount column is always the
// recomputed line item sum.
func (e *Exporter) Invoices(invoices []models.Invoice) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Hóa đơn"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Hợp đồng", "Tháng", "Số mục", "Tổng tiền", "Trạng thái"}
	writeHeaderRow(f, sheet, headers)

	var grand float64
	for i, inv := range invoices {
		row := i + 2
		total := inv.Total()
		grand += total
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), inv.ID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), inv.ContractID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), inv.BillingMonth)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), len(inv.Items))
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), total)
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), models.StatusLabel(inv.Status))
	}

	totalRow := len(invoices) + 2
	_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), "Tổng cộng")
	_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), grand)

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(sheet, fmt.Sprintf("D%d", totalRow), fmt.Sprintf("E%d", totalRow), style)

	_ = f.SetColWidth(sheet, "A", "B", 20)
	_ = f.SetColWidth(sheet, "C", "F", 16)
	_ = f.DeleteSheet("Sheet1")

	return e.save(f, fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("2006-01-02_15-04-05")))
}

// Statistics writes the KPI block and the monthly revenue table.
func (e *Exporter) Statistics(dash *service.Dashboard, from, to time.Time) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Thống kê"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Kỳ báo cáo: %s - %s",
		from.Format(dateLayout), to.Format(dateLayout)))
	_ = f.MergeCell(sheet, "A1", "B1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	kpis := []struct {
		label string
		value interface{}
	}{
		{"Tổng số phòng", dash.Stats.TotalRooms},
		{"Phòng đã thuê", dash.Stats.RentedRooms},
		{"Tỷ lệ lấp đầy", dash.OccupancyRate},
		{"Tổng yêu cầu thuê", dash.Stats.TotalBookings},
		{"Tỷ lệ duyệt", dash.ApprovalRate},
		{"Hợp đồng hiệu lực", dash.Stats.ActiveContracts},
		{"Tổng doanh thu", dash.Stats.TotalRevenue},
	}
	for i, kpi := range kpis {
		row := i + 3
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), kpi.label)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), kpi.value)
	}

	chartStart := len(kpis) + 5
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", chartStart), "Tháng")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", chartStart), "Doanh thu")
	for i, point := range dash.RevenueChart {
		row := chartStart + 1 + i
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), point.Label)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), point.Value)
	}

	_ = f.SetColWidth(sheet, "A", "A", 25)
	_ = f.SetColWidth(sheet, "B", "B", 20)
	_ = f.DeleteSheet("Sheet1")

	return e.save(f, fmt.Sprintf("statistics_%s.xlsx", time.Now().Format("2006-01-02_15-04-05")))
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) {
	style, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
		_ = f.SetCellStyle(sheet, cell, cell, style)
	}
}

func (e *Exporter) save(f *excelize.File, fileName string) (string, error) {
	filePath := filepath.Join(e.dir, fileName)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %v", err)
	}
	e.logger.Info().Str("file_path", filePath).Msg("Excel file created")
	return filePath, nil
}
