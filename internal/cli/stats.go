package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/service"

	"github.com/spf13/cobra"
)

func statsCmd(app func() *App) *cobra.Command {
	var fromStr, toStr string
	var asAdmin bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the statistics dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			from, to, err := parseRange(fromStr, toStr)
			if err != nil {
				return err
			}

			var dash *service.Dashboard
			if asAdmin {
				dash, err = a.Stats.AdminDashboard(ctx, from, to)
			} else {
				dash, err = a.Stats.HostDashboard(ctx, from, to)
			}
			if err != nil {
				return err
			}

			printDashboard(dash)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "range start (YYYY-MM-DD), defaults to 30 days ago")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&asAdmin, "admin", false, "system-wide dashboard instead of your own rooms")
	return cmd
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	var err error
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q, use YYYY-MM-DD", fromStr)
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q, use YYYY-MM-DD", toStr)
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("range end %s is before start %s", to.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	return from, to, nil
}

func printDashboard(dash *service.Dashboard) {
	fmt.Printf("Tổng số phòng:      %d\n", dash.Stats.TotalRooms)
	fmt.Printf("Phòng đã thuê:      %d\n", dash.Stats.RentedRooms)
	fmt.Printf("Tỷ lệ lấp đầy:      %.0f%%\n", dash.OccupancyRate*100)
	fmt.Printf("Yêu cầu thuê:       %d\n", dash.Stats.TotalBookings)
	fmt.Printf("Tỷ lệ duyệt:        %.0f%%\n", dash.ApprovalRate*100)
	fmt.Printf("Hợp đồng hiệu lực:  %d\n", dash.Stats.ActiveContracts)
	fmt.Printf("Tổng doanh thu:     %.0f VND\n", dash.Stats.TotalRevenue)

	if len(dash.RevenueChart) == 0 {
		return
	}

	var max float64
	for _, p := range dash.RevenueChart {
		if p.Value > max {
			max = p.Value
		}
	}

	fmt.Println("\nDoanh thu theo tháng:")
	for _, p := range dash.RevenueChart {
		width := 0
		if max > 0 {
			width = int(p.Value / max * 40)
		}
		fmt.Printf("  %s  %-40s  %.0f\n", p.Label, strings.Repeat("█", width), p.Value)
	}
}
