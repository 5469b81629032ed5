package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/spf13/cobra"
)

func bookingsCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Review and decide booking requests",
	}

	cmd.AddCommand(bookingsListCmd(app), bookingsApproveCmd(app), bookingsRejectCmd(app))
	return cmd
}

func bookingsListCmd(app func() *App) *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List booking requests on your rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			var bookings []models.Booking
			var err error
			if pendingOnly {
				bookings, err = a.Bookings.PendingBookings(ctx)
			} else {
				bookings, err = a.Client.ListHostBookings(ctx)
			}
			if err != nil {
				return err
			}

			if len(bookings) == 0 {
				fmt.Println("No bookings found")
				return nil
			}
			for _, b := range bookings {
				fmt.Printf("%-12s  phòng %-12s  %s - %s  %s\n",
					b.ID, b.RoomID,
					b.StartDate.Format("02.01.2006"), b.EndDate.Format("02.01.2006"),
					models.StatusLabel(b.Status))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "only requests awaiting a decision")
	return cmd
}

func bookingsApproveCmd(app func() *App) *cobra.Command {
	var startDate, terms string

	cmd := &cobra.Command{
		Use:   "approve <booking-id>",
		Short: "Approve a request and create the contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			booking, err := findBooking(ctx, a, args[0])
			if err != nil {
				return err
			}

			var start time.Time
			if startDate != "" {
				start, err = time.Parse("2006-01-02", startDate)
				if err != nil {
					return fmt.Errorf("invalid start date %q, use YYYY-MM-DD", startDate)
				}
			}

			contract, err := a.Bookings.Approve(ctx, booking, start, terms)
			if err != nil {
				return err
			}

			fmt.Printf("Booking approved, contract %s created\n", contract.ID)
			fmt.Printf("Thời hạn: %d tháng, tiền thuê %.0f VND\n", contract.Duration, contract.RentPrice)
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "contract start date (YYYY-MM-DD, defaults to the requested date)")
	cmd.Flags().StringVar(&terms, "terms", "", "contract terms text")
	return cmd
}

func bookingsRejectCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <booking-id>",
		Short: "Reject a booking request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			if err := app().Bookings.Reject(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Booking rejected")
			return nil
		},
	}
}

func findBooking(ctx context.Context, a *App, bookingID string) (*models.Booking, error) {
	bookings, err := a.Client.ListHostBookings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == bookingID {
			return &bookings[i], nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", bookingID)
}
