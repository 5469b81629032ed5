package cli

import (
	"fmt"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/spf13/cobra"
)

func roomsCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Browse and manage room listings",
	}

	cmd.AddCommand(roomsListCmd(app), roomsShowCmd(app), roomsSearchCmd(app), roomsStatusCmd(app))
	return cmd
}

func roomsListCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			rooms, err := a.Client.ListRooms(ctx)
			if err != nil {
				// Fall back to the last snapshot when the API is unreachable.
				var cached []models.Room
				fetchedAt, loadErr := a.Journal.LoadSnapshot(ctx, "rooms", &cached)
				if loadErr != nil {
					return err
				}
				fmt.Printf("API unreachable, showing snapshot from %s\n", fetchedAt.Format("02.01.2006 15:04"))
				printRooms(cached)
				return nil
			}

			if snapErr := a.Journal.SnapshotList(ctx, "rooms", rooms); snapErr != nil {
				a.Logger.Warn().Err(snapErr).Msg("room snapshot write failed")
			}
			printRooms(rooms)
			return nil
		},
	}
}

func roomsShowCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <room-id>",
		Short: "Show one room with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			room, err := a.Client.GetRoom(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", room.Name)
			fmt.Printf("Địa chỉ:    %s\n", room.Address)
			fmt.Printf("Giá:        %.0f VND/tháng\n", room.Price)
			if room.Area > 0 {
				fmt.Printf("Diện tích:  %.1f m2\n", room.Area)
			}
			fmt.Printf("Trạng thái: %s\n", models.StatusLabel(room.Status))
			if room.Description != "" {
				fmt.Printf("\n%s\n", room.Description)
			}

			reviews, err := a.Client.RoomReviews(ctx, room.ID)
			if err != nil {
				a.Logger.Warn().Err(err).Msg("load reviews failed")
				return nil
			}
			if len(reviews) > 0 {
				fmt.Printf("\nĐánh giá (%d):\n", len(reviews))
				for _, r := range reviews {
					fmt.Printf("  %d/5  %s\n", r.Rating, r.Comment)
				}
			}
			return nil
		},
	}
}

func roomsSearchCmd(app func() *App) *cobra.Command {
	var keyword, address string
	var minPrice, maxPrice float64

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search rooms by keyword, address and price range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			filter := &models.RoomSearch{
				Keyword:  keyword,
				Address:  address,
				MinPrice: minPrice,
				MaxPrice: maxPrice,
				Limit:    models.DefaultPageSize,
			}
			rooms, err := app().Client.SearchRooms(ctx, filter)
			if err != nil {
				return err
			}
			printRooms(rooms)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyword, "keyword", "", "free text search")
	cmd.Flags().StringVar(&address, "address", "", "address filter")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum monthly price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum monthly price")
	return cmd
}

func roomsStatusCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <room-id> <status>",
		Short: "Update a room's status (host)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			if err := app().Client.UpdateRoomStatus(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Room status updated")
			return nil
		},
	}
}

func printRooms(rooms []models.Room) {
	if len(rooms) == 0 {
		fmt.Println("No rooms found")
		return
	}
	for _, r := range rooms {
		fmt.Printf("%-12s  %-30s  %12.0f VND  %s\n", r.ID, r.Name, r.Price, models.StatusLabel(r.Status))
	}
}
