package cli

import (
	"fmt"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/spf13/cobra"
)

func contractsCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "View and manage rental contracts",
	}

	cmd.AddCommand(
		contractsListCmd(app),
		contractsCreateCmd(app),
		contractsCancelCmd(app),
		contractsTerminateCmd(app),
	)
	return cmd
}

func contractsListCmd(app func() *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contracts for your role",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			contracts, err := a.Contracts.List(ctx, role)
			if err != nil {
				var cached []models.Contract
				fetchedAt, loadErr := a.Journal.LoadSnapshot(ctx, "contracts", &cached)
				if loadErr != nil {
					return err
				}
				fmt.Printf("API unreachable, showing snapshot from %s\n", fetchedAt.Format("02.01.2006 15:04"))
				printContracts(cached)
				return nil
			}

			if snapErr := a.Journal.SnapshotList(ctx, "contracts", contracts); snapErr != nil {
				a.Logger.Warn().Err(snapErr).Msg("contract snapshot write failed")
			}
			printContracts(contracts)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", models.RoleTenant, "tenant, host or admin")
	return cmd
}

func contractsCreateCmd(app func() *App) *cobra.Command {
	var roomID, tenantID, startDate, terms string
	var duration int
	var rentPrice float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contract manually (host)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			start, err := time.Parse("2006-01-02", startDate)
			if err != nil {
				return fmt.Errorf("invalid start date %q, use YYYY-MM-DD", startDate)
			}

			contract, err := app().Contracts.Create(ctx, &models.ContractInput{
				RoomID:    roomID,
				TenantID:  tenantID,
				Duration:  duration,
				RentPrice: rentPrice,
				Terms:     terms,
				StartDate: start,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Contract %s created, ends %s\n", contract.ID, contract.EndDate.Format("02.01.2006"))
			return nil
		},
	}

	cmd.Flags().StringVar(&roomID, "room", "", "room id")
	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant id")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in whole months")
	cmd.Flags().Float64Var(&rentPrice, "rent", 0, "total rent for the duration, VND")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&terms, "terms", "", "contract terms text")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("duration")
	_ = cmd.MarkFlagRequired("rent")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func contractsCancelCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <contract-id>",
		Short: "Request cancellation of your contract (tenant)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			contracts, err := app().Contracts.Cancel(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println("Cancellation requested")
			printContracts(contracts)
			return nil
		},
	}
}

func contractsTerminateCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "terminate <contract-id>",
		Short: "Terminate a contract (host)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			contracts, err := app().Contracts.Terminate(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println("Contract terminated")
			printContracts(contracts)
			return nil
		},
	}
}

func printContracts(contracts []models.Contract) {
	if len(contracts) == 0 {
		fmt.Println("No contracts found")
		return
	}
	for _, c := range contracts {
		fmt.Printf("%-12s  phòng %-12s  %2d tháng  %12.0f VND  %s - %s  %s\n",
			c.ID, c.RoomID, c.Duration, c.RentPrice,
			c.StartDate.Format("02.01.2006"), c.EndDate.Format("02.01.2006"),
			models.StatusLabel(c.Status))
	}
}
