package cli

import (
	"fmt"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/service"

	"github.com/spf13/cobra"
)

func exportCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data to xlsx files",
	}

	cmd.AddCommand(exportContractsCmd(app), exportInvoicesCmd(app), exportStatsCmd(app))
	return cmd
}

func exportContractsCmd(app func() *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Export your contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			contracts, err := a.Contracts.List(ctx, role)
			if err != nil {
				return err
			}

			path, err := a.Exporter.Contracts(contracts)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d contracts to %s\n", len(contracts), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "host", "tenant, host or admin")
	return cmd
}

func exportInvoicesCmd(app func() *App) *cobra.Command {
	var contractID string

	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Export the invoices of a contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			invoices, err := a.Invoices.ForContract(ctx, contractID)
			if err != nil {
				return err
			}

			path, err := a.Exporter.Invoices(invoices)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d invoices to %s\n", len(invoices), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&contractID, "contract", "", "contract id")
	_ = cmd.MarkFlagRequired("contract")
	return cmd
}

func exportStatsCmd(app func() *App) *cobra.Command {
	var fromStr, toStr string
	var asAdmin bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Export the statistics dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			from, to, err := parseRange(fromStr, toStr)
			if err != nil {
				return err
			}

			var dashboard *service.Dashboard
			if asAdmin {
				dashboard, err = a.Stats.AdminDashboard(ctx, from, to)
			} else {
				dashboard, err = a.Stats.HostDashboard(ctx, from, to)
			}
			if err != nil {
				return err
			}

			path, err := a.Exporter.Statistics(dashboard, from, to)
			if err != nil {
				return err
			}
			fmt.Printf("Exported statistics to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asAdmin, "admin", false, "system-wide statistics")
	return cmd
}
