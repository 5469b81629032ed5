package cli

import (
	"fmt"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/spf13/cobra"
)

func payCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Start VNPay checkouts and view payment history",
	}

	cmd.AddCommand(payContractCmd(app), payInvoiceCmd(app), payHistoryCmd(app))
	return cmd
}

func payContractCmd(app func() *App) *cobra.Command {
	var amount float64
	var note string

	cmd := &cobra.Command{
		Use:   "contract <contract-id>",
		Short: "Get a VNPay pay URL for a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			contracts, err := a.Contracts.List(ctx, models.RoleTenant)
			if err != nil {
				return err
			}
			var contract *models.Contract
			for i := range contracts {
				if contracts[i].ID == args[0] {
					contract = &contracts[i]
					break
				}
			}
			if contract == nil {
				return fmt.Errorf("contract %s not found", args[0])
			}

			payURL, err := a.Payments.CheckoutContract(ctx, contract, amount, note)
			if err != nil {
				return err
			}

			fmt.Println("Open this URL to complete the payment:")
			fmt.Println(payURL)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in VND, defaults to the contract rent")
	cmd.Flags().StringVar(&note, "note", "", "note passed to the gateway")
	return cmd
}

func payInvoiceCmd(app func() *App) *cobra.Command {
	var contractID, note string

	cmd := &cobra.Command{
		Use:   "invoice <invoice-id>",
		Short: "Get a VNPay pay URL for a monthly invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			invoices, err := a.Invoices.ForContract(ctx, contractID)
			if err != nil {
				return err
			}
			var invoice *models.Invoice
			for i := range invoices {
				if invoices[i].ID == args[0] {
					invoice = &invoices[i]
					break
				}
			}
			if invoice == nil {
				return fmt.Errorf("invoice %s not found on contract %s", args[0], contractID)
			}

			payURL, err := a.Payments.CheckoutInvoice(ctx, invoice, note)
			if err != nil {
				return err
			}

			fmt.Println("Open this URL to complete the payment:")
			fmt.Println(payURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&contractID, "contract", "", "contract the invoice belongs to")
	cmd.Flags().StringVar(&note, "note", "", "note passed to the gateway")
	_ = cmd.MarkFlagRequired("contract")
	return cmd
}

func payHistoryCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List payment records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			payments, err := app().Payments.History(ctx)
			if err != nil {
				return err
			}

			if len(payments) == 0 {
				fmt.Println("No payments found")
				return nil
			}
			for _, p := range payments {
				ref := p.ContractID
				if p.InvoiceID != "" {
					ref = p.InvoiceID
				}
				fmt.Printf("%-12s  %-12s  %12.0f VND  %s  %s\n",
					p.ID, ref, p.Amount, p.CreatedAt.Format("02.01.2006"), models.StatusLabel(p.Status))
			}
			return nil
		},
	}
}
