package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/spf13/cobra"
)

func invoicesCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Manage monthly invoices on a contract",
	}

	cmd.AddCommand(invoicesListCmd(app), invoicesSaveCmd(app), invoicesDeleteCmd(app))
	return cmd
}

func invoicesListCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <contract-id>",
		Short: "List invoices on a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			invoices, err := app().Invoices.ForContract(ctx, args[0])
			if err != nil {
				return err
			}

			if len(invoices) == 0 {
				fmt.Println("No invoices found")
				return nil
			}
			for _, inv := range invoices {
				fmt.Printf("%-12s  %s  %2d mục  %12.0f VND  %s\n",
					inv.ID, inv.BillingMonth, len(inv.Items), inv.Total(),
					models.StatusLabel(inv.Status))
			}
			return nil
		},
	}
}

// parseItem turns "type:unitPrice:quantity[:note]" into a line item.
func parseItem(raw string) (models.InvoiceItem, error) {
	parts := strings.SplitN(raw, ":", 4)
	if len(parts) < 3 {
		return models.InvoiceItem{}, fmt.Errorf("invalid item %q, want type:unitPrice:quantity[:note]", raw)
	}

	unitPrice, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return models.InvoiceItem{}, fmt.Errorf("invalid unit price in %q", raw)
	}
	quantity, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return models.InvoiceItem{}, fmt.Errorf("invalid quantity in %q", raw)
	}

	item := models.InvoiceItem{Type: parts[0], UnitPrice: unitPrice, Quantity: quantity}
	if len(parts) == 4 {
		item.Note = parts[3]
	}
	return item, nil
}

func invoicesSaveCmd(app func() *App) *cobra.Command {
	var invoiceID, contractID, month, note string
	var rawItems []string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update an invoice",
		Long:  `Creates an invoice when --id is empty, updates it otherwise. Items are passed as repeated --item flags in the form type:unitPrice:quantity[:note], e.g. --item electricity:3500:120.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			items := make([]models.InvoiceItem, 0, len(rawItems))
			for _, raw := range rawItems {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				items = append(items, item)
			}

			invoice := &models.Invoice{
				ID:           invoiceID,
				ContractID:   contractID,
				BillingMonth: month,
				Items:        items,
				Note:         note,
			}

			saved, err := app().Invoices.Save(ctx, invoice)
			if err != nil {
				return err
			}

			fmt.Printf("Invoice %s saved, total %.0f VND\n", saved.ID, invoice.Total())
			return nil
		},
	}

	cmd.Flags().StringVar(&invoiceID, "id", "", "invoice id, empty to create")
	cmd.Flags().StringVar(&contractID, "contract", "", "contract id")
	cmd.Flags().StringVar(&month, "month", "", "billing month (YYYY-MM)")
	cmd.Flags().StringArrayVar(&rawItems, "item", nil, "line item type:unitPrice:quantity[:note], repeatable")
	cmd.Flags().StringVar(&note, "note", "", "invoice note")
	_ = cmd.MarkFlagRequired("contract")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

func invoicesDeleteCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <invoice-id>",
		Short: "Delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			if err := app().Invoices.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Invoice deleted")
			return nil
		},
	}
}
