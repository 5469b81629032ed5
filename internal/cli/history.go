package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func historyCmd(app func() *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show actions this client performed, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			actions, err := app().Journal.RecentActions(ctx, limit)
			if err != nil {
				return err
			}

			if len(actions) == 0 {
				fmt.Println("No recorded actions")
				return nil
			}
			for _, action := range actions {
				line := fmt.Sprintf("%s  %-20s  %s",
					action.CreatedAt.Format("02.01.2006 15:04:05"), action.Kind, action.EntityID)
				if action.Amount > 0 {
					line += fmt.Sprintf("  %.0f VND", action.Amount)
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of rows")
	return cmd
}
