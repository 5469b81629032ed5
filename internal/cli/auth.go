package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/spf13/cobra"
)

var errTooManyAttempts = errors.New("too many login attempts, try again later")

func loginCmd(app func() *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			a := app()

			window := time.Duration(models.LoginRateWindow) * time.Second
			allowed, err := a.Sessions.CheckRateLimit(ctx, "login:"+email, models.LoginRateLimit, window)
			if err != nil {
				a.Logger.Warn().Err(err).Msg("rate limit check failed, allowing attempt")
			} else if !allowed {
				return errTooManyAttempts
			}

			resp, err := a.Client.Login(ctx, email, password)
			if err != nil {
				return err
			}

			if err := a.Sessions.SetSession(ctx, &models.Session{Token: resp.Token, User: resp.User}); err != nil {
				return fmt.Errorf("store session: %w", err)
			}

			if resp.User != nil {
				fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
			} else {
				fmt.Println("Logged in")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			if err := app().Sessions.ClearSession(ctx); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func meCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			user, err := app().Client.Me(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("ID:    %s\n", user.ID)
			fmt.Printf("Name:  %s\n", user.Name)
			fmt.Printf("Email: %s\n", user.Email)
			fmt.Printf("Phone: %s\n", user.Phone)
			fmt.Printf("Role:  %s\n", user.Role)
			return nil
		},
	}
}
