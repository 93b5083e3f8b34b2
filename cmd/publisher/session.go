package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/customer-page-service/internal/adapter/session"
	"github.com/example/customer-page-service/internal/domain"
)

func newSessionCmd() *cobra.Command {
	var c domain.Customer
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Create a customer session in Redis and print its token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.ID == 0 || c.Email == "" {
				return errors.New("--id and --email are required")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Redis.URL == "" {
				return errors.New("redis.url is not configured")
			}

			store, err := session.NewRedisStore(cmd.Context(), cfg.Redis.URL, cfg.Redis.SessionTTL)
			if err != nil {
				return err
			}
			defer store.Close()

			token, err := store.Create(cmd.Context(), c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", cfg.HTTP.SessionCookie, token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&c.ID, "id", 0, "customer id")
	cmd.Flags().StringVar(&c.Email, "email", "", "customer email")
	cmd.Flags().StringVar(&c.FirstName, "first-name", "", "customer first name")
	cmd.Flags().StringVar(&c.LastName, "last-name", "", "customer last name")
	return cmd
}
