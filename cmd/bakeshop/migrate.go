package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"bakeshop/internal/config"
	"bakeshop/internal/database"
	"bakeshop/internal/store"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			db, err := database.Connect(cmd.Context(), cfg.DSN())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return err
			}

			if seed, _ := cmd.Flags().GetBool("seed"); seed {
				if err := database.Seed(cmd.Context(), store.NewThemeStore(db)); err != nil {
					return fmt.Errorf("seeding: %w", err)
				}
			}
			slog.Info("migrations applied")
			return nil
		},
	}
	cmd.Flags().Bool("seed", false, "Insert the built-in theme when no theme exists")
	return cmd
}
