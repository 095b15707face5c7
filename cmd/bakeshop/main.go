// Package main is the entry point for the bakeshop theme server. The root
// command groups the server, the migration runner, and the offline theme
// pack tools.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bakeshop",
		Short: "Bakery storefront theme server",
		Long: `bakeshop serves a bakery storefront whose look is driven by stored
design-token themes. Themes are edited through a token-protected JSON API
or imported from theme packs.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.AddCommand(newServeCmd(), newMigrateCmd(), newCompileCmd(), newHashTokenCmd())

	return cmd
}
