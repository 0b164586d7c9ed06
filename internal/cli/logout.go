package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the stored session",
		Long:  "Ends the session on the server and removes it from the config file.",
		Args:  cobra.NoArgs,
		RunE:  runLogout,
	}
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Session == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
		return nil
	}

	if err := newAPIClient().Logout(cmd.Context()); err != nil {
		// The local session is dropped either way.
		slog.Warn("ending server session", "error", err)
	}

	cfg.Session = ""
	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Logged out. Session removed.")
	return nil
}
