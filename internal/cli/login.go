package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/auth"
	"github.com/evcraddock/portfolio/internal/client"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <nickname>",
		Short: "Log in and store the session",
		Long:  "Opens a session on the server under the given nickname and stores it in the config file.",
		Args:  cobra.ExactArgs(1),
		RunE:  runLogin,
	}
}

func runLogin(cmd *cobra.Command, args []string) error {
	nickname, err := auth.ValidateNickname(args[0])
	if err != nil {
		return err
	}

	session, err := client.New(getServerURL()).Login(cmd.Context(), nickname)
	if err != nil {
		return err
	}

	// Load existing config to preserve other fields
	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}

	cfg.Session = session
	if flagServer != "" {
		cfg.ServerURL = flagServer
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged in as %s.\n", nickname)
	return nil
}
