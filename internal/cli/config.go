package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/evcraddock/portfolio/internal/feed"
)

const defaultServerURL = "http://localhost:8080"

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	ServerURL  string `yaml:"server_url,omitempty"`
	Session    string `yaml:"session,omitempty"`
	RenderMode string `yaml:"render_mode,omitempty"`
	Timeout    string `yaml:"timeout,omitempty"`
}

// Set updates the field named by key after validating value.
func (c *CLIConfig) Set(key, value string) error {
	switch key {
	case "server_url":
		c.ServerURL = value
	case "session":
		c.Session = value
	case "render_mode":
		if _, ok := feed.ParseMode(value); !ok {
			return fmt.Errorf("render_mode must be append or replace, got %q", value)
		}
		c.RenderMode = value
	case "timeout":
		if value != "" {
			if _, err := time.ParseDuration(value); err != nil {
				return fmt.Errorf("invalid timeout %q: %w", value, err)
			}
		}
		c.Timeout = value
	default:
		return fmt.Errorf("unknown config key %q (server_url, session, render_mode, timeout)", key)
	}
	return nil
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pf", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getServerURL returns the server URL from the --server flag, env var, config, or default.
func getServerURL() string {
	if flagServer != "" {
		return flagServer
	}
	if v := os.Getenv("PF_SERVER_URL"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil && cfg.ServerURL != "" {
		return cfg.ServerURL
	}
	return defaultServerURL
}

// getSession returns the session id from env var or config.
func getSession() string {
	if v := os.Getenv("PF_SESSION"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil {
		return cfg.Session
	}
	return ""
}

// renderOptions turns the configured render mode and timeout into renderer options.
// replace forces ModeReplace regardless of config.
func renderOptions(cfg CLIConfig, replace bool) ([]feed.Option, error) {
	mode, ok := feed.ParseMode(cfg.RenderMode)
	if !ok {
		return nil, fmt.Errorf("invalid render_mode %q in config", cfg.RenderMode)
	}
	if replace {
		mode = feed.ModeReplace
	}
	opts := []feed.Option{feed.WithMode(mode)}

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q in config: %w", cfg.Timeout, err)
		}
		opts = append(opts, feed.WithTimeout(d))
	}
	return opts, nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change CLI settings",
		Long:  "Show or change the settings stored in ~/.config/pf/config.yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), cfg)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long:  "Set one of server_url, session, render_mode (append|replace) or timeout (e.g. 5s).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := saveConfig(cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s updated.\n", args[0])
			return nil
		},
	})

	return cmd
}
