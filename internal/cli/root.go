// Package cli defines the cobra command tree for pf.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/client"
	"github.com/evcraddock/portfolio/internal/db"
	"github.com/evcraddock/portfolio/internal/logging"
)

var (
	flagFormat  string
	flagDB      string
	flagServer  string
	flagVerbose bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pf",
		Short:         "Portfolio About page and its comment feed",
		Long:          "Serve the portfolio About page, or read and post visitor comments from a terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), flagVerbose)
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.config/pf/portfolio.db)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "server URL (default: from config or http://localhost:8080)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newServeCmd(),
		newCommentsCmd(),
		newCommentCmd(),
		newGreetingCmd(),
		newStatusCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag or default path.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// newAPIClient creates an HTTP client for the portfolio backend.
func newAPIClient() *client.Client {
	return client.New(getServerURL(), client.WithSession(getSession()))
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
