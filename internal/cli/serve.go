package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/auth"
	"github.com/evcraddock/portfolio/internal/logging"
	"github.com/evcraddock/portfolio/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  "Start the HTTP server for the About page and its comment endpoints.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, port int) error {
	cfg := auth.ConfigFromEnv()
	logging.Setup(cmd.ErrOrStderr(), cfg.DevMode || flagVerbose)

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	srv, err := web.NewServer(database, cfg)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(port)
}
