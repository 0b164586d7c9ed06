package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/feed"
)

const greetingMarkup = `<html><body><h1 id="greeting"></h1></body></html>`

func newGreetingCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "greeting",
		Short: "Fetch and print the greeting",
		Long:  "Fetch a plain-text endpoint (default /greeting) and render it as the page heading.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreeting(cmd, path)
		},
	}

	cmd.Flags().StringVar(&path, "path", "/greeting", "endpoint to fetch")

	return cmd
}

func runGreeting(cmd *cobra.Command, path string) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := renderOptions(cfg, false)
	if err != nil {
		return err
	}

	page, err := feed.ParsePage(strings.NewReader(greetingMarkup))
	if err != nil {
		return err
	}
	heading, err := page.Element("greeting")
	if err != nil {
		return err
	}

	if err := feed.FetchAndRenderText(cmd.Context(), newAPIClient(), path, heading, opts...); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]string{"text": heading.Text()})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), heading.Text())
	return err
}
