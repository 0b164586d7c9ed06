package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/feed"
)

// feedMarkup is the container the terminal feed renders into.
const feedMarkup = `<html><body><ul id="history"></ul></body></html>`

func newCommentsCmd() *cobra.Command {
	var (
		replace bool
		asHTML  bool
		watch   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Load and render the comment feed",
		Long: `Fetch the comment list from the server and render it the way the About page does.

With --watch the feed is reloaded at the given interval into the same container.
In append mode (the default) every reload adds the full list again; --replace
(or render_mode: replace in the config) clears the container first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComments(cmd, replace, asHTML, watch)
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "clear previously rendered comments on reload")
	cmd.Flags().BoolVar(&asHTML, "html", false, "print the rendered container as HTML")
	cmd.Flags().DurationVar(&watch, "watch", 0, "reload at this interval until interrupted")

	return cmd
}

func runComments(cmd *cobra.Command, replace, asHTML bool, watch time.Duration) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := renderOptions(cfg, replace)
	if err != nil {
		return err
	}

	page, err := feed.ParsePage(strings.NewReader(feedMarkup))
	if err != nil {
		return err
	}
	history, err := page.Element(feed.HistoryID)
	if err != nil {
		return err
	}

	r := feed.NewRenderer(newAPIClient(), history, opts...)
	out := cmd.OutOrStdout()
	load := func(ctx context.Context) error {
		res, err := r.LoadComments(ctx)
		if err != nil {
			return err
		}
		return printFeed(out, history, res, asHTML)
	}

	ctx := cmd.Context()
	if watch <= 0 {
		return load(ctx)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	ticker := time.NewTicker(watch)
	defer ticker.Stop()
	for {
		if err := load(ctx); err != nil && ctx.Err() == nil {
			// The container is untouched; keep watching.
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

type feedOutput struct {
	Rendered int      `json:"rendered"`
	Cleared  int      `json:"cleared"`
	Entries  []string `json:"entries"`
}

// printFeed prints the container after a load.
func printFeed(w io.Writer, history *feed.Element, res feed.Result, asHTML bool) error {
	if isJSON() {
		return printJSON(w, feedOutput{Rendered: res.Rendered, Cleared: res.Cleared, Entries: history.Entries()})
	}
	if asHTML {
		s, err := history.HTML()
		if err != nil {
			return fmt.Errorf("rendering feed: %w", err)
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}
	return printEntries(w, history.Entries())
}
