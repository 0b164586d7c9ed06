package cli

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/client"
	"github.com/evcraddock/portfolio/internal/feed"
)

func newCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `comment "text"`,
		Short: "Post a comment",
		Long:  "Post a comment to the About page. Requires 'pf login' first.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runComment,
	}
}

func runComment(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	sub := feed.NewSubmitter(newAPIClient())
	if err := sub.Submit(cmd.Context(), text); err != nil {
		var fe *client.FetchError
		if errors.As(err, &fe) && fe.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w (run 'pf login <nickname>')", err)
		}
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]string{"status": "ok", "text": strings.TrimSpace(text)})
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Comment posted.")
	return nil
}
