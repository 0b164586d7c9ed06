package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/feed"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and login status",
		Long:  "Tests the connection to the server and asks it whether the stored session is logged in.",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

type statusOutput struct {
	Server    string `json:"server"`
	Reachable bool   `json:"reachable"`
	LoggedIn  bool   `json:"logged_in"`
	AuthURL   string `json:"auth_url,omitempty"`
	Error     string `json:"error,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	st := statusOutput{Server: getServerURL()}

	home, err := newAPIClient().HomeURL(cmd.Context())
	if err != nil {
		st.Error = err.Error()
	} else {
		state := feed.LoginStateFromHome(home)
		st.Reachable = true
		st.LoggedIn = state.LoggedIn
		st.AuthURL = state.AuthURL
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), st)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Server:  %s\n", st.Server)
	switch {
	case !st.Reachable:
		fmt.Fprintf(w, "Status:  ✗ cannot reach server (%s)\n", st.Error)
	case st.LoggedIn:
		fmt.Fprintln(w, "Status:  ✓ connected and logged in")
	default:
		fmt.Fprintln(w, "Status:  ✓ connected, not logged in")
		fmt.Fprintln(w, "\nRun 'pf login <nickname>' to post comments.")
	}
	return nil
}
