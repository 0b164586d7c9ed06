package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printEntries prints rendered comment texts, one per entry.
func printEntries(w io.Writer, entries []string) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No comments.")
		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "- %s\n", e); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d comments\n", len(entries))
	return err
}
