package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Pankaj72885/create-waskit/internal/config"
	"github.com/Pankaj72885/create-waskit/internal/registry"
)

// listEntry represents a template for display.
type listEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newListCmd() *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, _, err := loadCatalog(config.Settings())
			if err != nil {
				return err
			}

			entries := toEntries(catalog.List())
			if listJSON {
				return printListJSON(cmd, entries)
			}
			return printListTable(cmd, entries)
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	return cmd
}

func toEntries(descriptors []registry.Descriptor) []listEntry {
	entries := make([]listEntry, len(descriptors))
	for i, d := range descriptors {
		entries[i] = listEntry{ID: d.ID, Name: d.Name, Description: d.Description}
	}
	return entries
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Name, e.Description)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
