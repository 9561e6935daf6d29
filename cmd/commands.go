package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/voxmux/voxmux/pkg/grammar"
)

var commandsJSON bool

// NewCommandsCmd returns the command that renders the grammar catalog. The
// listing is generated from the same definitions the matcher compiles, so it
// can never drift from what is actually recognized.
func NewCommandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List every recognized voice command",
		RunE: func(cmd *cobra.Command, args []string) error {
			if commandsJSON {
				data, err := json.MarshalIndent(grammar.Catalog(), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal catalog to JSON: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}
			renderCatalog(os.Stdout, grammar.Catalog())
			return nil
		},
	}

	cmd.Flags().BoolVar(&commandsJSON, "json", false, "Output the catalog in JSON format")

	return cmd
}

func renderCatalog(w io.Writer, defs []grammar.CommandDefinition) {
	for _, def := range defs {
		fmt.Fprintf(w, "%s\n", color.CyanString(string(def.Intent)))
		for _, pattern := range def.Patterns {
			fmt.Fprintf(w, "  %s\n", pattern)
		}
		if len(def.Slots) > 0 {
			names := make([]string, 0, len(def.Slots))
			for name := range def.Slots {
				names = append(names, name)
			}
			sort.Strings(names)
			parts := make([]string, 0, len(names))
			for _, name := range names {
				spec := def.Slots[name]
				part := fmt.Sprintf("%s (%s)", name, spec.Kind)
				if spec.Default != "" {
					part += fmt.Sprintf(" default %s", spec.Default)
				}
				parts = append(parts, part)
			}
			fmt.Fprintf(w, "  slots: %s\n", strings.Join(parts, ", "))
		}
		fmt.Fprintf(w, "  e.g. %s\n\n", strings.Join(def.Examples, " / "))
	}
}
