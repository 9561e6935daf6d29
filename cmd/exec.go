package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	execConfidence float64
	execDryRun     bool
)

// NewExecCmd returns the command for dispatching a single typed transcript.
func NewExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <phrase>...",
		Short: "Run one voice command from the command line",
		Long: `Run a single phrase through the voice command pipeline as if it had been
spoken. Useful for trying out the grammar and for shell bindings.

Examples:
  voxmux exec window 3
  voxmux exec "split vertical"
  voxmux exec --dry-run third window`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			handler, mock, err := buildHandler(cfg, execDryRun)
			if err != nil {
				return err
			}

			transcript := strings.Join(args, " ")
			result := handler.Handle(context.Background(), transcript, execConfidence)
			printResult(result, transcript)

			if execDryRun && mock != nil {
				for _, command := range mock.Commands {
					fmt.Printf("  would run: %s\n", command)
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&execConfidence, "confidence", 1.0, "Recognition confidence to report for the phrase")
	cmd.Flags().BoolVar(&execDryRun, "dry-run", false, "Print the tmux commands instead of running them")

	return cmd
}
