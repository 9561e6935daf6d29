package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// transcriptEvent is the hand-off format of the transcript-delivery side:
// one JSON object per line on stdin.
type transcriptEvent struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

var listenQuiet bool

// NewListenCmd returns the command that consumes transcripts from stdin.
func NewListenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Handle transcripts streamed on stdin",
		Long: `Read transcripts from stdin and dispatch each one. Input is one JSON
object per line, {"text": "...", "confidence": 0.95}; a line that is not
JSON is treated as plain text with confidence 1.0.

Example:
  stt --stream | voxmux listen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			handler, _, err := buildHandler(cfg, false)
			if err != nil {
				return err
			}

			ctx := context.Background()
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				event := transcriptEvent{Confidence: 1.0}
				if strings.HasPrefix(line, "{") {
					if err := json.Unmarshal([]byte(line), &event); err != nil {
						fmt.Fprintf(os.Stderr, "skipping malformed line: %v\n", err)
						continue
					}
				} else {
					event.Text = line
				}

				result := handler.Handle(ctx, event.Text, event.Confidence)
				if !listenQuiet {
					printResult(result, event.Text)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&listenQuiet, "quiet", "q", false, "Suppress per-transcript output")

	return cmd
}
