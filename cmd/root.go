package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/voxmux/voxmux/pkg/version"
	"github.com/voxmux/voxmux/pkg/config"
	"github.com/voxmux/voxmux/pkg/dispatch"
	"github.com/voxmux/voxmux/pkg/exec"
	"github.com/voxmux/voxmux/pkg/grammar"
	"github.com/voxmux/voxmux/pkg/pipeline"
	"github.com/voxmux/voxmux/pkg/speech"
	"github.com/voxmux/voxmux/pkg/tmux"
)

var configPath string

// NewRootCmd returns the voxmux root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "voxmux",
		Short:         "Voice control for tmux",
		Long:          `voxmux turns transcribed speech into tmux operations: say "window 3", "split vertical", or "close pane" and the matching tmux command runs, with spoken confirmation.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the voxmux config file")

	rootCmd.AddCommand(NewListenCmd())
	rootCmd.AddCommand(NewExecCmd())
	rootCmd.AddCommand(NewCommandsCmd())
	rootCmd.AddCommand(NewSessionsCmd())
	rootCmd.AddCommand(NewWindowsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// loadConfig loads the effective configuration and applies its log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	return cfg, nil
}

// buildHandler assembles the full transcript pipeline. With dryRun set, all
// external commands are recorded on the returned mock instead of executed,
// and feedback is disabled.
func buildHandler(cfg *config.Config, dryRun bool) (*pipeline.Handler, *exec.MockCommandExecutor, error) {
	var executor exec.CommandExecutor
	var mock *exec.MockCommandExecutor
	if dryRun {
		mock = &exec.MockCommandExecutor{}
		executor = mock
	} else {
		executor = &exec.RealCommandExecutor{}
	}

	ctrl, err := tmux.NewClient(executor, cfg.Tmux.Binary)
	if err != nil {
		return nil, nil, err
	}

	var voice dispatch.Speaker
	if cfg.FeedbackEnabled() && !dryRun {
		engine, err := speech.NewCommandEngine(executor, cfg.Feedback.SynthesizeCommand, cfg.Feedback.PlayCommand)
		if err != nil {
			return nil, nil, err
		}
		voice = speech.NewFeedback(engine, true)
	}

	matcher, err := grammar.NewMatcher(grammar.Catalog())
	if err != nil {
		return nil, nil, err
	}

	dispatcher := dispatch.New(ctrl, voice)
	return pipeline.New(matcher, dispatcher, cfg.ConfidenceThreshold), mock, nil
}

// newController builds just the tmux side, for the listing commands.
func newController(cfg *config.Config) (*tmux.Client, error) {
	return tmux.NewClient(&exec.RealCommandExecutor{}, cfg.Tmux.Binary)
}

func printResult(result dispatch.Result, transcript string) {
	switch {
	case result.Handled:
		if result.Feedback != "" {
			fmt.Printf("%s %s\n", color.GreenString("✓"), result.Feedback)
		} else {
			fmt.Printf("%s %s\n", color.GreenString("✓"), result.Intent)
		}
	case result.Error != "":
		fmt.Printf("%s %s: %s\n", color.RedString("✗"), result.Intent, result.Error)
	default:
		fmt.Printf("%s not recognized: %q\n", color.YellowString("–"), transcript)
		if suggestion, ok := grammar.Suggest(transcript); ok {
			fmt.Printf("  did you mean %q?\n", suggestion)
		}
	}
}
