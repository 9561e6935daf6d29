package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewSessionsCmd returns the command for listing tmux sessions directly.
func NewSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List tmux sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctrl, err := newController(cfg)
			if err != nil {
				return err
			}
			sessions, err := ctrl.ListSessions(context.Background())
			if err != nil {
				return fmt.Errorf("listing sessions: %w", err)
			}
			if len(sessions) == 0 {
				fmt.Println("no sessions")
				return nil
			}
			for _, session := range sessions {
				fmt.Println(session)
			}
			return nil
		},
	}
}

// NewWindowsCmd returns the command for listing the current session's
// windows.
func NewWindowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List windows in the current tmux session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctrl, err := newController(cfg)
			if err != nil {
				return err
			}
			windows, err := ctrl.ListWindows(context.Background())
			if err != nil {
				return fmt.Errorf("listing windows: %w", err)
			}
			if len(windows) == 0 {
				fmt.Println("no windows")
				return nil
			}
			for _, window := range windows {
				fmt.Println(window)
			}
			return nil
		},
	}
}
