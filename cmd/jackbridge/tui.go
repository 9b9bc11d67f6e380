package main

import (
	"fmt"

	"jackbridge/internal/app"
	"jackbridge/internal/tui"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdTUI)
}

var cmdTUI = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := app.New(app.Options{ConfigPath: configPath})
		if err := tui.Run(ctrl); err != nil {
			return fmt.Errorf("tui exited with error: %w", err)
		}
		return nil
	},
}
