package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdReload)
}

var cmdReload = &cobra.Command{
	Use:   "reload",
	Short: "Ask the running daemon to re-read its configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller().Reload(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Reload requested")
		return nil
	},
}
