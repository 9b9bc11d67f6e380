package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdStop)
}

var stopForce bool

func init() {
	cmdStop.Flags().BoolVarP(&stopForce, "force", "f", false, "SIGKILL the daemon if it ignores SIGTERM")
}

var cmdStop = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller().StopDaemon(stopForce); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Daemon stopped")
		return nil
	},
}
