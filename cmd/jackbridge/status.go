package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdStatus)
}

var cmdStatus = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := controller().Status(cmd.Context(), 2*time.Second)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !st.Running {
			fmt.Fprintln(out, "Daemon is not running")
			return nil
		}
		fmt.Fprintf(out, "Daemon running (pid %d)\n", st.PID)
		fmt.Fprintf(out, "  uptime:  %s\n", st.Uptime.Round(time.Second))
		fmt.Fprintf(out, "  config:  %s\n", st.ConfigPath)
		fmt.Fprintf(out, "  bridges: %d/%d\n", st.Bridges, st.MaxBridges)
		return nil
	},
}
