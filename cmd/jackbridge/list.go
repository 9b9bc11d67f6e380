package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdList)
}

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "List the bridges supervised by the daemon",
	Long:  `Fetches the supervised bridge registry from the daemon via gRPC.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bridges, err := controller().ListBridges(cmd.Context(), 2*time.Second)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(bridges) == 0 {
			fmt.Fprintln(out, "No bridges running")
			return nil
		}
		for _, b := range bridges {
			state := "running"
			if b.Stopping {
				state = "stopping"
			}
			fmt.Fprintf(out, "[pid=%d] %s %s restarts=%d cmd=%s\n",
				b.PID, b.Name, state, b.Restarts, strings.Join(b.Cmdline, " "))
		}
		return nil
	},
}
