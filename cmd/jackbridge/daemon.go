package main

import (
	"fmt"
	"os"
	"time"

	"jackbridge/internal/daemon"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdDaemon)
}

var daemonForceRestart bool

func init() {
	cmdDaemon.Flags().BoolVarP(&daemonForceRestart, "force", "f", false, "Restart the daemon if it is already running")
}

var cmdDaemon = &cobra.Command{
	Use:   "daemon",
	Short: "Run the bridge supervisor daemon in the foreground",
	Long:  `The daemon watches for remote audio endpoints and supervises the bridge processes serving them. If a daemon is already running, nothing happens unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		if daemon.IsRunning() {
			if !daemonForceRestart {
				fmt.Fprintln(os.Stdout, "Daemon is already running. Stop it manually or re-run with --force.")
				return nil
			}
			fmt.Fprintln(os.Stdout, "Stopping existing daemon process...")
			if err := ctrl.StopDaemon(true); err != nil {
				return err
			}
		}

		runSpin := spinner.New(spinner.CharSets[21], 120*time.Millisecond, spinner.WithWriter(os.Stdout))
		runSpin.Suffix = " Supervising bridges..."
		runSpin.Start()
		defer runSpin.Stop()

		// Blocks until a termination signal; the supervisor installs its
		// own handlers.
		return ctrl.RunDaemon(cmd.Context())
	},
}
