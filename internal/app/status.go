package app

import (
	"context"
	"fmt"
	"time"

	bridgev1 "jackbridge/api/proto/bridge/v1"
)

// DaemonStatus represents current information about the daemon process.
type DaemonStatus struct {
	Running    bool
	PID        int
	Uptime     time.Duration
	ConfigPath string
	Bridges    int
	MaxBridges int
}

// Status queries the daemon for its status. A daemon that does not answer
// is reported as not running rather than as an error.
func (a *App) Status(ctx context.Context, timeout time.Duration) (DaemonStatus, error) {
	if !daemonIsRunning() {
		return DaemonStatus{Running: false}, nil
	}

	var st DaemonStatus
	err := a.withClient(ctx, timeout, func(ctx context.Context, client bridgev1.BridgeDaemonClient) error {
		resp, err := client.Status(ctx, &bridgev1.StatusRequest{})
		if err != nil {
			return fmt.Errorf("daemon status RPC failed: %w", err)
		}
		st = DaemonStatus{
			Running:    true,
			PID:        int(resp.GetPid()),
			Uptime:     time.Duration(resp.GetUptimeSec() * float64(time.Second)),
			ConfigPath: resp.GetConfigPath(),
			Bridges:    int(resp.GetBridges()),
			MaxBridges: int(resp.GetMaxBridges()),
		}
		return nil
	})
	return st, err
}
