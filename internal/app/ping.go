package app

import (
	"context"
	"fmt"
	"time"

	bridgev1 "jackbridge/api/proto/bridge/v1"
)

// Ping contacts the daemon and reports whether it answered healthy.
func (a *App) Ping(ctx context.Context, timeout time.Duration) (bool, error) {
	var ok bool
	err := a.withClient(ctx, timeout, func(ctx context.Context, client bridgev1.BridgeDaemonClient) error {
		resp, err := client.Ping(ctx, &bridgev1.PingRequest{})
		if err != nil {
			return fmt.Errorf("daemon ping RPC failed: %w", err)
		}
		ok = resp.GetOk()
		return nil
	})
	return ok, err
}
