package app

import (
	"context"
	"fmt"
	"time"

	bridgev1 "jackbridge/api/proto/bridge/v1"
)

// Bridge mirrors one daemon registry entry.
type Bridge struct {
	PID       int
	Name      string
	Cmdline   []string
	Restarts  int
	StartedAt time.Time
	Stopping  bool
}

func bridgeFromProto(b *bridgev1.Bridge) Bridge {
	return Bridge{
		PID:       int(b.GetPid()),
		Name:      b.GetName(),
		Cmdline:   append([]string(nil), b.GetCmdline()...),
		Restarts:  int(b.GetRestarts()),
		StartedAt: time.Unix(b.GetStartedUnix(), 0),
		Stopping:  b.GetStopping(),
	}
}

// ListBridges fetches the currently supervised bridges.
func (a *App) ListBridges(ctx context.Context, timeout time.Duration) ([]Bridge, error) {
	var bridges []Bridge
	err := a.withClient(ctx, timeout, func(ctx context.Context, client bridgev1.BridgeDaemonClient) error {
		resp, err := client.ListBridges(ctx, &bridgev1.ListBridgesRequest{})
		if err != nil {
			return fmt.Errorf("daemon list RPC failed: %w", err)
		}
		bridges = make([]Bridge, 0, len(resp.GetBridges()))
		for _, b := range resp.GetBridges() {
			bridges = append(bridges, bridgeFromProto(b))
		}
		return nil
	})
	return bridges, err
}
