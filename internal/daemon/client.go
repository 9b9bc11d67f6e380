package daemon

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	bridgev1 "jackbridge/api/proto/bridge/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// dialReadyTimeout bounds Dial for callers that pass no deadline of their
// own, so a missing daemon fails fast instead of hanging the CLI.
const dialReadyTimeout = 2 * time.Second

// Dial opens a gRPC connection to the daemon's control socket and blocks
// until the transport is ready or ctx expires.
func Dial(ctx context.Context) (bridgev1.BridgeDaemonClient, *grpc.ClientConn, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dialReadyTimeout)
		defer cancel()
	}

	conn, err := grpc.NewClient(
		socketTarget(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(unixDialer),
	)
	if err != nil {
		return nil, nil, err
	}

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return bridgev1.NewBridgeDaemonClient(conn), conn, nil
		}
		if state == connectivity.Shutdown || !conn.WaitForStateChange(ctx, state) {
			_ = conn.Close()
			if err := ctx.Err(); err != nil {
				return nil, nil, fmt.Errorf("daemon socket %s not ready: %w", SocketPath(), err)
			}
			return nil, nil, fmt.Errorf("daemon socket %s not ready (transport %s)", SocketPath(), state)
		}
	}
}

func socketTarget() string {
	path := SocketPath()
	if trimmed, ok := strings.CutPrefix(path, "/"); ok {
		return "unix:///" + trimmed
	}
	return "unix://" + path
}

func unixDialer(ctx context.Context, addr string) (net.Conn, error) {
	if trimmed, ok := strings.CutPrefix(addr, "unix://"); ok {
		addr = trimmed
	}
	if addr == "" {
		addr = SocketPath()
	}
	var d net.Dialer
	return d.DialContext(ctx, "unix", addr)
}
