package app

import (
	"context"
	"io"
	"testing"
	"time"

	"google.golang.org/grpc"

	bridgev1 "jackbridge/api/proto/bridge/v1"
)

func TestAppStatusNotRunning(t *testing.T) {
	stubDaemon(t, false, nil)

	app := New(Options{})
	st, err := app.Status(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if st.Running {
		t.Fatalf("expected not running, got %+v", st)
	}
}

func TestAppStatusRunning(t *testing.T) {
	stubDaemon(t, true, func(ctx context.Context) (bridgev1.BridgeDaemonClient, io.Closer, error) {
		conn := &fakeConn{
			invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
				resp, ok := reply.(*bridgev1.StatusResponse)
				if !ok {
					t.Fatalf("unexpected reply type %T", reply)
				}
				resp.Pid = 321
				resp.UptimeSec = 12.5
				resp.ConfigPath = "/etc/jack-bridge/bluetooth.conf"
				resp.Bridges = 2
				resp.MaxBridges = 8
				return nil
			},
		}
		return bridgev1.NewBridgeDaemonClient(conn), conn, nil
	})

	app := New(Options{})
	st, err := app.Status(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if !st.Running || st.PID != 321 || st.Bridges != 2 || st.MaxBridges != 8 {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.Uptime != 12500*time.Millisecond {
		t.Fatalf("Uptime = %v, want 12.5s", st.Uptime)
	}
}
