package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"google.golang.org/grpc"

	bridgev1 "jackbridge/api/proto/bridge/v1"
)

func TestAppPingNotRunning(t *testing.T) {
	stubDaemon(t, false, nil)

	app := New(Options{})
	if _, err := app.Ping(context.Background(), time.Second); err == nil || err.Error() != "daemon is not running" {
		t.Fatalf("expected daemon not running error, got %v", err)
	}
}

func TestAppPingSuccess(t *testing.T) {
	stubDaemon(t, true, func(ctx context.Context) (bridgev1.BridgeDaemonClient, io.Closer, error) {
		conn := &fakeConn{
			invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
				resp, ok := reply.(*bridgev1.PingResponse)
				if !ok {
					t.Fatalf("unexpected reply type %T", reply)
				}
				resp.Ok = true
				return nil
			},
		}
		return bridgev1.NewBridgeDaemonClient(conn), conn, nil
	})

	app := New(Options{})
	ok, err := app.Ping(context.Background(), 500*time.Millisecond)
	if err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected healthy ping")
	}
}

func TestAppPingDialError(t *testing.T) {
	stubDaemon(t, true, func(ctx context.Context) (bridgev1.BridgeDaemonClient, io.Closer, error) {
		return nil, nil, errors.New("dial failed")
	})

	app := New(Options{})
	if _, err := app.Ping(context.Background(), time.Second); err == nil || err.Error() != "connect to daemon: dial failed" {
		t.Fatalf("expected wrapped dial error, got %v", err)
	}
}

func TestAppPingInvalidTimeout(t *testing.T) {
	stubDaemon(t, true, func(ctx context.Context) (bridgev1.BridgeDaemonClient, io.Closer, error) {
		return nil, nil, errors.New("should not dial")
	})

	app := New(Options{})
	if _, err := app.Ping(context.Background(), 0); err == nil || err.Error() != "timeout must be greater than 0" {
		t.Fatalf("expected timeout error, got %v", err)
	}
}
