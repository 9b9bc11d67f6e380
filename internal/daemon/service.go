package daemon

import (
	"context"
	"os"
	"time"

	bridgev1 "jackbridge/api/proto/bridge/v1"
	"jackbridge/internal/config"
	"jackbridge/internal/registry"
)

// service implements the BridgeDaemon gRPC service backed by the registry.
type service struct {
	bridgev1.UnimplementedBridgeDaemonServer

	reg        *registry.Registry
	store      *config.Store
	configPath string
	started    time.Time
}

func newService(reg *registry.Registry, store *config.Store, configPath string) *service {
	return &service{
		reg:        reg,
		store:      store,
		configPath: configPath,
		started:    time.Now(),
	}
}

func (s *service) Ping(ctx context.Context, _ *bridgev1.PingRequest) (*bridgev1.PingResponse, error) {
	return &bridgev1.PingResponse{Ok: true}, nil
}

func (s *service) Status(ctx context.Context, _ *bridgev1.StatusRequest) (*bridgev1.StatusResponse, error) {
	return &bridgev1.StatusResponse{
		Pid:        int32(os.Getpid()),
		UptimeSec:  time.Since(s.started).Seconds(),
		ConfigPath: s.configPath,
		Bridges:    int32(s.reg.Len()),
		MaxBridges: int32(s.store.Current().MaxBridges),
	}, nil
}

func (s *service) ListBridges(ctx context.Context, _ *bridgev1.ListBridgesRequest) (*bridgev1.ListBridgesResponse, error) {
	children := s.reg.List()
	resp := &bridgev1.ListBridgesResponse{
		Bridges: make([]*bridgev1.Bridge, 0, len(children)),
	}
	for i := range children {
		c := children[i]
		resp.Bridges = append(resp.Bridges, &bridgev1.Bridge{
			Pid:         int32(c.PID),
			Name:        c.Name,
			Cmdline:     append([]string(nil), c.Cmdline...),
			Restarts:    int32(c.Restarts),
			StartedUnix: c.AddedAt.Unix(),
			Stopping:    c.Stopping(),
		})
	}
	return resp, nil
}
