package main

import (
	"context"
	"time"

	"jackbridge/internal/app"
)

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the daemon config file")
}

// controllerAPI is the slice of app.App the commands use; tests swap the
// factory for a stub.
type controllerAPI interface {
	Ping(ctx context.Context, timeout time.Duration) (bool, error)
	Status(ctx context.Context, timeout time.Duration) (app.DaemonStatus, error)
	ListBridges(ctx context.Context, timeout time.Duration) ([]app.Bridge, error)
	Reload() error
	StopDaemon(force bool) error
	RunDaemon(ctx context.Context) error
}

var controllerFactory = func() controllerAPI {
	return app.New(app.Options{ConfigPath: configPath})
}

func controller() controllerAPI {
	return controllerFactory()
}
