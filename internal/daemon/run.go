package daemon

import (
	"context"
	"fmt"
	"log"
	"os/user"

	"github.com/godbus/dbus/v5"

	"jackbridge/internal/bridge"
	"jackbridge/internal/bus"
	"jackbridge/internal/config"
	"jackbridge/internal/logfile"
	"jackbridge/internal/procs"
	"jackbridge/internal/registry"
	"jackbridge/internal/supervisor"
)

// systemBus is swappable in tests.
var systemBus = dbus.SystemBus

// Run loads the configuration, connects to the system bus and drives the
// supervisor until ctx is cancelled or a termination signal arrives. A bus
// connection or subscription failure is fatal: without notifications the
// daemon would be deaf and useless.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logw := logfile.New()
	if err := logw.Reopen(cfg.LogFile); err != nil {
		log.Printf("daemon: %v", err)
	}
	defer logw.Close()
	log.SetOutput(logw)
	log.Printf("daemon: starting (config=%s)", configPath)

	if u, err := user.Current(); err == nil && cfg.RuntimeUser != "" && u.Username != cfg.RuntimeUser {
		log.Printf("daemon: running as %s, configuration expects %s", u.Username, cfg.RuntimeUser)
	}

	store := config.NewStore(cfg)
	reg := registry.New(SnapshotPath())

	conn, err := systemBus()
	if err != nil {
		return fmt.Errorf("connect to system bus: %w", err)
	}
	defer conn.Close()

	watcher, err := bus.Subscribe(conn)
	if err != nil {
		return fmt.Errorf("subscribe to endpoint notifications: %w", err)
	}
	defer watcher.Close()

	runner := procs.ExecRunner{}
	spawner := bridge.New(store, reg, runner, bridge.NewExecProber(runner))

	srv, err := StartServer(reg, store, configPath)
	if err != nil {
		return fmt.Errorf("start control socket: %w", err)
	}
	defer srv.Close()

	sup := supervisor.New(supervisor.Options{
		Store:      store,
		Registry:   reg,
		Spawner:    spawner,
		Runner:     runner,
		Events:     watcher.Events(),
		ConfigPath: configPath,
		Log:        logw,
	})
	return sup.Run(ctx)
}
