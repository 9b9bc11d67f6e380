package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"jackbridge/internal/config"
	"jackbridge/internal/daemon"
)

var (
	loadConfig    = config.Load
	signalProcess = func(pid int, sig syscall.Signal) error {
		proc, err := os.FindProcess(pid)
		if err != nil {
			return err
		}
		return proc.Signal(sig)
	}
	readRunningPID = daemon.RunningPID
)

func resetSignalDeps() {
	loadConfig = config.Load
	signalProcess = func(pid int, sig syscall.Signal) error {
		proc, err := os.FindProcess(pid)
		if err != nil {
			return err
		}
		return proc.Signal(sig)
	}
	readRunningPID = daemon.RunningPID
}

// pidFilePath resolves the PID file from the effective configuration.
func (a *App) pidFilePath() (string, error) {
	cfg, err := loadConfig(a.ConfigPath())
	if err != nil {
		return "", err
	}
	return cfg.PIDFile, nil
}

// Reload asks the running daemon to re-read its configuration file.
func (a *App) Reload() error {
	pidPath, err := a.pidFilePath()
	if err != nil {
		return err
	}
	pid, err := readRunningPID(pidPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.New("daemon is not running")
		}
		return fmt.Errorf("unable to read daemon PID: %w", err)
	}
	if err := signalProcess(pid, syscall.SIGHUP); err != nil {
		return fmt.Errorf("signal daemon (pid %d): %w", pid, err)
	}
	return nil
}

// StopDaemon attempts to stop the running daemon.
func (a *App) StopDaemon(force bool) error {
	pidPath, err := a.pidFilePath()
	if err != nil {
		return err
	}
	return daemon.StopRunningDaemon(pidPath, force)
}

// RunDaemon runs the daemon in the current process until ctx is cancelled
// or a termination signal arrives.
func (a *App) RunDaemon(ctx context.Context) error {
	return daemon.Run(ctx, a.ConfigPath())
}
