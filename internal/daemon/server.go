package daemon

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	bridgev1 "jackbridge/api/proto/bridge/v1"
	"jackbridge/internal/config"
	"jackbridge/internal/registry"

	"google.golang.org/grpc"
)

// Server wraps the UNIX listener and the gRPC server bound to it.
type Server struct {
	grpc *grpc.Server
	ln   net.Listener
	path string
}

// Close stops the server and unlinks the socket.
func (s *Server) Close() error {
	if s.grpc != nil {
		s.grpc.Stop()
	}
	if s.path != "" {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// StartServer binds the control socket and serves the BridgeDaemon service
// on it in the background.
func StartServer(reg *registry.Registry, store *config.Store, configPath string) (*Server, error) {
	if err := EnsureRuntimeDir(); err != nil {
		return nil, err
	}
	path := SocketPath()

	// If a stale socket file exists but no daemon answers, remove it
	if _, err := os.Stat(path); err == nil && !IsRunning() {
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(path, 0o600); err != nil {
		ln.Close()
		return nil, err
	}

	gs := grpc.NewServer()
	bridgev1.RegisterBridgeDaemonServer(gs, newService(reg, store, configPath))

	s := &Server{grpc: gs, ln: ln, path: path}
	go func() {
		if err := gs.Serve(ln); err != nil {
			log.Printf("daemon: control socket server stopped: %v", err)
		}
	}()
	return s, nil
}

// StopRunningDaemon sends a termination signal to the currently running
// daemon if any. pidPath is where the daemon wrote its pid, normally the
// PID_FILE of its configuration.
func StopRunningDaemon(pidPath string, force bool) error {
	pid, err := RunningPID(pidPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if IsRunning() {
				return fmt.Errorf("daemon is running but PID file %q is missing; stop it manually", pidPath)
			}
			return nil
		}
		return fmt.Errorf("unable to read daemon PID: %w", err)
	}
	if pid == os.Getpid() {
		return errors.New("refusing to stop current process")
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if err := sendSignal(proc, pidPath, syscall.SIGTERM); err != nil {
		return err
	}
	if waitForShutdown(pidPath, 3*time.Second) {
		return nil
	}
	if !force {
		return fmt.Errorf("daemon process %d did not exit after SIGTERM", pid)
	}
	if err := sendSignal(proc, pidPath, syscall.SIGKILL); err != nil {
		return err
	}
	if waitForShutdown(pidPath, 2*time.Second) {
		return nil
	}
	return fmt.Errorf("daemon process %d did not exit after SIGKILL", pid)
}

func sendSignal(proc *os.Process, pidPath string, sig syscall.Signal) error {
	if err := proc.Signal(sig); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			_ = removePIDFile(pidPath)
			return nil
		}
		return err
	}
	return nil
}

func waitForShutdown(pidPath string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if !IsRunning() {
			_ = removePIDFile(pidPath)
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(100 * time.Millisecond)
	}
}
