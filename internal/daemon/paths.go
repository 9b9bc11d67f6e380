// Package daemon hosts the supervisor process: the control socket it serves,
// the runtime paths it claims and the composition that wires the bus watcher,
// spawner and registry together.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	bridgev1 "jackbridge/api/proto/bridge/v1"
)

// SocketBaseName is the UNIX control socket filename.
const SocketBaseName = "jackbridge.sock"

const snapshotBaseName = "jackbridge.state.json"

// SocketPath returns the full path to the control socket.
// Order of precedence (first wins):
// 1) JACKBRIDGE_SOCKET (absolute path to socket)
// 2) if runtime=linux:
//   - JACKBRIDGE_RUNTIME_DIR or $XDG_RUNTIME_DIR or /run/user/<UID>
//     else (darwin, *bsd, etc):
//   - JACKBRIDGE_RUNTIME_DIR or /tmp
func SocketPath() string {
	if explicit := os.Getenv("JACKBRIDGE_SOCKET"); explicit != "" {
		return explicit
	}

	uid := currentUID()

	// Allow override of parent dir
	if rd := os.Getenv("JACKBRIDGE_RUNTIME_DIR"); rd != "" {
		return filepath.Join(rd, SocketBaseName)
	}

	if runtime.GOOS == "linux" {
		if v := os.Getenv("XDG_RUNTIME_DIR"); v != "" {
			return filepath.Join(v, SocketBaseName)
		}
		return filepath.Join("/run/user", uid, SocketBaseName)
	}

	// macOS / BSD / other unix: keep it short to avoid sun_path length limit
	return filepath.Join("/tmp", "jackbridge-"+uid+".sock")
}

// SnapshotPath is where the registry writes its diagnostic state dump.
func SnapshotPath() string {
	return filepath.Join(filepath.Dir(SocketPath()), snapshotBaseName)
}

// EnsureRuntimeDir attempts to create the runtime directory if it doesn't exist
func EnsureRuntimeDir() error {
	dir := filepath.Dir(SocketPath())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	return nil
}

// RunningPID returns the pid stored in the pid file if any.
func RunningPID(pidPath string) (int, error) {
	data, err := os.ReadFile(pidPath)
	if err != nil {
		return 0, err
	}
	value := strings.TrimSpace(string(data))
	pid, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("pid file %s: %w", pidPath, err)
	}
	return pid, nil
}

func removePIDFile(pidPath string) error {
	if err := os.Remove(pidPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// IsRunning tries to ping the daemon over gRPC and returns true if it responds.
func IsRunning() bool {
	if _, err := os.Stat(SocketPath()); err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	client, conn, err := Dial(ctx)
	if err != nil {
		return false
	}
	defer conn.Close()

	if _, err := client.Ping(ctx, &bridgev1.PingRequest{}); err != nil {
		return false
	}
	return true
}

func currentUID() string {
	u, err := user.Current()
	if err == nil && u != nil && u.Uid != "" {
		return u.Uid
	}
	return "0"
}
