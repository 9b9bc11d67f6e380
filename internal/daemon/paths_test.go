package daemon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSocketPathExplicitOverride(t *testing.T) {
	t.Setenv("JACKBRIDGE_SOCKET", "/tmp/custom.sock")
	if got := SocketPath(); got != "/tmp/custom.sock" {
		t.Fatalf("SocketPath() = %q, want explicit override", got)
	}
}

func TestSocketPathRuntimeDirOverride(t *testing.T) {
	t.Setenv("JACKBRIDGE_SOCKET", "")
	dir := t.TempDir()
	t.Setenv("JACKBRIDGE_RUNTIME_DIR", dir)
	want := filepath.Join(dir, SocketBaseName)
	if got := SocketPath(); got != want {
		t.Fatalf("SocketPath() = %q, want %q", got, want)
	}
}

func TestSnapshotPathSharesRuntimeDir(t *testing.T) {
	t.Setenv("JACKBRIDGE_SOCKET", "")
	dir := t.TempDir()
	t.Setenv("JACKBRIDGE_RUNTIME_DIR", dir)
	want := filepath.Join(dir, snapshotBaseName)
	if got := SnapshotPath(); got != want {
		t.Fatalf("SnapshotPath() = %q, want %q", got, want)
	}
}

func TestRunningPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pid")
	if err := os.WriteFile(path, []byte("1234\n"), 0o600); err != nil {
		t.Fatalf("write pid file: %v", err)
	}
	pid, err := RunningPID(path)
	if err != nil {
		t.Fatalf("RunningPID returned error: %v", err)
	}
	if pid != 1234 {
		t.Fatalf("RunningPID = %d, want 1234", pid)
	}
}

func TestRunningPIDRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pid")
	if err := os.WriteFile(path, []byte("not a pid\n"), 0o600); err != nil {
		t.Fatalf("write pid file: %v", err)
	}
	if _, err := RunningPID(path); err == nil {
		t.Fatalf("expected error for non-numeric pid file")
	}
}
