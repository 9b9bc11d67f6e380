package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAddAndGetCopiesOut(t *testing.T) {
	r := New("")
	r.Add(101, "bt_in_AA:BB:CC:DD:EE:FF", []string{"alsa_in", "-j", "bt_in_AA:BB:CC:DD:EE:FF"}, 0)

	c, ok := r.Get(101)
	if !ok {
		t.Fatal("child not found")
	}
	c.Name = "mutated"
	c.Cmdline[0] = "mutated"

	again, _ := r.Get(101)
	if again.Name != "bt_in_AA:BB:CC:DD:EE:FF" {
		t.Fatalf("registry record was mutated through a copy: %q", again.Name)
	}
	if again.Cmdline[0] != "alsa_in" {
		t.Fatalf("registry record was mutated through a copied command line: %q", again.Cmdline[0])
	}
}

func TestCopiesOutNeverAliasStoredCmdline(t *testing.T) {
	r := New("")
	r.Add(77, "bt_sco_AA:BB:CC:DD:EE:FF", []string{"alsa_in", "-j", "bt_sco_AA:BB:CC:DD:EE:FF"}, 0)

	if c, _ := r.FindByDevice("AA:BB:CC:DD:EE:FF"); len(c.Cmdline) > 0 {
		c.Cmdline[0] = "corrupted"
	}
	for _, c := range r.MatchDevice("AA:BB:CC:DD:EE:FF") {
		c.Cmdline[1] = "corrupted"
	}
	for _, c := range r.List() {
		c.Cmdline[2] = "corrupted"
	}

	stored, _ := r.Get(77)
	want := []string{"alsa_in", "-j", "bt_sco_AA:BB:CC:DD:EE:FF"}
	for i, arg := range want {
		if stored.Cmdline[i] != arg {
			t.Fatalf("stored command line corrupted at %d: got %q, want %q", i, stored.Cmdline[i], arg)
		}
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	r := New("")
	r.Add(7, "bt_out_11:22:33:44:55:66", []string{"alsa_out"}, 0)
	if !r.Remove(7) {
		t.Fatal("first remove should report true")
	}
	if r.Remove(7) {
		t.Fatal("second remove should be a no-op")
	}
	if r.Remove(9999) {
		t.Fatal("removing unknown pid should be a no-op")
	}
}

func TestFindByDevice(t *testing.T) {
	r := New("")
	r.Add(1, "bt_in_AA:BB:CC:DD:EE:FF", nil, 0)
	r.Add(2, "bt_sco_11:22:33:44:55:66", nil, 0)

	if _, ok := r.FindByDevice("AA:BB:CC:DD:EE:FF"); !ok {
		t.Fatal("expected match for first device")
	}
	if _, ok := r.FindByDevice("00:00:00:00:00:00"); ok {
		t.Fatal("unexpected match for unknown device")
	}
	if _, ok := r.FindByDevice(""); ok {
		t.Fatal("empty device id must never match")
	}
}

func TestMatchDeviceReturnsAllSorted(t *testing.T) {
	r := New("")
	r.Add(30, "bt_out_AA:BB:CC:DD:EE:FF", nil, 0)
	r.Add(10, "bt_in_AA:BB:CC:DD:EE:FF", nil, 0)
	r.Add(20, "bt_in_11:22:33:44:55:66", nil, 0)

	got := r.MatchDevice("AA:BB:CC:DD:EE:FF")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].PID != 10 || got[1].PID != 30 {
		t.Fatalf("matches not sorted by pid: %v %v", got[0].PID, got[1].PID)
	}
}

func TestMarkStopping(t *testing.T) {
	r := New("")
	r.Add(5, "bt_in_AA:BB:CC:DD:EE:FF", nil, 0)

	deadline := time.Now().Add(4 * time.Second)
	if !r.MarkStopping(5, deadline) {
		t.Fatal("MarkStopping should succeed for known pid")
	}
	if r.MarkStopping(6, deadline) {
		t.Fatal("MarkStopping should fail for unknown pid")
	}
	c, _ := r.Get(5)
	if !c.Stopping() {
		t.Fatal("child should report stopping")
	}
}

func TestSnapshotWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "bridges.json")
	r := New(path)
	r.Add(42, "bt_in_AA:BB:CC:DD:EE:FF", []string{"alsa_in"}, 1)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	var s struct {
		Version  int     `json:"version"`
		Children []Child `json:"children"`
	}
	if err := json.Unmarshal(b, &s); err != nil {
		t.Fatalf("snapshot not valid JSON: %v", err)
	}
	if s.Version != 1 || len(s.Children) != 1 || s.Children[0].PID != 42 {
		t.Fatalf("unexpected snapshot contents: %+v", s)
	}
}
