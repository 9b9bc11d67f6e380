package bridge

import (
	"errors"
	"reflect"
	"testing"

	"jackbridge/internal/bus"
	"jackbridge/internal/config"
	"jackbridge/internal/registry"
)

const dev = "AA:BB:CC:DD:EE:FF"

func newTestSpawner(cfg config.Config) (*Spawner, *registry.Registry, *fakeRunner) {
	reg := registry.New("")
	runner := &fakeRunner{}
	s := New(config.NewStore(cfg), reg, runner, fakeProber{available: true})
	s.Autoconnect = "" // most tests do not care about the helper
	return s, reg, runner
}

func TestSpawnBuildsStreamingCaptureCommand(t *testing.T) {
	cfg := config.Default()
	cfg.A2DP = config.ProfileParams{Rate: 48000, Period: 1024, Periods: 3, Channels: 2}
	s, reg, runner := newTestSpawner(cfg)

	h, err := s.Spawn(bus.Endpoint{Device: dev, Profile: bus.ProfileStreaming})
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	want := []string{
		"alsa_in",
		"-j", "bt_in_" + dev,
		"-d", "bluealsa:DEV=" + dev + ",PROFILE=a2dp",
		"-r", "48000",
		"-p", "1024",
		"-n", "3",
		"-c", "2",
	}
	starts := runner.started()
	if len(starts) != 1 {
		t.Fatalf("expected 1 start, got %d", len(starts))
	}
	if !reflect.DeepEqual(starts[0], want) {
		t.Fatalf("argv = %v, want %v", starts[0], want)
	}
	if c, ok := reg.Get(h.PID()); !ok || c.Name != "bt_in_"+dev || c.Restarts != 0 {
		t.Fatalf("child not registered correctly: %+v ok=%v", c, ok)
	}
}

func TestSpawnPlaybackForAdvertisedSink(t *testing.T) {
	s, _, runner := newTestSpawner(config.Default())

	if _, err := s.Spawn(bus.Endpoint{Device: dev, Profile: bus.ProfileStreaming, Direction: bus.DirectionSink}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	argv := runner.started()[0]
	if argv[0] != "alsa_out" || argv[2] != "bt_out_"+dev {
		t.Fatalf("expected playback relay, got %v", argv)
	}
}

func TestSpawnVoiceUsesScoParams(t *testing.T) {
	cfg := config.Default()
	cfg.SCO = config.ProfileParams{Rate: 16000, Period: 256, Periods: 3, Channels: 1}
	s, _, runner := newTestSpawner(cfg)

	if _, err := s.Spawn(bus.Endpoint{Device: dev, Profile: bus.ProfileVoice}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	argv := runner.started()[0]
	if argv[2] != "bt_sco_"+dev {
		t.Fatalf("job = %q", argv[2])
	}
	if argv[4] != "bluealsa:DEV="+dev+",PROFILE=sco" {
		t.Fatalf("device arg = %q", argv[4])
	}
	if argv[6] != "16000" || argv[12] != "1" {
		t.Fatalf("voice params not applied: %v", argv)
	}
}

func TestSpawnSkipsDuplicateDevice(t *testing.T) {
	s, reg, runner := newTestSpawner(config.Default())
	reg.Add(500, "bt_in_"+dev, nil, 0)

	if _, err := s.Spawn(bus.Endpoint{Device: dev, Profile: bus.ProfileStreaming}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if len(runner.started()) != 0 {
		t.Fatal("no process may be started for a duplicate")
	}
	if reg.Len() != 1 {
		t.Fatalf("registry must still hold exactly one record, has %d", reg.Len())
	}
}

func TestSpawnSkipsBusyResource(t *testing.T) {
	s, reg, runner := newTestSpawner(config.Default())
	s.probe = fakeProber{available: false}

	if _, err := s.Spawn(bus.Endpoint{Device: dev, Profile: bus.ProfileStreaming}); !errors.Is(err, ErrResourceBusy) {
		t.Fatalf("expected ErrResourceBusy, got %v", err)
	}
	if len(runner.started()) != 0 || reg.Len() != 0 {
		t.Fatal("busy resource must not produce a child")
	}
}

func TestSpawnEnforcesCeiling(t *testing.T) {
	cfg := config.Default()
	cfg.MaxBridges = 1
	s, reg, _ := newTestSpawner(cfg)
	reg.Add(1, "bt_in_11:22:33:44:55:66", nil, 0)

	if _, err := s.Spawn(bus.Endpoint{Device: dev, Profile: bus.ProfileStreaming}); !errors.Is(err, ErrTooManyBridges) {
		t.Fatalf("expected ErrTooManyBridges, got %v", err)
	}
}

func TestSpawnStartFailureRegistersNothing(t *testing.T) {
	s, reg, runner := newTestSpawner(config.Default())
	runner.failErr = errors.New("fork failed")

	_, err := s.Spawn(bus.Endpoint{Device: dev, Profile: bus.ProfileStreaming})
	if err == nil || errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected spawn error, got %v", err)
	}
	if reg.Len() != 0 {
		t.Fatal("failed spawn must not leave a record")
	}
}

func TestSpawnTriggersAutoconnect(t *testing.T) {
	s, _, runner := newTestSpawner(config.Default())
	s.Autoconnect = "/usr/lib/jack-bridge/jack-autoconnect"

	if _, err := s.Spawn(bus.Endpoint{Device: dev, Profile: bus.ProfileStreaming}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	starts := runner.started()
	if len(starts) != 2 {
		t.Fatalf("expected bridge + autoconnect, got %d starts", len(starts))
	}
	if starts[1][0] != s.Autoconnect {
		t.Fatalf("second start = %v", starts[1])
	}
}

func TestExecProber(t *testing.T) {
	runner := &fakeRunner{}
	p := NewExecProber(runner)

	// fakeRunner handles never exit on their own: the probe hits its bound,
	// which counts as a successful open.
	if !p.Available("bluealsa:DEV="+dev+",PROFILE=a2dp", true) {
		t.Fatal("running probe should report available")
	}
	argv := runner.started()[0]
	if argv[0] != "arecord" {
		t.Fatalf("capture probe should use arecord, got %v", argv)
	}

	if p.Available("bluealsa:DEV="+dev+",PROFILE=a2dp", false) {
		// playback probe also times out and is treated as available
	} else {
		t.Fatal("playback probe should report available")
	}

	runner.failErr = errors.New("no such binary")
	if p.Available("whatever", true) {
		t.Fatal("start failure must report unavailable")
	}
}
