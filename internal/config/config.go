// Package config loads the daemon configuration shared with the installer
// scripts and the settings GUI. The file is flat KEY=VALUE text; every field
// has a compiled-in default so the in-memory Config is always fully
// populated, with or without a file on disk.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultPath is where the collaborators (installer, settings bridge, GUI)
// write the shared configuration file.
const DefaultPath = "/etc/jack-bridge/bluetooth.conf"

const (
	defaultLogFile = "/var/log/jackbridge.log"
	defaultPIDFile = "/var/run/jackbridge.pid"
)

// ProfileParams holds the audio parameters for one transport profile class.
type ProfileParams struct {
	Rate     int
	Period   int
	Periods  int
	Channels int
}

// Config aggregates all daemon tunables. Values read through a Store must be
// treated as immutable; reload installs a fresh Config wholesale.
type Config struct {
	// A2DP is the high-bandwidth streaming profile class.
	A2DP ProfileParams
	// A2DPDriftComp enables drift compensation on streaming bridges.
	A2DPDriftComp bool
	// SCO is the low-bandwidth voice profile class.
	SCO ProfileParams

	SpawnDelay       time.Duration
	ChildTermTimeout time.Duration
	MaxBridges       int

	LogFile     string
	PIDFile     string
	RuntimeUser string
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		A2DP:          ProfileParams{Rate: 48000, Period: 1024, Periods: 3, Channels: 2},
		A2DPDriftComp: true,
		SCO:           ProfileParams{Rate: 16000, Period: 256, Periods: 3, Channels: 1},

		SpawnDelay:       0,
		ChildTermTimeout: 4 * time.Second,
		MaxBridges:       8,

		LogFile:     defaultLogFile,
		PIDFile:     defaultPIDFile,
		RuntimeUser: "jack",
	}
}

// Load reads path on top of the defaults. A missing file is not an error:
// the defaults apply. Blank lines and '#' comments are skipped, malformed
// lines are skipped, and unknown keys are ignored so newer collaborators can
// add keys without breaking older daemons.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		applyKey(&cfg, strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

func applyKey(cfg *Config, key, value string) {
	switch key {
	case "A2DP_RATE":
		setInt(&cfg.A2DP.Rate, key, value)
	case "A2DP_PERIOD":
		setInt(&cfg.A2DP.Period, key, value)
	case "A2DP_NPERIODS":
		setInt(&cfg.A2DP.Periods, key, value)
	case "A2DP_CHANNELS":
		setInt(&cfg.A2DP.Channels, key, value)
	case "A2DP_DRIFT_COMP":
		if n, ok := parseInt(key, value); ok {
			cfg.A2DPDriftComp = n != 0
		}
	case "SCO_RATE":
		setInt(&cfg.SCO.Rate, key, value)
	case "SCO_PERIOD":
		setInt(&cfg.SCO.Period, key, value)
	case "SCO_NPERIODS":
		setInt(&cfg.SCO.Periods, key, value)
	case "SCO_CHANNELS":
		setInt(&cfg.SCO.Channels, key, value)
	case "SPAWN_DELAY":
		if n, ok := parseInt(key, value); ok {
			cfg.SpawnDelay = time.Duration(n) * time.Second
		}
	case "CHILD_TERM_TIMEOUT":
		if n, ok := parseInt(key, value); ok {
			cfg.ChildTermTimeout = time.Duration(n) * time.Second
		}
	case "MAX_BRIDGES":
		setInt(&cfg.MaxBridges, key, value)
	case "LOG_FILE":
		cfg.LogFile = value
	case "PID_FILE":
		cfg.PIDFile = value
	case "RUNTIME_USER":
		cfg.RuntimeUser = value
	}
}

func setInt(dst *int, key, value string) {
	if n, ok := parseInt(key, value); ok {
		*dst = n
	}
}

func parseInt(key, value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.Printf("config: ignoring %s=%q: not a non-negative integer", key, value)
		return 0, false
	}
	return n, true
}

// Params returns the profile class parameters for the given voice flag.
func (c *Config) Params(voice bool) ProfileParams {
	if voice {
		return c.SCO
	}
	return c.A2DP
}
