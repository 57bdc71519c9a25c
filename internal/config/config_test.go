package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/realmfikri/pandemica/internal/sim"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to be valid, got %v", err)
	}
	if len(cfg.Populations) != 2 {
		t.Fatalf("expected two populations, got %d", len(cfg.Populations))
	}

	want := sim.DefaultParams()
	if got := cfg.Params(0); got != want {
		t.Fatalf("expected first population to use reference params %+v, got %+v", want, got)
	}
	if got := cfg.Params(1); got.OriginY != 400 || got.MoveProbability != 0.2 {
		t.Fatalf("expected distanced population at y=400 with move 0.2, got %+v", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pandemica.yaml")
	content := `
simulation:
  size: 20
  infection_probability: 0.5
  seed: 99
populations:
  - name: crowd
    color: "#123456"
    origin_x: 10
    origin_y: 10
    move_probability: 0.7
server:
  interval: 50ms
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Simulation.Size != 20 || cfg.Simulation.InfectionProbability != 0.5 || cfg.Simulation.Seed != 99 {
		t.Fatalf("expected overridden simulation settings, got %+v", cfg.Simulation)
	}
	if cfg.Simulation.AgentRadius != 5 {
		t.Fatalf("expected unspecified fields to keep defaults, got radius %v", cfg.Simulation.AgentRadius)
	}
	if len(cfg.Populations) != 1 || cfg.Populations[0].Name != "crowd" {
		t.Fatalf("expected single crowd population, got %+v", cfg.Populations)
	}
	if cfg.Server.Interval != 50*time.Millisecond {
		t.Fatalf("expected 50ms interval, got %v", cfg.Server.Interval)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected loaded config to be valid, got %v", err)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("simulation: [oops"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PANDEMICA_ADDR", ":9090")
	t.Setenv("PANDEMICA_LOG_LEVEL", "trace")
	t.Setenv("PANDEMICA_SEED", "7")
	t.Setenv("PANDEMICA_INTERVAL", "25ms")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("expected addr :9090, got %q", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "trace" {
		t.Fatalf("expected trace level, got %q", cfg.Logging.Level)
	}
	if cfg.Simulation.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", cfg.Simulation.Seed)
	}
	if cfg.Server.Interval != 25*time.Millisecond {
		t.Fatalf("expected 25ms interval, got %v", cfg.Server.Interval)
	}
}

func TestEnvOverrideErrors(t *testing.T) {
	t.Setenv("PANDEMICA_SEED", "not-a-number")
	if _, err := Load(""); err == nil {
		t.Fatal("expected an error for a malformed seed")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"no populations", func(c *Config) { c.Populations = nil }, "at least one population"},
		{"unnamed population", func(c *Config) { c.Populations[0].Name = "" }, "name is required"},
		{"duplicate names", func(c *Config) { c.Populations[1].Name = "mobile" }, "duplicate name"},
		{"bad move probability", func(c *Config) { c.Populations[1].MoveProbability = 3 }, "move probability"},
		{"negative width", func(c *Config) { c.Simulation.Width = -1 }, "width must be positive"},
		{"zero axis", func(c *Config) { c.Chart.AxisLength = 0 }, "axis_length"},
		{"zero interval", func(c *Config) { c.Server.Interval = 0 }, "interval"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	cfg := Default()
	cfg.Simulation.Size = 0
	if err := cfg.Validate(); !errors.Is(err, sim.ErrInvalidParams) {
		t.Fatalf("expected engine parameter errors to wrap ErrInvalidParams, got %v", err)
	}
}
