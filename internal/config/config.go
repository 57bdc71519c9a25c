// Package config loads pandemica settings from YAML files and environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/realmfikri/pandemica/internal/logging"
	"github.com/realmfikri/pandemica/internal/sim"
)

// Config contains all pandemica settings.
type Config struct {
	// Simulation holds the parameters shared by every population.
	Simulation SimulationConfig `yaml:"simulation"`

	// Populations lists the populations simulated side by side.
	Populations []PopulationConfig `yaml:"populations"`

	// Chart positions the shared infections chart.
	Chart ChartConfig `yaml:"chart"`

	// Server configures the live websocket feed.
	Server ServerConfig `yaml:"server"`

	// Logging configures operational logging.
	Logging LoggingConfig `yaml:"logging"`
}

// SimulationConfig holds disease and agent parameters.
type SimulationConfig struct {
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	Size                 int     `yaml:"size"`
	InfectionProbability float64 `yaml:"infection_probability"`
	DeathProbability     float64 `yaml:"death_probability"`
	SicknessDuration     int     `yaml:"sickness_duration"`
	CriticalSick         int     `yaml:"critical_sick"`
	EscalationBonus      float64 `yaml:"escalation_bonus"`
	AgentRadius          float64 `yaml:"agent_radius"`
	AgentSpeed           float64 `yaml:"agent_speed"`

	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// PopulationConfig places one population and sets its mobility.
type PopulationConfig struct {
	Name            string  `yaml:"name"`
	Color           string  `yaml:"color"`
	OriginX         float64 `yaml:"origin_x"`
	OriginY         float64 `yaml:"origin_y"`
	MoveProbability float64 `yaml:"move_probability"`
}

// ChartConfig positions the infections chart.
type ChartConfig struct {
	OriginX         float64   `yaml:"origin_x"`
	OriginY         float64   `yaml:"origin_y"`
	AxisLength      float64   `yaml:"axis_length"`
	CriticalHeights []float64 `yaml:"critical_heights"`
}

// ServerConfig configures the live feed.
type ServerConfig struct {
	Addr string `yaml:"addr"`

	// Interval is the wall-clock time between steps.
	Interval time.Duration `yaml:"interval"`

	// StaticDir is served at / when it exists.
	StaticDir string `yaml:"static_dir"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug" or "trace".
	Level string `yaml:"level"`
}

// Default returns the reference configuration: a fully mobile population and
// a distanced one, charted together.
func Default() *Config {
	p := sim.DefaultParams()
	return &Config{
		Simulation: SimulationConfig{
			Width:                p.Width,
			Height:               p.Height,
			Size:                 p.Size,
			InfectionProbability: p.InfectionProbability,
			DeathProbability:     p.DeathProbability,
			SicknessDuration:     p.SicknessDuration,
			CriticalSick:         p.CriticalSick,
			EscalationBonus:      p.EscalationBonus,
			AgentRadius:          p.AgentRadius,
			AgentSpeed:           p.AgentSpeed,
		},
		Populations: []PopulationConfig{
			{Name: "mobile", Color: "#ff9933", OriginX: 0, OriginY: 10, MoveProbability: 1},
			{Name: "distanced", Color: "#cc00ff", OriginX: 0, OriginY: 400, MoveProbability: 0.2},
		},
		Chart: ChartConfig{
			OriginX:         800,
			OriginY:         700,
			AxisLength:      600,
			CriticalHeights: []float64{float64(p.CriticalSick)},
		},
		Server: ServerConfig{
			Addr:      ":8080",
			Interval:  10 * time.Millisecond,
			StaticDir: "web",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration in order: defaults, then the YAML file at
// path when path is not empty, then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileConfig
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies PANDEMICA_* environment variables.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PANDEMICA_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("PANDEMICA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PANDEMICA_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PANDEMICA_SEED: %w", err)
		}
		cfg.Simulation.Seed = seed
	}
	if v := os.Getenv("PANDEMICA_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PANDEMICA_INTERVAL: %w", err)
		}
		cfg.Server.Interval = d
	}
	return nil
}

// Params returns the engine parameters of population i.
func (c *Config) Params(i int) sim.Params {
	pop := c.Populations[i]
	s := c.Simulation
	return sim.Params{
		OriginX:              pop.OriginX,
		OriginY:              pop.OriginY,
		Width:                s.Width,
		Height:               s.Height,
		MoveProbability:      pop.MoveProbability,
		Size:                 s.Size,
		InfectionProbability: s.InfectionProbability,
		DeathProbability:     s.DeathProbability,
		SicknessDuration:     s.SicknessDuration,
		CriticalSick:         s.CriticalSick,
		EscalationBonus:      s.EscalationBonus,
		AgentRadius:          s.AgentRadius,
		AgentSpeed:           s.AgentSpeed,
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Populations) == 0 {
		return fmt.Errorf("at least one population is required")
	}

	names := make(map[string]bool, len(c.Populations))
	for i, pop := range c.Populations {
		if pop.Name == "" {
			return fmt.Errorf("population %d: name is required", i)
		}
		if names[pop.Name] {
			return fmt.Errorf("population %q: duplicate name", pop.Name)
		}
		names[pop.Name] = true
		if err := c.Params(i).Validate(); err != nil {
			return fmt.Errorf("population %q: %w", pop.Name, err)
		}
	}

	if c.Chart.AxisLength <= 0 {
		return fmt.Errorf("chart axis_length must be positive, got %v", c.Chart.AxisLength)
	}
	if c.Server.Interval <= 0 {
		return fmt.Errorf("server interval must be positive, got %v", c.Server.Interval)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, warn, error, or empty for default)", c.Logging.Level)
	}
	return nil
}
