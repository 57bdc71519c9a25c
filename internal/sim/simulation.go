package sim

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/realmfikri/pandemica/internal/logging"
	"github.com/realmfikri/pandemica/internal/series"
)

// ControlSettings are the knobs clients may change while a run is live.
type ControlSettings struct {
	// TransmissionModifier scales the infection probability, in [0, 1].
	TransmissionModifier float64
	// LockdownEnabled slows every mobile agent to a tenth of its speed.
	LockdownEnabled bool
}

// DefaultControls returns the settings of an unmodified run.
func DefaultControls() ControlSettings {
	return ControlSettings{TransmissionModifier: 1}
}

func (c ControlSettings) normalize() ControlSettings {
	if c.TransmissionModifier < 0 {
		c.TransmissionModifier = 0
	} else if c.TransmissionModifier > 1 {
		c.TransmissionModifier = 1
	}
	return c
}

// Member is a named population taking part in a World.
type Member struct {
	Name       string
	Color      string
	Population *Population
}

// PopulationSnapshot is a copy of one population's observable state.
type PopulationSnapshot struct {
	Name       string
	Color      string
	Agents     []AgentView
	Series     *series.TimeSeries
	Sick       int
	Collisions int
	Ticks      int
	Revision   uint64
}

// Snapshot is a copy of the whole world after a step.
type Snapshot struct {
	Tick        int
	Populations []PopulationSnapshot
	Controls    ControlSettings
}

// Revision sums the population revisions. It changes whenever any time series
// changed.
func (s Snapshot) Revision() uint64 {
	var total uint64
	for _, p := range s.Populations {
		total += p.Revision
	}
	return total
}

// Series returns each population's time series in member order.
func (s Snapshot) Series() []*series.TimeSeries {
	out := make([]*series.TimeSeries, len(s.Populations))
	for i, p := range s.Populations {
		out[i] = p.Series
	}
	return out
}

// World steps several populations side by side and lets other goroutines
// adjust controls between steps.
type World struct {
	mu       sync.Mutex
	members  []Member
	controls ControlSettings
	tick     int
	logger   *slog.Logger
}

// NewWorld groups members into a world. At least one member is required.
func NewWorld(logger *slog.Logger, members ...Member) (*World, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("world needs at least one population")
	}
	for i, m := range members {
		if m.Population == nil {
			return nil, fmt.Errorf("population %d (%q) is nil", i, m.Name)
		}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &World{
		members:  members,
		controls: DefaultControls(),
		logger:   logger,
	}, nil
}

// Step advances every population by one tick, in member order.
func (w *World) Step() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stepLocked()
}

func (w *World) stepLocked() error {
	for _, m := range w.members {
		if err := m.Population.Step(); err != nil {
			return fmt.Errorf("population %q: %w", m.Name, err)
		}
	}
	w.tick++
	return nil
}

// ApplyControls pushes settings to every population and returns the values in
// effect after clamping.
func (w *World) ApplyControls(c ControlSettings) ControlSettings {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, m := range w.members {
		w.controls = m.Population.ApplyControls(c)
	}
	w.logger.Info("controls updated",
		"transmission_modifier", w.controls.TransmissionModifier,
		"lockdown", w.controls.LockdownEnabled)
	return w.controls
}

// Controls returns the settings in effect.
func (w *World) Controls() ControlSettings {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.controls
}

// Snapshot copies the observable state of every population.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *World) snapshotLocked() Snapshot {
	snap := Snapshot{
		Tick:        w.tick,
		Controls:    w.controls,
		Populations: make([]PopulationSnapshot, len(w.members)),
	}
	for i, m := range w.members {
		p := m.Population
		snap.Populations[i] = PopulationSnapshot{
			Name:       m.Name,
			Color:      m.Color,
			Agents:     p.Agents(),
			Series:     p.TimeSeries(),
			Sick:       p.SickCount(),
			Collisions: p.Collisions(),
			Ticks:      p.Ticks(),
			Revision:   p.Revision(),
		}
	}
	return snap
}

// Run steps the world every interval until ctx is cancelled, handing each
// post-step snapshot to report. A step that overruns the interval delays the
// next one; missed ticks are not replayed. A step error stops the run and is
// returned.
func (w *World) Run(ctx context.Context, interval time.Duration, report func(Snapshot)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.mu.Lock()
			err := w.stepLocked()
			tick := w.tick
			var snap Snapshot
			if err == nil && report != nil {
				snap = w.snapshotLocked()
			}
			w.mu.Unlock()

			if err != nil {
				w.logger.Error("simulation step failed", "err", err)
				return err
			}
			if report != nil {
				report(snap)
			}
			w.logger.Log(ctx, logging.LevelTrace, "simulation step", "tick", tick)
		}
	}
}
