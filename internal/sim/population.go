package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/realmfikri/pandemica/internal/events"
	"github.com/realmfikri/pandemica/internal/logging"
	"github.com/realmfikri/pandemica/internal/series"
)

const lockdownSpeedModifier = 0.1

// Population owns a fixed, index-addressed set of agents and the counters
// derived from their events. It is single-threaded: every mutation happens
// inside Step or ApplyControls, and callers must not invoke them concurrently.
type Population struct {
	params Params
	agents []*Agent
	rng    Source
	bus    events.Bus
	logger *slog.Logger

	ticks      int
	collisions int
	sick       int
	revision   uint64
	infections *series.TimeSeries

	controls      ControlSettings
	speedModifier float64
}

// Option configures a Population.
type Option func(*Population)

// WithLogger sets the logger used for health transitions and contacts.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Population) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New validates params and creates the population. Agent 0 starts infected.
func New(params Params, rng Source, opts ...Option) (*Population, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidParams)
	}

	p := &Population{
		params:        params,
		rng:           rng,
		logger:        slog.New(slog.DiscardHandler),
		infections:    series.New(),
		controls:      DefaultControls(),
		speedModifier: 1,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.agents = make([]*Agent, params.Size)
	for i := range p.agents {
		p.agents[i] = newAgent(params, rng)
	}
	p.agents[0].Health = Infected
	p.sick = 1

	p.bus.Subscribe(p.countTicks)
	p.bus.Subscribe(p.countCollisions)
	p.bus.Subscribe(p.countInfections)
	return p, nil
}

func (p *Population) countTicks(e events.Event) error {
	if e == events.Tick {
		p.ticks++
	}
	return nil
}

func (p *Population) countCollisions(e events.Event) error {
	if e == events.Collision {
		p.collisions++
	}
	return nil
}

func (p *Population) countInfections(e events.Event) error {
	switch e {
	case events.Init:
	case events.Infection:
		p.sick++
	case events.Immune, events.Death:
		p.sick--
	default:
		return nil
	}
	p.infections.Record(p.ticks, p.sick)
	p.revision++
	return nil
}

// Subscribe registers an additional handler on the population's bus. It runs
// after the built-in counters.
func (p *Population) Subscribe(h events.Handler) {
	p.bus.Subscribe(h)
}

// Step advances the population by one tick: agents move and progress their
// illness, new contacts roll for transmission, then the tick is published.
// A failing event handler aborts the step and its error is returned.
func (p *Population) Step() error {
	for i, a := range p.agents {
		if err := a.step(p, i); err != nil {
			return fmt.Errorf("step %d agent %d: %w", p.ticks, i, err)
		}
	}
	if err := p.spread(); err != nil {
		return fmt.Errorf("step %d spread: %w", p.ticks, err)
	}
	if err := p.bus.Publish(events.Tick); err != nil {
		return fmt.Errorf("step %d: %w", p.ticks, err)
	}
	if p.ticks == 1 {
		if err := p.bus.Publish(events.Init); err != nil {
			return fmt.Errorf("step %d: %w", p.ticks, err)
		}
	}
	return nil
}

// spread prunes finished contacts, then lets every infected agent try to
// infect susceptible agents it has newly touched.
func (p *Population) spread() error {
	for _, a := range p.agents {
		kept := a.collidingWith[:0]
		for _, k := range a.collidingWith {
			if touching(p.agents[k], a) {
				kept = append(kept, k)
			}
		}
		a.collidingWith = kept
	}

	prob := p.InfectionProbability()
	for i, infector := range p.agents {
		if infector.Health != Infected {
			continue
		}
		for j, a := range p.agents {
			if i == j || a.Health != Susceptible || a.inContactWith(i) {
				continue
			}
			if !touching(infector, a) {
				continue
			}

			p.logger.Log(context.Background(), logging.LevelTrace, "contact", "infector", i, "agent", j, "tick", p.ticks)
			if err := p.bus.Publish(events.Collision); err != nil {
				return err
			}
			a.collidingWith = append(a.collidingWith, i)
			if chance(p.rng, prob) {
				a.Health = Infected
				a.TicksInfected = 0
				p.logger.Debug("agent infected", "infector", i, "agent", j, "tick", p.ticks)
				if err := p.bus.Publish(events.Infection); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// touching reports whether b lies within the infector's radius. Only the
// infector's radius counts.
func touching(infector, b *Agent) bool {
	return math.Hypot(infector.X-b.X, infector.Y-b.Y) <= infector.Radius
}

// DeathProbability returns the mortality applied to the agent at index when
// its illness resolves. It rises by the escalation bonus while the live sick
// count is above the critical threshold.
func (p *Population) DeathProbability(index int) float64 {
	if p.sick > p.params.CriticalSick {
		p.logger.Debug("mortality escalated", "agent", index, "sick", p.sick, "critical", p.params.CriticalSick)
		return p.params.DeathProbability + p.params.EscalationBonus
	}
	return p.params.DeathProbability
}

// InfectionProbability is the per-contact transmission chance after the
// transmission modifier.
func (p *Population) InfectionProbability() float64 {
	return math.Min(p.params.InfectionProbability*p.controls.TransmissionModifier, 1)
}

// ApplyControls updates the transmission modifier and lockdown state and
// returns the settings actually in effect.
func (p *Population) ApplyControls(c ControlSettings) ControlSettings {
	p.controls = c.normalize()
	p.speedModifier = 1
	if p.controls.LockdownEnabled {
		p.speedModifier = lockdownSpeedModifier
	}
	return p.controls
}

// Controls returns the settings in effect.
func (p *Population) Controls() ControlSettings {
	return p.controls
}

// Agents returns a snapshot of every agent in index order.
func (p *Population) Agents() []AgentView {
	out := make([]AgentView, len(p.agents))
	for i, a := range p.agents {
		out[i] = a.view()
	}
	return out
}

// TimeSeries returns a copy of the recorded sick counts.
func (p *Population) TimeSeries() *series.TimeSeries {
	return p.infections.Clone()
}

// Params returns the construction parameters.
func (p *Population) Params() Params {
	return p.params
}

// SickCount returns the number of infected agents as tracked by events.
func (p *Population) SickCount() int { return p.sick }

// Ticks returns the number of completed steps.
func (p *Population) Ticks() int { return p.ticks }

// Collisions returns the number of new contacts seen so far.
func (p *Population) Collisions() int { return p.collisions }

// Revision changes whenever the time series gains or rewrites a sample.
func (p *Population) Revision() uint64 { return p.revision }
