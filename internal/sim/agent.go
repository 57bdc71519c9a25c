package sim

import (
	"math"

	"github.com/realmfikri/pandemica/internal/events"
)

// Agent represents a moving participant in the simulation space.
type Agent struct {
	X, Y   float64
	VX, VY float64
	Radius float64

	// Mobile is decided once at creation. Immobile agents never move.
	Mobile bool

	Health        Health
	TicksInfected int

	// collidingWith holds the indices of infectors this agent is still
	// touching, so a continuing contact is not rolled again.
	collidingWith []int
}

// AgentView is the read-only projection handed to renderers.
type AgentView struct {
	X, Y   float64
	Radius float64
	Health Health
}

func newAgent(p Params, src Source) *Agent {
	a := &Agent{
		Mobile: chance(src, p.MoveProbability),
		Radius: p.AgentRadius,
	}
	a.X = p.OriginX + src.Float64()*(p.Width-p.AgentRadius)
	a.Y = p.OriginY + src.Float64()*(p.Height-p.AgentRadius)
	a.VX = src.Float64() * p.AgentSpeed
	a.VY = math.Sqrt(p.AgentSpeed*p.AgentSpeed - a.VX*a.VX)
	return a
}

func (a *Agent) view() AgentView {
	return AgentView{X: a.X, Y: a.Y, Radius: a.Radius, Health: a.Health}
}

// step advances the agent by one tick: illness progression first, then
// movement scaled by the population's speed modifier.
func (a *Agent) step(pop *Population, index int) error {
	if a.Health == Dead {
		return nil
	}

	if a.Health == Infected {
		a.TicksInfected++
		if a.TicksInfected > pop.params.sicknessTicks() {
			if err := a.resolve(pop, index); err != nil {
				return err
			}
		}
	}

	if !a.Mobile {
		return nil
	}
	a.move(pop.params, pop.speedModifier)
	return nil
}

// resolve ends the illness. The death probability is read from the
// population at the moment of the roll.
func (a *Agent) resolve(pop *Population, index int) error {
	if chance(pop.rng, pop.DeathProbability(index)) {
		a.Health = Dead
		pop.logger.Debug("agent died", "agent", index, "tick", pop.ticks)
		return pop.bus.Publish(events.Death)
	}
	a.Health = Immune
	pop.logger.Debug("agent recovered", "agent", index, "tick", pop.ticks)
	return pop.bus.Publish(events.Immune)
}

func (a *Agent) move(p Params, modifier float64) {
	a.X += a.VX * modifier
	a.Y += a.VY * modifier

	if a.X < p.OriginX {
		a.X = p.OriginX
		a.VX = -a.VX
	}
	if a.X+a.Radius > p.OriginX+p.Width {
		a.X = p.OriginX + p.Width - a.Radius
		a.VX = -a.VX
	}
	if a.Y < p.OriginY {
		a.Y = p.OriginY
		a.VY = -a.VY
	}
	if a.Y+a.Radius > p.OriginY+p.Height {
		a.Y = p.OriginY + p.Height - a.Radius
		a.VY = -a.VY
	}
}

func (a *Agent) inContactWith(index int) bool {
	for _, k := range a.collidingWith {
		if k == index {
			return true
		}
	}
	return false
}
