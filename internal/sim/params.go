package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every construction parameter error.
var ErrInvalidParams = errors.New("invalid simulation parameters")

// sicknessTickFactor converts SicknessDuration into ticks.
const sicknessTickFactor = 100

// MaxSicknessDuration keeps the sickness length in ticks within an int32.
const MaxSicknessDuration = math.MaxInt32 / sicknessTickFactor

// Params are the construction parameters of a Population.
type Params struct {
	OriginX, OriginY float64
	Width, Height    float64

	// MoveProbability is the chance each agent is mobile.
	MoveProbability float64
	Size            int

	InfectionProbability float64
	DeathProbability     float64

	// SicknessDuration is measured in hundreds of ticks.
	SicknessDuration int

	// CriticalSick is the sick count above which EscalationBonus is added
	// to DeathProbability.
	CriticalSick    int
	EscalationBonus float64

	AgentRadius float64
	AgentSpeed  float64
}

// DefaultParams returns the reference parameterisation.
func DefaultParams() Params {
	return Params{
		OriginX:              0,
		OriginY:              10,
		Width:                300,
		Height:               300,
		MoveProbability:      1,
		Size:                 50,
		InfectionProbability: 0.10,
		DeathProbability:     0.05,
		SicknessDuration:     60,
		CriticalSick:         35,
		EscalationBonus:      0.20,
		AgentRadius:          5,
		AgentSpeed:           2,
	}
}

// Validate reports the first parameter that is out of range. NaN and
// infinite values are rejected everywhere.
func (p Params) Validate() error {
	floats := []struct {
		name  string
		value float64
	}{
		{"origin x", p.OriginX},
		{"origin y", p.OriginY},
		{"width", p.Width},
		{"height", p.Height},
		{"move probability", p.MoveProbability},
		{"infection probability", p.InfectionProbability},
		{"death probability", p.DeathProbability},
		{"escalation bonus", p.EscalationBonus},
		{"agent radius", p.AgentRadius},
		{"agent speed", p.AgentSpeed},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid("%s must be finite, got %v", f.name, f.value)
		}
	}

	if p.AgentRadius <= 0 {
		return invalid("agent radius must be positive, got %v", p.AgentRadius)
	}
	if p.Width <= 0 {
		return invalid("width must be positive, got %v", p.Width)
	}
	if p.Height <= 0 {
		return invalid("height must be positive, got %v", p.Height)
	}
	if p.Width <= p.AgentRadius || p.Height <= p.AgentRadius {
		return invalid("bounds %vx%v must exceed agent radius %v", p.Width, p.Height, p.AgentRadius)
	}
	if p.AgentSpeed < 0 {
		return invalid("agent speed must be non-negative, got %v", p.AgentSpeed)
	}
	if p.Size <= 0 {
		return invalid("population size must be positive, got %d", p.Size)
	}
	if p.SicknessDuration <= 0 || p.SicknessDuration > MaxSicknessDuration {
		return invalid("sickness duration must be between 1 and %d, got %d", MaxSicknessDuration, p.SicknessDuration)
	}
	if p.CriticalSick < 0 {
		return invalid("critical sick threshold must be non-negative, got %d", p.CriticalSick)
	}

	probabilities := []struct {
		name  string
		value float64
	}{
		{"move probability", p.MoveProbability},
		{"infection probability", p.InfectionProbability},
		{"death probability", p.DeathProbability},
		{"escalation bonus", p.EscalationBonus},
	}
	for _, prob := range probabilities {
		if prob.value < 0 || prob.value > 1 {
			return invalid("%s must be between 0 and 1, got %v", prob.name, prob.value)
		}
	}
	return nil
}

func (p Params) sicknessTicks() int {
	return p.SicknessDuration * sicknessTickFactor
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}
