package sim

import "fmt"

// Health is the disease state of an agent.
type Health uint8

const (
	Susceptible Health = iota
	Infected
	Immune
	Dead
)

func (h Health) String() string {
	switch h {
	case Susceptible:
		return "susceptible"
	case Infected:
		return "infected"
	case Immune:
		return "immune"
	case Dead:
		return "dead"
	default:
		return fmt.Sprintf("health(%d)", uint8(h))
	}
}

// Source supplies uniform random numbers in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// chance runs a Bernoulli trial. p <= 0 never succeeds and p >= 1 always does.
func chance(src Source, p float64) bool {
	return src.Float64() < p
}
