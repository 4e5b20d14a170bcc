package sirsim

// HealthState is the epidemiological status of an Individual. Transitions
// form a prefix of [Susceptible, Infected, Recovered]; Recovered is
// absorbing (T3).
type HealthState int

const (
	Susceptible HealthState = iota
	Infected
	Recovered
)

func (h HealthState) String() string {
	switch h {
	case Susceptible:
		return "Susceptible"
	case Infected:
		return "Infected"
	case Recovered:
		return "Recovered"
	default:
		return "Unknown"
	}
}

// Sex is the sex category of an Individual, used to stratify pyramid
// tallies. 0 -> Male, 1 -> Female, matching the Bernoulli sampler's output.
type Sex int

const (
	Male Sex = iota
	Female
)

// sexCategory returns the pyramid-tally column index for sex.
func sexCategory(s Sex) int {
	return int(s)
}

// Individual is an immutable-by-convention population member. HealthState
// is the only field mutated after creation, and only through
// Population.SetHealthState.
type Individual struct {
	HealthState HealthState
	Sex         Sex
	Age         int
}

// newIndividual creates a Susceptible individual with age and sex drawn
// from the supplied distributions.
func newIndividual(rng RNG, ageMin, ageMax int) Individual {
	return Individual{
		HealthState: Susceptible,
		Sex:         Sex(Bernoulli(rng, 0.5)),
		Age:         UniformDiscrete(rng, ageMin, ageMax+1),
	}
}

// Population is an ordered, fixed-size sequence of Individuals. Indices are
// stable and are the sole identifier event closures carry.
type Population []Individual

// SetHealthState transitions the individual at idx to state. It is the only
// sanctioned mutation path for an Individual's HealthState.
func (p Population) SetHealthState(idx int, state HealthState) {
	p[idx].HealthState = state
}
