package sirsim

// Channel names a logical data channel tallies and the result accessor key
// on (spec §3's "Tally set", §4.7's GetData).
type Channel int

const (
	ChanSusceptible Channel = iota
	ChanInfected
	ChanRecovered
	ChanInfections
	ChanRecoveries
)

// String names a Channel the way loggers label rows and columns.
func (c Channel) String() string {
	switch c {
	case ChanSusceptible:
		return "Susceptible"
	case ChanInfected:
		return "Infected"
	case ChanRecovered:
		return "Recovered"
	case ChanInfections:
		return "Infections"
	case ChanRecoveries:
		return "Recoveries"
	default:
		return "Unknown"
	}
}

// InfectionEvent creates the event that transitions individual idx from
// Susceptible to Infected at the time it fires, and schedules that
// individual's RecoveryEvent.
//
// Guards against re-infection (open question §9, resolved in DESIGN.md):
// if idx is no longer Susceptible by the time this event fires — e.g. two
// FOI updates raced it onto the queue twice at the same tick — the event
// is a no-op and reports failure, rather than double-counting (T3).
func (s *Simulation) InfectionEvent(idx int) EventFunc {
	if idx < 0 || idx >= len(s.population) {
		panic("sirsim: individual index out of range")
	}
	return func(t float64, schedule Scheduler) bool {
		idv := s.population[idx]
		if idv.HealthState != Susceptible {
			return false
		}

		ok := s.tallyIncrement(t, ChanSusceptible, idv, -1)
		ok = s.tallyIncrement(t, ChanInfected, idv, +1) && ok
		ok = s.tallyIncrement(t, ChanInfections, idv, +1) && ok

		recoveryTime := t + s.timeToRecovery()
		schedule.Schedule(MakeEvent(recoveryTime, s.RecoveryEvent(idx)))

		s.population.SetHealthState(idx, Infected)
		return ok
	}
}

// RecoveryEvent creates the event that transitions individual idx from
// Infected to Recovered at the time it fires.
func (s *Simulation) RecoveryEvent(idx int) EventFunc {
	if idx < 0 || idx >= len(s.population) {
		panic("sirsim: individual index out of range")
	}
	return func(t float64, schedule Scheduler) bool {
		idv := s.population[idx]

		ok := s.tallyIncrement(t, ChanInfected, idv, -1)
		ok = s.tallyIncrement(t, ChanRecovered, idv, +1) && ok
		ok = s.tallyIncrement(t, ChanRecoveries, idv, +1) && ok

		s.population.SetHealthState(idx, Recovered)
		return ok
	}
}

// FOIUpdateEvent creates the event that re-evaluates the force of infection
// at the time it fires: for every Susceptible individual, it samples a
// time-to-infection and schedules an InfectionEvent if that time falls
// within the next tick. It then reschedules itself one tick ahead.
func (s *Simulation) FOIUpdateEvent() EventFunc {
	return func(t float64, schedule Scheduler) bool {
		for idx, idv := range s.population {
			if idv.HealthState != Susceptible {
				continue
			}
			ttI, ok := s.timeToInfection(t)
			if ok && ttI < s.params.Δt {
				schedule.Schedule(MakeEvent(t+ttI, s.InfectionEvent(idx)))
			}
		}
		schedule.Schedule(MakeEvent(t+s.params.Δt, s.FOIUpdateEvent()))
		return true
	}
}

// timeToInfection samples the time until the next infection event for a
// single susceptible individual at time t, using the mean-field force of
// infection λ·I(t)/N. Returns ok == false when I(t) == 0: the rate is zero,
// Exponential is undefined, and per spec §4.4's numerical-care note this is
// "no event within Δt" rather than a sample.
func (s *Simulation) timeToInfection(t float64) (ttI float64, ok bool) {
	infected := s.Infected.GetTotalAtTime(t)
	if infected == 0 {
		return 0, false
	}
	foi := s.params.λ * infected / float64(s.params.NPeople)
	return Exponential(s.rng, foi), true
}

// timeToRecovery samples the duration of infectiousness, rate 1/Ɣ.
func (s *Simulation) timeToRecovery() float64 {
	return Exponential(s.rng, 1/s.params.Ɣ)
}
