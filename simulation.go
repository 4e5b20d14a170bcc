package sirsim

import "log"

// Params holds the nine numeric construction parameters of a Simulation
// (every NewSimulation argument except rng), all immutable once validated
// (spec §3 "Simulation parameters").
type Params struct {
	λ        float64 // transmission rate [cases/day]
	Ɣ        float64 // mean duration of infectiousness [days]
	NPeople  int
	AgeMin   int
	AgeMax   int
	AgeBreak int
	TMax     float64 // horizon [days]
	Δt       float64 // scheduler tick [days]
	PLength  float64 // aggregation period length [days]
}

// Simulation drives one individual-based SIR trajectory: construction
// validates parameters and allocates tallies, Run executes the event loop
// to completion, and the TimeSeries/Statistic/Pyramid/InfectionAgePercent
// accessors (result.go) expose the outcome.
type Simulation struct {
	params Params
	rng    RNG

	population Population
	queue      *EventQueue

	Susceptible *PrevalenceTimeSeries
	Infected    *PrevalenceTimeSeries
	Recovered   *PrevalenceTimeSeries
	Infections  *IncidenceTimeSeries
	Recoveries  *IncidenceTimeSeries

	susceptibleSx *ContinuousTimeStatistic
	infectedSx    *ContinuousTimeStatistic
	recoveredSx   *ContinuousTimeStatistic
	infectionsSx  *DiscreteTimeStatistic
	recoveriesSx  *DiscreteTimeStatistic

	susceptiblePyr *PyramidTimeSeries
	infectedPyr    *PyramidTimeSeries
	recoveredPyr   *PyramidTimeSeries
	infectionsPyr  *PyramidTimeSeries
	recoveriesPyr  *PyramidTimeSeries

	ageBreaks            []int
	totalAgeCounts       *PyramidData[int]
	infectionsAgeCounts  *PyramidData[int]
	infectionsAgePercent *PyramidData[float64]
}

// NewSimulation validates params and constructs a Simulation ready to Run.
// Validation follows spec §4.5 exactly: a nil rng returns ErrNilRNG and any
// other violated rule returns a *ConstructionError; tMax not a multiple of pLength or Δt is a non-fatal
// logged warning, not an error.
func NewSimulation(rng RNG, λ, Ɣ float64, nPeople, ageMin, ageMax, ageBreak uint, tMax, Δt, pLength uint) (*Simulation, error) {
	if rng == nil {
		return nil, ErrNilRNG
	}
	if λ <= 0 {
		return nil, newConstructionError("λ", "λ must be > 0")
	}
	if Ɣ <= 0 {
		return nil, newConstructionError("Ɣ", "Ɣ must be > 0")
	}
	if nPeople < 1 {
		return nil, newConstructionError("nPeople", "nPeople must be >= 1")
	}
	if ageMin > ageMax {
		return nil, newConstructionError("ageMin", "ageMin must be <= ageMax")
	}
	if ageBreak < 1 {
		return nil, newConstructionError("ageBreak", "ageBreak must be >= 1")
	}
	if ageBreak >= (ageMax - ageMin) {
		return nil, newConstructionError("ageBreak", "ageBreak must be < ageMax - ageMin")
	}
	if tMax < 1 {
		return nil, newConstructionError("tMax", "tMax must be >= 1")
	}
	if pLength == 0 {
		return nil, newConstructionError("pLength", "pLength must be > 0")
	}
	if pLength > tMax {
		return nil, newConstructionError("pLength", "pLength must be <= tMax")
	}
	if Δt < 1 {
		return nil, newConstructionError("Δt", "Δt must be >= 1")
	}
	if Δt > tMax {
		return nil, newConstructionError("Δt", "Δt must be <= tMax")
	}
	if tMax%pLength != 0 {
		log.Printf("sirsim: warning: tMax (%d) is not a multiple of pLength (%d)", tMax, pLength)
	}
	if tMax%Δt != 0 {
		log.Printf("sirsim: warning: tMax (%d) is not a multiple of Δt (%d)", tMax, Δt)
	}

	params := Params{
		λ:        λ,
		Ɣ:        Ɣ,
		NPeople:  int(nPeople),
		AgeMin:   int(ageMin),
		AgeMax:   int(ageMax),
		AgeBreak: int(ageBreak),
		TMax:     float64(tMax),
		Δt:       float64(Δt),
		PLength:  float64(pLength),
	}

	breaks := ageBreaks(params.AgeMin, params.AgeMax, params.AgeBreak)

	s := &Simulation{
		params:    params,
		rng:       rng,
		queue:     NewEventQueue(),
		ageBreaks: breaks,
	}

	s.susceptibleSx = NewContinuousTimeStatistic("Susceptible")
	s.infectedSx = NewContinuousTimeStatistic("Infected")
	s.recoveredSx = NewContinuousTimeStatistic("Recovered")
	s.infectionsSx = NewDiscreteTimeStatistic("Infections")
	s.recoveriesSx = NewDiscreteTimeStatistic("Recoveries")

	s.Susceptible = NewPrevalenceTimeSeries("Susceptible", params.TMax, params.PLength, s.susceptibleSx)
	s.Infected = NewPrevalenceTimeSeries("Infected", params.TMax, params.PLength, s.infectedSx)
	s.Recovered = NewPrevalenceTimeSeries("Recovered", params.TMax, params.PLength, s.recoveredSx)
	s.Infections = NewIncidenceTimeSeries("Infections", params.TMax, params.PLength, s.infectionsSx)
	s.Recoveries = NewIncidenceTimeSeries("Recoveries", params.TMax, params.PLength, s.recoveriesSx)

	const nSexCategories = 2
	s.susceptiblePyr = NewPyramidTimeSeries("Susceptible", params.TMax, params.PLength, breaks, nSexCategories, true)
	s.infectedPyr = NewPyramidTimeSeries("Infected", params.TMax, params.PLength, breaks, nSexCategories, true)
	s.recoveredPyr = NewPyramidTimeSeries("Recovered", params.TMax, params.PLength, breaks, nSexCategories, true)
	s.infectionsPyr = NewPyramidTimeSeries("Infections", params.TMax, params.PLength, breaks, nSexCategories, false)
	s.recoveriesPyr = NewPyramidTimeSeries("Recoveries", params.TMax, params.PLength, breaks, nSexCategories, false)

	s.totalAgeCounts = NewPyramidData[int](breaks, 1)
	s.infectionsAgeCounts = NewPyramidData[int](breaks, 1)
	s.infectionsAgePercent = NewPyramidData[float64](breaks, 1)

	return s, nil
}

// tallyIncrement applies increment to every tally a channel touches for
// idv at time t: the age/sex-stratified pyramid, the channel's running
// time series, and for Infections, the scalar age-count numerator used by
// the final percent computation.
func (s *Simulation) tallyIncrement(t float64, channel Channel, idv Individual, increment int) bool {
	cat := sexCategory(idv.Sex)
	switch channel {
	case ChanSusceptible:
		return s.susceptiblePyr.UpdateByAge(t, cat, idv.Age, increment) &&
			s.Susceptible.Record(t, increment)
	case ChanInfected:
		return s.infectedPyr.UpdateByAge(t, cat, idv.Age, increment) &&
			s.Infected.Record(t, increment)
	case ChanRecovered:
		return s.recoveredPyr.UpdateByAge(t, cat, idv.Age, increment) &&
			s.Recovered.Record(t, increment)
	case ChanInfections:
		ok := s.infectionsPyr.UpdateByAge(t, cat, idv.Age, increment) &&
			s.Infections.Record(t, increment)
		s.infectionsAgeCounts.UpdateByAge(0, idv.Age, increment)
		return ok
	case ChanRecoveries:
		return s.recoveriesPyr.UpdateByAge(t, cat, idv.Age, increment) &&
			s.Recoveries.Record(t, increment)
	default:
		return false
	}
}

// Run bootstraps the population, schedules the index case and the first
// force-of-infection update, then drains the event queue until the queue
// empties, tMax is reached, or prevalence fades out (spec §4.5 Main loop).
// Always returns true: an event that reports failure (e.g. a refused tally
// update) is logged and the loop continues; it is not surfaced as a Run
// failure (spec §7 propagation policy).
func (s *Simulation) Run() bool {
	s.bootstrap()

	const firstInfectionIdx = 0
	const timeOfFirstInfection = 0.0
	const foiOffset = 0.001

	s.queue.Schedule(MakeEvent(timeOfFirstInfection, s.InfectionEvent(firstInfectionIdx)))
	s.queue.Schedule(MakeEvent(timeOfFirstInfection+foiOffset, s.FOIUpdateEvent()))

	for !s.queue.Empty() {
		e := s.queue.Top()
		if e.T >= s.params.TMax {
			break
		}
		if !e.Run(e.T, s.queue) {
			log.Printf("sirsim: event at t=%g reported failure", e.T)
		}
		if s.Infected.GetCurrentPrevalence() == 0 {
			break
		}
		s.queue.Pop()
	}

	s.finalize()
	return true
}

// bootstrap creates nPeople Susceptible individuals with ages and sexes
// drawn from the configured distributions, and records each into the
// Susceptible tally and the age-count denominator at t = 0.
func (s *Simulation) bootstrap() {
	s.population = make(Population, s.params.NPeople)
	for i := 0; i < s.params.NPeople; i++ {
		idv := newIndividual(s.rng, s.params.AgeMin, s.params.AgeMax)
		s.population[i] = idv
		s.tallyIncrement(0, ChanSusceptible, idv, +1)
		s.totalAgeCounts.UpdateByAge(0, idv.Age, +1)
	}
}

// finalize closes every time-series tally (flushing the last period) and
// computes the final infections-by-age percentage.
func (s *Simulation) finalize() {
	s.Susceptible.Close()
	s.Infected.Close()
	s.Recovered.Close()
	s.Infections.Close()
	s.Recoveries.Close()

	s.susceptiblePyr.Close()
	s.infectedPyr.Close()
	s.recoveredPyr.Close()
	s.infectionsPyr.Close()
	s.recoveriesPyr.Close()

	nBuckets := s.infectionsAgeCounts.NumBuckets()
	for bucket := 0; bucket < nBuckets; bucket++ {
		total := s.totalAgeCounts.GetTotalInAgeGroupAndCategory(bucket, 0)
		if total == 0 {
			continue
		}
		count := s.infectionsAgeCounts.GetTotalInAgeGroupAndCategory(bucket, 0)
		percent := float64(count) / float64(total)
		s.infectionsAgePercent.UpdateByIdx(0, bucket, percent)
	}
}
