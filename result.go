package sirsim

// Go has no template specialization, so the original GetData<T>(channel)
// surface becomes one typed accessor per view (spec §4.7, §9). Each
// returns (nil, false) for a channel the view does not support, preserving
// the "null/absent result" contract without a panic.

// TimeSeries returns the full time-series tally for channel, as an
// interface{} holding either *PrevalenceTimeSeries (Susceptible, Infected,
// Recovered) or *IncidenceTimeSeries (Infections, Recoveries).
func (s *Simulation) TimeSeries(channel Channel) (interface{}, bool) {
	switch channel {
	case ChanSusceptible:
		return s.Susceptible, true
	case ChanInfected:
		return s.Infected, true
	case ChanRecovered:
		return s.Recovered, true
	case ChanInfections:
		return s.Infections, true
	case ChanRecoveries:
		return s.Recoveries, true
	default:
		return nil, false
	}
}

// Statistic returns the running TimeStatistic for channel.
func (s *Simulation) Statistic(channel Channel) (TimeStatistic, bool) {
	switch channel {
	case ChanSusceptible:
		return s.susceptibleSx, true
	case ChanInfected:
		return s.infectedSx, true
	case ChanRecovered:
		return s.recoveredSx, true
	case ChanInfections:
		return s.infectionsSx, true
	case ChanRecoveries:
		return s.recoveriesSx, true
	default:
		return nil, false
	}
}

// Pyramid returns the age/sex-stratified PyramidTimeSeries for channel.
func (s *Simulation) Pyramid(channel Channel) (*PyramidTimeSeries, bool) {
	switch channel {
	case ChanSusceptible:
		return s.susceptiblePyr, true
	case ChanInfected:
		return s.infectedPyr, true
	case ChanRecovered:
		return s.recoveredPyr, true
	case ChanInfections:
		return s.infectionsPyr, true
	case ChanRecoveries:
		return s.recoveriesPyr, true
	default:
		return nil, false
	}
}

// InfectionAgePercent returns the final infections-by-age-bucket
// percentage summary. Only ChanInfections supports this view (the
// original GetData<PyramidData<double>> specialization returns nullptr
// for every other channel).
func (s *Simulation) InfectionAgePercent(channel Channel) (*PyramidData[float64], bool) {
	if channel != ChanInfections {
		return nil, false
	}
	return s.infectionsAgePercent, true
}

// AgeBreaks returns the age-break vector used to bucket every pyramid
// tally, so callers (e.g. CSV/SQLite loggers) can label columns.
func (s *Simulation) AgeBreaks() []int {
	return s.ageBreaks
}

// NPeople returns the population size the simulation was constructed with.
func (s *Simulation) NPeople() int { return s.params.NPeople }

// TMax returns the simulation horizon in days.
func (s *Simulation) TMax() float64 { return s.params.TMax }
