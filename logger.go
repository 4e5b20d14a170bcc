package sirsim

// DataLogger is the general definition of a logger that records a
// trajectory's tally data to file, whether it writes CSV or a database.
// Grounded on the teacher's DataLogger interface, re-pointed from
// genotype/transmission channels at the five SIR channels.
type DataLogger interface {
	// SetBasePath sets the base path the logger writes under for
	// trajectory i.
	SetBasePath(path string, i int)
	// Init initializes the logger: creates files/tables and writes any
	// header information before the first row is written.
	Init() error
	// WritePrevalence records one (period, channel, value) row for a
	// prevalence channel (Susceptible, Infected, Recovered).
	WritePrevalence(c <-chan PrevalenceRow)
	// WriteIncidence records one (period, channel, count) row for an
	// incidence channel (Infections, Recoveries).
	WriteIncidence(c <-chan IncidenceRow)
	// WriteAgePercent records the final infections-by-age-bucket percent
	// summary.
	WriteAgePercent(c <-chan AgePercentRow)
}

// PrevalenceRow is one sample of a prevalence channel's level at the end
// of a period.
type PrevalenceRow struct {
	RunID   string
	Channel string
	Period  int
	Level   int
}

// IncidenceRow is one period's count for an incidence channel.
type IncidenceRow struct {
	RunID   string
	Channel string
	Period  int
	Count   int
}

// AgePercentRow is one age bucket's final infection-rate percentage.
type AgePercentRow struct {
	RunID   string
	Bucket  int
	AgeFrom int
	Percent float64
}
