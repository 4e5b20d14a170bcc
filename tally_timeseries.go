package sirsim

// periodIndex maps a time t to its aggregation bucket index, per spec §9's
// instruction to define t -> floor(t / pLength) once and reuse it.
func periodIndex(t, pLength float64) int {
	return int(t / pLength)
}

// PrevalenceTimeSeries records net-level samples (a running level that goes
// up and down, e.g. current Infected count) bucketed by period. Supports
// querying the current level and the level as of a past time.
type PrevalenceTimeSeries struct {
	name      string
	pLength   float64
	nPeriods  int
	levels    []int // per-period: level as of the end of that period
	current   int
	lastT     float64
	lastIdx   int
	started   bool
	closed    bool
	statistic TimeStatistic
}

// NewPrevalenceTimeSeries creates a PrevalenceTimeSeries spanning [0, tMax)
// in buckets of width pLength, optionally forwarding every Record to a
// TimeStatistic.
func NewPrevalenceTimeSeries(name string, tMax, pLength float64, statistic TimeStatistic) *PrevalenceTimeSeries {
	nPeriods := int(tMax/pLength) + 1
	return &PrevalenceTimeSeries{
		name:      name,
		pLength:   pLength,
		nPeriods:  nPeriods,
		levels:    make([]int, nPeriods),
		statistic: statistic,
	}
}

// Record applies delta to the running level at time t. Returns false
// (a tally-update refusal, spec §7) if t precedes the last recorded time or
// the series has been closed.
func (p *PrevalenceTimeSeries) Record(t float64, delta int) bool {
	if p.closed {
		return false
	}
	if p.started && t < p.lastT {
		return false
	}
	old := p.current
	p.current += delta
	idx := periodIndex(t, p.pLength)
	p.carryForward(idx, old)
	if idx < p.nPeriods {
		p.levels[idx] = p.current
	}
	p.lastT = t
	p.lastIdx = idx
	p.started = true
	if p.statistic != nil {
		p.statistic.Record(t, float64(p.current))
	}
	return true
}

// carryForward fills every period strictly between the last recorded
// period and idx with old, the level that held throughout them before this
// Record's delta took effect. It never touches idx itself (the caller
// writes the new level there) or any period at or before the last recorded
// one, which earlier calls already settled.
func (p *PrevalenceTimeSeries) carryForward(idx int, old int) {
	start := 0
	if p.started {
		start = p.lastIdx + 1
	}
	for i := start; i < idx && i < p.nPeriods; i++ {
		p.levels[i] = old
	}
}

// GetCurrentPrevalence returns the current running level.
func (p *PrevalenceTimeSeries) GetCurrentPrevalence() int { return p.current }

// NumPeriods returns the number of aggregation periods this series spans.
func (p *PrevalenceTimeSeries) NumPeriods() int { return p.nPeriods }

// GetLevelAtPeriod returns the forward-filled level recorded for a single
// period bucket.
func (p *PrevalenceTimeSeries) GetLevelAtPeriod(period int) int {
	if period < 0 || period >= p.nPeriods {
		return 0
	}
	return p.levels[period]
}

// GetTotalAtTime returns the level as of time t (the level at the end of
// t's period, or the current level if t falls beyond anything recorded).
func (p *PrevalenceTimeSeries) GetTotalAtTime(t float64) float64 {
	idx := periodIndex(t, p.pLength)
	if idx >= p.nPeriods {
		idx = p.nPeriods - 1
	}
	if idx > p.lastIdx {
		return float64(p.current)
	}
	return float64(p.levels[idx])
}

// Close flushes the last period, forward-filling any trailing buckets to
// the final current level.
func (p *PrevalenceTimeSeries) Close() {
	start := 0
	if p.started {
		start = p.lastIdx + 1
	}
	for i := start; i < p.nPeriods; i++ {
		p.levels[i] = p.current
	}
	p.closed = true
}

// IncidenceTimeSeries records count increments bucketed into fixed-width
// periods, e.g. new Infections per week.
type IncidenceTimeSeries struct {
	name      string
	pLength   float64
	nPeriods  int
	counts    []int
	total     int
	lastT     float64
	started   bool
	closed    bool
	statistic TimeStatistic
}

// NewIncidenceTimeSeries creates an IncidenceTimeSeries spanning [0, tMax)
// in buckets of width pLength.
func NewIncidenceTimeSeries(name string, tMax, pLength float64, statistic TimeStatistic) *IncidenceTimeSeries {
	nPeriods := int(tMax/pLength) + 1
	return &IncidenceTimeSeries{
		name:      name,
		pLength:   pLength,
		nPeriods:  nPeriods,
		counts:    make([]int, nPeriods),
		statistic: statistic,
	}
}

// Record adds delta to the period bucket containing t. Returns false if t
// precedes the last recorded time or the series has been closed.
func (ts *IncidenceTimeSeries) Record(t float64, delta int) bool {
	if ts.closed {
		return false
	}
	if ts.started && t < ts.lastT {
		return false
	}
	idx := periodIndex(t, ts.pLength)
	if idx >= ts.nPeriods {
		idx = ts.nPeriods - 1
	}
	ts.counts[idx] += delta
	ts.total += delta
	ts.lastT = t
	ts.started = true
	if ts.statistic != nil {
		ts.statistic.Record(t, float64(delta))
	}
	return true
}

// GetTotal returns the cumulative count across every period (P2 checks
// this is non-decreasing in t as the simulation runs).
func (ts *IncidenceTimeSeries) GetTotal() int { return ts.total }

// NumPeriods returns the number of aggregation periods this series spans.
func (ts *IncidenceTimeSeries) NumPeriods() int { return ts.nPeriods }

// GetCountAtPeriod returns the count recorded within a single period
// bucket.
func (ts *IncidenceTimeSeries) GetCountAtPeriod(period int) int {
	if period < 0 || period >= ts.nPeriods {
		return 0
	}
	return ts.counts[period]
}

// Close marks the series as finished; further Records are refused.
func (ts *IncidenceTimeSeries) Close() { ts.closed = true }
