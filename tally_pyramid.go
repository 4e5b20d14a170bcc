package sirsim

// ageBreaks builds the age-break vector {ageMin+ageBreak, ageMin+2*ageBreak,
// ...} strictly less than ageMax, per spec §4.5.
func ageBreaks(ageMin, ageMax, ageBreak int) []int {
	var breaks []int
	for age := ageMin + ageBreak; age < ageMax; age += ageBreak {
		breaks = append(breaks, age)
	}
	return breaks
}

// ageBucketIndex returns which age bucket age falls into, given the
// break vector produced by ageBreaks. There is one more bucket than there
// are breaks (the final bucket catches every age >= the last break).
func ageBucketIndex(age int, breaks []int) int {
	idx := 0
	for _, b := range breaks {
		if age < b {
			break
		}
		idx++
	}
	return idx
}

// nAgeBuckets returns the number of age buckets for [ageMin, ageMax) split
// every ageBreak years.
func nAgeBuckets(ageMin, ageMax, ageBreak int) int {
	return len(ageBreaks(ageMin, ageMax, ageBreak)) + 1
}

// PyramidTimeSeries is a two-dimensional tally over age bucket x sex
// category, aggregated into fixed-width periods over time. netLevel
// selects whether UpdateByAge behaves as a running level (forward-filled
// across periods, for Susceptible/Infected/Recovered) or as a per-period
// incidence accumulator (for Infections/Recoveries).
type PyramidTimeSeries struct {
	name      string
	pLength   float64
	nPeriods  int
	breaks    []int
	nBuckets  int
	nCats     int
	netLevel  bool
	periods   [][][]int // [period][bucket][category]
	lastIdx   int
	lastT     float64
	started   bool
	closed    bool
}

// NewPyramidTimeSeries creates a PyramidTimeSeries spanning [0, tMax) in
// buckets of width pLength, over the age breaks and nCats sex categories.
func NewPyramidTimeSeries(name string, tMax, pLength float64, breaks []int, nCats int, netLevel bool) *PyramidTimeSeries {
	nPeriods := int(tMax/pLength) + 1
	nBuckets := len(breaks) + 1
	periods := make([][][]int, nPeriods)
	for i := range periods {
		periods[i] = make([][]int, nBuckets)
		for b := range periods[i] {
			periods[i][b] = make([]int, nCats)
		}
	}
	return &PyramidTimeSeries{
		name:     name,
		pLength:  pLength,
		nPeriods: nPeriods,
		breaks:   breaks,
		nBuckets: nBuckets,
		nCats:    nCats,
		netLevel: netLevel,
		periods:  periods,
	}
}

// UpdateByAge applies delta to the bucket/category that age/sexCategory
// map to, at time t. Returns false (a tally-update refusal) if t precedes
// the last recorded time or the series has been closed.
func (p *PyramidTimeSeries) UpdateByAge(t float64, sexCategory, age int, delta int) bool {
	if p.closed {
		return false
	}
	if p.started && t < p.lastT {
		return false
	}
	idx := periodIndex(t, p.pLength)
	if idx >= p.nPeriods {
		idx = p.nPeriods - 1
	}
	bucket := ageBucketIndex(age, p.breaks)

	if p.netLevel {
		start := 0
		if p.started {
			start = p.lastIdx
		}
		// Carry forward every untouched bucket/category in the skipped
		// periods so a past-period query sees the level as it stood then.
		for i := start + 1; i <= idx && i < p.nPeriods; i++ {
			copy2D(p.periods[i], p.periods[i-1])
		}
		p.periods[idx][bucket][sexCategory] += delta
	} else {
		p.periods[idx][bucket][sexCategory] += delta
	}

	p.lastT = t
	p.lastIdx = idx
	p.started = true
	return true
}

func copy2D(dst, src [][]int) {
	for i := range dst {
		copy(dst[i], src[i])
	}
}

// GetTotalInAgeGroupAndCategory returns the given bucket/category's total:
// for a netLevel pyramid, the level in the most recently recorded period
// (the current level); for an incidence pyramid, the sum across every
// period (the cumulative count).
func (p *PyramidTimeSeries) GetTotalInAgeGroupAndCategory(bucket, category int) int {
	if p.netLevel {
		idx := p.lastIdx
		if !p.started {
			idx = 0
		}
		return p.periods[idx][bucket][category]
	}
	total := 0
	for _, period := range p.periods {
		total += period[bucket][category]
	}
	return total
}

// Close flushes the last period, forward-filling trailing buckets for a
// netLevel pyramid.
func (p *PyramidTimeSeries) Close() {
	if p.netLevel {
		for i := p.lastIdx + 1; i < p.nPeriods; i++ {
			copy2D(p.periods[i], p.periods[i-1])
		}
	}
	p.closed = true
}

// Number is the set of value types PyramidData can hold: integer counts
// (infections per age bucket) or derived ratios (infection-rate percent).
type Number interface {
	~int | ~float64
}

// PyramidData is a scalar (not time-indexed) age-bucketed tally, used for
// the final infections-by-age summary and its denominator.
type PyramidData[T Number] struct {
	breaks []int
	counts [][]T // [bucket][category]
}

// NewPyramidData creates a PyramidData over the given age breaks with
// nCats categories per bucket.
func NewPyramidData[T Number](breaks []int, nCats int) *PyramidData[T] {
	nBuckets := len(breaks) + 1
	counts := make([][]T, nBuckets)
	for i := range counts {
		counts[i] = make([]T, nCats)
	}
	return &PyramidData[T]{breaks: breaks, counts: counts}
}

// UpdateByAge adds delta to the bucket that age falls into, under
// category.
func (p *PyramidData[T]) UpdateByAge(category, age int, delta T) {
	bucket := ageBucketIndex(age, p.breaks)
	p.counts[bucket][category] += delta
}

// UpdateByIdx sets the value at bucket/category directly (used to write
// the derived infection-rate percent, which is not an increment).
func (p *PyramidData[T]) UpdateByIdx(category, bucket int, value T) {
	p.counts[bucket][category] = value
}

// GetTotalInAgeGroupAndCategory returns the value at bucket/category.
func (p *PyramidData[T]) GetTotalInAgeGroupAndCategory(bucket, category int) T {
	return p.counts[bucket][category]
}

// GetTotal sums every bucket/category.
func (p *PyramidData[T]) GetTotal() T {
	var total T
	for _, bucket := range p.counts {
		for _, v := range bucket {
			total += v
		}
	}
	return total
}

// NumBuckets returns the number of age buckets.
func (p *PyramidData[T]) NumBuckets() int { return len(p.counts) }
