package sirsim

import "testing"

func TestPrevalenceTimeSeriesForwardFills(t *testing.T) {
	stat := NewContinuousTimeStatistic("x")
	ts := NewPrevalenceTimeSeries("x", 10, 2, stat)

	ts.Record(0, 5)
	ts.Record(3, -2)

	if got := ts.GetCurrentPrevalence(); got != 3 {
		t.Errorf(UnequalIntParameterError, "current prevalence", 3, got)
	}
	// Period 0 covers [0,2): level was 5 for all of it.
	if got := ts.GetTotalAtTime(1); got != 5 {
		t.Errorf(UnequalFloatParameterError, "level at t=1", 5.0, got)
	}
	// Period 1 covers [2,4): the level dropped to 3 partway through at t=3.
	if got := ts.GetTotalAtTime(3); got != 3 {
		t.Errorf(UnequalFloatParameterError, "level at t=3", 3.0, got)
	}
}

func TestPrevalenceTimeSeriesRejectsOutOfOrder(t *testing.T) {
	ts := NewPrevalenceTimeSeries("x", 10, 2, nil)
	ts.Record(5, 1)
	if ts.Record(4, 1) {
		t.Error("Record at a time before the last recorded time should be refused")
	}
}

func TestPrevalenceTimeSeriesClosedRefusesFurtherRecords(t *testing.T) {
	ts := NewPrevalenceTimeSeries("x", 10, 2, nil)
	ts.Record(0, 1)
	ts.Close()
	if ts.Record(1, 1) {
		t.Error("Record after Close should be refused")
	}
}

func TestIncidenceTimeSeriesAccumulatesPerPeriod(t *testing.T) {
	ts := NewIncidenceTimeSeries("x", 10, 2, nil)
	ts.Record(0, 1)
	ts.Record(1, 1)
	ts.Record(3, 1)

	if got := ts.GetCountAtPeriod(0); got != 2 {
		t.Errorf(UnequalIntParameterError, "count at period 0", 2, got)
	}
	if got := ts.GetCountAtPeriod(1); got != 1 {
		t.Errorf(UnequalIntParameterError, "count at period 1", 1, got)
	}
	if got := ts.GetTotal(); got != 3 {
		t.Errorf(UnequalIntParameterError, "cumulative total", 3, got)
	}
}

func TestIncidenceTimeSeriesMonotonicTotal(t *testing.T) {
	ts := NewIncidenceTimeSeries("x", 100, 10, nil)
	prev := 0
	for _, t2 := range []float64{0, 1, 5, 12, 30, 99} {
		ts.Record(t2, 2)
		cur := ts.GetTotal()
		if cur < prev {
			t.Fatalf("cumulative incidence total decreased: %d -> %d", prev, cur)
		}
		prev = cur
	}
	if prev != 12 {
		t.Errorf(UnequalIntParameterError, "final cumulative total", 12, prev)
	}
}

func TestPyramidTimeSeriesNetLevelTracksCurrent(t *testing.T) {
	breaks := ageBreaks(0, 100, 20)
	p := NewPyramidTimeSeries("x", 10, 2, breaks, 2, true)

	p.UpdateByAge(0, 0, 25, +1)
	p.UpdateByAge(3, 0, 25, -1)

	bucket := ageBucketIndex(25, breaks)
	if got := p.GetTotalInAgeGroupAndCategory(bucket, 0); got != 0 {
		t.Errorf(UnequalIntParameterError, "net level after offsetting updates", 0, got)
	}
}

func TestPyramidTimeSeriesIncidenceAccumulates(t *testing.T) {
	breaks := ageBreaks(0, 100, 20)
	p := NewPyramidTimeSeries("x", 10, 2, breaks, 2, false)

	bucket := ageBucketIndex(25, breaks)
	p.UpdateByAge(0, 0, 25, +1)
	p.UpdateByAge(3, 0, 25, +1)

	if got := p.GetTotalInAgeGroupAndCategory(bucket, 0); got != 2 {
		t.Errorf(UnequalIntParameterError, "cumulative incidence in bucket", 2, got)
	}
}

func TestPyramidDataUpdateByAgeAndTotal(t *testing.T) {
	breaks := ageBreaks(0, 100, 25)
	p := NewPyramidData[int](breaks, 1)

	p.UpdateByAge(0, 10, 3)
	p.UpdateByAge(0, 60, 4)

	if got := p.GetTotal(); got != 7 {
		t.Errorf(UnequalIntParameterError, "pyramid data total", 7, got)
	}
	if got := p.NumBuckets(); got != len(breaks)+1 {
		t.Errorf(UnequalIntParameterError, "number of buckets", len(breaks)+1, got)
	}
}

func TestAgeBreaksAndBucketIndex(t *testing.T) {
	breaks := ageBreaks(0, 100, 20)
	want := []int{20, 40, 60, 80}
	if len(breaks) != len(want) {
		t.Fatalf("ageBreaks(0, 100, 20) = %v, want %v", breaks, want)
	}
	for i := range want {
		if breaks[i] != want[i] {
			t.Errorf(UnequalIntParameterError, "age break", want[i], breaks[i])
		}
	}

	if got := ageBucketIndex(0, breaks); got != 0 {
		t.Errorf(UnequalIntParameterError, "bucket for age 0", 0, got)
	}
	if got := ageBucketIndex(19, breaks); got != 0 {
		t.Errorf(UnequalIntParameterError, "bucket for age 19", 0, got)
	}
	if got := ageBucketIndex(20, breaks); got != 1 {
		t.Errorf(UnequalIntParameterError, "bucket for age 20", 1, got)
	}
	if got := ageBucketIndex(99, breaks); got != 4 {
		t.Errorf(UnequalIntParameterError, "bucket for age 99", 4, got)
	}
}

func TestContinuousTimeStatisticIsTimeWeighted(t *testing.T) {
	s := NewContinuousTimeStatistic("x")
	s.Record(0, 10) // held at 10 for 5 days
	s.Record(5, 0)  // held at 0 for 5 days
	s.Record(10, 0)

	// Time-weighted mean: (10*5 + 0*5) / 10 = 5.
	if got := s.Mean(); got != 5 {
		t.Errorf(UnequalFloatParameterError, "time-weighted mean", 5.0, got)
	}
	if got := s.Max(); got != 10 {
		t.Errorf(UnequalFloatParameterError, "max", 10.0, got)
	}
}

func TestDiscreteTimeStatisticIsUnweighted(t *testing.T) {
	s := NewDiscreteTimeStatistic("x")
	s.Record(0, 1)
	s.Record(1, 3)
	if got := s.Mean(); got != 2 {
		t.Errorf(UnequalFloatParameterError, "unweighted mean", 2.0, got)
	}
	if got := s.Count(); got != 2 {
		t.Errorf(UnequalIntParameterError, "sample count", 2, got)
	}
}
