package sirsim

import (
	"log"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

// Orchestrator fans a SimulationConfig out into one or more independent
// trajectories, each with its own RNG derived from a master seed, and
// drives each trajectory's tallies into a DataLogger. Grounded on the
// teacher's bin/contagion/main.go instance loop (seeded-instance timing log)
// and sir_simulation.go's Update() goroutine/WaitGroup concurrency idiom.
type Orchestrator struct {
	cfg    *SimulationConfig
	logger DataLogger
}

// NewOrchestrator builds an Orchestrator that runs cfg's trajectories
// through logger.
func NewOrchestrator(cfg *SimulationConfig, logger DataLogger) *Orchestrator {
	return &Orchestrator{cfg: cfg, logger: logger}
}

// trajectoryResult pairs a completed Simulation with the run identifier its
// rows are tagged with.
type trajectoryResult struct {
	index int
	runID string
	sim   *Simulation
	err   error
}

// Run executes cfg.Trajectories trajectories, serially or in parallel per
// cfg.Parallel, each seeded independently off a master RNG derived from
// cfg.Seed so that per-trajectory sampling never shares mutable state
// (spec P5). It returns the first construction or logging error
// encountered; a trajectory that itself fades out early is not an error.
func (o *Orchestrator) Run() error {
	if err := o.cfg.Validate(); err != nil {
		return errors.Wrap(err, "validating trajectory config")
	}

	master := NewRNG(o.cfg.Seed)
	seeds := make([]int64, o.cfg.Trajectories)
	for i := range seeds {
		seeds[i] = int64(master.Intn(1<<62)) + 1
	}

	results := make([]trajectoryResult, o.cfg.Trajectories)

	run := func(i int) {
		start := time.Now()
		rng := NewRNG(seeds[i])
		runID := ksuid.New().String()

		sim, err := o.cfg.NewSimulation(rng)
		if err != nil {
			results[i] = trajectoryResult{index: i, err: errors.Wrapf(err, "trajectory %d", i)}
			return
		}
		sim.Run()

		log.Printf("sirsim: trajectory %d (run %s) completed in %s", i, runID, time.Since(start))
		results[i] = trajectoryResult{index: i, runID: runID, sim: sim}
	}

	if o.cfg.Parallel {
		var wg sync.WaitGroup
		for i := 0; i < o.cfg.Trajectories; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				run(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := 0; i < o.cfg.Trajectories; i++ {
			run(i)
		}
	}

	for _, r := range results {
		if r.err != nil {
			return r.err
		}
		if err := o.write(r); err != nil {
			return errors.Wrapf(err, "writing trajectory %d", r.index)
		}
	}
	return nil
}

// write initializes the logger for trajectory r.index and drains every
// channel's rows into it.
func (o *Orchestrator) write(r trajectoryResult) error {
	o.logger.SetBasePath(o.cfg.NamePrefix, r.index)
	if err := o.logger.Init(); err != nil {
		return err
	}

	prevalenceChannels := []Channel{ChanSusceptible, ChanInfected, ChanRecovered}
	incidenceChannels := []Channel{ChanInfections, ChanRecoveries}

	prevCh := make(chan PrevalenceRow)
	go func() {
		defer close(prevCh)
		for _, ch := range prevalenceChannels {
			ts, ok := r.sim.TimeSeries(ch)
			if !ok {
				continue
			}
			pts := ts.(*PrevalenceTimeSeries)
			for period := 0; period < pts.NumPeriods(); period++ {
				prevCh <- PrevalenceRow{
					RunID:   r.runID,
					Channel: ch.String(),
					Period:  period,
					Level:   pts.GetLevelAtPeriod(period),
				}
			}
		}
	}()
	o.logger.WritePrevalence(prevCh)

	incCh := make(chan IncidenceRow)
	go func() {
		defer close(incCh)
		for _, ch := range incidenceChannels {
			ts, ok := r.sim.TimeSeries(ch)
			if !ok {
				continue
			}
			its := ts.(*IncidenceTimeSeries)
			for period := 0; period < its.NumPeriods(); period++ {
				incCh <- IncidenceRow{
					RunID:   r.runID,
					Channel: ch.String(),
					Period:  period,
					Count:   its.GetCountAtPeriod(period),
				}
			}
		}
	}()
	o.logger.WriteIncidence(incCh)

	ageCh := make(chan AgePercentRow)
	go func() {
		defer close(ageCh)
		pct, ok := r.sim.InfectionAgePercent(ChanInfections)
		if !ok {
			return
		}
		breaks := r.sim.AgeBreaks()
		ageMin := r.sim.params.AgeMin
		for bucket := 0; bucket < pct.NumBuckets(); bucket++ {
			ageFrom := ageMin
			if bucket > 0 {
				ageFrom = breaks[bucket-1]
			}
			ageCh <- AgePercentRow{
				RunID:   r.runID,
				Bucket:  bucket,
				AgeFrom: ageFrom,
				Percent: pct.GetTotalInAgeGroupAndCategory(bucket, 0),
			}
		}
	}()
	o.logger.WriteAgePercent(ageCh)

	return nil
}
