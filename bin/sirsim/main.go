package main

import (
	"flag"
	"log"
	"time"

	"github.com/kentwait/sirsim"
)

func main() {
	λ := flag.Float64("lambda", 0, "transmission rate, cases/day")
	Ɣ := flag.Float64("gamma", 0, "mean duration of infectiousness, days")
	nPeople := flag.Uint("n", 0, "population size")
	ageMin := flag.Uint("age-min", 0, "minimum age, years")
	ageMax := flag.Uint("age-max", 0, "maximum age, years")
	ageBreak := flag.Uint("age-break", 0, "age bucket width, years")
	tMax := flag.Uint("t-max", 0, "simulation horizon, days")
	dt := flag.Uint("dt", 0, "force-of-infection update tick, days")
	pLength := flag.Uint("p-length", 0, "tally aggregation period length, days")

	prefix := flag.String("prefix", "sirsim", "output file/table name prefix")
	trajectories := flag.Int("trajectories", 1, "number of independent trajectories")
	parallel := flag.Bool("parallel", false, "run trajectories concurrently")
	loggerType := flag.String("logger", "csv", "data logger type (csv|sqlite)")
	seed := flag.Int64("seed", time.Now().UTC().UnixNano(), "master random seed")
	flag.Parse()

	cfg := &sirsim.SimulationConfig{
		Lambda: *λ, Gamma: *Ɣ,
		NPeople: *nPeople, AgeMin: *ageMin, AgeMax: *ageMax, AgeBreak: *ageBreak,
		TMax: *tMax, Dt: *dt, PLength: *pLength,
		NamePrefix: *prefix, Trajectories: *trajectories, Parallel: *parallel, Seed: *seed,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var logger sirsim.DataLogger
	switch *loggerType {
	case "csv":
		logger = sirsim.NewCSVLogger(cfg.NamePrefix, 0)
	case "sqlite":
		logger = sirsim.NewSQLiteLogger(cfg.NamePrefix, 0)
	default:
		log.Fatalf("%s is not a valid logger type (csv|sqlite)", *loggerType)
	}

	start := time.Now()
	orch := sirsim.NewOrchestrator(cfg, logger)
	if err := orch.Run(); err != nil {
		log.Fatal(err)
	}
	log.Printf("completed %d trajectories in %s.", cfg.Trajectories, time.Since(start))
}
