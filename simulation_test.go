package sirsim

import "testing"

func TestNewSimulationRejectsNilRNG(t *testing.T) {
	_, err := NewSimulation(nil, 0.3, 5, 100, 0, 80, 10, 100, 1, 7)
	if err != ErrNilRNG {
		t.Errorf("expected ErrNilRNG, got %v", err)
	}
}

func TestNewSimulationRejectsInvalidParameters(t *testing.T) {
	rng := NewRNG(1)
	cases := []struct {
		name                                   string
		λ, Ɣ                                   float64
		nPeople, ageMin, ageMax, ageBreak      uint
		tMax, Δt, pLength                      uint
	}{
		{"lambda <= 0", 0, 5, 100, 0, 80, 10, 100, 1, 7},
		{"gamma <= 0", 0.3, 0, 100, 0, 80, 10, 100, 1, 7},
		{"nPeople < 1", 0.3, 5, 0, 0, 80, 10, 100, 1, 7},
		{"ageMin > ageMax", 0.3, 5, 100, 80, 10, 10, 100, 1, 7},
		{"ageBreak < 1", 0.3, 5, 100, 0, 80, 0, 100, 1, 7},
		{"ageBreak >= range", 0.3, 5, 100, 0, 80, 80, 100, 1, 7},
		{"tMax < 1", 0.3, 5, 100, 0, 80, 10, 0, 1, 7},
		{"pLength == 0", 0.3, 5, 100, 0, 80, 10, 100, 1, 0},
		{"pLength > tMax", 0.3, 5, 100, 0, 80, 10, 100, 1, 200},
		{"dt < 1", 0.3, 5, 100, 0, 80, 10, 100, 0, 7},
		{"dt > tMax", 0.3, 5, 100, 0, 80, 10, 100, 200, 7},
	}
	for _, c := range cases {
		_, err := NewSimulation(rng, c.λ, c.Ɣ, c.nPeople, c.ageMin, c.ageMax, c.ageBreak, c.tMax, c.Δt, c.pLength)
		if err == nil {
			t.Errorf("%s: expected a construction error, got nil", c.name)
		}
	}
}

func TestSimulationHappyPathConservesPopulation(t *testing.T) {
	rng := NewRNG(7)
	sim, err := NewSimulation(rng, 0.5, 4, 200, 0, 80, 10, 60, 1, 7)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	sim.Run()

	s := sim.Susceptible.GetCurrentPrevalence()
	i := sim.Infected.GetCurrentPrevalence()
	r := sim.Recovered.GetCurrentPrevalence()
	if total := s + i + r; total != 200 {
		t.Errorf(UnequalIntParameterError, "S+I+R", 200, total)
	}
	if sim.Infections.GetTotal() < 1 {
		t.Error("expected at least the index case to be counted as an infection")
	}
	if sim.Recoveries.GetTotal() > sim.Infections.GetTotal() {
		t.Error("cumulative recoveries should never exceed cumulative infections")
	}
}

func TestSimulationLongInfectiousPeriodSpreadsBeyondIndexCase(t *testing.T) {
	rng := NewRNG(11)
	// A long mean infectious period relative to tMax keeps the index case
	// infectious (and thus infectious-via-FOI) across the whole horizon.
	sim, err := NewSimulation(rng, 0.9, 1000, 100, 0, 80, 10, 30, 1, 5)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	sim.Run()

	// A mean infectious period of 1000 days against a 30-day horizon keeps
	// the index case (and everyone it infects) infectious throughout, so a
	// high-transmission epidemic should spread well beyond the index case.
	if got := sim.Infections.GetTotal(); got < 10 {
		t.Errorf("expected substantial spread under a long infectious period, got %d infections", got)
	}
}

func TestInfectionEventGuardsAgainstNonSusceptibleIndexCase(t *testing.T) {
	rng := NewRNG(13)
	sim, err := NewSimulation(rng, 0.5, 4, 50, 0, 80, 10, 60, 1, 7)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	sim.bootstrap()

	// If individual 0 is no longer Susceptible by the time its
	// InfectionEvent fires - e.g. a recovery or a race from a second FOI
	// update - the event must refuse rather than double-count, leaving the
	// epidemic empty.
	sim.population.SetHealthState(0, Recovered)

	event := sim.InfectionEvent(0)
	if ok := event(0, sim.queue); ok {
		t.Error("InfectionEvent on a non-Susceptible individual should report failure")
	}
	if got := sim.Infections.GetTotal(); got != 0 {
		t.Errorf(UnequalIntParameterError, "total infections after a refused index case", 0, got)
	}
	if got := sim.Infected.GetCurrentPrevalence(); got != 0 {
		t.Errorf(UnequalIntParameterError, "infected prevalence after a refused index case", 0, got)
	}
}

func TestSimulationDeterministicUnderSameSeed(t *testing.T) {
	newRun := func() *Simulation {
		sim, err := NewSimulation(NewRNG(99), 0.4, 6, 150, 0, 90, 15, 80, 1, 7)
		if err != nil {
			t.Fatalf("unexpected construction error: %v", err)
		}
		sim.Run()
		return sim
	}
	a := newRun()
	b := newRun()

	if a.Infections.GetTotal() != b.Infections.GetTotal() {
		t.Errorf(UnequalIntParameterError, "cumulative infections across identically-seeded runs",
			a.Infections.GetTotal(), b.Infections.GetTotal())
	}
	if a.Recoveries.GetTotal() != b.Recoveries.GetTotal() {
		t.Errorf(UnequalIntParameterError, "cumulative recoveries across identically-seeded runs",
			a.Recoveries.GetTotal(), b.Recoveries.GetTotal())
	}
}

func TestOrchestratorParallelFanOutCompletesWithoutError(t *testing.T) {
	cfg := &SimulationConfig{
		Lambda: 0.5, Gamma: 4,
		NPeople: 100, AgeMin: 0, AgeMax: 80, AgeBreak: 10,
		TMax: 40, Dt: 1, PLength: 7,
		NamePrefix:   t.TempDir() + "/run",
		Trajectories: 16,
		Parallel:     true,
		Seed:         123,
	}
	logger := NewCSVLogger(cfg.NamePrefix, 0)
	orch := NewOrchestrator(cfg, logger)
	if err := orch.Run(); err != nil {
		t.Fatalf("unexpected orchestration error: %v", err)
	}
}
