package sirsim

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// SimulationConfig is the TOML-loadable configuration for one or more
// trajectories: the ten construction parameters (spec §6) plus the
// file-name prefix, trajectory count, and serial/parallel switch the CLI
// surface exposes.
type SimulationConfig struct {
	Lambda float64 `toml:"lambda"` // λ, transmission rate [cases/day]
	Gamma  float64 `toml:"gamma"`  // Ɣ, duration of infectiousness [days]

	NPeople  uint `toml:"n_people"`
	AgeMin   uint `toml:"age_min"`
	AgeMax   uint `toml:"age_max"`
	AgeBreak uint `toml:"age_break"`
	TMax     uint `toml:"t_max"`
	Dt       uint `toml:"dt"`
	PLength  uint `toml:"p_length"`

	NamePrefix   string `toml:"name_prefix"`
	Trajectories int    `toml:"trajectories"`
	Parallel     bool   `toml:"parallel"`
	Seed         int64  `toml:"seed"`

	validated bool
}

// LoadSimulationConfig parses a TOML config file into a SimulationConfig.
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	c := new(SimulationConfig)
	_, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "loading simulation config from %s", path)
	}
	return c, nil
}

// Validate checks field-level sanity that NewSimulation's own validation
// does not otherwise catch (trajectory count, name prefix): the ten
// epidemiological parameters are left to NewSimulation, which is the
// single source of truth for spec §4.5's construction rules.
func (c *SimulationConfig) Validate() error {
	if c.Trajectories < 1 {
		return fmt.Errorf(InvalidIntParameterError, "trajectories", c.Trajectories, "must be >= 1")
	}
	if c.NamePrefix == "" {
		return fmt.Errorf("name_prefix must not be empty")
	}
	c.validated = true
	return nil
}

// NewSimulation constructs a *Simulation from the config using rng.
func (c *SimulationConfig) NewSimulation(rng RNG) (*Simulation, error) {
	return NewSimulation(rng, c.Lambda, c.Gamma, c.NPeople,
		c.AgeMin, c.AgeMax, c.AgeBreak, c.TMax, c.Dt, c.PLength)
}
