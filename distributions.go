package sirsim

import "math"

// UniformDiscrete draws an integer in the half-open range [lo, hi) using
// the supplied RNG. Used to assign ages at population bootstrap.
func UniformDiscrete(rng RNG, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// Bernoulli draws 0 or 1 with P(1) == p. Used to assign sex: 0 -> Male,
// 1 -> Female.
func Bernoulli(rng RNG, p float64) int {
	if rng.Float64() < p {
		return 1
	}
	return 0
}

// Exponential draws a non-negative inter-event time from an exponential
// distribution with the given rate, using inverse-CDF sampling. Callers
// must never invoke this with rate == 0 (undefined); see
// timeToInfection for the required short-circuit.
func Exponential(rng RNG, rate float64) float64 {
	// u is drawn from [0, 1), so 1-u lies in (0, 1]; taking the log of the
	// complement avoids ever taking log(0).
	u := rng.Float64()
	return -math.Log(1-u) / rate
}
