package sirsim

import "math"

// ObservationModel maps a simulated channel value to the log-likelihood of
// an observed data point under that value, the boundary calibration code
// would sit behind (spec §3 "Calibration boundary"). No optimizer is
// implemented against this interface: spec §2 places parameter estimation
// out of scope, so only the interface a future calibration package would
// consume is provided here.
type ObservationModel interface {
	// LogLikelihood returns the log-likelihood of observing observed given
	// the simulation produced modeled.
	LogLikelihood(observed, modeled float64) float64
}

// NormalObservation models an observed value as normally distributed
// around the simulated value with fixed standard deviation Sigma.
type NormalObservation struct {
	Sigma float64
}

// LogLikelihood returns the Normal(modeled, Sigma) log-density at observed.
func (n NormalObservation) LogLikelihood(observed, modeled float64) float64 {
	if n.Sigma <= 0 {
		return math.Inf(-1)
	}
	z := (observed - modeled) / n.Sigma
	return -0.5*z*z - math.Log(n.Sigma) - 0.5*math.Log(2*math.Pi)
}

// BinomialObservation models an observed count as Binomial(Trials, p) where
// p is the simulated proportion (e.g. a PyramidData infection rate).
type BinomialObservation struct {
	Trials int
}

// LogLikelihood returns the Binomial(Trials, modeled) log-probability mass
// at observed successes. modeled is clamped to (0, 1) so a simulated rate
// of exactly 0 or 1 never produces -Inf/NaN for a partially-matching
// observation.
func (b BinomialObservation) LogLikelihood(observed, modeled float64) float64 {
	const eps = 1e-9
	p := math.Min(math.Max(modeled, eps), 1-eps)
	k := observed
	n := float64(b.Trials)
	return logChoose(n, k) + k*math.Log(p) + (n-k)*math.Log(1-p)
}

// logChoose returns log(C(n, k)) via the log-gamma function.
func logChoose(n, k float64) float64 {
	return lgamma(n+1) - lgamma(k+1) - lgamma(n-k+1)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
