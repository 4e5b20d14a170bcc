package sirsim

import "testing"

func TestUniformDiscreteWithinBounds(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v := UniformDiscrete(rng, 5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("UniformDiscrete(5, 10) returned %d, outside [5, 10)", v)
		}
	}
}

func TestUniformDiscreteDegenerate(t *testing.T) {
	rng := NewRNG(1)
	if v := UniformDiscrete(rng, 7, 7); v != 7 {
		t.Errorf(UnequalIntParameterError, "UniformDiscrete(7, 7)", 7, v)
	}
}

func TestBernoulliBounds(t *testing.T) {
	rng := NewRNG(2)
	for i := 0; i < 1000; i++ {
		v := Bernoulli(rng, 0.5)
		if v != 0 && v != 1 {
			t.Fatalf("Bernoulli returned %d, expected 0 or 1", v)
		}
	}
}

func TestBernoulliExtremes(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 100; i++ {
		if v := Bernoulli(rng, 0); v != 0 {
			t.Errorf(UnequalIntParameterError, "Bernoulli(p=0)", 0, v)
		}
		if v := Bernoulli(rng, 1); v != 1 {
			t.Errorf(UnequalIntParameterError, "Bernoulli(p=1)", 1, v)
		}
	}
}

func TestExponentialNonNegative(t *testing.T) {
	rng := NewRNG(4)
	for i := 0; i < 1000; i++ {
		v := Exponential(rng, 2.0)
		if v < 0 {
			t.Fatalf("Exponential(rate=2) returned %f, expected >= 0", v)
		}
	}
}

func TestExponentialDeterministic(t *testing.T) {
	a := Exponential(NewRNG(42), 1.5)
	b := Exponential(NewRNG(42), 1.5)
	if a != b {
		t.Errorf(UnequalFloatParameterError, "Exponential with same seed", a, b)
	}
}
