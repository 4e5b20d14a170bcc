package sirsim

import "github.com/pkg/errors"

// Format-string constants for parameter-validation and test-assertion
// messages, in the teacher's style of naming each message so call sites
// read as a single Errorf/Errorf rather than ad hoc string concatenation.
const (
	InvalidFloatParameterError = "invalid %s %f, %s"
	InvalidIntParameterError   = "invalid %s %d, %s"
	NilRNGError                = "rng must not be nil"

	UnequalFloatParameterError = "expected %s %f, instead got %f"
	UnequalIntParameterError   = "expected %s %d, instead got %d"
	UnexpectedErrorWhileError  = "encountered error while %s: %s"
)

// ErrNilRNG is returned by NewSimulation when rng == nil.
var ErrNilRNG = errors.New(NilRNGError)

// ConstructionError wraps a parameter-validation failure raised at
// Simulation construction (spec §7, kind 1). It is always fatal to the
// simulation instance being constructed.
type ConstructionError struct {
	Parameter string
	cause     error
}

func (e *ConstructionError) Error() string {
	return errors.Wrapf(e.cause, "invalid construction parameter %s", e.Parameter).Error()
}

func (e *ConstructionError) Unwrap() error { return e.cause }

// newConstructionError builds a ConstructionError for parameter, wrapping
// msg with github.com/pkg/errors as the teacher's evoepi_config.go does at
// its own validation boundaries.
func newConstructionError(parameter, msg string) error {
	return &ConstructionError{Parameter: parameter, cause: errors.New(msg)}
}
