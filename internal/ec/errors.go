package ec

import "errors"

// ErrFitnessUnset is returned when two individuals are compared and at
// least one of them has not been evaluated. This always signals a
// lifecycle bug upstream, so callers should treat it as fatal rather
// than interpreting the pair as equal.
var ErrFitnessUnset = errors.New("fitness not set")

// ErrAborted is returned by Evolve when the run is stopped through
// context cancellation. The population returned alongside it is
// provisional: it has not necessarily been fully re-evaluated.
var ErrAborted = errors.New("evolution aborted")

// ConfigError reports a missing or invalid configuration option.
// It is raised during validation, before any evaluation work begins.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Option + " " + e.Reason
}

// PoolError reports an evaluation pool infrastructure failure, such as
// a panicking worker. Unlike a per-candidate evaluation error, a pool
// error aborts the whole run.
type PoolError struct {
	Cause error
}

func (e *PoolError) Error() string {
	return "evaluation pool failure: " + e.Cause.Error()
}

func (e *PoolError) Unwrap() error {
	return e.Cause
}
