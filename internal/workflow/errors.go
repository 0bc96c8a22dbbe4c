package workflow

import "errors"

var (
	// ErrStepBusy is reported when another execution holds a live lease on
	// a step of the run.
	ErrStepBusy = errors.New("workflow step is owned by another execution")
	// ErrInvalidEnvelope is returned by Execute for envelopes that can never
	// start a run. Redelivering them cannot help.
	ErrInvalidEnvelope = errors.New("invalid envelope")
)

type terminalError struct {
	err error
}

func (e *terminalError) Error() string { return e.err.Error() }
func (e *terminalError) Unwrap() error { return e.err }

// Terminal marks err as permanent: the engine stops retrying the step.
// Unmarked errors, including context deadlines, are retried.
func Terminal(err error) error {
	if err == nil {
		return nil
	}
	return &terminalError{err: err}
}

// IsTerminal reports whether err was marked with Terminal.
func IsTerminal(err error) bool {
	var t *terminalError
	return errors.As(err, &t)
}
