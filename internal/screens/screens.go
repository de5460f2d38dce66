// Package screens holds the screen controllers of the client. Each screen is
// a small explicit state machine with a single current phase, so impossible
// combinations (loading and failed at once) cannot be represented. The
// controllers are surface-agnostic; the bot and the CLI render their state.
package screens

import "errors"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

type userMessager interface{ Message() string }

// failMessage funnels validation, request and transport failures into the one
// user-visible string a screen shows. Request failures surface the backend's
// response body text.
func failMessage(err error) string {
	var um userMessager
	if errors.As(err, &um) {
		return um.Message()
	}
	return err.Error()
}
