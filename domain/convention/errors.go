package convention

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
)

var (
	// ErrComplete reports that the sequence is over and this seat has no call to add.
	ErrComplete = errors.New("convention: sequence complete")
	// ErrUnhandled is matched by every *UnhandledError.
	ErrUnhandled = errors.New("convention: no rule for this auction")

	ErrNotStarted     = errors.New("convention: engine not started")
	ErrAlreadyStarted = errors.New("convention: engine already started")
)

// UnhandledError is returned when the state the engine is in has no rule for
// the partner's call.
type UnhandledError struct {
	State   State
	Partner bridge.Call
	// Opening is true when the engine was opening the auction and there was no partner call.
	Opening bool
}

func (e *UnhandledError) Error() string {
	if e.Opening {
		return fmt.Sprintf("convention: no rule in state %s", e.State)
	}
	return fmt.Sprintf("convention: no rule in state %s for partner's %s", e.State, e.Partner)
}

func (e *UnhandledError) Is(target error) bool {
	return target == ErrUnhandled
}
