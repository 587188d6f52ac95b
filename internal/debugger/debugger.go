// Package debugger provides the thin single-step driver spec.md §1/§6
// calls out as a collaborator that must be buildable "without further
// changes" to the core: it wraps parse → state → repeated step, and
// nothing here is consulted by internal/engine, internal/eval, or
// internal/pattern.
package debugger

import (
	"errors"

	"github.com/graue/sortle/internal/engine"
	"github.com/graue/sortle/internal/sortleparse"
)

// Session holds one program's state and instruction pointer across
// repeated calls to StepOnce, the shape a UI driver needs: it can render
// the list, let the user step, and stop whenever it likes.
type Session struct {
	State *engine.State
	IP    int
	Steps int
}

// New parses src and constructs a Session ready to step. It does not run
// the program.
func New(src string) (*Session, error) {
	exprs, err := sortleparse.Parse(src)
	if err != nil {
		return nil, err
	}
	return &Session{State: engine.NewState(exprs)}, nil
}

// Halted reports whether the program has reached its single-entry
// terminal state.
func (s *Session) Halted() bool {
	return s.State.Len() <= 1
}

// StepOnce performs exactly one rewrite and advances the session's
// instruction pointer. It refuses to step a halted session, since engine.Step
// assumes ip indexes a live entry.
func (s *Session) StepOnce() (engine.StepTrace, error) {
	if s.Halted() {
		return engine.StepTrace{}, errors.New("program already halted")
	}
	var trace engine.StepTrace
	nextIP, err := engine.Step(s.State, s.IP, func(t engine.StepTrace) { trace = t })
	if err != nil {
		return engine.StepTrace{}, err
	}
	s.IP = nextIP
	s.Steps++
	return trace, nil
}

// Result returns the sole remaining name; only meaningful once Halted.
func (s *Session) Result() string {
	return s.State.At(0).Name
}
