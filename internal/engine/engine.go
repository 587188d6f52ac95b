package engine

import (
	"github.com/graue/sortle/internal/eval"
	"github.com/graue/sortle/internal/sortleerr"
	"github.com/graue/sortle/internal/sortlelog"
)

var log = sortlelog.For("engine")

// StepTrace describes what one Step call did, for the CLI's step count
// and for the step debugger. It costs nothing when no observer is
// registered.
type StepTrace struct {
	IP          int
	RemovedName string
	NewName     string
	Deleted     bool
	Clobbered   bool
	InsertIndex int
}

// Step performs exactly one rewrite (spec.md §4.6): evaluate the
// expression at ip, remove it, and either drop it (if the result coerces
// to "") or reinsert/clobber it at the position the sort invariant
// demands. It returns the instruction pointer's new value; the caller (Run,
// or an external single-step driver) decides whether to halt.
func Step(state *State, ip int, observer func(StepTrace)) (int, error) {
	e := state.At(ip)

	result, err := eval.Evaluate(e.Terms, state, ip)
	if err != nil {
		return ip, err
	}
	newName := result.ToString()

	state.remove(ip)
	trace := StepTrace{IP: ip, RemovedName: e.Name}

	var newIP int
	if newName == "" {
		trace.Deleted = true
		newIP = ip
		if newIP == state.Len() {
			newIP = 0
		}
	} else {
		j := state.indexOf(newName)
		next := Expression{Name: newName, Terms: e.Terms}
		if j < state.Len() && state.entries[j].Name == newName {
			state.clobberAt(j, next)
			trace.Clobbered = true
		} else {
			state.insertAt(j, next)
		}
		trace.NewName = newName
		trace.InsertIndex = j
		newIP = j + 1
		if newIP == state.Len() {
			newIP = 0
		}
	}

	log.Debug().
		Int("ip", trace.IP).
		Str("removed", trace.RemovedName).
		Str("new_name", trace.NewName).
		Bool("deleted", trace.Deleted).
		Bool("clobbered", trace.Clobbered).
		Msg("step")

	if observer != nil {
		observer(trace)
	}
	return newIP, nil
}

// Run loops Step until exactly one expression remains, returning its name.
// A program that starts with one expression is already terminated and is
// never stepped (spec.md §8 scenario 2); a program that starts empty is
// rejected up front.
func Run(state *State, observer func(StepTrace)) (string, error) {
	if state.Len() == 0 {
		return "", &sortleerr.EmptyProgramError{}
	}
	ip := 0
	for state.Len() > 1 {
		next, err := Step(state, ip, observer)
		if err != nil {
			return "", err
		}
		ip = next
	}
	return state.At(0).Name, nil
}
