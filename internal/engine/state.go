// Package engine implements Sortle's rewrite engine (spec.md §4.6): the
// sorted program-state list, the insertion/clobber/delete discipline, and
// the instruction-pointer rule that selects the next expression to
// evaluate.
package engine

import "github.com/graue/sortle/internal/value"

// Expression is a named, immutable term sequence — the unit of evaluation.
// The body never changes once parsed; the rewrite engine carries it
// forward under a new name.
type Expression struct {
	Name  string
	Terms []value.Term
}

// State is the ordered sequence of Expressions the engine operates on. Its
// invariants (spec.md §3): names strictly increasing, no duplicate or
// empty names, length >= 1 while the program runs. It is mutated only by
// Step.
type State struct {
	entries []Expression
}

// NewState constructs a State from parser output, which must already be
// sorted by name with no duplicates (spec.md §6's parser input contract).
func NewState(entries []Expression) *State {
	s := &State{entries: make([]Expression, len(entries))}
	copy(s.entries, entries)
	return s
}

// Len reports the number of expressions currently held.
func (s *State) Len() int { return len(s.entries) }

// At returns the expression at index i.
func (s *State) At(i int) Expression { return s.entries[i] }

// Names returns the names of every expression, in sort order. Used
// read-only by the regex subsystem during a `?` match; callers must not
// mutate the returned slice.
func (s *State) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// indexOf finds the smallest index j such that entries[j].Name >= name, or
// len(entries) if none, using ordinary lexicographic comparison. The
// returned j is the unique position consistent with the sort invariant.
func (s *State) indexOf(name string) int {
	lo, hi := 0, len(s.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.entries[mid].Name < name {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// remove deletes the entry at index i, preserving order.
func (s *State) remove(i int) {
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}

// insertAt inserts e at index j. Callers must have already verified j is
// the correct sort-order position and that no clobber is needed.
func (s *State) insertAt(j int, e Expression) {
	s.entries = append(s.entries, Expression{})
	copy(s.entries[j+1:], s.entries[j:])
	s.entries[j] = e
}

// clobberAt replaces the entry at index j with e.
func (s *State) clobberAt(j int, e Expression) {
	s.entries[j] = e
}
