package pattern

// Match runs the compiled pattern elems against target, anchored at both
// ends per spec.md §4.4: the pattern must consume exactly the entire
// string. ok reports whether it did. When it does, the returned value is
// the content of the single capturing group if the pattern has one,
// otherwise the whole target string.
func Match(elems []Element, target string) (string, bool) {
	runes := decodeRunes(target)

	if fm := newFixedMatcher(elems); fm != nil {
		if !fm.matches(runes) {
			return "", false
		}
		return fm.result(target, runes), true
	}

	st := &captureState{}
	if !matchElements(elems, 0, runes, st) {
		return "", false
	}
	if !hasCaptureGroup(elems) {
		return target, true
	}
	return string(runes[st.start:st.end]), true
}

type captureState struct {
	start, end int
}

// matchElements matches elems[0] against runes starting at pos, then
// recurses on the remainder. Quantified elements backtrack lazily: the
// fewest repetitions are tried first, growing only when the remainder of
// the pattern fails to match what follows.
func matchElements(elems []Element, pos int, runes []rune, st *captureState) bool {
	if len(elems) == 0 {
		return pos == len(runes)
	}
	e, rest := elems[0], elems[1:]

	switch {
	case e.Optional:
		if e.Capturing {
			st.start, st.end = pos, pos
		}
		if matchElements(rest, pos, runes, st) {
			return true
		}
		if next, ok := matchOnce(e, pos, runes); ok {
			if e.Capturing {
				st.start, st.end = pos, next
			}
			if matchElements(rest, next, runes, st) {
				return true
			}
		}
		return false

	case e.CanRepeat:
		cur := pos
		for {
			next, ok := matchOnce(e, cur, runes)
			if !ok {
				return false
			}
			cur = next
			if e.Capturing {
				st.start, st.end = pos, cur
			}
			if matchElements(rest, cur, runes, st) {
				return true
			}
		}

	default:
		next, ok := matchOnce(e, pos, runes)
		if !ok {
			return false
		}
		if e.Capturing {
			st.start, st.end = pos, next
		}
		return matchElements(rest, next, runes, st)
	}
}

// matchOnce consumes exactly len(e.Chars) runes at pos, `.` accepting any
// scalar value.
func matchOnce(e Element, pos int, runes []rune) (int, bool) {
	n := len(e.Chars)
	if pos+n > len(runes) {
		return 0, false
	}
	for i, c := range e.Chars {
		if !c.wildcard && c.ch != runes[pos+i] {
			return 0, false
		}
	}
	return pos + n, true
}

// fixedMatcher is a fast path for patterns with no quantified elements,
// where the target length and the capture span (if any) are both known
// without backtracking. Mirrors the teacher's dispatch-table-of-
// constructors idiom for recognizing statically-optimizable patterns.
type fixedMatcher struct {
	elems []Element
	total int
}

func newFixedMatcher(elems []Element) *fixedMatcher {
	total := 0
	for _, e := range elems {
		if e.Optional || e.CanRepeat {
			return nil
		}
		total += len(e.Chars)
	}
	return &fixedMatcher{elems: elems, total: total}
}

func (m *fixedMatcher) matches(runes []rune) bool {
	if m.total != len(runes) {
		return false
	}
	pos := 0
	for _, e := range m.elems {
		for _, c := range e.Chars {
			if !c.wildcard && c.ch != runes[pos] {
				return false
			}
			pos++
		}
	}
	return true
}

func (m *fixedMatcher) result(target string, runes []rune) string {
	pos := 0
	for _, e := range m.elems {
		if e.Capturing {
			return string(runes[pos : pos+len(e.Chars)])
		}
		pos += len(e.Chars)
	}
	return target
}
