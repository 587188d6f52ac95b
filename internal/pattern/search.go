package pattern

import "github.com/graue/sortle/internal/sortlelog"

var log = sortlelog.For("pattern")

// CandidateOrder builds the search order spec.md §4.5 mandates for the `?`
// operator: entries before ip reversed, followed by entries after ip
// reversed — i.e. reverse-sort order starting from the name immediately
// before the evaluating expression, wrapping to the end of the list. The
// expression at ip is excluded.
func CandidateOrder(names []string, ip int) []string {
	out := make([]string, 0, len(names)-1)
	for i := ip - 1; i >= 0; i-- {
		out = append(out, names[i])
	}
	for i := len(names) - 1; i > ip; i-- {
		out = append(out, names[i])
	}
	return out
}

// Search compiles pattern once and tries it against each candidate in
// order, returning the first match's result value. An empty string with a
// nil error means no candidate matched, per spec.md §4.5's fallback rule.
func Search(pattern string, candidates []string) (string, error) {
	elems, err := Compile(pattern)
	if err != nil {
		return "", err
	}
	for _, candidate := range candidates {
		value, ok := Match(elems, candidate)
		log.Debug().Str("pattern", pattern).Str("candidate", candidate).Bool("matched", ok).Msg("search")
		if ok {
			return value, nil
		}
	}
	return "", nil
}
