package sortleparse

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	participle "github.com/alecthomas/participle/v2"

	"github.com/graue/sortle/internal/engine"
	"github.com/graue/sortle/internal/sortleerr"
	"github.com/graue/sortle/internal/value"
)

var sortleParser = participle.MustBuild[program](
	participle.Lexer(sortleLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Parse turns Sortle source text into the ordered list of Expressions the
// rewrite engine consumes: sorted by name ascending, no duplicate names
// (spec.md §6's parser input contract).
func Parse(src string) ([]engine.Expression, error) {
	ast, err := sortleParser.ParseString("", src)
	if err != nil {
		return nil, toParseError(err, src)
	}

	exprs := make([]engine.Expression, 0, len(ast.Definitions))
	for _, def := range ast.Definitions {
		terms := make([]value.Term, len(def.Terms))
		for i, t := range def.Terms {
			term, err := toTerm(t)
			if err != nil {
				return nil, &sortleerr.ParseError{
					Row: t.Pos.Line, Col: t.Pos.Column,
					Line:    lineAt(src, t.Pos.Line),
					Message: err.Error(),
				}
			}
			terms[i] = term
		}
		exprs = append(exprs, engine.Expression{Name: def.Name, Terms: terms})
	}

	sort.Slice(exprs, func(i, j int) bool { return exprs[i].Name < exprs[j].Name })
	for i := 1; i < len(exprs); i++ {
		if exprs[i].Name == exprs[i-1].Name {
			return nil, &sortleerr.ParseError{
				Message: fmt.Sprintf("duplicate definition of %q", exprs[i].Name),
			}
		}
	}
	return exprs, nil
}

func toTerm(t *termNode) (value.Term, error) {
	switch {
	case t.Int != nil:
		return value.NewIntegerTerm(*t.Int), nil
	case t.Str != nil:
		return value.NewStringTerm(string(*t.Str)), nil
	case t.Op != nil:
		return value.NewOperatorTerm(value.Operator((*t.Op)[0])), nil
	default:
		return value.Term{}, fmt.Errorf("empty term")
	}
}

func toParseError(err error, src string) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return &sortleerr.ParseError{
			Row: pos.Line, Col: pos.Column,
			Line:     lineAt(src, pos.Line),
			Expected: "",
			Received: "",
			Message:  perr.Message(),
		}
	}
	return &sortleerr.ParseError{Message: err.Error()}
}

func lineAt(src string, line int) string {
	lines := strings.Split(src, "\n")
	if line-1 >= 0 && line-1 < len(lines) {
		return lines[line-1]
	}
	return ""
}
