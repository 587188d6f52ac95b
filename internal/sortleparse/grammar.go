// Package sortleparse is the external parser collaborator named in
// spec.md §1/§6: it turns Sortle source text into the ordered (name,
// terms) pairs the rewrite engine consumes. It is deliberately outside the
// core — the core never imports it — so nothing here affects engine,
// eval, or pattern semantics.
package sortleparse

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// stringLiteral captures a quoted string term and unescapes it. Supported
// escapes: \n \t \\ \" — the minimal set every definition in this shape of
// esolang needs; anything else is a parse error naming the bad escape.
type stringLiteral string

func (s *stringLiteral) Capture(values []string) error {
	raw := values[0]
	inner := raw[1 : len(raw)-1]

	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(inner) {
			return fmt.Errorf("trailing backslash in string literal")
		}
		switch inner[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			return fmt.Errorf("invalid escape \\%c", inner[i])
		}
	}
	*s = stringLiteral(b.String())
	return nil
}

// termNode is one element of a definition's body: exactly one of Int, Str,
// or Op is set, participle's alternation picks the branch that matches.
type termNode struct {
	Pos lexer.Position

	Int *int64         `@Int`
	Str *stringLiteral `| @String`
	Op  *string        `| @Operator`
}

// definition is `name := term*`, one line of a Sortle program.
type definition struct {
	Pos lexer.Position

	Name  string      `@Ident ":="`
	Terms []*termNode `@@*`
}

// program is a whole source file: zero or more definitions.
type program struct {
	Pos lexer.Position

	Definitions []*definition `@@*`
}

var sortleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Assign", Pattern: `:=`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Operator", Pattern: `[+*/%^~?$]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
