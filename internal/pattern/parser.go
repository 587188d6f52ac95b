package pattern

import (
	"fmt"

	"github.com/graue/sortle/internal/sortleerr"
)

// Compile parses a pattern string into a flat sequence of Elements per
// spec.md §4.3. Groups do not nest, at most one `(...)` capture group is
// allowed, and a trailing `!`/`@` before any element is silently dropped.
func Compile(pattern string) ([]Element, error) {
	toks := lex(pattern)
	var elems []Element
	haveCapture := false

	i := 0
	for i < len(toks) {
		tok := toks[i]

		switch tok.kind {
		case tokBang, tokAt:
			// A modifier with no preceding element: silently ignored.
			i++

		case tokLParen, tokLBracket:
			capturing := tok.kind == tokLParen
			if capturing && haveCapture {
				return nil, compileErr(pattern, "cannot use multiple () groups")
			}
			closeKind := tokRBracket
			openSym := "["
			if capturing {
				closeKind = tokRParen
				openSym = "("
			}

			j := i + 1
			var chars []charSpec
			closed := false
			for j < len(toks) {
				t := toks[j]
				if t.kind == closeKind {
					closed = true
					break
				}
				if t.kind == tokLParen || t.kind == tokLBracket {
					return nil, compileErr(pattern, "cannot nest () or [] groups")
				}
				if t.kind == tokRParen || t.kind == tokRBracket {
					return nil, compileErr(pattern, fmt.Sprintf("mismatched %q inside group", string(t.r)))
				}
				chars = append(chars, charSpec{ch: t.r, wildcard: t.r == '.'})
				j++
			}
			if !closed {
				return nil, compileErr(pattern, fmt.Sprintf("unclosed %q", openSym))
			}

			elem := Element{Chars: chars, Capturing: capturing}
			if capturing {
				haveCapture = true
			}
			i = j + 1
			if i < len(toks) {
				switch toks[i].kind {
				case tokBang:
					elem.CanRepeat = true
					i++
				case tokAt:
					elem.Optional = true
					i++
				}
			}
			elems = append(elems, elem)

		case tokRParen, tokRBracket:
			return nil, compileErr(pattern, fmt.Sprintf("unexpected %q", string(tok.r)))

		default: // tokChar: gather a maximal literal run
			j := i
			var run []charSpec
			for j < len(toks) && toks[j].kind == tokChar {
				run = append(run, charSpec{ch: toks[j].r, wildcard: toks[j].r == '.'})
				j++
			}
			i = j

			if i < len(toks) && (toks[i].kind == tokBang || toks[i].kind == tokAt) {
				mod := toks[i].kind
				i++
				if len(run) > 1 {
					elems = append(elems, Element{Chars: run[:len(run)-1]})
					elems = append(elems, quantify(run[len(run)-1:], mod))
				} else {
					elems = append(elems, quantify(run, mod))
				}
			} else {
				elems = append(elems, Element{Chars: run})
			}
		}
	}

	return elems, nil
}

func quantify(chars []charSpec, mod tokenKind) Element {
	e := Element{Chars: chars}
	if mod == tokBang {
		e.CanRepeat = true
	} else {
		e.Optional = true
	}
	return e
}

func compileErr(pattern, reason string) error {
	return &sortleerr.RegexCompileError{Pattern: pattern, Reason: reason}
}
