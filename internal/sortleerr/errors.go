// Package sortleerr defines the closed set of error kinds a Sortle program
// can raise, as described in spec.md's error handling design. Each kind is
// a concrete type so callers can switch on it with errors.As instead of
// matching strings.
package sortleerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which of the closed set of error kinds an error belongs
// to.
type Kind string

const (
	KindParse          Kind = "parse"
	KindRegexCompile   Kind = "regex_compile"
	KindStackUnderflow Kind = "stack_underflow"
	KindStackResidue   Kind = "stack_residue"
	KindDivideByZero   Kind = "divide_by_zero"
	KindUnsupportedOp  Kind = "unsupported_operation"
	KindEmptyProgram   Kind = "empty_program"
)

// ParseError describes a failure to parse Sortle source text. Row and Col
// are 1-based.
type ParseError struct {
	Row, Col int
	Line     string
	Expected string
	Received string
	Message  string
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("expected %s, found %q", e.Expected, e.Received)
}

func (e *ParseError) Kind() Kind { return KindParse }

// Snippet renders the classic caret-underline view of the offending line.
func (e *ParseError) Snippet() string {
	if e.Line == "" {
		return ""
	}
	caret := ""
	for i := 0; i < e.Col-1 && i < len(e.Line); i++ {
		caret += " "
	}
	caret += "^"
	return e.Line + "\n" + caret
}

// RegexCompileError describes an invalid bespoke pattern (unclosed group,
// nested groups, multiple captures). Pattern is the pattern string being
// compiled, set by the pattern compiler when it raises the error.
type RegexCompileError struct {
	Pattern string
	Reason  string
}

func (e *RegexCompileError) Error() string { return e.Reason }

func (e *RegexCompileError) Kind() Kind { return KindRegexCompile }

// StackUnderflowError: an operator ran with fewer than two operands.
type StackUnderflowError struct {
	Operator string
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow: operator %q needs 2 operands", e.Operator)
}

func (e *StackUnderflowError) Kind() Kind { return KindStackUnderflow }

// StackResidueError: the expression body left other than exactly one value.
type StackResidueError struct {
	Remaining int
}

func (e *StackResidueError) Error() string {
	return fmt.Sprintf("stack residue: %d value(s) left on the stack, expected 1", e.Remaining)
}

func (e *StackResidueError) Kind() Kind { return KindStackResidue }

// DivideByZeroError: `/` or `%` with a zero divisor.
type DivideByZeroError struct {
	Operator string
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("division by zero in %q", e.Operator)
}

func (e *DivideByZeroError) Kind() Kind { return KindDivideByZero }

// UnsupportedOperationError: `?` invoked with a non-empty op1 (the
// substring-match form, explicitly out of scope per spec.md §1).
type UnsupportedOperationError struct {
	Detail string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Detail != "" {
		return "substring regex form not implemented: " + e.Detail
	}
	return "substring regex form not implemented"
}

func (e *UnsupportedOperationError) Kind() Kind { return KindUnsupportedOp }

// EmptyProgramError: an attempt to run a state of length 0.
type EmptyProgramError struct{}

func (e *EmptyProgramError) Error() string {
	return "program must have at least one expression"
}

func (e *EmptyProgramError) Kind() Kind { return KindEmptyProgram }

// WrapRegex prefixes err's message with "when evaluating regex: <pattern>",
// so callers that print err directly show which pattern failed. The
// wrapped error stays reachable through errors.As; the CLI reads the
// pattern from RegexCompileError.Pattern.
func WrapRegex(err error, pattern string) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, fmt.Sprintf("when evaluating regex: %s", pattern))
}

// Wrap attaches a contextual message to err using the causal chain so
// errors.As / errors.Unwrap keep working on the wrapped error.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}
