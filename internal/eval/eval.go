// Package eval implements Sortle's stack machine (spec.md §4.2): it
// executes one expression's term sequence against a fresh stack and
// produces a single Value or an error.
package eval

import (
	"github.com/graue/sortle/internal/pattern"
	"github.com/graue/sortle/internal/sortleerr"
	"github.com/graue/sortle/internal/value"
)

// StateReader is the read-only view of the program state the evaluator
// needs to serve the `?` operator: every expression's name, in sort
// order, and how many there are. The rewrite engine's state type satisfies
// this without eval needing to import it.
type StateReader interface {
	Names() []string
	Len() int
}

// Evaluate runs terms left to right against a fresh stack. A literal
// pushes; an operator pops two operands and pushes one result. ip is only
// consulted by the `?` operator, to build its candidate search order.
func Evaluate(terms []value.Term, state StateReader, ip int) (value.Value, error) {
	stack := make([]value.Value, 0, len(terms))

	pop := func() (value.Value, bool) {
		if len(stack) == 0 {
			return value.Value{}, false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, true
	}

	for _, term := range terms {
		if term.Kind != value.TermOperator {
			stack = append(stack, term.Value())
			continue
		}

		op1, ok1 := pop()
		op2, ok2 := pop()
		if !ok1 || !ok2 {
			return value.Value{}, &sortleerr.StackUnderflowError{Operator: term.Op.String()}
		}

		result, err := apply(term.Op, op1, op2, state, ip)
		if err != nil {
			return value.Value{}, err
		}
		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return value.Value{}, &sortleerr.StackResidueError{Remaining: len(stack)}
	}
	return stack[0], nil
}

// apply evaluates one arity-2 operator. op1 is the first-popped (right-
// hand) operand, op2 the second-popped (left-hand) operand — this matters
// for the non-commutative operators.
func apply(op value.Operator, op1, op2 value.Value, state StateReader, ip int) (value.Value, error) {
	switch op {
	case value.OpAdd:
		return value.Integer(op2.ToInteger() + op1.ToInteger()), nil

	case value.OpMul:
		return value.Integer(op2.ToInteger() * op1.ToInteger()), nil

	case value.OpDiv:
		divisor := op1.ToInteger()
		if divisor == 0 {
			return value.Value{}, &sortleerr.DivideByZeroError{Operator: "/"}
		}
		return value.Integer(floorDiv(op2.ToInteger(), divisor)), nil

	case value.OpMod:
		divisor := op1.ToInteger()
		if divisor == 0 {
			return value.Value{}, &sortleerr.DivideByZeroError{Operator: "%"}
		}
		return value.Integer(op2.ToInteger() % divisor), nil

	case value.OpMax, value.OpMaxAlias:
		a, b := op2.ToString(), op1.ToString()
		if a >= b {
			return value.String(a), nil
		}
		return value.String(b), nil

	case value.OpConcat:
		return value.String(op2.ToString() + op1.ToString()), nil

	case value.OpRepeat:
		return applyMatch(op1, op2, state, ip)

	default:
		panic("eval: unreachable operator " + op.String())
	}
}

// floorDiv implements floor division (rounds toward negative infinity),
// as opposed to Go's native truncating "/".
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// applyMatch implements the `?` operator: op1 must coerce to the empty
// string (the substring-match form, where op1 is non-empty, is explicitly
// out of scope per spec.md §1). op2 is the pattern, searched against the
// other expressions' names in the prescribed candidate order.
func applyMatch(op1, op2 value.Value, state StateReader, ip int) (value.Value, error) {
	if s := op1.ToString(); s != "" {
		return value.Value{}, &sortleerr.UnsupportedOperationError{Detail: s}
	}

	candidates := pattern.CandidateOrder(state.Names(), ip)
	result, err := pattern.Search(op2.ToString(), candidates)
	if err != nil {
		return value.Value{}, sortleerr.WrapRegex(err, op2.ToString())
	}
	return value.String(result), nil
}
