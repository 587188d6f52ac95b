package eval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graue/sortle/internal/sortleerr"
	"github.com/graue/sortle/internal/value"
)

type fakeState struct {
	names []string
}

func (f fakeState) Names() []string { return f.names }
func (f fakeState) Len() int        { return len(f.names) }

func ints(xs ...int64) []value.Term {
	terms := make([]value.Term, len(xs))
	for i, x := range xs {
		terms[i] = value.NewIntegerTerm(x)
	}
	return terms
}

func op(o value.Operator) value.Term { return value.NewOperatorTerm(o) }

func TestEvaluateArithmetic(t *testing.T) {
	// 1 2 + => 3 (op2=1, op1=2, so 1+2)
	terms := append(ints(1, 2), op(value.OpAdd))
	v, err := Evaluate(terms, fakeState{}, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), v.Int64())

	// 7 2 / => floor(7/2) = 3
	terms = append(ints(7, 2), op(value.OpDiv))
	v, err = Evaluate(terms, fakeState{}, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), v.Int64())

	// -7 2 / => floor(-7/2) = -4 (floor division rounds toward -inf)
	terms = append(ints(-7, 2), op(value.OpDiv))
	v, err = Evaluate(terms, fakeState{}, 0)
	require.NoError(t, err)
	require.Equal(t, int64(-4), v.Int64())

	// -7 2 % => truncated remainder = -1
	terms = append(ints(-7, 2), op(value.OpMod))
	v, err = Evaluate(terms, fakeState{}, 0)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v.Int64())
}

func TestEvaluateDivideByZero(t *testing.T) {
	terms := append(ints(1, 0), op(value.OpDiv))
	_, err := Evaluate(terms, fakeState{}, 0)
	var dz *sortleerr.DivideByZeroError
	require.True(t, errors.As(err, &dz))
}

func TestEvaluateStackUnderflow(t *testing.T) {
	terms := []value.Term{op(value.OpAdd)}
	_, err := Evaluate(terms, fakeState{}, 0)
	var su *sortleerr.StackUnderflowError
	require.True(t, errors.As(err, &su))
}

func TestEvaluateStackResidue(t *testing.T) {
	terms := ints(1, 2)
	_, err := Evaluate(terms, fakeState{}, 0)
	var sr *sortleerr.StackResidueError
	require.True(t, errors.As(err, &sr))
	require.Equal(t, 2, sr.Remaining)
}

func TestEvaluateOperandOrder(t *testing.T) {
	// "a" "b" ~ => to-string(op2="a") ++ to-string(op1="b") = "ab"
	terms := []value.Term{
		value.NewStringTerm("a"),
		value.NewStringTerm("b"),
		op(value.OpConcat),
	}
	v, err := Evaluate(terms, fakeState{}, 0)
	require.NoError(t, err)
	require.Equal(t, "ab", v.ToString())
}

func TestEvaluateMatch(t *testing.T) {
	state := fakeState{names: []string{"aa", "bb", "cc"}}
	// "bb" "" ? => op1 = "" (popped first), op2 = pattern "bb", matched
	// against candidates; ip=0 excludes self ("aa"), so "bb" is found.
	terms := []value.Term{
		value.NewStringTerm("bb"),
		value.NewStringTerm(""),
		op(value.OpRepeat),
	}
	v, err := Evaluate(terms, state, 0)
	require.NoError(t, err)
	require.Equal(t, "bb", v.ToString())
}

func TestEvaluateMatchUnsupported(t *testing.T) {
	state := fakeState{names: []string{"aa"}}
	terms := []value.Term{
		value.NewStringTerm("x"),
		value.NewStringTerm("a."),
		op(value.OpRepeat),
	}
	_, err := Evaluate(terms, state, 0)
	var uo *sortleerr.UnsupportedOperationError
	require.True(t, errors.As(err, &uo))
}
