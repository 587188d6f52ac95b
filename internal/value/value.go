// Package value implements Sortle's two-variant runtime value domain and
// its coercion rules (spec.md §4.1). Coercions are total: they never fail.
package value

import (
	"strconv"
	"strings"
)

// Kind tags which variant a Value holds.
type Kind byte

const (
	Int Kind = iota
	Str
)

// Value is a tagged union of Integer and String, the only two runtime
// types that exist on the evaluator's stack.
type Value struct {
	kind Kind
	i    int64
	s    string
}

// Integer constructs an Integer value.
func Integer(i int64) Value { return Value{kind: Int, i: i} }

// String constructs a String value.
func String(s string) Value { return Value{kind: Str, s: s} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsInteger reports whether v holds an Integer.
func (v Value) IsInteger() bool { return v.kind == Int }

// Int64 returns the raw integer payload; only meaningful when IsInteger.
func (v Value) Int64() int64 { return v.i }

// Raw returns the raw string payload; only meaningful when !IsInteger.
func (v Value) Raw() string { return v.s }

// ToString implements the to-string coercion: Integer 0 maps to "", any
// other Integer to its decimal form (no leading zeros, leading '-' for
// negatives), and a String maps to itself. This is load-bearing: it is how
// a Sortle program signals "delete this expression."
func (v Value) ToString() string {
	if v.kind == Str {
		return v.s
	}
	if v.i == 0 {
		return ""
	}
	return strconv.FormatInt(v.i, 10)
}

// ToInteger implements the to-integer coercion: an Integer maps to itself;
// a String is scanned from its start for the longest prefix matching
// [0-9]*, parsed as a non-negative decimal (empty prefix treated as 0), and
// any suffix is discarded. There is no sign handling and no floating
// point.
func (v Value) ToInteger() int64 {
	if v.kind == Int {
		return v.i
	}
	end := 0
	for end < len(v.s) && v.s[end] >= '0' && v.s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	digits := strings.TrimLeft(v.s[:end], "0")
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// More digits than fit in 64 bits: saturate rather than panic, since
		// to-integer is specified as total (never fails). Faithful
		// unbounded-magnitude semantics would need a big.Int value domain;
		// spec.md §5 explicitly accepts int64 as a documented deviation.
		return saturate(digits)
	}
	return n
}

// saturate is called only for a digit string (no leading zeros) too large
// for int64, so it returns the largest int64.
func saturate(digits string) int64 {
	return 1<<63 - 1
}
