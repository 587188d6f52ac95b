package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func compileT(t *testing.T, pattern string) []Element {
	t.Helper()
	elems, err := Compile(pattern)
	require.NoError(t, err)
	return elems
}

func TestMatchLiteral(t *testing.T) {
	tests := []struct {
		pattern, target string
		want             bool
	}{
		{"abc", "abc", true},
		{"abc", "abcd", false},
		{"abc", "ab", false},
		{"a.c", "abc", true},
		{"a.c", "azc", true},
		{"", "", true},
		{"", "x", false},
	}
	for _, test := range tests {
		_, ok := Match(compileT(t, test.pattern), test.target)
		require.Equal(t, test.want, ok, "pattern %q vs %q", test.pattern, test.target)
	}
}

func TestMatchCapture(t *testing.T) {
	capture, ok := Match(compileT(t, "(a.)"), "ab")
	require.True(t, ok)
	require.Equal(t, "ab", capture)

	// No capture group: whole string is the result.
	capture, ok = Match(compileT(t, "abc!"), "abccc")
	require.True(t, ok)
	require.Equal(t, "abccc", capture)
}

// Lazy-under-anchoring: `a!` requires at least one `a`, tries the fewest
// repetitions first, but anchoring forces it to grow until the whole
// target is consumed. spec.md §8.
func TestLazyUnderAnchoring(t *testing.T) {
	_, ok := Match(compileT(t, "a!"), "aaa")
	require.True(t, ok)

	_, ok = Match(compileT(t, "a!"), "aab")
	require.False(t, ok)
}

func TestMatchOptional(t *testing.T) {
	elems := compileT(t, "ab@c")
	_, ok := Match(elems, "ac")
	require.True(t, ok)
	_, ok = Match(elems, "abc")
	require.True(t, ok)
	_, ok = Match(elems, "abbc")
	require.False(t, ok)
}

func TestMatchGroupRepeat(t *testing.T) {
	elems := compileT(t, "[ab]!c")
	_, ok := Match(elems, "ababc")
	require.True(t, ok)
	_, ok = Match(elems, "c")
	require.False(t, ok)
}

func TestMatchCaptureWithRepeat(t *testing.T) {
	elems := compileT(t, "(a)!b")
	capture, ok := Match(elems, "aaab")
	require.True(t, ok)
	require.Equal(t, "aaa", capture)
}

func TestMatchCaptureOptionalEmpty(t *testing.T) {
	elems := compileT(t, "(a)@b")
	capture, ok := Match(elems, "b")
	require.True(t, ok)
	require.Equal(t, "", capture)

	capture, ok = Match(elems, "ab")
	require.True(t, ok)
	require.Equal(t, "a", capture)
}

func TestMatchMultibyte(t *testing.T) {
	elems := compileT(t, "..")
	_, ok := Match(elems, "λ狐")
	require.True(t, ok)
	_, ok = Match(elems, "λ")
	require.False(t, ok)
}
