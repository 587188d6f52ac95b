package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"(a.)(c.)", "cannot use multiple () groups"},
		{"[abc", `unclosed "["`},
		{"(abc", `unclosed "("`},
		{"a[b(c]", "cannot nest () or [] groups"},
		{"a(b[c)", "cannot nest () or [] groups"},
	}
	for _, test := range tests {
		t.Run(test.pattern, func(t *testing.T) {
			_, err := Compile(test.pattern)
			require.Error(t, err)
			require.Equal(t, test.want, err.Error())
		})
	}
}

func TestCompileElements(t *testing.T) {
	elems, err := Compile("abc!")
	require.NoError(t, err)
	require.Len(t, elems, 2)
	require.Equal(t, "ab", elems[0].Literal())
	require.False(t, elems[0].CanRepeat)
	require.Equal(t, "c", elems[1].Literal())
	require.True(t, elems[1].CanRepeat)

	elems, err = Compile("(a.)")
	require.NoError(t, err)
	require.Len(t, elems, 1)
	require.True(t, elems[0].Capturing)
	require.Equal(t, "a.", elems[0].Literal())

	// A leading modifier with nothing to bind to is dropped silently.
	elems, err = Compile("!abc")
	require.NoError(t, err)
	require.Len(t, elems, 1)
	require.False(t, elems[0].CanRepeat)
	require.Equal(t, "abc", elems[0].Literal())
}

func TestCompileGroupModifier(t *testing.T) {
	elems, err := Compile("[ab]!")
	require.NoError(t, err)
	require.Len(t, elems, 1)
	require.True(t, elems[0].CanRepeat)
	require.Equal(t, "ab", elems[0].Literal())

	elems, err = Compile("(x)@")
	require.NoError(t, err)
	require.Len(t, elems, 1)
	require.True(t, elems[0].Optional)
	require.True(t, elems[0].Capturing)
}
