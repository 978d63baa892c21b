package getopt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		optstring             string
		body                  string
		posix, inOrder, quiet bool
	}{
		{optstring: "", body: ""},
		{optstring: "ab:", body: "ab:"},
		{optstring: "+ab", body: "ab", posix: true},
		{optstring: "-ab", body: "ab", inOrder: true},
		{optstring: ":ab", body: "ab", quiet: true},
		{optstring: "+:ab", body: "ab", posix: true, quiet: true},
		{optstring: ":+ab", body: "ab", quiet: true},
		{optstring: ":-ab", body: "ab", quiet: true},
		{optstring: "-:", body: "", inOrder: true, quiet: true},
		{optstring: "+-a", body: "a", posix: true},
		{optstring: "-+a", body: "a", inOrder: true},
	}
	for _, tt := range tests {
		s := parseSpec(tt.optstring)
		assert.Equal(t, tt.body, s.body, tt.optstring)
		assert.Equal(t, tt.posix, s.Posix(), tt.optstring)
		assert.Equal(t, tt.inOrder, s.InOrder(), tt.optstring)
		assert.Equal(t, tt.quiet, s.Quiet(), tt.optstring)
		assert.Equal(t, tt.optstring, s.String())
	}
}

func TestSpecLookup(t *testing.T) {
	t.Parallel()

	s := parseSpec(":ab:c::d")
	for c, want := range map[rune]ArgKind{
		'a': NoArgument,
		'b': RequiredArgument,
		'c': OptionalArgument,
		'd': NoArgument,
	} {
		got, ok := s.HasArg(c)
		require.True(t, ok, "%c", c)
		assert.Equal(t, want, got, "%c", c)
	}
	for _, c := range []rune{'x', ':', 'A', 0} {
		_, ok := s.HasArg(c)
		assert.False(t, ok, "%q", c)
	}
	assert.Equal(t, []rune{'a', 'b', 'c', 'd'}, s.Chars())
	assert.Equal(t, "optional", OptionalArgument.String())
}

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		for _, optstring := range []string{"", "a", "ab:c::", "+ab:", "-ab", ":a", "+:a", "é:?", "1+", "+:", "+::a"} {
			s, err := Compile(optstring)
			require.NoError(t, err, optstring)
			assert.Equal(t, optstring, s.String())
		}
	})
	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			optstring string
			offset    int
			msg       string
		}{
			{"a:::", 3, "too many colons after 'a'"},
			{"ab:a", 3, "duplicate option character 'a'"},
			{"a b", 1, "' ' cannot be an option character"},
			{"a-", 1, "'-' cannot be an option character"},
			{"a\x01", 1, "'\\x01' cannot be an option character"},
			{"a\xff", 1, "invalid UTF-8"},
			{"+-a", 0, "both '+' and '-' markers"},
			{":+a", 1, "mode marker '+' must come before ':'"},
			{"::-a", 2, "mode marker '-' must come before ':'"},
		}
		for _, tt := range tests {
			_, err := Compile(tt.optstring)
			require.Error(t, err, tt.optstring)
			var specErr *SpecError
			require.True(t, errors.As(err, &specErr), tt.optstring)
			assert.Equal(t, tt.optstring, specErr.Spec)
			assert.Equal(t, tt.offset, specErr.Offset, tt.optstring)
			assert.Equal(t, tt.msg, specErr.Msg, tt.optstring)
		}
	})
	t.Run("must compile", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { MustCompile("ab:") })
		assert.PanicsWithError(t,
			`getopt: invalid option string "a:::" at offset 3: too many colons after 'a'`,
			func() { MustCompile("a:::") },
		)
	})
}
