package optset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUsage(t *testing.T) {
	t.Parallel()

	t.Run("generated synopsis", func(t *testing.T) {
		t.Parallel()
		set := New("tar")
		set.ShortHelp = "tar is a tape archiver"
		set.Bool('c', "create an archive")
		set.String('f', "", "archive file")
		set.String('C', ".", "change to directory")
		set.OptionalVar(new(stringValue), 'z', "compress")
		set.Require('f')

		want := strings.Join([]string{
			"tar is a tape archiver",
			"",
			"Usage:",
			"  tar [-c] [-C value] -f value [-z[value]] [operand ...]",
			"",
			"Options:",
			"  -C value     change to directory (default: .)",
			"  -c           create an archive",
			"  -f value     archive file (required)",
			"  -z[value]    compress",
		}, "\n")
		assert.Equal(t, want, set.DefaultUsage())
	})
	t.Run("custom usage", func(t *testing.T) {
		t.Parallel()
		set := New("echo")
		set.Usage = "echo [-n] text..."
		set.Bool('n', "no newline")

		got := set.DefaultUsage()
		assert.True(t, strings.HasPrefix(got, "Usage:\n  echo [-n] text...\n\nOptions:\n"))
		assert.NotContains(t, got, "default:")
	})
	t.Run("no options", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Usage:\n  true [operand ...]", New("true").DefaultUsage())
	})
	t.Run("wraps long descriptions", func(t *testing.T) {
		t.Parallel()
		set := New("prog")
		set.Bool('a', strings.Repeat("lorem ipsum dolor sit amet ", 8))

		lines := strings.Split(set.DefaultUsage(), "\n")
		require.Greater(t, len(lines), 5)
		options := lines[4:]
		assert.True(t, strings.HasPrefix(options[0], "  -a    lorem"))
		for _, line := range options[1:] {
			assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", 8)), line)
			assert.LessOrEqual(t, len(line), usageWidth)
		}
	})
}
