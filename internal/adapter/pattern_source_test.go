package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "regmut.dev/pkg/regmut/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocalPatternSource_Read(t *testing.T) {
	t.Run("skips blank lines and comments", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "patterns.txt")
		writeTestFile(t, path, "# emails\n^[a-z]+@[a-z]+$\n\n  \n\\d{3}\r\n")

		sources, err := NewLocalPatternSource(nil).Read(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, []m.Source{
			{Pattern: "^[a-z]+@[a-z]+$", Origin: path, Line: 2},
			{Pattern: `\d{3}`, Origin: path, Line: 5},
		}, sources)
	})

	t.Run("keeps surrounding spaces of a pattern", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "patterns.txt")
		writeTestFile(t, path, " a \n")

		sources, err := NewLocalPatternSource(nil).Read(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, " a ", sources[0].Pattern)
	})

	t.Run("reads stdin", func(t *testing.T) {
		source := NewLocalPatternSource(strings.NewReader("^a\nb+\n"))

		sources, err := source.Read(context.Background(), StdinPath)
		require.NoError(t, err)
		assert.Equal(t, []m.Source{
			{Pattern: "^a", Origin: StdinPath, Line: 1},
			{Pattern: "b+", Origin: StdinPath, Line: 2},
		}, sources)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLocalPatternSource(nil).Read(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewLocalPatternSource(strings.NewReader("a\n")).Read(ctx, StdinPath)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
