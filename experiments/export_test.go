package experiments

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chinesecheckers/game"

	"github.com/stretchr/testify/require"
)

func TestExporter(t *testing.T) {
	config := DefaultExportConfig()
	config.Games = 1
	config.MaxMoves = 3
	config.Dir = t.TempDir()

	x, err := NewExporter(config)
	require.NoError(t, err)
	written, err := x.Run()
	require.NoError(t, err)
	require.Positive(t, written)

	data, err := os.ReadFile(filepath.Join(config.Dir, boardsFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, written)
	require.Len(t, strings.Fields(lines[0]), 64)

	lookup, err := LoadLookup(config.Dir)
	require.NoError(t, err)
	require.Len(t, lookup, written, "Each exported position is new")
	require.Equal(t, x.Lookup(), lookup)

	t.Run("a second run skips known positions", func(t *testing.T) {
		again, err := NewExporter(config)
		require.NoError(t, err)
		require.Len(t, again.Lookup(), written)

		more, err := again.Run()
		require.NoError(t, err)
		require.Zero(t, more, "Seeded self-play repeats the first game")
	})
}

func TestLoadLookup(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		lookup, err := LoadLookup(t.TempDir())
		require.NoError(t, err)
		require.Empty(t, lookup)
	})

	t.Run("boards decode to fingerprints", func(t *testing.T) {
		f, err := parseBoard(strings.Repeat("0 ", 63) + "2")
		require.NoError(t, err)
		require.Equal(t, game.Fingerprint{0, 1 << 63}, f)

		_, err = parseBoard("0 1 2")
		require.Error(t, err)
		_, err = parseBoard(strings.Repeat("0 ", 63) + "3")
		require.Error(t, err)
	})

	t.Run("unknown format version", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, versionFile), []byte("2\n"), 0644))
		_, err := LoadLookup(dir)
		require.Error(t, err)
	})
}
