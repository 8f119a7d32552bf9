package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCldrgen(t *testing.T) {
	t.Run("generates a table file", func(t *testing.T) {
		dataDir := t.TempDir()
		writeDataFile(t, dataDir, "en.yaml", "display_names:\n  languages:\n    en: English\n")
		writeDataFile(t, dataDir, "de.yaml", "display_names:\n  languages:\n    de: Deutsch\n")

		outFile := filepath.Join(t.TempDir(), "locales_gen.go")

		cmd := newRootCmd()
		cmd.SetArgs([]string{"--data", dataDir, "--out", outFile})
		require.NoError(t, cmd.Execute())

		src, err := os.ReadFile(outFile)
		require.NoError(t, err)
		assert.Contains(t, string(src), `case "en":`)
		assert.Contains(t, string(src), "// Code generated by cldrgen. DO NOT EDIT.")
	})

	t.Run("duplicate locale names fail the run", func(t *testing.T) {
		dataDir := t.TempDir()
		writeDataFile(t, dataDir, "en.yaml", "display_names:\n  languages:\n    en: English\n")
		writeDataFile(t, dataDir, "en-dup.yaml", "name: en\ndisplay_names:\n  languages:\n    en: English\n")

		outFile := filepath.Join(t.TempDir(), "locales_gen.go")

		cmd := newRootCmd()
		cmd.SetArgs([]string{"--data", dataDir, "--out", outFile})
		require.Error(t, cmd.Execute())

		_, err := os.Stat(outFile)
		assert.True(t, os.IsNotExist(err), "no artifact may exist after a failed run")
	})

	t.Run("missing data directory fails the run", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"--data", filepath.Join(t.TempDir(), "nope")})
		require.Error(t, cmd.Execute())
	})
}
