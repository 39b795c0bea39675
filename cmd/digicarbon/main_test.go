package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digicarbon/digicarbon/internal/cli"
	"github.com/digicarbon/digicarbon/internal/config"
	"github.com/digicarbon/digicarbon/pkg/version"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "digicarbon", root.Use)
	})
}

func TestRun(t *testing.T) {
	home := isolate(t)

	assert.Equal(t, 0, run([]string{"config", "init"}))
	_, err := os.Stat(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1, run([]string{"estimate"}), "missing --answers")
	assert.Equal(t, 1, run([]string{"no-such-command"}))
}
