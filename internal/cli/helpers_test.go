package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/digicarbon/digicarbon/internal/cli"
	"github.com/digicarbon/digicarbon/internal/config"
)

const laptopAnswers = `
schema_version: 1.0.0
devices:
  - type: Laptop
    count: 1
    hoursPerDay: 8
    ageYears: 3
quiz:
  quizDataUsageImpact: 2
estimatedAnnualFootprint: 100-300 kg
researchConsent: true
`

// setupCLITest isolates config, env and global state and returns the
// config directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvPricePerTonne, "")
	t.Setenv(config.EnvCurrency, "")
	t.Chdir(t.TempDir())
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// writeFile writes content to name in a temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
