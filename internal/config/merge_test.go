package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digicarbon/digicarbon/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Output:     config.OutputConfig{DefaultFormat: "table", Precision: 2},
		Logging:    config.LoggingConfig{Level: "info", Format: "console"},
		Projection: config.ProjectionConfig{Currency: "INR", PricePerTonne: 3000},
		Research:   config.ResearchConfig{BatchSize: 100, Concurrency: 4},
	}
}

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
  precision: 4
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 4, target.Output.Precision)
	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, "INR", target.Projection.Currency)
	assert.Equal(t, 100, target.Research.BatchSize)
}

func TestShallowMergeYAML_SectionReplacedWhole(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
projection:
  price_per_tonne: 10
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.InDelta(t, 10.0, target.Projection.PricePerTonne, 1e-9)
	assert.Empty(t, target.Projection.Currency, "omitted fields in a replaced section are zeroed")
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
dashboard:
  theme: dark
research:
  batch_size: 7
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, 7, target.Research.BatchSize)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newDefaultTarget()
	require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, "# nothing\n")))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	require.Error(t, config.ShallowMergeYAML(nil, "x"))
	require.Error(t, config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output: [")))
	require.Error(t, config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output: notamap")))
}

func TestNewWithOverlay(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvCurrency, "")
	t.Setenv(config.EnvPricePerTonne, "99")

	cfg, err := config.NewWithOverlay(writeOverlay(t, `
projection:
  currency: GBP
  price_per_tonne: 1
`))
	require.NoError(t, err)
	assert.Equal(t, "GBP", cfg.Projection.Currency)
	assert.InDelta(t, 99.0, cfg.Projection.PricePerTonne, 1e-9, "environment wins over overlay")

	cfg, err = config.NewWithOverlay("")
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)

	_, err = config.NewWithOverlay(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
