package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	isolate(t)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)

	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)
}

func TestConfigGetters(t *testing.T) {
	isolate(t)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	cfg.Output.DefaultFormat = "json"
	cfg.Output.Precision = 4
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/tmp/test.log"
	cfg.Projection.PricePerTonne = 42
	cfg.Projection.Currency = "USD"

	assert.Equal(t, "json", GetDefaultOutputFormat())
	assert.Equal(t, 4, GetOutputPrecision())
	assert.Equal(t, "debug", GetLogLevel())
	assert.Equal(t, "/tmp/test.log", GetLogFile())
	assert.InDelta(t, 42.0, GetPricePerTonne(), 1e-9)
	assert.Equal(t, "USD", GetCurrency())
}

func TestSetGlobalConfig(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := Defaults()
	cfg.Output.Precision = 5
	SetGlobalConfig(cfg)
	assert.Same(t, cfg, GetGlobalConfig())
	assert.Equal(t, 5, GetOutputPrecision())
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv(EnvHome, "/custom/home")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/home", dir)

	t.Setenv(EnvHome, "")
	t.Setenv("HOME", "/users/r")
	dir, err = GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/users/r", ".digicarbon"), dir)
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "dc")
	t.Setenv(EnvHome, home)

	require.NoError(t, EnsureConfigDir())
	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := Defaults()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "dc.log")
	SetGlobalConfig(cfg)

	require.NoError(t, EnsureLogDir())
	assert.DirExists(t, filepath.Dir(cfg.Logging.File))
}

func TestGetRecordsPath(t *testing.T) {
	home := isolate(t)
	t.Cleanup(ResetGlobalConfigForTest)

	SetGlobalConfig(Defaults())
	p, err := GetRecordsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "records.jsonl"), p)

	cfg := Defaults()
	cfg.Research.RecordsFile = "/srv/out.jsonl"
	SetGlobalConfig(cfg)
	p, err = GetRecordsPath()
	require.NoError(t, err)
	assert.Equal(t, "/srv/out.jsonl", p)
}

func TestLoggerLifecycle(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)
	t.Cleanup(CloseLogFile)

	cfg := Defaults()
	cfg.Logging.File = filepath.Join(t.TempDir(), "dc.log")
	SetGlobalConfig(cfg)

	require.NoError(t, InitLogger("warn", true))
	assert.Equal(t, "warn", GetLogger().GetLevel().String())
	assert.FileExists(t, cfg.Logging.File)

	SetLogLevel("bogus")
	assert.Equal(t, "info", GetLogger().GetLevel().String())

	CloseLogFile()
	assert.Equal(t, "info", GetLogger().GetLevel().String())
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	out := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", out.Output)
	assert.Equal(t, "debug", out.Level)

	lc.File = "/var/log/dc.log"
	out = lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/var/log/dc.log", out.File)
}
