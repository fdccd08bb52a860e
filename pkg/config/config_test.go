package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"WAITALL_DEFAULT_TIMEOUT",
	"WAITALL_MAX_WORKERS",
	"WAITALL_RATE_PER_SECOND",
	"WAITALL_BURST",
	"WAITALL_CANCEL_ON_TIMEOUT",
	"WAITALL_LOG_LEVEL",
	"WAITALL_LOG_FORMAT",
	"WAITALL_METRICS_NAMESPACE",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.DefaultTimeout)
	assert.Equal(t, 0, cfg.MaxWorkers)
	assert.Equal(t, float64(0), cfg.RatePerSecond)
	assert.Equal(t, 1, cfg.Burst)
	assert.False(t, cfg.CancelOnTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "waitall", cfg.MetricsNamespace)
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("testdata/.env.custom")
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.DefaultTimeout)
	assert.Equal(t, 8, cfg.MaxWorkers)
	assert.Equal(t, float64(100), cfg.RatePerSecond)
	assert.Equal(t, 10, cfg.Burst)
	assert.True(t, cfg.CancelOnTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("WAITALL_MAX_WORKERS", "3")

	cfg, err := Load("testdata/.env.custom")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxWorkers)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load("testdata/does_not_exist.env")
	assert.ErrorIs(t, err, ErrLoadingEnvFile)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	t.Setenv("WAITALL_DEFAULT_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorIs(t, err, ErrParsingConfig)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("WAITALL_MAX_WORKERS", "-2")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestMustLoad(t *testing.T) {
	clearEnv(t)

	assert.NotPanics(t, func() { MustLoad() })
	assert.Panics(t, func() { MustLoad("testdata/does_not_exist.env") })
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Config{}.Validate())
	assert.ErrorIs(t, Config{DefaultTimeout: -time.Second}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Config{RatePerSecond: -1}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Config{RatePerSecond: 5, Burst: 0}.Validate(), ErrInvalidConfig)
}
