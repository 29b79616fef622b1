package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "zero_one", cfg.Method)
	assert.Equal(t, "zero", cfg.DegeneratePolicy)
	assert.Equal(t, 25.0, cfg.QuantileLow)
	assert.Equal(t, 75.0, cfg.QuantileHigh)
	assert.Empty(t, cfg.Excluded)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("NORMALIZE_METHOD", "robust")
	t.Setenv("NORMALIZE_DEGENERATE_POLICY", "nan")
	t.Setenv("NORMALIZE_QUANTILE_LOW", "10")
	t.Setenv("NORMALIZE_QUANTILE_HIGH", "90")
	t.Setenv("NORMALIZE_EXCLUDED", "id,ts")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "robust", cfg.Method)
	assert.Equal(t, "nan", cfg.DegeneratePolicy)
	assert.Equal(t, 10.0, cfg.QuantileLow)
	assert.Equal(t, 90.0, cfg.QuantileHigh)
	assert.Equal(t, []string{"id", "ts"}, cfg.Excluded)
}

func TestLoadConfigRejectsBadQuantile(t *testing.T) {
	t.Setenv("NORMALIZE_QUANTILE_LOW", "low")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ENVIRONMENT=test\nNORMALIZE_METHOD=standard\n"), 0o600))
	t.Chdir(dir)

	for _, key := range []string{"ENVIRONMENT", "NORMALIZE_METHOD"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "standard", cfg.Method)
}
