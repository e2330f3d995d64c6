package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		c, err := load(viper.New(), t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", c.Port)
		assert.Equal(t, "https://manage.kontent.ai", c.ManagementBaseURL)
		assert.Equal(t, 30*time.Second, c.ProbeTimeout)
		assert.Equal(t, 30*time.Second, c.ManagementTimeout)
		assert.Equal(t, 500*time.Millisecond, c.SimulatedLatency)
		assert.Equal(t, "host.yaml", c.HostContextFile)
		assert.Empty(t, c.ManagementAPIKey)
	})

	t.Run("file values", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(`
PORT = "9090"
MANAGEMENT_API_KEY = "key"
ENVIRONMENT_ID = "env-1"
PROBE_TIMEOUT = "5s"
SIMULATED_LATENCY = "0s"
`), 0o600))

		c, err := load(viper.New(), dir)
		require.NoError(t, err)
		assert.Equal(t, "9090", c.Port)
		assert.Equal(t, "key", c.ManagementAPIKey)
		assert.Equal(t, "env-1", c.EnvironmentID)
		assert.Equal(t, 5*time.Second, c.ProbeTimeout)
		assert.Zero(t, c.SimulatedLatency)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("ENVIRONMENT_ID", "env-from-env")
		c, err := load(viper.New(), t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "env-from-env", c.EnvironmentID)
	})

	t.Run("error - invalid timeout", func(t *testing.T) {
		t.Setenv("PROBE_TIMEOUT", "0s")
		_, err := load(viper.New(), t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PROBE_TIMEOUT")
	})

	t.Run("error - malformed file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT = \n"), 0o600))
		_, err := load(viper.New(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})
}
