package host_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/webhook-console/host"
	"github.com/marcelsud/webhook-console/settings"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "host.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		path := writeFile(t, `
environment_id: env-1
user_id: u-1
user_email: dev@example.com
user_roles:
  - id: r-1
    codename: project-manager
app_config:
  theme: dark
`)
		c, err := host.NewFileProvider(path).Context(ctx)
		require.NoError(t, err)
		assert.Equal(t, "env-1", c.EnvironmentID)
		assert.Equal(t, "dev@example.com", c.UserEmail)
		require.Len(t, c.UserRoles, 1)
		assert.Equal(t, "project-manager", c.UserRoles[0].Codename)
		assert.Equal(t, "dark", c.AppConfig["theme"])
	})

	t.Run("error - missing file is unavailable", func(t *testing.T) {
		_, err := host.NewFileProvider(filepath.Join(t.TempDir(), "nope.yaml")).Context(ctx)
		assert.ErrorIs(t, err, host.ErrUnavailable)
	})

	t.Run("error - no environment id is unavailable", func(t *testing.T) {
		_, err := host.NewFileProvider(writeFile(t, "user_id: u-1\n")).Context(ctx)
		assert.ErrorIs(t, err, host.ErrUnavailable)
	})

	t.Run("error - invalid yaml", func(t *testing.T) {
		_, err := host.NewFileProvider(writeFile(t, "environment_id: [\n")).Context(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing host context YAML")
	})
}

func TestStaticProvider(t *testing.T) {
	_, err := host.StaticProvider{}.Context(context.Background())
	assert.ErrorIs(t, err, host.ErrUnavailable)

	c, err := host.StaticProvider{C: host.Context{EnvironmentID: "env"}}.Context(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env", c.EnvironmentID)
}

func TestLoader(t *testing.T) {
	t.Run("fills an empty environment id", func(t *testing.T) {
		store := settings.NewStore(settings.Values{APIKey: "key"})
		l := host.NewLoader(host.StaticProvider{C: host.Context{EnvironmentID: "env-host"}}, store, zerolog.Nop())

		_, err := l.Current()
		assert.ErrorIs(t, err, host.ErrUnavailable)

		l.Start(context.Background(), time.Second)
		<-l.Done()

		c, err := l.Current()
		require.NoError(t, err)
		assert.Equal(t, "env-host", c.EnvironmentID)
		assert.Equal(t, "env-host", store.EnvironmentID())
	})

	t.Run("keeps a configured environment id", func(t *testing.T) {
		store := settings.NewStore(settings.Values{EnvironmentID: "env-config"})
		l := host.NewLoader(host.StaticProvider{C: host.Context{EnvironmentID: "env-host"}}, store, zerolog.Nop())
		l.Start(context.Background(), time.Second)
		<-l.Done()

		assert.Equal(t, "env-config", store.EnvironmentID())
	})

	t.Run("failure leaves no environment id", func(t *testing.T) {
		store := settings.NewStore(settings.Values{})
		l := host.NewLoader(host.StaticProvider{}, store, zerolog.Nop())
		l.Start(context.Background(), time.Second)
		<-l.Done()

		_, err := l.Current()
		assert.ErrorIs(t, err, host.ErrUnavailable)
		assert.Empty(t, store.EnvironmentID())
	})
}
