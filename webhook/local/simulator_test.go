package local_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/webhook-console/webhook"
	"github.com/marcelsud/webhook-console/webhook/local"
)

func TestSimulator(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	sim := local.NewSimulator(local.WithLatency(0), local.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	t.Run("create assigns uuid and timestamps", func(t *testing.T) {
		created, err := sim.Create(ctx, webhook.Webhook{Name: "T1", Headers: map[string]string{"A": "1"}})
		require.NoError(t, err)

		_, err = uuid.Parse(created.ID)
		assert.NoError(t, err)
		assert.Equal(t, now, created.CreatedAt)
		assert.Equal(t, now, created.UpdatedAt)
		assert.Equal(t, "T1", created.Name)
	})

	t.Run("create ids are unique", func(t *testing.T) {
		a, err := sim.Create(ctx, webhook.Webhook{})
		require.NoError(t, err)
		b, err := sim.Create(ctx, webhook.Webhook{})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("update stamps UpdatedAt only", func(t *testing.T) {
		created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		updated, err := sim.Update(ctx, webhook.Webhook{ID: "x", CreatedAt: created})
		require.NoError(t, err)
		assert.Equal(t, "x", updated.ID)
		assert.Equal(t, created, updated.CreatedAt)
		assert.Equal(t, now, updated.UpdatedAt)
	})

	t.Run("list holds nothing", func(t *testing.T) {
		webhooks, err := sim.List(ctx)
		require.NoError(t, err)
		assert.Nil(t, webhooks)
	})

	t.Run("delete succeeds", func(t *testing.T) {
		assert.NoError(t, sim.Delete(ctx, "anything"))
	})
}

func TestSimulator_Latency(t *testing.T) {
	t.Run("waits for the configured latency", func(t *testing.T) {
		sim := local.NewSimulator(local.WithLatency(20 * time.Millisecond))
		started := time.Now()
		require.NoError(t, sim.Delete(context.Background(), "x"))
		assert.GreaterOrEqual(t, time.Since(started), 20*time.Millisecond)
	})

	t.Run("error - cancelled context interrupts the wait", func(t *testing.T) {
		sim := local.NewSimulator(local.WithLatency(time.Hour))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sim.Create(ctx, webhook.Webhook{})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
