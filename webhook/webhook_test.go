package webhook_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/webhook-console/webhook"
)

func TestTriggers(t *testing.T) {
	t.Run("catalog has the platform triggers", func(t *testing.T) {
		catalog := webhook.Catalog()
		assert.Len(t, catalog, 9)
		for _, tr := range catalog {
			assert.Equal(t, tr.Codename, tr.ID)
			assert.True(t, tr.IsEnabled)
			assert.NotEmpty(t, tr.Name)
		}
	})

	t.Run("catalog is a copy", func(t *testing.T) {
		webhook.Catalog()[0].Name = "changed"
		assert.NotEqual(t, "changed", webhook.Catalog()[0].Name)
	})

	t.Run("unknown codename keeps the codename as name", func(t *testing.T) {
		tr := webhook.NewTrigger("custom", false)
		assert.Equal(t, "custom", tr.Name)
		assert.False(t, tr.IsEnabled)
	})

	t.Run("TriggersFor drops duplicates in order", func(t *testing.T) {
		triggers := webhook.TriggersFor([]string{"asset_deleted", "asset_created", "asset_deleted"})
		require.Len(t, triggers, 2)
		assert.Equal(t, "asset_deleted", triggers[0].Codename)
		assert.Equal(t, "Asset Created", triggers[1].Name)
	})
}

func TestWebhook_Clone(t *testing.T) {
	now := time.Now()
	wh := webhook.Webhook{
		ID:            "a",
		Headers:       map[string]string{"A": "1"},
		Triggers:      webhook.TriggersFor([]string{"asset_created"}),
		LastTriggered: &now,
	}
	c := wh.Clone()
	c.Headers["A"] = "2"
	c.Triggers[0].Name = "changed"
	*c.LastTriggered = now.Add(time.Hour)

	assert.Equal(t, "1", wh.Headers["A"])
	assert.Equal(t, "Asset Created", wh.Triggers[0].Name)
	assert.Equal(t, now, *wh.LastTriggered)
}

func TestMode_String(t *testing.T) {
	for _, m := range []webhook.Mode{webhook.ModeAPI, webhook.ModeFallback, webhook.ModeUnknown} {
		assert.NotEmpty(t, m.String())
		assert.NoError(t, m.Validate())
		assert.NotEmpty(t, m.Description())
	}
	assert.Error(t, webhook.Mode(99).Validate())

	out, err := json.Marshal(map[string]webhook.Mode{"mode": webhook.ModeFallback})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"fallback"}`, string(out))
}

func TestProbeResult_JSON(t *testing.T) {
	t.Run("success omits the diagnosis", func(t *testing.T) {
		out, err := json.Marshal(webhook.ProbeResult{Success: true, StatusCode: 200})
		require.NoError(t, err)
		assert.NotContains(t, string(out), "failurePoint")
		assert.NotContains(t, string(out), "failureDetails")
		assert.NotContains(t, string(out), "troubleshooting")
	})

	t.Run("failure points validate", func(t *testing.T) {
		for _, fp := range webhook.FailurePoints {
			assert.NoError(t, fp.Validate())
		}
		assert.Error(t, webhook.FailurePoint("bogus").Validate())
	})
}
