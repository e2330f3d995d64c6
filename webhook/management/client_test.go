package management_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/webhook-console/webhook"
	"github.com/marcelsud/webhook-console/webhook/management"
)

// newTestServer serves handler and returns a client pointed at it
func newTestServer(t *testing.T, handler http.HandlerFunc) *management.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return management.NewClient("test-key", "env-1", management.WithBaseURL(srv.URL))
}

func TestClient_List(t *testing.T) {
	t.Run("success - maps wire records", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v2/projects/env-1/webhooks", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{
				"id": "wh-1",
				"name": "Orders",
				"url": "https://example.com/hook",
				"enabled": true,
				"triggers": [{"codename": "asset_created", "enabled": true}, {"codename": "custom_event", "enabled": false}],
				"headers": [{"key": "X-Token", "value": "abc"}],
				"created": "2026-01-02T03:04:05Z",
				"last_modified": "2026-01-03T03:04:05Z"
			}]`))
		})

		webhooks, err := client.List(context.Background())
		require.NoError(t, err)
		require.Len(t, webhooks, 1)

		wh := webhooks[0]
		assert.Equal(t, "wh-1", wh.ID)
		assert.Equal(t, "Orders", wh.Name)
		assert.Equal(t, "env-1", wh.EnvironmentID)
		assert.True(t, wh.IsActive)
		assert.Equal(t, map[string]string{"X-Token": "abc"}, wh.Headers)
		assert.Equal(t, []string{"asset_created", "custom_event"}, wh.Codenames())
		assert.Equal(t, "Asset Created", wh.Triggers[0].Name)
		assert.Equal(t, "custom_event", wh.Triggers[1].Name)
		assert.False(t, wh.Triggers[1].IsEnabled)
		assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), wh.CreatedAt)
		assert.Equal(t, time.Date(2026, 1, 3, 3, 4, 5, 0, time.UTC), wh.UpdatedAt)
		assert.Nil(t, wh.LastTriggered)
		assert.Zero(t, wh.DeliveryAttempts)
	})

	t.Run("error - validation errors are flattened", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{
				"request_id": "req-9",
				"error_code": 5,
				"message": "The provided request body is invalid.",
				"validation_errors": [
					{"message": "Name is required", "path": "name"},
					{"message": "Url is not valid"}
				]
			}`))
		})

		_, err := client.List(context.Background())
		require.Error(t, err)

		apiErr, ok := management.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, 5, apiErr.ErrorCode)
		assert.Equal(t, "req-9", apiErr.RequestID)
		assert.Len(t, apiErr.ValidationErrors, 2)
		assert.Equal(t, "The provided request body is invalid. (name: Name is required; Url is not valid)", apiErr.Error())
		assert.Contains(t, err.Error(), "listing webhooks")
	})

	t.Run("error - empty body falls back to status text", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.List(context.Background())
		apiErr, ok := management.AsAPIError(err)
		require.True(t, ok)
		assert.True(t, apiErr.IsUnauthorized())
		assert.Equal(t, "management API returned 401 Unauthorized", apiErr.Message)
		assert.NotErrorIs(t, err, webhook.ErrNotFound)
	})

	t.Run("error - plain text body is kept", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream unavailable"))
		})

		_, err := client.List(context.Background())
		apiErr, ok := management.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, "upstream unavailable", apiErr.Message)
	})

	t.Run("error - transport failure is not an APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := management.NewClient("k", "env-1", management.WithBaseURL(srv.URL))

		_, err := client.List(context.Background())
		require.Error(t, err)
		_, ok := management.AsAPIError(err)
		assert.False(t, ok)
	})
}

func TestClient_Create(t *testing.T) {
	var sent map[string]any
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/projects/env-1/webhooks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": "server-id",
			"name": "Orders",
			"url": "https://example.com/hook",
			"secret": "s3cr3t",
			"enabled": true,
			"triggers": [{"codename": "asset_created", "enabled": true}],
			"headers": [],
			"created": "2026-01-02T03:04:05Z"
		}`))
	})

	wh := webhook.Webhook{
		Name:     "Orders",
		URL:      "https://example.com/hook",
		Secret:   "s3cr3t",
		IsActive: true,
		Triggers: webhook.TriggersFor([]string{"asset_created"}),
		Headers:  map[string]string{"B": "2", "A": "1"},
	}
	created, err := client.Create(context.Background(), wh)
	require.NoError(t, err)

	t.Run("success - adopts server id and timestamps", func(t *testing.T) {
		assert.Equal(t, "server-id", created.ID)
		assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), created.CreatedAt)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
		assert.Equal(t, "s3cr3t", created.Secret)
	})

	t.Run("success - request body uses wire format", func(t *testing.T) {
		assert.Equal(t, "Orders", sent["name"])
		assert.Equal(t, true, sent["enabled"])
		assert.NotContains(t, sent, "id")
		assert.Equal(t, []any{map[string]any{"codename": "asset_created", "enabled": true}}, sent["triggers"])
		assert.Equal(t, []any{
			map[string]any{"key": "A", "value": "1"},
			map[string]any{"key": "B", "value": "2"},
		}, sent["headers"])
	})
}

func TestClient_Update(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v2/projects/env-1/webhooks/wh-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": "wh-1", "name": "Renamed", "url": "https://example.com", "enabled": false, "triggers": [], "headers": []}`))
	})

	updated, err := client.Update(context.Background(), webhook.Webhook{ID: "wh-1", Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.False(t, updated.IsActive)
}

func TestClient_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/v2/projects/env-1/webhooks/wh-1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, client.Delete(context.Background(), "wh-1"))
	})

	t.Run("error - not found", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "The requested webhook was not found."}`))
		})

		err := client.Delete(context.Background(), "missing")
		var apiErr *management.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.True(t, apiErr.IsNotFound())
		assert.Equal(t, "The requested webhook was not found.", apiErr.Message)
		assert.ErrorIs(t, err, webhook.ErrNotFound)
	})
}

func TestFactory(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	backend := management.Factory(management.WithBaseURL(srv.URL))("other-key", "env-2")
	webhooks, err := backend.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, webhooks)
	assert.Equal(t, "Bearer other-key", auth)
}
