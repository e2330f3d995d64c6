package chi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/marcelsud/webhook-console/settings"
	"github.com/marcelsud/webhook-console/webhook"
	"github.com/marcelsud/webhook-console/webhook/management"
)

type settingsResponse struct {
	settings.View
	Mode webhook.Mode `json:"mode"`
}

type connectionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// getSettings handles GET /v1/settings
func getSettings(store *settings.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.View())
	})
}

// putSettings handles PUT /v1/settings, the new values apply to the next call
func putSettings(store *settings.Store, service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var v settings.Values
		if err := decode(r, &v); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
			return
		}
		store.Update(v)
		writeJSON(w, http.StatusOK, settingsResponse{View: store.View(), Mode: service.Mode()})
	})
}

// testConnection handles POST /v1/settings/test
func testConnection(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := service.CheckConnection(r.Context())
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, connectionResponse{Success: true, Message: "Connected to the management API"})
		case errors.Is(err, webhook.ErrNotConfigured):
			writeError(w, err)
		default:
			if apiErr, ok := management.AsAPIError(err); ok && apiErr.IsUnauthorized() {
				writeJSON(w, http.StatusUnauthorized, connectionResponse{Success: false, Message: "The management API rejected the API key"})
				return
			}
			var berr *webhook.BackendError
			msg := err.Error()
			if errors.As(err, &berr) {
				msg = berr.Message()
			}
			writeJSON(w, statusFor(err), connectionResponse{Success: false, Message: msg})
		}
	})
}

// exportSettings handles GET /v1/settings/export
func exportSettings(store *settings.Store, now func() time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="webhook-console-settings.json"`)
		writeJSON(w, http.StatusOK, store.Export(now()))
	})
}

// getContext handles GET /v1/context
func getContext(h HostContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := h.Current()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	})
}
