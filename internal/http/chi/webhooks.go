package chi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marcelsud/webhook-console/webhook"
)

/* HTTP layer DTOs for the console API
 * Webhook and TestResult are sent as-is, they are already the UI's shape
 */

// listResponse carries the set and, when a refresh failed, why it may be stale
type listResponse struct {
	Webhooks []webhook.Webhook `json:"webhooks"`
	Mode     webhook.Mode      `json:"mode"`
	Warning  string            `json:"warning,omitempty"`
}

// testResponse is returned when the probe engine itself failed
type testResponse struct {
	Error  string             `json:"error"`
	Result webhook.TestResult `json:"result"`
}

type modeResponse struct {
	Mode        webhook.Mode `json:"mode"`
	Description string       `json:"description"`
}

// listWebhooks handles GET /v1/webhooks
func listWebhooks(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhooks, err := service.List(r.Context())
		resp := listResponse{Webhooks: webhooks, Mode: service.Mode()}
		if resp.Webhooks == nil {
			resp.Webhooks = []webhook.Webhook{}
		}
		if err != nil {
			var berr *webhook.BackendError
			if !errors.As(err, &berr) {
				writeError(w, err)
				return
			}
			resp.Warning = berr.Message()
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

// getWebhook handles GET /v1/webhooks/{id}
func getWebhook(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wh, err := service.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wh)
	})
}

// postWebhook handles POST /v1/webhooks
func postWebhook(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var form webhook.FormData
		if err := decode(r, &form); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
			return
		}
		wh, err := service.Create(r.Context(), form)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, wh)
	})
}

// putWebhook handles PUT /v1/webhooks/{id}
func putWebhook(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var form webhook.FormData
		if err := decode(r, &form); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
			return
		}
		wh, err := service.Update(r.Context(), chi.URLParam(r, "id"), form)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wh)
	})
}

// deleteWebhook handles DELETE /v1/webhooks/{id}
func deleteWebhook(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

/* testWebhook handles POST /v1/webhooks/{id}/test
 * A failed delivery is a 200 with success=false; a 500 means the engine broke,
 * the recorded result is still returned
 */
func testWebhook(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.Test(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if result.ID != "" {
				writeJSON(w, http.StatusInternalServerError, testResponse{Error: err.Error(), Result: result})
				return
			}
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}

// getResults handles GET /v1/webhooks/{id}/results and GET /v1/test-results
func getResults(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id != "" {
			if _, err := service.Get(id); err != nil {
				writeError(w, err)
				return
			}
		}
		writeJSON(w, http.StatusOK, service.TestResults(id))
	})
}

// getStats handles GET /v1/stats
func getStats(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Stats())
	})
}

// getMode handles GET /v1/mode
func getMode(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mode := service.Mode()
		writeJSON(w, http.StatusOK, modeResponse{Mode: mode, Description: mode.Description()})
	})
}

// getTriggers handles GET /v1/triggers
func getTriggers() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, webhook.Catalog())
	})
}
