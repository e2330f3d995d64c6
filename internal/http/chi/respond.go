package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marcelsud/webhook-console/host"
	"github.com/marcelsud/webhook-console/webhook"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// statusFor maps the domain error taxonomy to HTTP status codes
func statusFor(err error) int {
	var verr *webhook.ValidationError
	var perr *webhook.PreconditionError
	var berr *webhook.BackendError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, webhook.ErrNotFound), errors.Is(err, host.ErrUnavailable):
		return http.StatusNotFound
	case errors.As(err, &perr), errors.Is(err, webhook.ErrTestInProgress), errors.Is(err, webhook.ErrNotConfigured):
		return http.StatusConflict
	case errors.As(err, &berr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}

	var verr *webhook.ValidationError
	var berr *webhook.BackendError
	var perr *webhook.PreconditionError
	switch {
	case errors.As(err, &verr):
		resp.Error = "Validation failed"
		resp.Errors = verr.Errors
	case errors.As(err, &perr):
		resp.Error = perr.Error()
	case errors.Is(err, webhook.ErrNotFound):
		resp.Error = webhook.ErrNotFound.Error()
	case errors.As(err, &berr):
		resp.Error = berr.Message()
	}

	writeJSON(w, statusFor(err), resp)
}

// decode reads a JSON body into v
func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
