package handler

import (
	"encoding/json"
	"net/http"

	"fsanano/store-api/internal/errs"

	"github.com/rs/zerolog"
)

// envelope is the body of every API response.
type envelope struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Count      *int   `json:"count,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	SalesCount *int   `json:"sales_count,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func ok(w http.ResponseWriter, r *http.Request, status int, data any, message string) {
	writeJSON(w, r, status, envelope{Success: true, Data: data, Message: message})
}

func okList[T any](w http.ResponseWriter, r *http.Request, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: items, Count: &n})
}

// fail writes the failure envelope for err. Classified errors carry their own
// status and message; anything else is a storage failure reported under
// summary with the raw error as detail.
func fail(w http.ResponseWriter, r *http.Request, err error, summary string) {
	if e, isErr := errs.As(err); isErr {
		writeJSON(w, r, e.Status, envelope{Error: e.Message, SalesCount: e.SalesCount})
		return
	}

	zerolog.Ctx(r.Context()).Error().Err(err).Msg(summary)
	writeJSON(w, r, http.StatusInternalServerError, envelope{Error: summary, Message: err.Error()})
}
