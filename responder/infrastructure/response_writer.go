package infrastructure

import (
	"net/http"

	"github.com/goccy/go-json"

	responderDomain "github.com/samoilenko/ebers_doubles/responder/domain"
)

// Error codes of transport-level failures. Injected failures use the codes of the failure table.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(responderDomain.NewErrorResponse(CodeInternal, "Internal Server Error: "+err.Error()))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, responderDomain.NewErrorResponse(code, message))
}
