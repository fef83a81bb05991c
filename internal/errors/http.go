package errors

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorBody is the JSON shape written for failed requests
type errorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// HTTPStatus returns the HTTP status for an error. Foreign errors map to
// 500 so internal details never leak a misleading status.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return CodeOf(err).HTTPStatus()
}

// WriteHTTP writes err as a JSON error response. Internal causes are logged
// but only the structured code and message reach the client.
func WriteHTTP(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	body := errorBody{
		Code:    CodeInternal.String(),
		Message: "internal error",
	}

	var e *Error
	if As(err, &e) {
		body.Code = e.Code.String()
		body.Message = e.Message
		body.Meta = e.Meta
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
		// Do not echo internal causes back to the client
		body.Message = "internal error"
		body.Meta = nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
