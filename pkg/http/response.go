package http

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
)

// MsgResponse is the uniform body for errors and message-only successes.
type MsgResponse struct {
	Msg string `json:"msg"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError converts any error into the uniform {"msg": ...} body. Internal
// causes are never leaked; unknown error types collapse to a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	appErr := apperrors.AsAppError(err)

	msg := appErr.Message
	if appErr.Code == apperrors.CodeInternal {
		msg = "Server error"
	}

	WriteJSON(w, appErr.StatusCode(), MsgResponse{Msg: msg})
}

// WriteSuccess echoes the record(s) directly, matching the public API
// contract.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

func WriteMsg(w http.ResponseWriter, statusCode int, msg string) {
	WriteJSON(w, statusCode, MsgResponse{Msg: msg})
}
