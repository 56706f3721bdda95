// Package response holds the JSON reply helpers shared by the v1 handlers.
package response

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/you-humble/bike-configurator/platform/logger"
)

type errorBody struct {
	Error string `json:"error"`
}

type errorsBody struct {
	Errors []string `json:"errors"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(context.Background(), "encode response", logger.ErrorF(err))
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Error: message})
}

func Errors(w http.ResponseWriter, status int, messages []string) {
	JSON(w, status, errorsBody{Errors: messages})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
