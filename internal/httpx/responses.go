package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Meta    any  `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    any               `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func buildMeta(r *http.Request, customMeta map[string]any) map[string]any {
	requestID := RequestIDFrom(r)
	if requestID == "" && len(customMeta) == 0 {
		return nil
	}
	meta := make(map[string]any, len(customMeta)+1)
	for k, v := range customMeta {
		meta[k] = v
	}
	if requestID != "" {
		meta["request_id"] = requestID
	}
	return meta
}

// JSON writes v as-is with the given status. Handlers whose clients expect a bare
// document (not the success envelope) use it directly.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("cannot encode response body: " + err.Error())
	}
}

func JSONSuccess(w http.ResponseWriter, r *http.Request, data any, meta map[string]any) {
	resp := SuccessResponse{Success: true, Data: data}
	if m := buildMeta(r, meta); m != nil {
		resp.Meta = m
	}
	JSON(w, http.StatusOK, resp)
}

func JSONCreated(w http.ResponseWriter, r *http.Request, data any) {
	resp := SuccessResponse{Success: true, Data: data}
	if m := buildMeta(r, nil); m != nil {
		resp.Meta = m
	}
	JSON(w, http.StatusCreated, resp)
}

func JSONNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, code string, message string, details []ErrorDetail) {
	resp := ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	if m := buildMeta(r, nil); m != nil {
		resp.Meta = m
	}
	JSON(w, statusCode, resp)
}

// InternalError logs err under a fresh error ID and answers 500 with that ID, so a
// user report can be matched to the log line without leaking internals.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	errID := uuid.NewString()
	slog.ErrorContext(r.Context(), err.Error(),
		slog.String("err_id", errID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
	JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR",
		"Internal server error. Error ID: "+errID, nil)
}
