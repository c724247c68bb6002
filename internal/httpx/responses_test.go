package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSuccess_IncludesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))

	JSONSuccess(w, r, map[string]string{"a": "b"}, map[string]any{"total": 1})

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
		Meta    map[string]any    `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "b", resp.Data["a"])
	assert.Equal(t, "req-1", resp.Meta["request_id"])
	assert.Equal(t, float64(1), resp.Meta["total"])
}

func TestJSONSuccess_NoMeta(t *testing.T) {
	w := httptest.NewRecorder()
	JSONSuccess(w, httptest.NewRequest(http.MethodGet, "/", nil), "x", nil)

	assert.NotContains(t, w.Body.String(), "meta")
}

func TestInternalError_HidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	InternalError(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password authentication")
	assert.Contains(t, w.Body.String(), "Error ID: ")
}

func TestJSONNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	JSONNoContent(w)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, strings.TrimSpace(w.Body.String()))
}
