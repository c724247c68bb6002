package lookup

import (
	"errors"
	"net/http"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	resolver *Resolver
}

func NewHTTPHandler(resolver *Resolver) *HTTPHandler {
	return &HTTPHandler{resolver: resolver}
}

type lookupSuccess struct {
	OK bool `json:"ok"`
	Record
}

type lookupFailure struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Lookup handles GET /isbn-lookup
// @Summary Resolve ISBN metadata
// @Description Fetch title, author, publisher and cover from openBD, backfilled by Google Books
// @Tags lookup
// @Produce json
// @Param isbn query string true "Raw ISBN, separators allowed"
// @Success 200 {object} lookupSuccess
// @Router /isbn-lookup [get]
func (h *HTTPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	rec, err := h.resolver.Resolve(r.Context(), r.URL.Query().Get("isbn"))
	switch {
	case err == nil:
		httpx.JSON(w, http.StatusOK, lookupSuccess{OK: true, Record: rec})
	case errors.Is(err, ErrEmptyISBN), errors.Is(err, ErrNotFound):
		httpx.JSON(w, http.StatusOK, lookupFailure{OK: false, Error: err.Error()})
	default:
		httpx.InternalError(w, r, err)
	}
}
