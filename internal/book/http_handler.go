package book

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// List handles GET /books
// @Summary List library entries
// @Description List the caller's books, newest first
// @Tags books
// @Produce json
// @Security Bearer
// @Param q query string false "Title contains (case-insensitive)"
// @Param limit query int false "Page size" default(20)
// @Param cursor query string false "Cursor from meta.next_cursor"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()

	limit, _ := strconv.Atoi(query.Get("limit"))
	after, err := DecodeCursor(query.Get("cursor"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_CURSOR", "Invalid cursor", nil)
		return
	}

	entries, next, err := h.svc.List(r.Context(), Query{
		UserID: userID,
		Q:      query.Get("q"),
		Limit:  limit,
		After:  after,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCursor) {
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_CURSOR", "Invalid cursor", nil)
			return
		}
		httpx.InternalError(w, r, err)
		return
	}

	meta := map[string]any{"count": len(entries)}
	if next != "" {
		meta["next_cursor"] = next
	}
	httpx.JSONSuccess(w, r, entries, meta)
}

type addReq struct {
	ISBN      string  `json:"isbn" validate:"required,max=32"`
	Title     string  `json:"title" validate:"required,max=255"`
	Author    string  `json:"author" validate:"max=255"`
	Publisher string  `json:"publisher" validate:"max=255"`
	CoverURL  string  `json:"cover_url" validate:"omitempty,url,max=2048"`
	Memo      string  `json:"memo" validate:"max=2000"`
	ShelfID   *string `json:"shelf_id"`
}

// Add handles POST /books
// @Summary Add a book to the library
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body addReq true "Book"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req addReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	in := trimAdd(AddInput(req))

	if validationErrors := httpx.ValidateStruct(addReq(in)); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	ub, err := h.svc.Add(r.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidISBN):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				[]httpx.ErrorDetail{{Field: "isbn", Message: err.Error()}})
		case errors.Is(err, ErrAlreadyInLibrary):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "This book is already in your library", nil)
		default:
			httpx.InternalError(w, r, err)
		}
		return
	}

	httpx.JSONCreated(w, r, ub)
}

// Get handles GET /books/{id}
// @Summary Get a library entry
// @Tags books
// @Produce json
// @Security Bearer
// @Param id path string true "Entry ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	ub, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeEntryError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, ub, nil)
}

type editReq struct {
	ShelfID *string `json:"shelf_id"`
	Memo    string  `json:"memo" validate:"max=2000"`
}

// Edit handles PATCH /books/{id}
// @Summary Move an entry to a shelf and update its memo
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Entry ID"
// @Param request body editReq true "Changes"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [patch]
func (h *HTTPHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req editReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	ub, err := h.svc.Edit(r.Context(), userID, chi.URLParam(r, "id"), EditInput(req))
	if err != nil {
		h.writeEntryError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, ub, nil)
}

// Delete handles DELETE /books/{id}
// @Summary Remove an entry from the library
// @Tags books
// @Security Bearer
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writeEntryError(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

func (h *HTTPHandler) writeEntryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, ErrInvalidShelf):
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_SHELF", "Shelf not found", nil)
	default:
		httpx.InternalError(w, r, err)
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return "", false
	}
	return userID, true
}
