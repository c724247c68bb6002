package shelf

import (
	"errors"
	"net/http"
	"strings"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /shelves
// @Summary List shelves
// @Description List the caller's shelves ordered by name
// @Tags shelves
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /shelves [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	shelves, err := h.service.List(r.Context(), userID)
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, shelves, map[string]any{"total": len(shelves)})
}

type createReq struct {
	Name string `json:"name" validate:"required,shelf_name"`
}

// Create handles POST /shelves
// @Summary Create shelf
// @Tags shelves
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body createReq true "Shelf"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /shelves [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req createReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	sh, err := h.service.Create(r.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "A shelf with this name already exists", nil)
			return
		}
		httpx.InternalError(w, r, err)
		return
	}

	httpx.JSONCreated(w, r, sh)
}
