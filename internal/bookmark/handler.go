package bookmark

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/redmonkez12/bookmarks-api/internal/httputil"
	"github.com/redmonkez12/bookmarks-api/internal/logging"
	"github.com/redmonkez12/bookmarks-api/internal/user"
)

// Handler contains HTTP handlers for the bookmark endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AddBookmarkRequest represents the bookmark creation body
type AddBookmarkRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Link        string  `json:"link"`
}

func (r AddBookmarkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Link, validation.Required, is.URL),
	)
}

// UpdateBookmarkRequest represents a partial bookmark update
type UpdateBookmarkRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

func (r UpdateBookmarkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 0)),
		validation.Field(&r.Link, is.URL),
	)
}

// List returns the authenticated user's bookmarks
// @Summary      List bookmarks
// @Description  Return all bookmarks owned by the authenticated user
// @Tags         bookmark
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Bookmark
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /bookmark [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	current, ok := user.FromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	bookmarks, err := h.service.List(r.Context(), current.ID)
	if err != nil {
		logger.Error("failed to list bookmarks", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list bookmarks", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, bookmarks, http.StatusOK)
}

// Get returns a bookmark by id
// @Summary      Get bookmark
// @Description  Return a bookmark by its id
// @Tags         bookmark
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bookmark id"
// @Success      200 {object} Bookmark
// @Failure      400 {object} httputil.ErrorResponse "Bookmark not found"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /bookmark/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondNotFound(w)
			return
		}
		logger.Error("failed to get bookmark", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to get bookmark", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, b, http.StatusOK)
}

// Add creates a bookmark owned by the authenticated user
// @Summary      Add bookmark
// @Description  Create a bookmark owned by the authenticated user
// @Tags         bookmark
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddBookmarkRequest true "Bookmark fields"
// @Success      201 {object} Bookmark
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /bookmark [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	current, ok := user.FromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req AddBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid bookmark body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		logger.Warn("bookmark creation failed: validation error", "error", err.Error())
		respondValidationError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), current.ID, CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		logger.Error("failed to create bookmark", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to create bookmark", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, created, http.StatusCreated)
}

// Update applies a partial update to a bookmark
// @Summary      Update bookmark
// @Description  Patch a bookmark's title, description or link
// @Tags         bookmark
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bookmark id"
// @Param        request body UpdateBookmarkRequest true "Fields to update"
// @Success      200 {object} httputil.MessageResponse
// @Failure      400 {object} httputil.ErrorResponse "Validation error or bookmark not found"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /bookmark/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid bookmark body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		logger.Warn("bookmark update failed: validation error", "error", err.Error())
		respondValidationError(w, err)
		return
	}

	err := h.service.Update(r.Context(), id, Patch{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondNotFound(w)
			return
		}
		logger.Error("failed to update bookmark", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to update bookmark", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondMessage(w, "Bookmark updated", http.StatusOK)
}

// Delete removes a bookmark
// @Summary      Delete bookmark
// @Description  Delete a bookmark by its id
// @Tags         bookmark
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bookmark id"
// @Success      200 {object} httputil.MessageResponse
// @Failure      400 {object} httputil.ErrorResponse "Bookmark not found"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /bookmark/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respondNotFound(w)
			return
		}
		logger.Error("failed to delete bookmark", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to delete bookmark", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondMessage(w, "Bookmark deleted", http.StatusOK)
}

// parseID reads the {id} route parameter; a non-integer id is a client error
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid bookmark id", httputil.CodeValidationFailed, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// respondNotFound reports a missing bookmark as a 400
func respondNotFound(w http.ResponseWriter) {
	httputil.RespondErrorWithCode(w, "Bookmark not found", httputil.CodeNotFound, http.StatusBadRequest)
}

// respondValidationError renders ozzo field errors as a field -> message object
func respondValidationError(w http.ResponseWriter, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		httputil.RespondFieldErrors(w, fieldErrs)
		return
	}
	httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeValidationFailed, http.StatusBadRequest)
}
