package user

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/redmonkez12/bookmarks-api/internal/httputil"
	"github.com/redmonkez12/bookmarks-api/internal/logging"
)

// Handler contains HTTP handlers for the user profile endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Password, validation.Length(1, 0)),
		validation.Field(&r.FirstName, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Length(1, 200)),
	)
}

// GetProfile returns the authenticated user's profile
// @Summary      Get profile
// @Description  Return the authenticated user's public profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} PublicUser
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /user/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	current, ok := FromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	httputil.RespondJSON(w, current.Public(), http.StatusOK)
}

// UpdateProfile applies a partial update to the authenticated user's profile
// @Summary      Update profile
// @Description  Patch the authenticated user's profile fields
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateProfileRequest true "Fields to update"
// @Success      200 {object} httputil.MessageResponse
// @Failure      400 {object} httputil.ErrorResponse "Validation error or user not found"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /user/profile [patch]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	current, ok := FromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid profile update body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		logger.Warn("profile update failed: validation error", "error", err.Error())
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			httputil.RespondFieldErrors(w, fieldErrs)
			return
		}
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	err := h.service.UpdateProfile(r.Context(), current.ID, ProfilePatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// a stale identity is a bad request, not a missing resource
			httputil.RespondErrorWithCode(w, "User not found", httputil.CodeNotFound, http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrDuplicateEmail) {
			httputil.RespondErrorWithCode(w, "Email already in use", httputil.CodeEmailInUse, http.StatusConflict)
			return
		}
		logger.Error("profile update failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to update user", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondMessage(w, "User updated", http.StatusOK)
}
