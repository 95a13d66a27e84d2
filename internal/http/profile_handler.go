package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/parknow/internal/application"
)

type profileService interface {
	GetProfile(ctx context.Context, identity application.Identity) (application.Profile, error)
	Rename(ctx context.Context, identity application.Identity, newName string) error
	SetProfileImage(ctx context.Context, identity application.Identity, imageRef string) error
}

type ProfileHandler struct {
	service   profileService
	responder responder
	logger    *slog.Logger
}

func NewProfileHandler(service profileService, logger *slog.Logger) *ProfileHandler {
	base := defaultLogger(logger)
	return &ProfileHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ProfileHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ProfileHandler", operation, attrs...)
}

// Get returns the profile of the authenticated user.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), identity)
	if err != nil {
		h.log(r.Context(), "Get", "user_id", identity.UserID).ErrorContext(r.Context(), "failed to load profile", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toProfileDTO(profile))
}

// Rename updates the display name of the authenticated user.
func (h *ProfileHandler) Rename(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Rename", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode rename request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Rename", "user_id", identity.UserID)

	if err := h.service.Rename(r.Context(), identity, req.Name); err != nil {
		logger.ErrorContext(r.Context(), "failed to rename user", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "user renamed")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// SetImage updates the profile image reference of the authenticated user.
func (h *ProfileHandler) SetImage(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	var req profileImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "SetImage", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode profile image request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "SetImage", "user_id", identity.UserID)

	if err := h.service.SetProfileImage(r.Context(), identity, req.Image); err != nil {
		logger.ErrorContext(r.Context(), "failed to update profile image", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "profile image updated")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

type profileDTO struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Image  string `json:"image,omitempty"`
}

type renameRequest struct {
	Name string `json:"name"`
}

type profileImageRequest struct {
	Image string `json:"image"`
}

func toProfileDTO(profile application.Profile) profileDTO {
	return profileDTO{
		UserID: profile.UserID,
		Name:   profile.Name,
		Email:  profile.Email,
		Image:  profile.ProfileImage,
	}
}
