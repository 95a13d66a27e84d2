package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/example/parknow/internal/application"
)

type favoriteService interface {
	Add(ctx context.Context, identity application.Identity, spotName string) error
	Remove(ctx context.Context, identity application.Identity, spotName string) error
	Toggle(ctx context.Context, identity application.Identity, spotName string) (bool, error)
	List(ctx context.Context, identity application.Identity) ([]string, error)
}

type FavoriteHandler struct {
	service   favoriteService
	responder responder
	logger    *slog.Logger
}

func NewFavoriteHandler(service favoriteService, logger *slog.Logger) *FavoriteHandler {
	base := defaultLogger(logger)
	return &FavoriteHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *FavoriteHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "FavoriteHandler", operation, attrs...)
}

// List returns the names of the authenticated user's favorite spots.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	names, err := h.service.List(r.Context(), identity)
	if err != nil {
		h.log(r.Context(), "List", "user_id", identity.UserID).ErrorContext(r.Context(), "failed to list favorites", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	if names == nil {
		names = []string{}
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, favoritesDTO{Spots: names})
}

// Add marks a spot as favorite for the authenticated user.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	name, ok := SpotNameFromContext(r.Context())
	if !ok || name == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidSpotName)
		return
	}

	logger := h.log(r.Context(), "Add", "user_id", identity.UserID, "spot", name)

	if err := h.service.Add(r.Context(), identity, name); err != nil {
		logger.ErrorContext(r.Context(), "failed to add favorite", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "favorite added")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Remove unmarks a favorite spot for the authenticated user.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	name, ok := SpotNameFromContext(r.Context())
	if !ok || name == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidSpotName)
		return
	}

	logger := h.log(r.Context(), "Remove", "user_id", identity.UserID, "spot", name)

	if err := h.service.Remove(r.Context(), identity, name); err != nil {
		logger.ErrorContext(r.Context(), "failed to remove favorite", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "favorite removed")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Toggle flips the favorite state of a spot and reports the new state,
// mirroring the star button on the spot detail screen.
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	name, ok := SpotNameFromContext(r.Context())
	if !ok || name == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidSpotName)
		return
	}

	logger := h.log(r.Context(), "Toggle", "user_id", identity.UserID, "spot", name)

	favorited, err := h.service.Toggle(r.Context(), identity, name)
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to toggle favorite", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("favorited", favorited).InfoContext(r.Context(), "favorite toggled")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, favoriteStateDTO{Spot: name, Favorited: favorited})
}

type favoritesDTO struct {
	Spots []string `json:"spots"`
}

type favoriteStateDTO struct {
	Spot      string `json:"spot"`
	Favorited bool   `json:"favorited"`
}
