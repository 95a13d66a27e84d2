package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/example/parknow/internal/catalog"
)

type SpotHandler struct {
	spots     *catalog.Catalog
	responder responder
	logger    *slog.Logger
}

func NewSpotHandler(spots *catalog.Catalog, logger *slog.Logger) *SpotHandler {
	base := defaultLogger(logger)
	return &SpotHandler{spots: spots, responder: newResponder(base), logger: base}
}

func (h *SpotHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "SpotHandler", operation, attrs...)
}

// List returns every parking spot in the catalog.
func (h *SpotHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.spots == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	spots := h.spots.Spots()
	dtos := make([]spotDTO, 0, len(spots))
	for _, spot := range spots {
		dtos = append(dtos, toSpotDTO(spot))
	}

	h.log(r.Context(), "List").InfoContext(r.Context(), "spot catalog listed", "count", len(dtos))
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

// Get returns a single spot looked up by name.
func (h *SpotHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.spots == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	name, ok := SpotNameFromContext(r.Context())
	if !ok || name == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidSpotName)
		return
	}

	spot, found := h.spots.ByName(name)
	if !found {
		h.log(r.Context(), "Get", "spot", name).ErrorContext(r.Context(), "spot not found")
		h.responder.writeJSON(r.Context(), w, http.StatusNotFound, errorResponse{Message: "The requested resource was not found."})
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toSpotDTO(spot))
}

// Navigation returns the deep link used to hand the spot position to a
// navigation application.
func (h *SpotHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.spots == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	name, ok := SpotNameFromContext(r.Context())
	if !ok || name == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidSpotName)
		return
	}

	spot, found := h.spots.ByName(name)
	if !found {
		h.log(r.Context(), "Navigation", "spot", name).ErrorContext(r.Context(), "spot not found")
		h.responder.writeJSON(r.Context(), w, http.StatusNotFound, errorResponse{Message: "The requested resource was not found."})
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, navigationDTO{URI: spot.NavigationURI()})
}

type spotDTO struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Availability int     `json:"availability"`
	PricePerHour float64 `json:"price_per_hour"`
	Snippet      string  `json:"snippet"`
}

type navigationDTO struct {
	URI string `json:"uri"`
}

func toSpotDTO(spot catalog.Spot) spotDTO {
	return spotDTO{
		Name:         spot.Name,
		Latitude:     spot.Latitude,
		Longitude:    spot.Longitude,
		Availability: spot.Availability,
		PricePerHour: spot.PricePerHour,
		Snippet:      spot.Snippet(),
	}
}
