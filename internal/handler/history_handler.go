package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moyeorang/place-recommender/internal/dto"
	"github.com/moyeorang/place-recommender/internal/service"
)

// HistoryHandler exposes the in-process exchange log.
type HistoryHandler struct {
	store *service.HistoryStore
}

// NewHistoryHandler wires the handler.
func NewHistoryHandler(store *service.HistoryStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// List handles GET /api/history.
func (h *HistoryHandler) List(c echo.Context) error {
	entries := h.store.Entries()
	return Respond(c, http.StatusOK, "history retrieved", map[string]any{
		"entries":     entries,
		"total_count": len(entries),
	})
}

// Save handles POST /api/history/save. The filename is optional; an empty
// one falls back to the timestamped default.
func (h *HistoryHandler) Save(c echo.Context) error {
	var req dto.SaveHistoryRequest
	if err := c.Bind(&req); err != nil {
		return Respond(c, http.StatusBadRequest, "invalid request body", nil)
	}

	filename, err := h.store.Save(req.Filename)
	if err != nil {
		return Respond(c, http.StatusInternalServerError, "failed to save history: "+err.Error(), nil)
	}
	return Respond(c, http.StatusOK, "history saved", map[string]any{"filename": filename})
}

// Clear handles DELETE /api/history.
func (h *HistoryHandler) Clear(c echo.Context) error {
	h.store.Clear()
	return Respond(c, http.StatusOK, "history cleared", nil)
}
