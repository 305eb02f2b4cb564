package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moyeorang/place-recommender/internal/dto"
	"github.com/moyeorang/place-recommender/internal/entity"
)

// Recommender runs the recommendation pipeline. Exactly one of the returned
// values is non-nil.
type Recommender interface {
	Recommend(ctx context.Context, req dto.RecommendRequest) (*entity.RecommendationResult, *entity.ErrorResult)
}

const (
	msgInvalidRequest  = "invalid request: place, mood, purpose are all required"
	msgRecommendOK     = "recommendation succeeded"
	msgRecommendFailed = "place recommendation failed"
)

// RecommendHandler translates backend recommendation requests into the
// pipeline and shapes the response envelope.
type RecommendHandler struct {
	service Recommender
}

// NewRecommendHandler wires the handler.
func NewRecommendHandler(service Recommender) *RecommendHandler {
	return &RecommendHandler{service: service}
}

// Recommend handles POST /api/recommend.
func (h *RecommendHandler) Recommend(c echo.Context) error {
	var req dto.RecommendRequest
	if err := c.Bind(&req); err != nil {
		return Respond(c, http.StatusBadRequest, msgInvalidRequest, nil)
	}
	if req.Place == "" || req.Mood == "" || req.Purpose == "" {
		return Respond(c, http.StatusBadRequest, msgInvalidRequest, nil)
	}

	result, errResult := h.service.Recommend(c.Request().Context(), req)
	if errResult != nil {
		message := errResult.Message
		if message == "" {
			message = msgRecommendFailed
		}
		return Respond(c, http.StatusInternalServerError, message, errResult)
	}

	return Respond(c, http.StatusOK, msgRecommendOK, result)
}
