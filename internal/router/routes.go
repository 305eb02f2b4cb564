package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moyeorang/place-recommender/internal/handler"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Recommend *handler.RecommendHandler
	History   *handler.HistoryHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Respond(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	api := e.Group("/api")
	api.POST("/recommend", handlers.Recommend.Recommend)
	api.GET("/history", handlers.History.List)
	api.POST("/history/save", handlers.History.Save)
	api.DELETE("/history", handlers.History.Clear)
}
