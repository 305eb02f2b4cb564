package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/moyeorang/place-recommender/internal/config"
	"github.com/moyeorang/place-recommender/internal/gemini"
	"github.com/moyeorang/place-recommender/internal/handler"
	"github.com/moyeorang/place-recommender/internal/kakao"
	middlewarepkg "github.com/moyeorang/place-recommender/internal/middleware"
	"github.com/moyeorang/place-recommender/internal/router"
	"github.com/moyeorang/place-recommender/internal/service"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	generator, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, gemini.Options{
		Model:            cfg.GeminiModel,
		Temperature:      cfg.Temperature,
		MaxOutputTokens:  cfg.MaxOutputTokens,
		StructuredOutput: cfg.StructuredOutput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create gemini client")
	}

	var geocoder kakao.Geocoder
	if cfg.KakaoAPIKey != "" {
		geocoder = kakao.NewClient(&http.Client{Timeout: 10 * time.Second}, cfg.KakaoAPIKey)
	} else {
		log.Warn().Msg("KAKAO_API_KEY not set, coordinate backfill disabled")
	}

	history := service.NewHistoryStore()
	recommendService := service.NewRecommendService(
		generator,
		service.NewBackfiller(geocoder),
		history,
		cfg.StructuredOutput,
		cfg.RecordFailedHistory,
		log,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(log))
	e.Use(echoMiddleware.Recover())

	router.Register(e, router.Handlers{
		Recommend: handler.NewRecommendHandler(recommendService),
		History:   handler.NewHistoryHandler(history),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	log.Info().Str("port", cfg.Port).Str("model", cfg.GeminiModel).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
