package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/moyeorang/place-recommender/internal/dto"
	"github.com/moyeorang/place-recommender/internal/entity"
	"github.com/moyeorang/place-recommender/internal/gemini"
)

// RecommendService runs the full pipeline: prompt → upstream call → parse →
// schema validation → coordinate backfill → history append. Exactly one of
// the returned values is non-nil.
type RecommendService struct {
	generator      gemini.Generator
	backfill       *Backfiller
	history        *HistoryStore
	structured     bool
	recordFailures bool
	log            zerolog.Logger
}

// NewRecommendService wires the pipeline. structured selects native JSON
// output; when false the prompt embeds the schema and the validator strips
// code fences. recordFailures controls whether failed exchanges land in the
// history log.
func NewRecommendService(generator gemini.Generator, backfill *Backfiller, history *HistoryStore, structured, recordFailures bool, log zerolog.Logger) *RecommendService {
	return &RecommendService{
		generator:      generator,
		backfill:       backfill,
		history:        history,
		structured:     structured,
		recordFailures: recordFailures,
		log:            log,
	}
}

// Recommend translates the request into a prompt, calls the model and
// normalizes its output. Upstream failures never propagate as errors; they
// come back as an ErrorResult for the envelope shaper.
func (s *RecommendService) Recommend(ctx context.Context, req dto.RecommendRequest) (*entity.RecommendationResult, *entity.ErrorResult) {
	var prompt string
	if s.structured {
		prompt = BuildPrompt(req)
	} else {
		prompt = BuildEngineeredPrompt(req)
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Msg("upstream generation failed")
		return nil, s.fail(prompt, &entity.ErrorResult{
			Error:   entity.ErrKindUpstream,
			Message: err.Error(),
		})
	}

	result, errResult := ParseResult(raw, !s.structured)
	if errResult != nil {
		s.log.Warn().Str("parse_error", errResult.ParseError).Msg("upstream response was not valid JSON")
		return nil, s.fail(prompt, errResult)
	}

	if errResult := ValidateResult(result); errResult != nil {
		s.log.Warn().Str("detail", errResult.Message).Msg("upstream response failed schema validation")
		return nil, s.fail(prompt, errResult)
	}

	s.backfill.Fill(ctx, result)

	s.history.Append(prompt, result)
	s.log.Info().Int("places", len(result.Places)).Msg("recommendation succeeded")
	return result, nil
}

func (s *RecommendService) fail(query string, errResult *entity.ErrorResult) *entity.ErrorResult {
	if s.recordFailures {
		s.history.Append(query, errResult)
	}
	return errResult
}
