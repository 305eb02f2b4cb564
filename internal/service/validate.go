package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/moyeorang/place-recommender/internal/entity"
)

// rawPreviewLimit bounds the diagnostic preview of unparseable upstream text.
const rawPreviewLimit = 500

var placeIDPattern = regexp.MustCompile(`^place_\d+$`)

// ParseResult parses raw model output into a RecommendationResult. When
// stripFences is set (prompt-engineered mode) a surrounding markdown code
// fence is removed before parsing. Empty input is an ordinary parse failure.
func ParseResult(raw string, stripFences bool) (*entity.RecommendationResult, *entity.ErrorResult) {
	text := raw
	if stripFences {
		text = stripCodeFence(text)
	}

	var result entity.RecommendationResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, &entity.ErrorResult{
			Error:       entity.ErrKindParse,
			RawResponse: truncate(raw, rawPreviewLimit),
			ParseError:  err.Error(),
			Message:     "upstream response was not valid JSON",
		}
	}
	return &result, nil
}

// ValidateResult checks the parsed payload against the advisory upstream
// schema and returns a schema-violation ErrorResult when it does not hold.
func ValidateResult(result *entity.RecommendationResult) *entity.ErrorResult {
	var violations []string

	if result.TotalCount != len(result.Places) {
		violations = append(violations, fmt.Sprintf("total_count is %d but %d places were returned", result.TotalCount, len(result.Places)))
	}
	for i := range result.Places {
		p := &result.Places[i]
		if !placeIDPattern.MatchString(p.ID) {
			violations = append(violations, fmt.Sprintf("places[%d]: id %q does not match place_<n>", i, p.ID))
		}
		if strings.TrimSpace(p.Name) == "" {
			violations = append(violations, fmt.Sprintf("places[%d]: name is empty", i))
		}
		if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
			violations = append(violations, fmt.Sprintf("places[%d]: latitude %v out of range", i, *p.Latitude))
		}
		if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
			violations = append(violations, fmt.Sprintf("places[%d]: longitude %v out of range", i, *p.Longitude))
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &entity.ErrorResult{
		Error:   entity.ErrKindSchema,
		Message: "upstream result failed schema validation: " + strings.Join(violations, "; "),
	}
}

// stripCodeFence removes a leading/trailing ``` fence, tolerating a language
// tag after the opening marker.
func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		// drop the language tag line, e.g. "json"
		text = text[idx+1:]
	} else {
		return strings.TrimSpace(strings.TrimSuffix(text, "```"))
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
