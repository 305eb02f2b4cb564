package service

import (
	"strings"
	"testing"

	"github.com/moyeorang/place-recommender/internal/dto"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(dto.RecommendRequest{Place: "Guro-gu, Seoul", Mood: "quiet", Purpose: "date"})
	want := "Guro-gu, Seoul에서 quiet 분위기의 date 목적에 맞는 장소를 추천해줘"
	if prompt != want {
		t.Fatalf("unexpected prompt:\n got %q\nwant %q", prompt, want)
	}
}

func TestBuildPrompt_PassesFieldsThroughVerbatim(t *testing.T) {
	prompt := BuildPrompt(dto.RecommendRequest{Place: `a "b" <c>`, Mood: "m", Purpose: "p"})
	if !strings.Contains(prompt, `a "b" <c>`) {
		t.Fatalf("expected verbatim interpolation, got %q", prompt)
	}
}

func TestBuildEngineeredPrompt(t *testing.T) {
	req := dto.RecommendRequest{Place: "Guro-gu", Mood: "quiet", Purpose: "date"}
	prompt := BuildEngineeredPrompt(req)

	if !strings.HasPrefix(prompt, BuildPrompt(req)) {
		t.Fatal("engineered prompt should start with the plain prompt")
	}
	for _, fragment := range []string{`"places"`, `"total_count"`, `"query_info"`, `"place_1"`} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("engineered prompt missing schema fragment %s", fragment)
		}
	}
}
