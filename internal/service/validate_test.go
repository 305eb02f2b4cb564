package service

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/moyeorang/place-recommender/internal/entity"
)

func ptr(v float64) *float64 { return &v }

func TestParseResult_StripsFences(t *testing.T) {
	raw := "```json\n{\"places\":[],\"total_count\":0,\"query_info\":{\"location\":\"Guro-gu\",\"type\":\"restaurant\"}}\n```"

	result, errResult := ParseResult(raw, true)
	if errResult != nil {
		t.Fatalf("unexpected error result: %+v", errResult)
	}
	if len(result.Places) != 0 || result.TotalCount != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.QueryInfo.Location != "Guro-gu" || result.QueryInfo.Type != "restaurant" {
		t.Fatalf("unexpected query info: %+v", result.QueryInfo)
	}
}

func TestParseResult_FenceWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"places\":[],\"total_count\":0,\"query_info\":{\"location\":\"\",\"type\":\"\"}}\n```"
	if _, errResult := ParseResult(raw, true); errResult != nil {
		t.Fatalf("unexpected error result: %+v", errResult)
	}
}

func TestParseResult_NotJSON(t *testing.T) {
	_, errResult := ParseResult("not json at all", false)
	if errResult == nil {
		t.Fatal("expected error result")
	}
	if errResult.Error != entity.ErrKindParse {
		t.Fatalf("unexpected error kind: %s", errResult.Error)
	}
	if errResult.RawResponse != "not json at all" {
		t.Fatalf("unexpected raw response: %q", errResult.RawResponse)
	}
	if errResult.Message == "" {
		t.Fatal("expected non-empty message")
	}
}

func TestParseResult_EmptyInputIsParseFailure(t *testing.T) {
	for _, raw := range []string{"", "   \n\t"} {
		if _, errResult := ParseResult(raw, true); errResult == nil || errResult.Error != entity.ErrKindParse {
			t.Fatalf("expected parse failure for %q, got %+v", raw, errResult)
		}
	}
}

func TestParseResult_TruncatesRawPreview(t *testing.T) {
	raw := strings.Repeat("가", 600)
	_, errResult := ParseResult(raw, false)
	if errResult == nil {
		t.Fatal("expected error result")
	}
	if got := len([]rune(errResult.RawResponse)); got != rawPreviewLimit {
		t.Fatalf("expected preview of %d characters, got %d", rawPreviewLimit, got)
	}
}

func TestParseResult_RoundTrip(t *testing.T) {
	original := entity.RecommendationResult{
		Places: []entity.Place{
			{
				ID:          "place_1",
				Name:        "한강공원",
				Description: "조용한 강변 산책로",
				Address:     "서울 영등포구 여의동로 330",
				Latitude:    ptr(37.528),
				Longitude:   ptr(126.933),
			},
			{
				ID:      "place_2",
				Name:    "카페 온도",
				Address: "서울 구로구 디지털로 300",
			},
		},
		TotalCount: 2,
		QueryInfo:  entity.QueryInfo{Location: "Guro-gu", Type: "cafe"},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	parsed, errResult := ParseResult(string(data), false)
	if errResult != nil {
		t.Fatalf("unexpected error result: %+v", errResult)
	}
	if !reflect.DeepEqual(*parsed, original) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", *parsed, original)
	}
}

func TestValidateResult_Valid(t *testing.T) {
	result := &entity.RecommendationResult{
		Places: []entity.Place{
			{ID: "place_1", Name: "한강공원", Latitude: ptr(37.5), Longitude: ptr(127.0)},
		},
		TotalCount: 1,
	}
	if errResult := ValidateResult(result); errResult != nil {
		t.Fatalf("unexpected violation: %+v", errResult)
	}
}

func TestValidateResult_Violations(t *testing.T) {
	cases := []struct {
		name   string
		result entity.RecommendationResult
		want   string
	}{
		{
			name: "count mismatch",
			result: entity.RecommendationResult{
				Places:     []entity.Place{{ID: "place_1", Name: "a"}},
				TotalCount: 3,
			},
			want: "total_count",
		},
		{
			name: "bad id format",
			result: entity.RecommendationResult{
				Places:     []entity.Place{{ID: "spot-1", Name: "a"}},
				TotalCount: 1,
			},
			want: "place_<n>",
		},
		{
			name: "empty name",
			result: entity.RecommendationResult{
				Places:     []entity.Place{{ID: "place_1", Name: "  "}},
				TotalCount: 1,
			},
			want: "name is empty",
		},
		{
			name: "latitude out of range",
			result: entity.RecommendationResult{
				Places:     []entity.Place{{ID: "place_1", Name: "a", Latitude: ptr(123.0), Longitude: ptr(127.0)}},
				TotalCount: 1,
			},
			want: "latitude",
		},
		{
			name: "longitude out of range",
			result: entity.RecommendationResult{
				Places:     []entity.Place{{ID: "place_1", Name: "a", Latitude: ptr(37.5), Longitude: ptr(480.0)}},
				TotalCount: 1,
			},
			want: "longitude",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errResult := ValidateResult(&tc.result)
			if errResult == nil {
				t.Fatal("expected schema violation")
			}
			if errResult.Error != entity.ErrKindSchema {
				t.Fatalf("unexpected error kind: %s", errResult.Error)
			}
			if !strings.Contains(errResult.Message, tc.want) {
				t.Fatalf("message %q missing %q", errResult.Message, tc.want)
			}
		})
	}
}

func TestStripCodeFence_PlainTextUntouched(t *testing.T) {
	if got := stripCodeFence(`{"a":1}`); got != `{"a":1}` {
		t.Fatalf("unexpected output: %q", got)
	}
}
