package service

import (
	"fmt"

	"github.com/moyeorang/place-recommender/internal/dto"
)

const promptTemplate = "%s에서 %s 분위기의 %s 목적에 맞는 장소를 추천해줘"

// exampleSchema is embedded into prompts when the model has no native
// structured-output mode.
const exampleSchema = `{
  "places": [
    {
      "id": "place_1",
      "name": "장소 이름",
      "description": "100자 이하 설명",
      "address": "도로명 주소",
      "latitude": 37.5,
      "longitude": 127.0
    }
  ],
  "total_count": 1,
  "query_info": {
    "location": "요청 지역",
    "type": "장소 유형"
  }
}`

// BuildPrompt interpolates the request into the fixed recommendation
// template. Field contents pass through verbatim.
func BuildPrompt(req dto.RecommendRequest) string {
	return fmt.Sprintf(promptTemplate, req.Place, req.Mood, req.Purpose)
}

// BuildEngineeredPrompt appends the exact JSON schema and a JSON-only
// directive for models without a structured-output mode.
func BuildEngineeredPrompt(req dto.RecommendRequest) string {
	return BuildPrompt(req) + "\n\n다음 JSON 구조로만 응답해줘. JSON 외의 다른 텍스트는 포함하지 마:\n" + exampleSchema
}
