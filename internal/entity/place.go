package entity

// Coordinate provenance values recorded on each recommended place.
const (
	CoordSourceGemini   = "gemini"
	CoordSourceKakaoMap = "kakao_map"
	CoordSourceNotFound = "not_found"
)

// Place is a single recommendation returned by the model, possibly enriched
// with coordinates from the Kakao Local API.
type Place struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Address          string   `json:"address"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	CoordinateSource string   `json:"coordinate_source,omitempty"`
}

// QueryInfo echoes the interpreted location and place type for a query.
type QueryInfo struct {
	Location string `json:"location"`
	Type     string `json:"type"`
}

// RecommendationResult is the validated payload produced by the pipeline.
// TotalCount must equal len(Places); the validator enforces it.
type RecommendationResult struct {
	Places     []Place   `json:"places"`
	TotalCount int       `json:"total_count"`
	QueryInfo  QueryInfo `json:"query_info"`
}
