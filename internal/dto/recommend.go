package dto

// RecommendRequest is the structured place-recommendation request sent by the
// backend. All three fields are required and non-empty.
type RecommendRequest struct {
	Place   string `json:"place"`
	Mood    string `json:"mood"`
	Purpose string `json:"purpose"`
}

// SaveHistoryRequest optionally overrides the history dump filename.
type SaveHistoryRequest struct {
	Filename string `json:"filename,omitempty"`
}
