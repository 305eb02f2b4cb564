package entity

// HistoryEntry records one exchange in the in-process history log.
// Response holds either a RecommendationResult or an ErrorResult.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Query     string `json:"query"`
	Response  any    `json:"response"`
}
