package entity

// Error kinds carried in ErrorResult.Error.
const (
	ErrKindUpstream = "upstream call failed"
	ErrKindParse    = "JSON parse failure"
	ErrKindSchema   = "schema violation"
)

// ErrorResult replaces a RecommendationResult when the upstream call fails or
// its output cannot be parsed or validated.
type ErrorResult struct {
	Error       string `json:"error"`
	RawResponse string `json:"raw_response,omitempty"`
	ParseError  string `json:"parse_error,omitempty"`
	Message     string `json:"message"`
}
