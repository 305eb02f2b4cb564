package service

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/moyeorang/place-recommender/internal/entity"
)

// HistoryStore keeps an append-only log of exchanges for the lifetime of the
// process. The store is shared across concurrent requests, so all access goes
// through the mutex. There is no eviction; unbounded growth is accepted.
type HistoryStore struct {
	mu      sync.Mutex
	entries []entity.HistoryEntry
	now     func() time.Time
}

// NewHistoryStore creates an empty history log.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{now: time.Now}
}

// Append records one exchange. response is either a RecommendationResult or
// an ErrorResult.
func (s *HistoryStore) Append(query string, response any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entity.HistoryEntry{
		Timestamp: s.now().Format(time.RFC3339),
		Query:     query,
		Response:  response,
	})
}

// Entries returns a copy of the recorded exchanges in append order.
func (s *HistoryStore) Entries() []entity.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of recorded exchanges.
func (s *HistoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear resets the in-memory log.
func (s *HistoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Save dumps the history to a JSON file, overwriting any existing file
// wholesale. An empty filename falls back to a timestamped default. The
// written filename is returned.
func (s *HistoryStore) Save(filename string) (string, error) {
	s.mu.Lock()
	entries := make([]entity.HistoryEntry, len(s.entries))
	copy(entries, s.entries)
	now := s.now()
	s.mu.Unlock()

	if filename == "" {
		filename = fmt.Sprintf("history_%s.json", now.Format("20060102_150405"))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write history file: %w", err)
	}
	return filename, nil
}
