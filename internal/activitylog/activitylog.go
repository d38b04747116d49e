package activitylog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// EntryData is one timestamped activity message.
type EntryData struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Store is a file-backed append-only activity log. The whole log lives in
// one JSON array; writes rewrite the file under a mutex, which is fine for
// the low volume this log sees.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Append adds a message with the current timestamp.
func (s *Store) Append(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries = append(entries, EntryData{Message: message, Timestamp: time.Now().UTC()})

	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode log entries: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}
	return nil
}

// Last returns the newest n entries in chronological order.
func (s *Store) Last(n int) ([]EntryData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

func (s *Store) read() ([]EntryData, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []EntryData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	if len(b) == 0 {
		return []EntryData{}, nil
	}
	var entries []EntryData
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse log file: %w", err)
	}
	return entries, nil
}
