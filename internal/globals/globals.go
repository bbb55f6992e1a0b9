// Package globals holds the cross-scene state shared by scenes and enemy AI.
package globals

import "sync"

// Key names a value in the store.
type Key string

const (
	FirstTimePlayed   Key = "first_time_played"
	FullPlayed        Key = "full_played"
	RetryMessage      Key = "retry_message"
	CurrentLevel      Key = "current_level"
	PreviousLevel     Key = "previous_level"
	UpcomingLevel     Key = "upcoming_level"
	MusicInit         Key = "music_init"
	ElapsedSoundtrack Key = "elapsed_soundtrack"
	TotalSoundtrack   Key = "total_soundtrack"
)

// Store is a small typed key-value context.
type Store struct {
	mu     sync.RWMutex
	values map[Key]any
}

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[Key]any)}
}

// Set stores v under k.
func (s *Store) Set(k Key, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[k] = v
}

// Delete removes k.
func (s *Store) Delete(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, k)
}

// Get returns the raw value under k.
func (s *Store) Get(k Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[k]
	return v, ok
}

// Has reports whether k is set.
func (s *Store) Has(k Key) bool {
	_, ok := s.Get(k)
	return ok
}

// Bool returns the value under k, or false when missing or not a bool.
func (s *Store) Bool(k Key) bool {
	v, _ := s.Get(k)
	b, _ := v.(bool)
	return b
}

// String returns the value under k, or "" when missing or not a string.
func (s *Store) String(k Key) string {
	v, _ := s.Get(k)
	str, _ := v.(string)
	return str
}

// Float returns the numeric value under k. ok is false when the key is
// missing or holds something else.
func (s *Store) Float(k Key) (float64, bool) {
	v, _ := s.Get(k)
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
