package progress

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Store loads and saves UserProgress through a KV
type Store struct {
	kv     KV
	key    string
	logger zerolog.Logger
}

// NewStore creates a store writing under key. An empty key uses StorageKey.
func NewStore(kv KV, key string, logger zerolog.Logger) *Store {
	if key == "" {
		key = StorageKey
	}
	return &Store{kv: kv, key: key, logger: logger}
}

// Load returns the saved progress merged over the defaults. Read errors
// and malformed blobs are logged and yield the defaults.
func (s *Store) Load() UserProgress {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load progress, using defaults")
		return Defaults()
	}
	if !ok {
		return Defaults()
	}

	p, err := Merge([]byte(raw))
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding saved progress")
	}
	return p
}

// Save writes the whole record
func (s *Store) Save(p UserProgress) error {
	data, err := Encode(p)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Reset archives the old data when the KV supports it and saves the
// defaults
func (s *Store) Reset() (UserProgress, error) {
	if a, ok := s.kv.(Archiver); ok {
		archived, err := a.Archive()
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to archive progress")
		} else {
			s.logger.Info().Str("path", archived).Msg("progress archived")
		}
	}

	p := Defaults()
	return p, s.Save(p)
}

// Close closes the underlying KV
func (s *Store) Close() error {
	return s.kv.Close()
}
