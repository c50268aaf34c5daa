package translation

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Service translates text through a Backend with caching and retry
type Service struct {
	backend  Backend
	policy   RetryPolicy
	cache    *Cache
	sleep    SleepFunc
	logger   zerolog.Logger
	inflight atomic.Int32
}

// Option configures a Service
type Option func(*Service)

// WithPolicy replaces the default retry policy
func WithPolicy(p RetryPolicy) Option {
	return func(s *Service) { s.policy = p }
}

// WithSleep replaces the wall-clock backoff sleep
func WithSleep(sleep SleepFunc) Option {
	return func(s *Service) { s.sleep = sleep }
}

// WithLogger sets the logger for retries and failures
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithCache shares an existing cache
func WithCache(c *Cache) Option {
	return func(s *Service) { s.cache = c }
}

// NewService creates a translation service. A nil backend disables
// translation and every call returns its input.
func NewService(backend Backend, opts ...Option) *Service {
	s := &Service{
		backend: backend,
		policy:  DefaultRetryPolicy(),
		cache:   NewCache(),
		sleep:   Sleep,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translate returns text translated into lang. English, empty text and a
// disabled backend return text unchanged without a call. On failure the
// source text is returned and cached like a successful result.
func (s *Service) Translate(ctx context.Context, text, lang string) string {
	if lang == English || lang == "" || text == "" || s.backend == nil {
		return text
	}

	if cached, ok := s.cache.Get(text, lang); ok {
		return cached
	}

	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	policy := s.policy
	policy.OnRetry = func(retry int, delay time.Duration, err error) {
		s.logger.Warn().Err(err).Str("text", text).Str("lang", lang).
			Int("retry", retry).Dur("delay", delay).Msg("translation rate limited, retrying")
	}

	target := languageFor(lang)
	result, err := WithRetry(ctx, policy, s.sleep, func(ctx context.Context, attempt int) (string, error) {
		return s.backend.Translate(ctx, text, target)
	})
	if err != nil && ctx.Err() != nil {
		return text
	}
	if err != nil {
		s.logger.Error().Err(err).Str("text", text).Str("lang", lang).Msg("translation failed, using source text")
		result = text
	}

	s.cache.Add(text, lang, result)
	return result
}

// Translating reports whether any backend call is outstanding
func (s *Service) Translating() bool {
	return s.inflight.Load() > 0
}

// Cache returns the service's translation cache
func (s *Service) Cache() *Cache {
	return s.cache
}
