package translation

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// BreakerBackend stops calling a backend that keeps failing. Rate-limit
// errors do not count as failures since the retry policy handles them.
type BreakerBackend struct {
	next Backend
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerBackend wraps next in a circuit breaker that opens after
// five consecutive failures and probes again after thirty seconds
func NewBreakerBackend(next Backend, logger zerolog.Logger) *BreakerBackend {
	settings := gobreaker.Settings{
		Name:        "translation-" + next.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("translation breaker state changed")
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsRateLimited(err) || errors.Is(err, context.Canceled)
		},
	}

	return &BreakerBackend{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate forwards to the wrapped backend unless the breaker is open
func (b *BreakerBackend) Translate(ctx context.Context, text string, lang Language) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, lang)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the wrapped backend name
func (b *BreakerBackend) Name() string {
	return b.next.Name()
}

// State returns the breaker state
func (b *BreakerBackend) State() gobreaker.State {
	return b.cb.State()
}
