package translation

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// SleepFunc waits for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the wall-clock SleepFunc
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryPolicy decides which failures are retried and how long to wait.
// The first attempt is not a retry: MaxRetries 3 allows four calls.
type RetryPolicy struct {
	MaxRetries     int
	InitialBackoff time.Duration
	Multiplier     float64
	Retryable      func(error) bool

	// OnRetry is called before each backoff sleep
	OnRetry func(retry int, delay time.Duration, err error)
}

// DefaultRetryPolicy retries rate-limited calls 3 times after 1s, 2s and 4s
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:     3,
		InitialBackoff: time.Second,
		Multiplier:     2,
		Retryable:      IsRateLimited,
	}
}

// Backoff returns the delay before retry number n (0-based)
func (p RetryPolicy) Backoff(n int) time.Duration {
	d := float64(p.InitialBackoff)
	for i := 0; i < n; i++ {
		d *= p.Multiplier
	}
	return time.Duration(d)
}

// WithRetry runs op until it succeeds, fails with a non-retryable error,
// or the policy runs out of retries. attempt is 0 for the first call.
func WithRetry[T any](ctx context.Context, p RetryPolicy, sleep SleepFunc, op func(ctx context.Context, attempt int) (T, error)) (T, error) {
	var zero T
	if sleep == nil {
		sleep = Sleep
	}

	for attempt := 0; ; attempt++ {
		v, err := op(ctx, attempt)
		if err == nil {
			return v, nil
		}
		if attempt >= p.MaxRetries || p.Retryable == nil || !p.Retryable(err) {
			return zero, err
		}

		delay := p.Backoff(attempt)
		if p.OnRetry != nil {
			p.OnRetry(attempt+1, delay, err)
		}
		if serr := sleep(ctx, delay); serr != nil {
			return zero, err
		}
	}
}

// StatusError carries an HTTP status from a backend that has no typed error
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return "status " + strconv.Itoa(e.StatusCode) + ": " + e.Message
}

// IsRateLimited reports whether err signals HTTP 429. Either a typed status
// code or "429" in the error text is enough.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests {
		return true
	}

	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) && geminiErr.Code == http.StatusTooManyRequests {
		return true
	}
	var geminiPtrErr *genai.APIError
	if errors.As(err, &geminiPtrErr) && geminiPtrErr.Code == http.StatusTooManyRequests {
		return true
	}

	var openaiErr *openai.APIError
	if errors.As(err, &openaiErr) && openaiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	var requestErr *openai.RequestError
	if errors.As(err, &requestErr) && requestErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}

	return strings.Contains(err.Error(), "429")
}
