package voice

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/kidsworld/internal/translation"
)

// ErrUnavailable is returned by a SpeechInput that cannot run here
var ErrUnavailable = errors.New("speech recognition unavailable")

// DefaultRestartDelay is the pause before a dropped session is restarted
const DefaultRestartDelay = time.Second

// SpeechInput runs recognition sessions
type SpeechInput interface {
	// Recognize runs one session, calling emit for every final transcript.
	// It returns nil when the session ends on its own.
	Recognize(ctx context.Context, emit func(transcript string)) error

	// Name returns the recognizer name
	Name() string
}

// Normalize lower-cases a transcript and collapses its whitespace
func Normalize(transcript string) string {
	return strings.Join(strings.Fields(strings.ToLower(transcript)), " ")
}

// Listener keeps a SpeechInput listening and reports normalized commands
type Listener struct {
	input        SpeechInput
	onCommand    func(string)
	restartDelay time.Duration
	sleep        translation.SleepFunc
	logger       zerolog.Logger

	listening atomic.Bool
	disabled  atomic.Bool
	restarts  atomic.Int64

	mu   sync.Mutex
	last string
}

// Option configures a Listener
type Option func(*Listener)

// WithRestartDelay sets the pause before a session restart
func WithRestartDelay(d time.Duration) Option {
	return func(l *Listener) { l.restartDelay = d }
}

// WithSleep replaces the wall-clock restart pause
func WithSleep(sleep translation.SleepFunc) Option {
	return func(l *Listener) { l.sleep = sleep }
}

// WithLogger sets the logger for session restarts and errors
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Listener) { l.logger = logger }
}

// NewListener creates a listener that calls onCommand with every normalized
// transcript. input may be nil, which disables voice control.
func NewListener(input SpeechInput, onCommand func(string), opts ...Option) *Listener {
	l := &Listener{
		input:        input,
		onCommand:    onCommand,
		restartDelay: DefaultRestartDelay,
		sleep:        translation.Sleep,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if input == nil {
		l.disabled.Store(true)
	}
	return l
}

// Run listens until ctx is done. It returns immediately when the input is
// unavailable.
func (l *Listener) Run(ctx context.Context) {
	if l.disabled.Load() {
		return
	}

	for {
		l.listening.Store(true)
		err := l.input.Recognize(ctx, l.emit)
		l.listening.Store(false)

		if ctx.Err() != nil {
			return
		}
		if errors.Is(err, ErrUnavailable) {
			l.logger.Info().Err(err).Str("recognizer", l.input.Name()).Msg("voice control disabled")
			l.disabled.Store(true)
			return
		}
		if err != nil {
			l.logger.Warn().Err(err).Str("recognizer", l.input.Name()).Msg("recognition session failed")
		}

		l.restarts.Add(1)
		l.logger.Debug().Dur("delay", l.restartDelay).Msg("restarting recognition session")
		if err := l.sleep(ctx, l.restartDelay); err != nil {
			return
		}
	}
}

func (l *Listener) emit(transcript string) {
	command := Normalize(transcript)
	if command == "" {
		return
	}

	l.mu.Lock()
	l.last = command
	l.mu.Unlock()

	if l.onCommand != nil {
		l.onCommand(command)
	}
}

// Listening reports whether a session is currently running
func (l *Listener) Listening() bool {
	return l.listening.Load()
}

// Disabled reports whether voice control is switched off
func (l *Listener) Disabled() bool {
	return l.disabled.Load()
}

// LastCommand returns the most recent normalized transcript
func (l *Listener) LastCommand() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

// Restarts returns how many times a session was restarted
func (l *Listener) Restarts() int64 {
	return l.restarts.Load()
}
