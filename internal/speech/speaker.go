package speech

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/kidsworld/internal/catalog"
)

// Translator translates a phrase into a language and never fails
type Translator interface {
	Translate(ctx context.Context, text, lang string) string
}

// Acoustic parameters for phrases and for animal sounds
var (
	PhraseParams = Utterance{Pitch: 1.7, Rate: 1.05, Volume: 1}
	AnimalParams = Utterance{Pitch: 1.2, Rate: 0.9, Volume: 1}
)

// Speaker speaks phrases in the active language. At most one utterance
// plays at a time.
type Speaker struct {
	output     SpeechOutput
	translator Translator
	markers    []string
	logger     zerolog.Logger

	mu     sync.Mutex
	lang   string
	seq    uint64
	cancel context.CancelFunc

	voicesMu     sync.Mutex
	voices       []Voice
	voicesLoaded bool

	wg sync.WaitGroup
}

// SpeakerOption configures a Speaker
type SpeakerOption func(*Speaker)

// WithMarkers replaces the friendly voice name markers
func WithMarkers(markers []string) SpeakerOption {
	return func(s *Speaker) { s.markers = markers }
}

// WithLogger sets the logger for backend errors
func WithLogger(logger zerolog.Logger) SpeakerOption {
	return func(s *Speaker) { s.logger = logger }
}

// NewSpeaker creates a speaker. output may be nil, which silences it, and
// translator may be nil, which speaks the English source text.
func NewSpeaker(output SpeechOutput, translator Translator, opts ...SpeakerOption) *Speaker {
	s := &Speaker{
		output:     output,
		translator: translator,
		markers:    DefaultFriendlyMarkers,
		logger:     zerolog.Nop(),
		lang:       "en",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLanguage switches the language used for following utterances
func (s *Speaker) SetLanguage(code string) {
	s.mu.Lock()
	s.lang = code
	s.mu.Unlock()
}

// Language returns the active language code
func (s *Speaker) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Speak cancels the current utterance and speaks text in the background.
// Empty text is ignored. The English text is translated first; if a newer call starts while the
// translation is outstanding, this one is dropped.
func (s *Speaker) Speak(ctx context.Context, text string) {
	if text == "" {
		return
	}
	s.start(ctx, func(ctx context.Context, lang string) Utterance {
		return s.phrase(ctx, text, lang)
	})
}

// PlayAnimalSound speaks the item's sound text without translation
func (s *Speaker) PlayAnimalSound(ctx context.Context, item catalog.LearningItem) {
	if !item.HasAnimalSound() {
		return
	}
	s.start(ctx, func(ctx context.Context, lang string) Utterance {
		u := AnimalParams
		u.Text = item.SoundPhonetic
		u.Lang = LangTag(lang)
		u.Voice = s.voiceFor(ctx, lang)
		return u
	})
}

// Utter speaks text synchronously and returns the backend error
func (s *Speaker) Utter(ctx context.Context, text string) error {
	if s.output == nil {
		return ErrUnavailable
	}
	return s.output.Speak(ctx, s.phrase(ctx, text, s.Language()))
}

// Wait blocks until all background utterances have finished
func (s *Speaker) Wait() {
	s.wg.Wait()
}

// Stop cancels the current utterance
func (s *Speaker) Stop() {
	s.mu.Lock()
	s.seq++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	if s.output != nil {
		s.output.Cancel()
	}
}

func (s *Speaker) phrase(ctx context.Context, text, lang string) Utterance {
	if lang != "en" && s.translator != nil {
		text = s.translator.Translate(ctx, text, lang)
	}
	u := PhraseParams
	u.Text = text
	u.Lang = LangTag(lang)
	u.Voice = s.voiceFor(ctx, lang)
	return u
}

func (s *Speaker) start(ctx context.Context, build func(ctx context.Context, lang string) Utterance) {
	if s.output == nil {
		return
	}

	s.Stop()

	s.mu.Lock()
	s.seq++
	seq := s.seq
	lang := s.lang
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		u := build(ctx, lang)
		if u.Text == "" || !s.current(seq) {
			return
		}

		if err := s.output.Speak(ctx, u); err != nil && !errors.Is(err, context.Canceled) && ctx.Err() == nil {
			s.logger.Error().Err(err).Str("backend", s.output.Name()).Str("text", u.Text).Msg("speech failed")
		}
	}()
}

func (s *Speaker) current(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq == seq
}

func (s *Speaker) voiceFor(ctx context.Context, lang string) *Voice {
	if v, ok := SelectVoice(s.voiceList(ctx), lang, s.markers); ok {
		return &v
	}
	return nil
}

// voiceList lists the backend voices once. A failed listing is retried on
// the next call.
func (s *Speaker) voiceList(ctx context.Context) []Voice {
	s.voicesMu.Lock()
	defer s.voicesMu.Unlock()

	if s.voicesLoaded {
		return s.voices
	}
	voices, err := s.output.Voices(context.WithoutCancel(ctx))
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to list voices")
		return nil
	}
	s.voices = voices
	s.voicesLoaded = true
	return voices
}
