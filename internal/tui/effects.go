package tui

import (
	"context"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/kidsworld/internal/catalog"
	"codeberg.org/snonux/kidsworld/internal/progress"
	"codeberg.org/snonux/kidsworld/internal/speech"
	"codeberg.org/snonux/kidsworld/internal/translation"
	"codeberg.org/snonux/kidsworld/internal/voice"
)

// Effects carries out the commands returned by the game and reports the
// state of the background services for the status line. TranslateLabel
// blocks and is only called from a tea.Cmd.
type Effects interface {
	Speak(text string)
	PlayAnimalSound(item catalog.LearningItem)
	ChangeLanguage(code string)
	SaveProgress(p progress.UserProgress)
	ResetProgress()
	TranslateLabel(text, lang string) string

	Translating() bool
	Listening() bool
	VoiceDisabled() bool
	LastCommand() string
}

// Runtime is the Effects implementation over the real services
type Runtime struct {
	ctx        context.Context
	speaker    *speech.Speaker
	translator *translation.Service
	store      *progress.Store
	listener   *voice.Listener
	logger     zerolog.Logger
}

// NewRuntime bundles the services. listener may be nil when voice control
// is switched off.
func NewRuntime(ctx context.Context, speaker *speech.Speaker, translator *translation.Service,
	store *progress.Store, listener *voice.Listener, logger zerolog.Logger) *Runtime {
	return &Runtime{
		ctx:        ctx,
		speaker:    speaker,
		translator: translator,
		store:      store,
		listener:   listener,
		logger:     logger,
	}
}

func (r *Runtime) Speak(text string) {
	r.speaker.Speak(r.ctx, text)
}

func (r *Runtime) PlayAnimalSound(item catalog.LearningItem) {
	r.speaker.PlayAnimalSound(r.ctx, item)
}

func (r *Runtime) ChangeLanguage(code string) {
	r.speaker.SetLanguage(code)
}

func (r *Runtime) SaveProgress(p progress.UserProgress) {
	if err := r.store.Save(p); err != nil {
		r.logger.Error().Err(err).Msg("failed to save progress")
	}
}

func (r *Runtime) ResetProgress() {
	if _, err := r.store.Reset(); err != nil {
		r.logger.Error().Err(err).Msg("failed to reset progress")
	}
}

func (r *Runtime) TranslateLabel(text, lang string) string {
	return r.translator.Translate(r.ctx, text, lang)
}

func (r *Runtime) Translating() bool {
	return r.translator.Translating()
}

func (r *Runtime) Listening() bool {
	return r.listener != nil && r.listener.Listening()
}

func (r *Runtime) VoiceDisabled() bool {
	return r.listener == nil || r.listener.Disabled()
}

func (r *Runtime) LastCommand() string {
	if r.listener == nil {
		return ""
	}
	return r.listener.LastCommand()
}
