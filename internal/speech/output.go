package speech

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is returned when no speech backend can be used
var ErrUnavailable = errors.New("speech output unavailable")

// Voice is a synthesis voice offered by a backend
type Voice struct {
	Name string // display name
	Lang string // locale tag, e.g. "en-US"
	ID   string // backend identifier, Name when empty
}

// Utterance is one request to speak text
type Utterance struct {
	Text   string
	Lang   string
	Pitch  float64 // 1 is neutral
	Rate   float64 // 1 is normal speed
	Volume float64 // 0 to 1
	Voice  *Voice  // nil uses the backend default for Lang
}

// SpeechOutput is a text-to-speech backend
type SpeechOutput interface {
	// Voices lists the available voices
	Voices(ctx context.Context) ([]Voice, error)

	// Speak synthesizes u and blocks until playback ends or ctx is done
	Speak(ctx context.Context, u Utterance) error

	// Cancel stops the utterance currently playing, if any
	Cancel()

	// Name returns the backend name
	Name() string
}

// Config selects and configures a speech backend
type Config struct {
	Provider string // "espeak", "openai" or "none"

	ESpeakVariant string // espeak-ng voice variant, e.g. "f4"

	OpenAIKey   string
	OpenAIModel string
	OpenAIVoice string
	CacheDir    string // synthesized audio cache, disabled when empty
}

// DefaultConfig returns the default speech configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:      "espeak",
		ESpeakVariant: "f4",
		OpenAIModel:   "gpt-4o-mini-tts",
		OpenAIVoice:   "nova",
	}
}

// NewOutput creates the backend named by config.Provider. A nil output
// with nil error means speech is switched off.
func NewOutput(config *Config) (SpeechOutput, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "espeak":
		return NewESpeakOutput(config.ESpeakVariant)
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required: %w", ErrUnavailable)
		}
		return NewOpenAIOutput(config)
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown speech provider: %s", config.Provider)
	}
}
