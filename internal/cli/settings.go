package cli

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/kidsworld/internal"
	"codeberg.org/snonux/kidsworld/internal/progress"
	"codeberg.org/snonux/kidsworld/internal/speech"
	"codeberg.org/snonux/kidsworld/internal/translation"
	"codeberg.org/snonux/kidsworld/internal/voice"
)

// Settings is the merged configuration from flags, config file and
// environment
type Settings struct {
	StateDir    string
	StorageKey  string
	CatalogFile string
	Language    string
	LogDir      string

	Translation translation.Config
	Speech      speech.Config

	FriendlyMarkers []string

	VoiceCommand      string
	VoiceDisabled     bool
	VoiceRestartDelay time.Duration
}

// ProgressDB returns the path of the progress database
func (s Settings) ProgressDB() string {
	return filepath.Join(s.StateDir, "progress.db")
}

// LoadSettings reads the current viper configuration, falling back to the
// built-in defaults for unset keys
func LoadSettings() Settings {
	tc := translation.DefaultConfig()
	sc := speech.DefaultConfig()

	s := Settings{
		StateDir:    stringOr("storage.path", internal.StateDir()),
		StorageKey:  stringOr("storage.key", progress.StorageKey),
		CatalogFile: viper.GetString("catalog.file"),
		Language:    viper.GetString("language"),
		LogDir:      viper.GetString("log.dir"),

		Translation: translation.Config{
			Provider:  stringOr("translation.provider", tc.Provider),
			Model:     viper.GetString("translation.model"),
			GeminiKey: GetGeminiKey(),
			OpenAIKey: GetOpenAIKey(),
		},
		Speech: speech.Config{
			Provider:      stringOr("speech.provider", sc.Provider),
			ESpeakVariant: stringOr("speech.espeak_variant", sc.ESpeakVariant),
			OpenAIKey:     GetOpenAIKey(),
			OpenAIModel:   stringOr("speech.openai_model", sc.OpenAIModel),
			OpenAIVoice:   stringOr("speech.openai_voice", sc.OpenAIVoice),
		},

		FriendlyMarkers: viper.GetStringSlice("speech.friendly_markers"),

		VoiceCommand:      viper.GetString("voice.command"),
		VoiceDisabled:     viper.GetBool("voice.disabled"),
		VoiceRestartDelay: viper.GetDuration("voice.restart_delay"),
	}

	if len(s.FriendlyMarkers) == 0 {
		s.FriendlyMarkers = speech.DefaultFriendlyMarkers
	}
	if s.VoiceRestartDelay <= 0 {
		s.VoiceRestartDelay = voice.DefaultRestartDelay
	}
	s.Speech.CacheDir = filepath.Join(s.StateDir, "speech")
	return s
}

func stringOr(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}
