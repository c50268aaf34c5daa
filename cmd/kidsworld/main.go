package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/kidsworld/internal/catalog"
	"codeberg.org/snonux/kidsworld/internal/cli"
	"codeberg.org/snonux/kidsworld/internal/game"
	"codeberg.org/snonux/kidsworld/internal/logging"
	"codeberg.org/snonux/kidsworld/internal/models"
	"codeberg.org/snonux/kidsworld/internal/progress"
	"codeberg.org/snonux/kidsworld/internal/speech"
	"codeberg.org/snonux/kidsworld/internal/translation"
	"codeberg.org/snonux/kidsworld/internal/tui"
	"codeberg.org/snonux/kidsworld/internal/voice"
)

func main() {
	// API keys may live in a .env file next to the config
	_ = godotenv.Load()

	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, flags *cli.Flags) error {
	settings := cli.LoadSettings()

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(settings.Translation.OpenAIKey, settings.Translation.GeminiKey)
		return lister.ListAvailableModels(ctx, os.Stdout)
	}

	if err := os.MkdirAll(settings.StateDir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	logDir, err := logging.ResolveDir(settings.LogDir)
	if err != nil {
		return fmt.Errorf("failed to resolve log directory: %w", err)
	}
	logger, logFile, err := logging.Open(logDir, zerolog.InfoLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cats, err := catalog.Load(settings.CatalogFile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	kv, err := progress.OpenSQLiteKV(settings.ProgressDB())
	if err != nil {
		return fmt.Errorf("failed to open progress store: %w", err)
	}
	store := progress.NewStore(kv, settings.StorageKey, logger)
	defer store.Close()

	// Handle --reset-progress flag
	if flags.ResetProgress {
		if _, err := store.Reset(); err != nil {
			return fmt.Errorf("failed to reset progress: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Progress archived and reset")
	}

	p := store.Load()
	if settings.Language != "" {
		if _, ok := translation.LookupLanguage(settings.Language); !ok {
			return fmt.Errorf("unsupported language: %s", settings.Language)
		}
		p = p.WithLanguage(settings.Language)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	translator := newTranslator(ctx, settings, logger)

	speaker := newSpeaker(settings, translator, logger)
	speaker.SetLanguage(p.Language)
	defer speaker.Stop()

	commands := make(chan string, 16)
	listener := voice.NewListener(newSpeechInput(settings, logger), func(command string) {
		select {
		case commands <- command:
		default:
			logger.Warn().Str("command", command).Msg("voice command dropped, UI busy")
		}
	}, voice.WithRestartDelay(settings.VoiceRestartDelay), voice.WithLogger(logger))
	go listener.Run(ctx)

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	app := game.New(cats, p, rng, logger)

	logger.Info().
		Str("language", p.Language).
		Int("stars", p.Stars).
		Int("categories", len(cats)).
		Str("translation", settings.Translation.Provider).
		Str("speech", settings.Speech.Provider).
		Bool("voice", !listener.Disabled()).
		Msg("kidsworld started")

	runtime := tui.NewRuntime(ctx, speaker, translator, store, listener, logger)
	return tui.Run(ctx, tui.New(app, runtime), commands)
}

// newTranslator builds the translation service. A backend that cannot be
// created leaves translation switched off.
func newTranslator(ctx context.Context, settings cli.Settings, logger zerolog.Logger) *translation.Service {
	var backend translation.Backend

	b, err := translation.NewBackend(ctx, &settings.Translation)
	switch {
	case err != nil:
		logger.Warn().Err(err).Str("provider", settings.Translation.Provider).Msg("translation disabled")
	case b != nil:
		backend = translation.NewBreakerBackend(b, logger)
	}

	return translation.NewService(backend, translation.WithLogger(logger))
}

// newSpeaker builds the speech adapter. Without an output the game runs
// silently.
func newSpeaker(settings cli.Settings, translator *translation.Service, logger zerolog.Logger) *speech.Speaker {
	output, err := speech.NewOutput(&settings.Speech)
	if err != nil {
		logger.Warn().Err(err).Str("provider", settings.Speech.Provider).Msg("speech output disabled")
		output = nil
	}

	return speech.NewSpeaker(output, translator,
		speech.WithMarkers(settings.FriendlyMarkers),
		speech.WithLogger(logger))
}

// newSpeechInput returns the configured recognizer, or nil when voice
// control is off or unavailable
func newSpeechInput(settings cli.Settings, logger zerolog.Logger) voice.SpeechInput {
	if settings.VoiceDisabled || settings.VoiceCommand == "" {
		return nil
	}

	recognizer, err := voice.NewProcessRecognizer(settings.VoiceCommand)
	if err != nil {
		logger.Warn().Err(err).Msg("voice control unavailable")
		return nil
	}
	return recognizer
}
