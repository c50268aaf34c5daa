package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kidsworld/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kidsworld",
		Short: "Kids Learning World in your terminal",
		Long: `kidsworld is a learning game for small children.

Pick a category, flip through its flashcards while they are read aloud,
then find the right picture in a short quiz to earn stars. Spoken commands
like "next", "repeat" or "go back" work on every screen when a speech
recognizer is configured.

Examples:
  kidsworld                              # Start the game
  kidsworld --language es                # Play in Spanish
  kidsworld --translation-provider none  # Play without translations
  kidsworld --voice-command "my-stt"     # Read spoken commands from my-stt`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.kidsworld.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.StateDir, "state", internal.StateDir(), "Directory for the progress database and caches")
	cmd.Flags().StringVar(&flags.CatalogFile, "catalog", "", "YAML or JSON file replacing the built-in categories")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", "", "Language code to play in (en, es, fr, hi, ar, zh, de, pt, ja, ru)")
	cmd.Flags().StringVar(&flags.LogDir, "log-dir", "", "Log directory (default is $KIDSWORLD_LOG_DIR or the state directory)")
	cmd.Flags().BoolVar(&flags.ResetProgress, "reset-progress", false, "Archive the saved progress and start over")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	// Translation flags
	cmd.Flags().StringVar(&flags.TranslationProvider, "translation-provider", flags.TranslationProvider, "Translation provider: gemini, openai or none")
	cmd.Flags().StringVar(&flags.TranslationModel, "translation-model", "", "Translation model (default depends on the provider)")

	// Speech flags
	cmd.Flags().StringVar(&flags.SpeechProvider, "speech-provider", flags.SpeechProvider, "Speech provider: espeak, openai or none")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse")

	// Voice control flags
	cmd.Flags().StringVar(&flags.VoiceCommand, "voice-command", "", "Speech recognizer command printing one transcript per line")
	cmd.Flags().BoolVar(&flags.NoVoice, "no-voice", false, "Disable spoken commands")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("storage.path", cmd.Flags().Lookup("state"))
	viper.BindPFlag("catalog.file", cmd.Flags().Lookup("catalog"))
	viper.BindPFlag("language", cmd.Flags().Lookup("language"))
	viper.BindPFlag("log.dir", cmd.Flags().Lookup("log-dir"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("translation-provider"))
	viper.BindPFlag("translation.model", cmd.Flags().Lookup("translation-model"))
	viper.BindPFlag("speech.provider", cmd.Flags().Lookup("speech-provider"))
	viper.BindPFlag("speech.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("voice.command", cmd.Flags().Lookup("voice-command"))
	viper.BindPFlag("voice.disabled", cmd.Flags().Lookup("no-voice"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".kidsworld" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kidsworld")
	}

	// Environment variables
	viper.SetEnvPrefix("KIDSWORLD")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return viper.GetString("translation.gemini_key")
}
