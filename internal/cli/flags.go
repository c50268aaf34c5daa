package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	StateDir      string
	CatalogFile   string
	Language      string
	LogDir        string
	ResetProgress bool
	ListModels    bool

	// Translation flags
	TranslationProvider string
	TranslationModel    string

	// Speech flags
	SpeechProvider string
	OpenAIVoice    string

	// Voice control flags
	VoiceCommand string
	NoVoice      bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		TranslationProvider: "gemini",
		SpeechProvider:      "espeak",
		OpenAIVoice:         "nova",
	}
}
