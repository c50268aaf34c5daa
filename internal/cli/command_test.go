package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kidsworld/internal"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "kidsworld" {
		t.Errorf("Expected Use to be 'kidsworld', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Kids Learning World") {
		t.Errorf("Expected Short description to contain 'Kids Learning World'")
	}

	if cmd.Version != internal.Version {
		t.Errorf("Expected version %s, got %s", internal.Version, cmd.Version)
	}

	flagNames := []string{
		"config", "state", "catalog", "language", "log-dir", "reset-progress",
		"list-models", "translation-provider", "translation-model",
		"speech-provider", "openai-voice", "voice-command", "no-voice",
	}

	for _, name := range flagNames {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := CreateRootCommand(NewFlags())
	if err := cmd.Args(cmd, []string{"extra"}); err == nil {
		t.Error("Expected an error for positional arguments")
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	stateFlag := cmd.Flags().Lookup("state")
	if stateFlag == nil {
		t.Fatal("state flag not found")
	}
	if stateFlag.DefValue != internal.StateDir() {
		t.Errorf("Expected default state dir to be %s, got %s", internal.StateDir(), stateFlag.DefValue)
	}

	providerFlag := cmd.Flags().Lookup("translation-provider")
	if providerFlag == nil {
		t.Fatal("translation-provider flag not found")
	}
	if providerFlag.DefValue != "gemini" {
		t.Errorf("Expected default translation provider to be gemini, got %s", providerFlag.DefValue)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		wantLang  string
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `language: fr
translation:
  provider: openai
  openai_key: test-key
storage:
  path: /test/state`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			wantLang: "fr",
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			InitConfig(tt.setupFunc(t))

			t.Setenv("KIDSWORLD_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			if tt.wantLang != "" && viper.GetString("language") != tt.wantLang {
				t.Errorf("Expected language %s, got %s", tt.wantLang, viper.GetString("language"))
			}
		})
	}
}

func TestGetOpenAIKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{"from environment", "env-test-key", "config-test-key", "env-test-key"},
		{"from config when no env", "", "config-test-key", "config-test-key"},
		{"empty when neither set", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Setenv("OPENAI_API_KEY", tt.envKey)

			if tt.configKey != "" {
				viper.Set("translation.openai_key", tt.configKey)
			}

			if got := GetOpenAIKey(); got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetGeminiKey(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		gemini    string
		google    string
		configKey string
		expected  string
	}{
		{"gemini env first", "gemini-key", "google-key", "config-key", "gemini-key"},
		{"google env second", "", "google-key", "config-key", "google-key"},
		{"config last", "", "", "config-key", "config-key"},
		{"empty", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Setenv("GEMINI_API_KEY", tt.gemini)
			t.Setenv("GOOGLE_API_KEY", tt.google)
			if tt.configKey != "" {
				viper.Set("translation.gemini_key", tt.configKey)
			}

			if got := GetGeminiKey(); got != tt.expected {
				t.Errorf("GetGeminiKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("state", "/test/state")
	cmd.Flags().Set("translation-provider", "openai")
	cmd.Flags().Set("no-voice", "true")

	bindFlagsToViper(cmd)

	if viper.GetString("storage.path") != "/test/state" {
		t.Errorf("Expected storage.path to be /test/state, got %s", viper.GetString("storage.path"))
	}

	if viper.GetString("translation.provider") != "openai" {
		t.Errorf("Expected translation.provider to be openai, got %s", viper.GetString("translation.provider"))
	}

	if !viper.GetBool("voice.disabled") {
		t.Error("Expected voice.disabled to be true")
	}
}
