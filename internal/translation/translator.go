package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when a backend answers with no text
var ErrEmptyResponse = errors.New("no translation returned")

// Backend performs a single remote translation call
type Backend interface {
	// Translate returns the translated word for text in lang
	Translate(ctx context.Context, text string, lang Language) (string, error)

	// Name returns the backend name
	Name() string
}

// Config selects and configures a translation backend
type Config struct {
	Provider  string // "gemini", "openai" or "none"
	Model     string
	GeminiKey string
	OpenAIKey string
}

// DefaultConfig returns the default backend configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
	}
}

// NewBackend creates the backend named by config.Provider. A nil Backend
// with nil error means translation is switched off.
func NewBackend(ctx context.Context, config *Config) (Backend, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiBackend(ctx, config.GeminiKey, config.Model)
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIBackend(config.OpenAIKey, config.Model), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}

// Prompt builds the instruction sent to a text-generation backend
func Prompt(text string, lang Language) string {
	return fmt.Sprintf("Translate the following word for a toddler learning game into %s (language code %s). Only return the translated word: %q",
		lang.Name, lang.Code, text)
}

// GeminiBackend translates with the Gemini API
type GeminiBackend struct {
	client *genai.Client
	model  string
}

// NewGeminiBackend creates a Gemini translation backend
func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	if model == "" || !strings.HasPrefix(model, "gemini") {
		model = DefaultConfig().Model
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiBackend{client: client, model: model}, nil
}

// Translate asks Gemini for a single translated word
func (b *GeminiBackend) Translate(ctx context.Context, text string, lang Language) (string, error) {
	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(Prompt(text, lang)), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", ErrEmptyResponse
	}
	return translation, nil
}

// Name returns the backend name
func (b *GeminiBackend) Name() string {
	return "gemini"
}

// OpenAIBackend translates with an OpenAI chat model
type OpenAIBackend struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIBackend creates an OpenAI translation backend
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	if model == "" || strings.HasPrefix(model, "gemini") {
		model = openai.GPT4oMini
	}
	return &OpenAIBackend{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Translate asks the chat model for a single translated word
func (b *OpenAIBackend) Translate(ctx context.Context, text string, lang Language) (string, error) {
	if b.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: Prompt(text, lang),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", ErrEmptyResponse
	}
	return translation, nil
}

// Name returns the backend name
func (b *OpenAIBackend) Name() string {
	return "openai"
}
