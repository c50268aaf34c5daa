package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// Groups holds model ids sorted by what kidsworld can use them for
type Groups struct {
	Speech      []string
	Translation []string
}

// Categorize sorts OpenAI model ids into speech and translation models.
// Image, embedding and moderation models are dropped.
func Categorize(ids []string) Groups {
	var g Groups
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts") || strings.Contains(id, "audio"):
			g.Speech = append(g.Speech, id)
		case strings.Contains(id, "gpt") || strings.Contains(id, "chat"):
			g.Translation = append(g.Translation, id)
		}
	}
	sort.Strings(g.Speech)
	sort.Strings(g.Translation)
	return g
}

// Lister handles listing available models
type Lister struct {
	openAIKey string
	geminiKey string
	client    *openai.Client
}

// NewLister creates a new model lister. Either key may be empty.
func NewLister(openAIKey, geminiKey string) *Lister {
	return &Lister{
		openAIKey: openAIKey,
		geminiKey: geminiKey,
		client:    openai.NewClient(openAIKey),
	}
}

// ListAvailableModels writes the models of every configured provider to w
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	if l.openAIKey == "" && l.geminiKey == "" {
		return fmt.Errorf("no API key found. Set OPENAI_API_KEY or GEMINI_API_KEY, or configure them in .kidsworld.yaml")
	}

	if l.openAIKey != "" {
		if err := l.listOpenAI(ctx, w); err != nil {
			return err
		}
	}
	if l.geminiKey != "" {
		if err := l.listGemini(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

func (l *Lister) listOpenAI(ctx context.Context, w io.Writer) error {
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list OpenAI models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	g := Categorize(ids)

	fmt.Fprintln(w, "Available OpenAI Models:")
	printGroup(w, "Text-to-Speech Models (--speech-provider openai)", g.Speech)
	printGroup(w, "Translation Models (--translation-provider openai)", g.Translation)
	return nil
}

func (l *Lister) listGemini(ctx context.Context, w io.Writer) error {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  l.geminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	var ids []string
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			return fmt.Errorf("failed to list Gemini models: %w", err)
		}
		if generatesContent(model.SupportedActions) {
			ids = append(ids, strings.TrimPrefix(model.Name, "models/"))
		}
	}
	sort.Strings(ids)

	fmt.Fprintln(w, "\nAvailable Gemini Models:")
	printGroup(w, "Translation Models (--translation-provider gemini)", ids)
	return nil
}

func generatesContent(actions []string) bool {
	for _, a := range actions {
		if a == "generateContent" {
			return true
		}
	}
	return false
}

func printGroup(w io.Writer, title string, ids []string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(ids) == 0 {
		fmt.Fprintln(w, "  No models found")
		return
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}
}
