package speech

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"
)

// openAIVoices are the built-in OpenAI TTS voices. They are multilingual,
// so none is bound to a locale.
var openAIVoices = []string{"alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"}

// OpenAIOutput synthesizes speech with OpenAI TTS and plays it locally
type OpenAIOutput struct {
	client *openai.Client
	config *Config
	player *Player
}

// NewOpenAIOutput creates an OpenAI TTS output
func NewOpenAIOutput(config *Config) (*OpenAIOutput, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if config.OpenAIModel == "" {
		config.OpenAIModel = DefaultConfig().OpenAIModel
	}
	if config.OpenAIVoice == "" {
		config.OpenAIVoice = DefaultConfig().OpenAIVoice
	}

	if config.CacheDir != "" {
		if err := os.MkdirAll(config.CacheDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	return &OpenAIOutput{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
		player: &Player{},
	}, nil
}

// Name returns the backend name
func (o *OpenAIOutput) Name() string {
	return "openai"
}

// Voices returns nothing so the configured voice is always used
func (o *OpenAIOutput) Voices(ctx context.Context) ([]Voice, error) {
	return nil, nil
}

// Speak synthesizes u to an MP3 file and plays it
func (o *OpenAIOutput) Speak(ctx context.Context, u Utterance) error {
	file, cleanup, err := o.synthesize(ctx, u)
	if err != nil {
		return err
	}
	defer cleanup()

	return o.player.Play(ctx, file)
}

// Cancel stops playback
func (o *OpenAIOutput) Cancel() {
	o.player.Stop()
}

func (o *OpenAIOutput) synthesize(ctx context.Context, u Utterance) (string, func(), error) {
	noop := func() {}

	if o.config.CacheDir != "" {
		cacheFile := o.cacheFilePath(u)
		if _, err := os.Stat(cacheFile); err == nil {
			return cacheFile, noop, nil
		}
	}

	voice := o.config.OpenAIVoice
	if u.Voice != nil && u.Voice.Name != "" {
		voice = u.Voice.Name
	}

	speed := u.Rate
	if speed <= 0 {
		speed = 1
	}

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.config.OpenAIModel),
		Input:          u.Text,
		Voice:          openai.SpeechVoice(voice),
		Speed:          speed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}
	if o.config.OpenAIModel == "gpt-4o-mini-tts" {
		req.Instructions = instructions(u)
	}

	response, err := o.client.CreateSpeech(ctx, req)
	if err != nil {
		return "", noop, fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	var out *os.File
	if o.config.CacheDir != "" {
		path := o.cacheFilePath(u)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", noop, fmt.Errorf("failed to create cache directory: %w", err)
		}
		out, err = os.Create(path)
	} else {
		out, err = os.CreateTemp("", "kidsworld-*.mp3")
	}
	if err != nil {
		return "", noop, fmt.Errorf("failed to create audio file: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, response)
	if err != nil || written == 0 {
		os.Remove(out.Name())
		if err == nil {
			err = fmt.Errorf("no audio data received from OpenAI")
		}
		return "", noop, fmt.Errorf("failed to write audio file: %w", err)
	}

	if o.config.CacheDir != "" {
		return out.Name(), noop, nil
	}
	name := out.Name()
	return name, func() { os.Remove(name) }, nil
}

// instructions describes the child-directed delivery for gpt-4o-mini-tts
func instructions(u Utterance) string {
	tone := "Speak in a bright, cheerful and slightly high voice for a small child."
	if u.Pitch < PhraseParams.Pitch {
		tone = "Imitate the animal sound playfully and slowly for a small child."
	}
	return fmt.Sprintf("%s The language is %s. Pronounce every word clearly.", tone, u.Lang)
}

// cacheFilePath returns the cache location for an utterance
func (o *OpenAIOutput) cacheFilePath(u Utterance) string {
	h := md5.New()
	h.Write([]byte(u.Text))
	h.Write([]byte(u.Lang))
	h.Write([]byte(o.config.OpenAIModel))
	h.Write([]byte(o.config.OpenAIVoice))
	h.Write([]byte(fmt.Sprintf("%.2f/%.2f", u.Rate, u.Pitch)))
	hash := hex.EncodeToString(h.Sum(nil))

	// Use first 2 chars as subdirectory for better file system performance
	return filepath.Join(o.config.CacheDir, hash[:2], hash[2:]+".mp3")
}
