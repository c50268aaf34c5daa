package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// ESpeakOutput speaks through the espeak-ng command line tool
type ESpeakOutput struct {
	variant string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewESpeakOutput checks that espeak-ng is installed and returns an output
// using the given voice variant (e.g. "f4"), or the plain voice when empty
func NewESpeakOutput(variant string) (*ESpeakOutput, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}
	return &ESpeakOutput{variant: variant}, nil
}

// Name returns the backend name
func (e *ESpeakOutput) Name() string {
	return "espeak"
}

// Voices lists the voices reported by espeak-ng --voices
func (e *ESpeakOutput) Voices(ctx context.Context) ([]Voice, error) {
	out, err := exec.CommandContext(ctx, "espeak-ng", "--voices").Output()
	if err != nil {
		return nil, fmt.Errorf("espeak-ng --voices failed: %w", err)
	}
	return parseESpeakVoices(out), nil
}

// Speak plays u on the default audio device
func (e *ESpeakOutput) Speak(ctx context.Context, u Utterance) error {
	if strings.TrimSpace(u.Text) == "" {
		return fmt.Errorf("text cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "espeak-ng", e.args(u)...)

	e.mu.Lock()
	e.cmd = cmd
	e.mu.Unlock()

	output, err := cmd.CombinedOutput()

	e.mu.Lock()
	if e.cmd == cmd {
		e.cmd = nil
	}
	e.mu.Unlock()

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}

// Cancel kills the running espeak-ng process
func (e *ESpeakOutput) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd != nil && e.cmd.Process != nil {
		e.cmd.Process.Kill()
	}
	e.cmd = nil
}

func (e *ESpeakOutput) args(u Utterance) []string {
	voice := strings.ToLower(u.Lang)
	if u.Voice != nil {
		voice = u.Voice.ID
		if voice == "" {
			voice = u.Voice.Name
		}
	}
	if voice == "" {
		voice = "en-us"
	}
	if e.variant != "" {
		voice += "+" + e.variant
	}

	return []string{
		"-v", voice,
		"-s", strconv.Itoa(espeakSpeed(u.Rate)),
		"-p", strconv.Itoa(espeakPitch(u.Pitch)),
		"-a", strconv.Itoa(espeakAmplitude(u.Volume)),
		u.Text,
	}
}

// espeakSpeed maps a relative rate to words per minute (80-450, 175 normal)
func espeakSpeed(rate float64) int {
	speed := int(175 * rate)
	if speed < 80 {
		speed = 80
	} else if speed > 450 {
		speed = 450
	}
	return speed
}

// espeakPitch maps a relative pitch to espeak's 0-99 scale (50 neutral)
func espeakPitch(pitch float64) int {
	p := int(50 * pitch)
	if p < 0 {
		p = 0
	} else if p > 99 {
		p = 99
	}
	return p
}

// espeakAmplitude maps volume 0-1 to espeak's 0-200 scale (100 normal)
func espeakAmplitude(volume float64) int {
	a := int(100 * volume)
	if a < 0 {
		a = 0
	} else if a > 200 {
		a = 200
	}
	return a
}

// parseESpeakVoices parses the table printed by espeak-ng --voices:
//
//	Pty Language       Age/Gender VoiceName          File          Other Languages
//	 5  en-us           --/M      English_(America)  gmw/en-US     (en 5)
func parseESpeakVoices(out []byte) []Voice {
	var voices []Voice
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[0] == "Pty" {
			continue
		}
		voices = append(voices, Voice{
			Name: strings.ReplaceAll(fields[3], "_", " "),
			Lang: fields[1],
			ID:   fields[1],
		})
	}
	return voices
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled() error {
	cmd := exec.Command("espeak-ng", "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %v: %w", err, ErrUnavailable)
	}
	return nil
}
