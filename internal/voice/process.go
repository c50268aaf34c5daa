package voice

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ProcessRecognizer runs an external speech-to-text command that prints one
// final transcript per line on stdout, e.g. a streaming vosk or whisper.cpp
// wrapper. The session ends when the process exits.
type ProcessRecognizer struct {
	name string
	args []string
}

// NewProcessRecognizer parses command into a program and its arguments
func NewProcessRecognizer(command string) (*ProcessRecognizer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no voice command configured: %w", ErrUnavailable)
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", fields[0], ErrUnavailable)
	}
	return &ProcessRecognizer{name: fields[0], args: fields[1:]}, nil
}

// Name returns the program name
func (p *ProcessRecognizer) Name() string {
	return p.name
}

// Recognize runs the program until it exits or ctx is done
func (p *ProcessRecognizer) Recognize(ctx context.Context, emit func(string)) error {
	cmd := exec.CommandContext(ctx, p.name, p.args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open recognizer output: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.name, err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			emit(line)
		}
	}
	scanErr := scanner.Err()

	if err := cmd.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("%s exited: %w", p.name, err)
	}
	if scanErr != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to read %s output: %w", p.name, scanErr)
	}
	return nil
}
