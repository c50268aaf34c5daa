package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the game until the player quits or ctx is cancelled. Every
// string received on voiceCommands is delivered as a voice command.
func Run(ctx context.Context, m Model, voiceCommands <-chan string) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case transcript, ok := <-voiceCommands:
				if !ok {
					return
				}
				p.Send(Voice(transcript))
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run the terminal UI: %w", err)
	}
	return nil
}
