package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// Player plays audio files with a platform audio tool
type Player struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

// playerCommand picks the command line to play file on this platform
func playerCommand(ctx context.Context, file string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.CommandContext(ctx, "afplay", file), nil
	case "linux":
		// mpg123 first since it handles MP3 files best
		if _, err := exec.LookPath("mpg123"); err == nil {
			return exec.CommandContext(ctx, "mpg123", "-q", file), nil
		} else if _, err := exec.LookPath("ffplay"); err == nil {
			return exec.CommandContext(ctx, "ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", file), nil
		} else if _, err := exec.LookPath("play"); err == nil {
			return exec.CommandContext(ctx, "play", "-q", file), nil
		} else if _, err := exec.LookPath("paplay"); err == nil {
			return exec.CommandContext(ctx, "paplay", file), nil
		}
		return nil, fmt.Errorf("no audio player found. Install mpg123, ffplay, sox or paplay: %w", ErrUnavailable)
	default:
		return nil, fmt.Errorf("unsupported platform: %s: %w", runtime.GOOS, ErrUnavailable)
	}
}

// Play blocks until file has played, ctx is done or Stop is called
func (p *Player) Play(ctx context.Context, file string) error {
	cmd, err := playerCommand(ctx, file)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.cmd = cmd
	p.mu.Unlock()

	err = cmd.Run()

	p.mu.Lock()
	if p.cmd == cmd {
		p.cmd = nil
	}
	p.mu.Unlock()

	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("audio playback failed: %w", err)
	}
	return ctx.Err()
}

// Stop kills the running player process
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
	p.cmd = nil
}
