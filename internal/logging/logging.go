// Package logging writes the diagnostic log. The terminal belongs to the
// game screen, so log lines go to a file in the state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/kidsworld/internal"
)

// EnvDir overrides the log directory when no flag is given
const EnvDir = "KIDSWORLD_LOG_DIR"

// FileName is the log file inside the log directory
const FileName = "kidsworld.log"

// ResolveDir picks the log directory: the flag value, then $KIDSWORLD_LOG_DIR,
// then the state directory. Relative paths are taken from the working
// directory.
func ResolveDir(flagPath string) (string, error) {
	for _, p := range []string{flagPath, os.Getenv(EnvDir)} {
		if p == "" {
			continue
		}
		if filepath.IsAbs(p) {
			return p, nil
		}
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(wd, p), nil
	}
	return internal.StateDir(), nil
}

// Open creates dir and returns a logger appending to its log file. The
// returned closer closes the file.
func Open(dir string, level zerolog.Level) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(f, level), f, nil
}

// New returns a logger writing plain console lines to w
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Int("pid", os.Getpid()).Logger()
}
