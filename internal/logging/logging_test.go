package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/kidsworld/internal/testutil"
)

func TestResolveDir(t *testing.T) {
	t.Setenv(EnvDir, "")

	abs := filepath.Join(t.TempDir(), "logs")
	if got, _ := ResolveDir(abs); got != abs {
		t.Errorf("Expected flag path %s, got %s", abs, got)
	}

	wd, _ := os.Getwd()
	if got, _ := ResolveDir("rel"); got != filepath.Join(wd, "rel") {
		t.Errorf("Expected relative flag resolved, got %s", got)
	}

	env := filepath.Join(t.TempDir(), "envlogs")
	t.Setenv(EnvDir, env)
	if got, _ := ResolveDir(""); got != env {
		t.Errorf("Expected env path %s, got %s", env, got)
	}
	if got, _ := ResolveDir(abs); got != abs {
		t.Errorf("Expected flag to win over env, got %s", got)
	}

	t.Setenv(EnvDir, "")
	if got, _ := ResolveDir(""); !strings.Contains(got, "kidsworld") {
		t.Errorf("Expected default state dir, got %s", got)
	}
}

func TestOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger, closer, err := Open(dir, zerolog.InfoLevel)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	logger.Info().Str("category", "BIRDS").Msg("learning started")
	logger.Debug().Msg("hidden")
	closer.Close()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "learning started") || !strings.Contains(content, "category=BIRDS") {
		t.Errorf("Unexpected log content: %q", content)
	}
	if strings.Contains(content, "hidden") {
		t.Error("Debug line must be filtered at info level")
	}
	if strings.Contains(content, "\x1b[") {
		t.Error("Log must not contain colour codes")
	}
}

func TestOpen_AppendsAcrossSessions(t *testing.T) {
	dir := t.TempDir()

	for _, msg := range []string{"first session", "second session"} {
		logger, closer, err := Open(dir, zerolog.InfoLevel)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		logger.Info().Msg(msg)
		closer.Close()
	}

	path := filepath.Join(dir, FileName)
	testutil.AssertFileContains(t, path, "first session")
	testutil.AssertFileContains(t, path, "second session")
}
