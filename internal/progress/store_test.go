package progress

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/kidsworld/internal/testutil"
)

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(NewMemoryKV(), "", zerolog.Nop())

	if got := s.Load(); !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Expected defaults, got %+v", got)
	}
}

func TestStore_LoadMalformed(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set(StorageKey, "not json at all")
	s := NewStore(kv, "", zerolog.Nop())

	if got := s.Load(); !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Expected defaults, got %+v", got)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	kv := NewMemoryKV()
	s := NewStore(kv, "", zerolog.Nop())

	want := UserProgress{Stars: 7, CompletedCategories: []string{"numbers"}, Level: 2, Language: "de"}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, ok, _ := kv.Get(StorageKey)
	if !ok || !strings.Contains(raw, `"completedCategories":["numbers"]`) {
		t.Errorf("Unexpected stored blob: %s", raw)
	}

	if got := s.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "progress.db")

	kv, err := OpenSQLiteKV(path)
	if err != nil {
		t.Fatalf("OpenSQLiteKV failed: %v", err)
	}

	if _, ok, err := kv.Get("missing"); ok || err != nil {
		t.Errorf("Expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set("k", "one"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("k", "two"); err != nil {
		t.Fatalf("Set overwrite failed: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLiteKV(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	if v, ok, err := reopened.Get("k"); !ok || err != nil || v != "two" {
		t.Errorf("Get(k) = %q, %v, %v", v, ok, err)
	}
}

func TestStore_ResetArchivesDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.db")

	kv, err := OpenSQLiteKV(path)
	if err != nil {
		t.Fatalf("OpenSQLiteKV failed: %v", err)
	}
	s := NewStore(kv, "", zerolog.Nop())
	defer s.Close()

	if err := s.Save(UserProgress{Stars: 9, Level: 3, Language: "es"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	p, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if !reflect.DeepEqual(p, Defaults()) {
		t.Errorf("Expected defaults after reset, got %+v", p)
	}
	if got := s.Load(); !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Expected defaults loaded after reset, got %+v", got)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "progress-") {
		t.Errorf("Expected one archived progress database, got %v", entries)
	}
}

func TestArchiveFile_NonExistent(t *testing.T) {
	_, err := ArchiveFile(filepath.Join(t.TempDir(), "nope.db"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveFile_Multiple(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.db")

	var archived []string
	for i := 0; i < 2; i++ {
		testutil.CreateTestFile(t, path, []byte("data"))
		dest, err := ArchiveFile(path)
		if err != nil {
			t.Fatalf("ArchiveFile failed on iteration %d: %v", i, err)
		}
		testutil.AssertFileExists(t, dest)
		testutil.AssertFileNotExists(t, path)
		archived = append(archived, dest)
	}

	if n := testutil.CountFiles(t, filepath.Join(dir, "archive")); n != 2 {
		t.Fatalf("Expected 2 archives, got %d", n)
	}
	if archived[0] == archived[1] {
		t.Error("Archive names are not unique")
	}
}
