package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func setupRecentTest(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test isolates config via XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{0}, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRecentEmptyWhenMissing(t *testing.T) {
	setupRecentTest(t)

	got, err := LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("LoadRecent() = %v, want empty", got)
	}
}

func TestRecentMostRecentFirst(t *testing.T) {
	setupRecentTest(t)
	dir := t.TempDir()

	a := touch(t, dir, "a.bin")
	b := touch(t, dir, "b.bin")

	if err := AddRecent(a); err != nil {
		t.Fatal(err)
	}
	if err := AddRecent(b); err != nil {
		t.Fatal(err)
	}

	got, err := LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error = %v", err)
	}
	if len(got) != 2 || got[0] != b || got[1] != a {
		t.Errorf("LoadRecent() = %v, want [%s %s]", got, b, a)
	}

	// Re-adding an existing entry promotes it without duplicating.
	if err := AddRecent(a); err != nil {
		t.Fatal(err)
	}
	got, _ = LoadRecent()
	if len(got) != 2 || got[0] != a {
		t.Errorf("after promotion LoadRecent() = %v, want %s first", got, a)
	}
}

func TestRecentDropsStaleEntries(t *testing.T) {
	setupRecentTest(t)
	dir := t.TempDir()

	keep := touch(t, dir, "keep.bin")
	gone := touch(t, dir, "gone.bin")
	if err := AddRecent(keep); err != nil {
		t.Fatal(err)
	}
	if err := AddRecent(gone); err != nil {
		t.Fatal(err)
	}

	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}

	got, err := LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error = %v", err)
	}
	if len(got) != 1 || got[0] != keep {
		t.Errorf("LoadRecent() = %v, want only %s", got, keep)
	}
}

func TestRecentCap(t *testing.T) {
	setupRecentTest(t)
	dir := t.TempDir()

	var paths []string
	for i := 0; i < MaxRecentFiles+3; i++ {
		p := touch(t, dir, "f"+string(rune('a'+i))+".bin")
		paths = append(paths, p)
		if err := AddRecent(p); err != nil {
			t.Fatal(err)
		}
	}

	got, err := LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error = %v", err)
	}
	if len(got) != MaxRecentFiles {
		t.Errorf("LoadRecent() returned %d entries, want %d", len(got), MaxRecentFiles)
	}
	if got[0] != paths[len(paths)-1] {
		t.Errorf("first entry = %s, want most recent %s", got[0], paths[len(paths)-1])
	}
}
