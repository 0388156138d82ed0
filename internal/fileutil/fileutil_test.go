package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
)

func TestRewriteLocked(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.txt")
	if err := os.WriteFile(path, []byte("Am D G\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := RewriteLocked(path, func(b []byte) ([]byte, error) {
		return []byte(strings.ToLower(string(b))), nil
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "am d g\n" {
		t.Fatalf("content mismatch: got %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600 kept, got %o", info.Mode().Perm())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if strings.Join(names, ",") != "song.txt,song.txt.lock" {
		t.Fatalf("expected the rewritten file and its lock, got %v", names)
	}
}

func TestRewriteLockedKeepsLockInode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.txt")
	if err := os.WriteFile(path, []byte("C"), 0o644); err != nil {
		t.Fatal(err)
	}
	identity := func(b []byte) ([]byte, error) { return b, nil }

	if err := RewriteLocked(path, identity); err != nil {
		t.Fatal(err)
	}
	before, err := os.Stat(LockPath(path))
	if err != nil {
		t.Fatalf("lock file should survive a rewrite: %v", err)
	}

	// A writer that opened the sidecar earlier must still exclude later ones.
	holder := flock.New(LockPath(path))
	ok, err := holder.TryLock()
	if err != nil || !ok {
		t.Fatalf("hold lock: ok=%v err=%v", ok, err)
	}
	if err := RewriteLocked(path, identity); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked while held, got %v", err)
	}
	if err := holder.Unlock(); err != nil {
		t.Fatal(err)
	}

	if err := RewriteLocked(path, identity); err != nil {
		t.Fatal(err)
	}
	after, err := os.Stat(LockPath(path))
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(before, after) {
		t.Fatal("lock file was replaced between rewrites")
	}
}

func TestRewriteLockedTransformErrorLeavesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.txt")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := RewriteLocked(path, func([]byte) ([]byte, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected transform error, got %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "original" {
		t.Fatalf("file changed on error: %q", got)
	}
}

func TestRewriteLockedBusy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.txt")
	if err := os.WriteFile(path, []byte("C"), 0o644); err != nil {
		t.Fatal(err)
	}

	holder := flock.New(LockPath(path))
	ok, err := holder.TryLock()
	if err != nil || !ok {
		t.Fatalf("hold lock: ok=%v err=%v", ok, err)
	}
	defer holder.Unlock() //nolint:errcheck

	err = RewriteLocked(path, func(b []byte) ([]byte, error) { return b, nil })
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestRewriteLockedMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	if err := RewriteLocked(path, func(b []byte) ([]byte, error) { return b, nil }); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRewriteLockedWithBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.txt")
	if err := os.WriteFile(path, []byte("G C D"), 0o640); err != nil {
		t.Fatal(err)
	}

	var seen string
	dst, err := RewriteLockedWithBackup(path, ".orig", func(b []byte) ([]byte, error) {
		seen = string(b)
		return []byte("A D E"), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if dst != path+".orig" {
		t.Fatalf("unexpected backup path %q", dst)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != seen || seen != "G C D" {
		t.Fatalf("backup = %q, transform saw %q", got, seen)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Fatalf("expected backup mode 0640, got %o", info.Mode().Perm())
	}
	rewritten, _ := os.ReadFile(path)
	if string(rewritten) != "A D E" {
		t.Fatalf("content mismatch: got %q", rewritten)
	}
}

func TestRewriteLockedWithBackupSkipsOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.txt")
	if err := os.WriteFile(path, []byte("G C D"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	_, err := RewriteLockedWithBackup(path, ".orig", func([]byte) ([]byte, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected transform error, got %v", err)
	}
	if _, err := os.Stat(path + ".orig"); !os.IsNotExist(err) {
		t.Fatalf("backup written for failed rewrite, stat err = %v", err)
	}
}

func TestRewriteLockedWithBackupNeedsSuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.txt")
	if _, err := RewriteLockedWithBackup(path, "", func(b []byte) ([]byte, error) { return b, nil }); err == nil {
		t.Fatal("expected error for empty suffix")
	}
}
