// Package fileutil rewrites chord sheets in place without leaving torn files
// behind when two writers race or the process dies mid-write.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another process holds the rewrite lock for a file.
var ErrLocked = errors.New("file is locked by another writer")

// LockPath returns the sidecar lock file guarding path. The sidecar is left
// in place after a rewrite: unlinking it would let a waiter lock the removed
// inode while a newcomer locks a fresh one.
func LockPath(path string) string {
	return path + ".lock"
}

// RewriteLocked replaces the contents of path with transform(current). It holds
// an advisory lock on the sidecar file for the duration, writes the result to
// a temp file in the same directory, and renames it over the original so
// readers see either the old or the new text. The original file mode is kept.
// When transform returns an error the file is left untouched.
func RewriteLocked(path string, transform func([]byte) ([]byte, error)) error {
	_, err := rewrite(path, "", transform)
	return err
}

// RewriteLockedWithBackup is RewriteLocked that also saves the contents the
// transform saw to path+suffix before replacing path. The backup is written
// under the same lock and only once transform has succeeded.
func RewriteLockedWithBackup(path, suffix string, transform func([]byte) ([]byte, error)) (string, error) {
	if suffix == "" {
		return "", errors.New("backup suffix is required")
	}
	return rewrite(path, suffix, transform)
}

func rewrite(path, backupSuffix string, transform func([]byte) ([]byte, error)) (backup string, err error) {
	lock := flock.New(LockPath(path))
	ok, err := lock.TryLock()
	if err != nil {
		return "", fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("%s: %w", path, ErrLocked)
	}
	defer func() {
		if unlockErr := lock.Unlock(); err == nil && unlockErr != nil {
			err = fmt.Errorf("release lock: %w", unlockErr)
		}
	}()

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	current, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	updated, err := transform(current)
	if err != nil {
		return "", err
	}

	if backupSuffix != "" {
		backup = path + backupSuffix
		if err := writeFileAtomic(backup, current, info.Mode().Perm()); err != nil {
			return "", fmt.Errorf("backup %s: %w", path, err)
		}
	}
	if err := writeFileAtomic(path, updated, info.Mode().Perm()); err != nil {
		return "", err
	}
	return backup, nil
}

// writeFileAtomic writes data to a synced temp file beside path and renames
// it into place with the given mode.
func writeFileAtomic(path string, data []byte, mode os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
