// Package keystore writes generated key material to disk.
//
// Keys are written raw, one file per key, with a single full-buffer write.
// A key set is staged in temporary files and renamed into place together.
// Existing files are never replaced unless the caller asks for it, and the
// output directory must already exist.
package keystore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
)

// Suffixes of the files Save creates next to a target while replacing it.
const (
	tempSuffix   = ".tmp"
	backupSuffix = ".bak"
)

// Store persists key files on a filesystem.
type Store struct {
	fs afero.Fs
}

// New creates a Store backed by fs.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOS creates a Store backed by the operating system filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Paths joins each file name onto dir.
func Paths(dir string, names []string) []string {
	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths
}

// Existing returns the subset of paths that already exist.
func (s *Store) Existing(paths []string) ([]string, error) {
	var found []string
	for _, p := range paths {
		exists, err := afero.Exists(s.fs, p)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", p, err)
		}
		if exists {
			found = append(found, p)
		}
	}
	return found, nil
}

// Save writes files into dir and returns the written paths in order.
//
// Every file is first written in full to a temporary file next to its
// target. Targets are only touched once all temporary files are on disk, so a
// failed write leaves the directory as it was. When overwrite is false, Save
// refuses to start if any target already exists.
func (s *Store) Save(dir string, files []crypto.KeyFile, overwrite bool) ([]string, error) {
	if err := s.checkDir(dir); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	paths := Paths(dir, names)
	if !overwrite {
		existing, err := s.Existing(paths)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, fmt.Errorf("%w: %v", errors.ErrKeyExists, existing)
		}
	}

	temps := make([]string, 0, len(files))
	for i, f := range files {
		tmp := paths[i] + tempSuffix
		if err := s.writeTemp(tmp, f); err != nil {
			s.remove(temps)
			return nil, err
		}
		temps = append(temps, tmp)
	}

	if err := s.commit(paths, temps, overwrite); err != nil {
		return nil, err
	}
	return paths, nil
}

// commit moves every temporary file onto its target. Targets that already
// exist are moved aside first and put back if any rename fails, so the old
// key set survives intact or is replaced as a whole.
func (s *Store) commit(paths, temps []string, overwrite bool) error {
	var backedUp, committed []string
	restore := func() {
		s.remove(committed)
		for _, p := range backedUp {
			_ = s.fs.Rename(p+backupSuffix, p)
		}
		s.remove(temps)
	}

	for _, p := range paths {
		exists, err := afero.Exists(s.fs, p)
		if err != nil {
			restore()
			return fmt.Errorf("checking %s: %w", p, err)
		}
		if !exists {
			continue
		}
		if !overwrite {
			restore()
			return fmt.Errorf("%w: %s", errors.ErrKeyExists, p)
		}
		if err := s.fs.Rename(p, p+backupSuffix); err != nil {
			restore()
			return fmt.Errorf("moving aside %s: %w", p, err)
		}
		backedUp = append(backedUp, p)
	}

	for i, p := range paths {
		if err := s.fs.Rename(temps[i], p); err != nil {
			restore()
			return fmt.Errorf("renaming %s: %w", temps[i], err)
		}
		committed = append(committed, p)
	}

	for _, p := range backedUp {
		_ = s.fs.Remove(p + backupSuffix)
	}
	return nil
}

func (s *Store) checkDir(dir string) error {
	info, err := s.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", errors.ErrOutputNotDirectory, dir)
		}
		return fmt.Errorf("checking output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", errors.ErrOutputNotDirectory, dir)
	}
	return nil
}

// writeTemp writes f to path in one buffer and syncs it. A stale file left by
// an earlier crash is removed first; on failure nothing is left behind.
func (s *Store) writeTemp(path string, f crypto.KeyFile) error {
	_ = s.fs.Remove(path)

	file, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, f.Perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	writeErr := func() error {
		n, err := file.Write(f.Data)
		if err != nil {
			return err
		}
		if n != len(f.Data) {
			return fmt.Errorf("short write: %d of %d bytes", n, len(f.Data))
		}
		return file.Sync()
	}()

	closeErr := file.Close()
	if writeErr == nil && closeErr == nil {
		// OpenFile's perm is subject to umask and ignored for existing files.
		writeErr = s.fs.Chmod(path, f.Perm)
	}
	if writeErr != nil || closeErr != nil {
		_ = s.fs.Remove(path)
	}
	if writeErr != nil {
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", path, closeErr)
	}
	return nil
}

func (s *Store) remove(paths []string) {
	for _, p := range paths {
		_ = s.fs.Remove(p)
	}
}
