package store

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// readFile reads the file at path; a missing file yields (nil, nil).
func readFile(fs afero.Fs, path string) ([]byte, error) {
	b, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(fs afero.Fs, path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := afero.TempFile(fs, dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Removes the temp file if anything fails before rename.
	defer func() { _ = fs.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := fs.Chmod(tmp, mode); err != nil {
		return err
	}

	return fs.Rename(tmp, path)
}
