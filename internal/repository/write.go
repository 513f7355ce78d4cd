package repository

import (
	"os"
	"path/filepath"
)

// writeFile truncates path and writes data in place. A failure midway can
// leave the file partially written.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &FileError{Op: "write", File: filepath.Base(path), Err: err}
	}
	return nil
}

// writeFileAtomic writes data to a sibling temp file and renames it over
// path, so a reader never sees a half-written file. It gives no guarantee
// across several files.
func writeFileAtomic(path string, data []byte) error {
	name := filepath.Base(path)
	tmpPath := path + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return &FileError{Op: "write", File: name, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return &FileError{Op: "write", File: name, Err: err}
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return &FileError{Op: "write", File: name, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &FileError{Op: "write", File: name, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &FileError{Op: "write", File: name, Err: err}
	}
	return nil
}
