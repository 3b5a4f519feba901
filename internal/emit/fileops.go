package emit

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
)

// UpdateFile writes content to path, creating the file if needed. When the
// file already holds exactly content, nothing is written and the file's
// modification time is left untouched.
func UpdateFile(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return &FileUpdateError{Path: path, Err: err}
	}
	defer f.Close()

	current, err := io.ReadAll(f)
	if err != nil {
		return &FileUpdateError{Path: path, Err: err}
	}
	if bytes.Equal(current, content) {
		return nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return &FileUpdateError{Path: path, Err: err}
	}
	if err := f.Truncate(0); err != nil {
		return &FileUpdateError{Path: path, Err: err}
	}
	if _, err := f.Write(content); err != nil {
		return &FileUpdateError{Path: path, Err: err}
	}
	// Surface write-back errors here rather than at Close.
	if err := f.Sync(); err != nil {
		return &FileUpdateError{Path: path, Err: err}
	}
	return nil
}

// UnlinkFile removes path. A file that does not exist is not an error.
func UnlinkFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &FileRemovalError{Path: path, Err: err}
	}
	return nil
}

// EnsureDir creates the directory at path together with any missing
// parents.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return &DirectoryCreateError{Path: path, Err: err}
	}
	return nil
}
