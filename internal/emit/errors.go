package emit

import (
	"errors"
	"fmt"
)

// ErrAlready indicates the platform integration is already present and
// updating was not allowed by the caller.
var ErrAlready = errors.New("platform code already present")

// PlatformDirectoryError indicates the platform directory cannot be accessed,
// or exists but is not a directory.
type PlatformDirectoryError struct {
	Path string
}

// Error implements the error interface.
func (e *PlatformDirectoryError) Error() string {
	return fmt.Sprintf("failed to access platform directory %q", e.Path)
}

// DirectoryCreateError indicates creation of a directory failed.
type DirectoryCreateError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("failed to create directory %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *DirectoryCreateError) Unwrap() error { return e.Err }

// FileUpdateError indicates updating a file failed.
type FileUpdateError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileUpdateError) Error() string {
	return fmt.Sprintf("failed to update %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *FileUpdateError) Unwrap() error { return e.Err }

// FileRemovalError indicates removing a file failed for a reason other than
// the file not existing.
type FileRemovalError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileRemovalError) Error() string {
	return fmt.Sprintf("failed to remove %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *FileRemovalError) Unwrap() error { return e.Err }
