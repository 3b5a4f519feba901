package manifest

import "fmt"

// ParseError indicates the manifest document is syntactically malformed, or a
// scalar could not be converted to its declared type. It is fatal; there is no
// recovery path.
type ParseError struct {
	// Path is the manifest file path, empty when parsing from memory.
	Path string

	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot parse platform manifest %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot parse platform manifest: %v", e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError indicates semantically invalid manifest content. Key names
// the offending manifest key, Reason the violated constraint.
type ValidationError struct {
	Key    string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid platform manifest: key '%s' %s", e.Key, e.Reason)
}

// MissingKeyError indicates a key that is required for view resolution but
// absent from the manifest. Key is the manifest key relative to its table,
// e.g. ".namespace" or ".min-sdk".
type MissingKeyError struct {
	Key string
}

// Error implements the error interface.
func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("manifest configuration missing '%s'", e.Key)
}
