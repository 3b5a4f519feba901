// Package cargo queries the cargo build tool for workspace metadata.
//
// The binary is expected to run as a cargo sub-command, in which case cargo
// advertises its own location through the CARGO environment variable. The
// metadata query shells out to `cargo metadata` and extracts the fields the
// platform operations need.
package cargo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	// ErrStandalone indicates the binary does not run as a cargo
	// sub-command, so no cargo instance is available for queries.
	ErrStandalone = errors.New("not running as cargo sub-command")

	// ErrFailed indicates cargo ran but exited with a failure status.
	ErrFailed = errors.New("cargo failed executing")

	// ErrUnicode indicates cargo returned data that is not valid UTF-8.
	ErrUnicode = errors.New("cargo returned invalid unicode data")

	// ErrJSON indicates cargo returned data that is not valid JSON.
	ErrJSON = errors.New("cargo returned invalid JSON data")

	// ErrData indicates the cargo metadata lacks required fields.
	ErrData = errors.New("cargo metadata lacks required fields")
)

// ExecError indicates execution of cargo could not commence.
type ExecError struct {
	Bin string
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to invoke %q: %v", e.Bin, e.Err)
}

// Unwrap returns the underlying execution error.
func (e *ExecError) Unwrap() error { return e.Err }

// Runner executes an external command. It exists so tests can substitute the
// real subprocess with a fake.
type Runner interface {
	// Output runs name with args in dir and returns the captured
	// standard output and the process exit code. A non-nil error means
	// execution could not commence at all.
	Output(dir, name string, args ...string) (stdout []byte, code int, err error)
}

// Metadata is the subset of the cargo workspace metadata consumed by the
// platform operations.
type Metadata struct {
	// TargetDirectory is the root of cargo's build artifacts. Platform
	// scratch directories are placed below it.
	TargetDirectory string
}

type rawMetadata struct {
	TargetDirectory *string `json:"target_directory"`
}

// Query obtains the workspace metadata for the cargo workspace at dir by
// running `cargo metadata`. The cargo binary is taken from the CARGO
// environment variable, which cargo sets for its sub-commands.
func Query(runner Runner, dir string) (*Metadata, error) {
	bin := os.Getenv("CARGO")
	if bin == "" {
		return nil, ErrStandalone
	}

	stdout, code, err := runner.Output(dir, bin, "metadata", "--format-version", "1", "--no-deps")
	if err != nil {
		return nil, &ExecError{Bin: bin, Err: err}
	}
	if code != 0 {
		return nil, ErrFailed
	}

	if !utf8.Valid(stdout) {
		return nil, ErrUnicode
	}

	var raw rawMetadata
	if err := json.Unmarshal(stdout, &raw); err != nil {
		return nil, ErrJSON
	}
	if raw.TargetDirectory == nil {
		return nil, ErrData
	}

	return &Metadata{TargetDirectory: *raw.TargetDirectory}, nil
}
