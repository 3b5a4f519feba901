package cargo

import (
	"errors"
	"os"
	"os/exec"
)

// ExecRunner runs commands as real subprocesses. Standard error is passed
// through to the caller's stream so cargo diagnostics remain visible.
type ExecRunner struct{}

// Output implements Runner.
func (ExecRunner) Output(dir, name string, args ...string) ([]byte, int, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	stdout, err := cmd.Output()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return stdout, 0, nil
	case errors.As(err, &exitErr):
		return stdout, exitErr.ExitCode(), nil
	default:
		return nil, 0, err
	}
}
