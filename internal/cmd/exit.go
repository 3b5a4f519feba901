// Package cmd provides command implementations for the osiris-platform CLI.
package cmd

// Exit codes of the CLI process.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates a reported operational error.
	ExitGeneralError = 1

	// ExitUsageError indicates argument parsing failed.
	ExitUsageError = 2
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitUsageError:
		return "Usage Error"
	default:
		return "Unknown"
	}
}
