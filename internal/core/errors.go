package core

import "fmt"

// Process exit codes.
const (
	ExitOK              = 0
	ExitBusUnavailable  = 1
	ExitRegistrarHandle = 2
	ExitPropertyHandle  = 3
	ExitControlHandle   = 4
	ExitUsage           = 127
)

// CLIError carries a user-visible message and exit code.
type CLIError struct {
	Code int
	Msg  string
	Err  error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *CLIError) Unwrap() error { return e.Err }

// WrapError creates a CLIError with an underlying error.
func WrapError(code int, msg string, err error) *CLIError {
	return &CLIError{Code: code, Msg: msg, Err: err}
}

// ExitCode returns the process exit code for err. Errors without a code
// escape only from argument parsing, so they count as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if cliErr, ok := err.(*CLIError); ok {
		return cliErr.Code
	}
	return ExitUsage
}
