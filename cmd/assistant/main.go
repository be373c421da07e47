package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Farewell reached
	ExitSession = 1 // Input ended early or a summary could not be saved
	ExitError   = 2 // Configuration or usage error
)

// SessionError indicates that the interactive loop started but could not
// finish: the input stream closed or a save failed.
type SessionError struct {
	Err error
}

func (e *SessionError) Error() string {
	return e.Err.Error()
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

func main() {
	os.Exit(exitCode(execute()))
}

// exitCode prints err (if any) and maps it to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(os.Stderr, err)

	var sessionErr *SessionError
	if errors.As(err, &sessionErr) {
		return ExitSession
	}
	return ExitError
}
