// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Computation failed (step limit, zero charge)
	ExitCommandError = 2 // Bad arguments or problem file
)

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error; ExitFailure for plain
// errors.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// Entry is one output row: a key such as a dimension vector and an
// optional value.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

// Response is the JSON envelope.
type Response struct {
	Status  string  `json:"status"`
	Command string  `json:"command"`
	Entries []Entry `json:"entries"`
}

// writeEntries renders entries as "key value" lines or as a JSON envelope.
func writeEntries(w io.Writer, format, command string, entries []Entry) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if entries == nil {
			entries = []Entry{}
		}

		return enc.Encode(Response{Status: "ok", Command: command, Entries: entries})
	}
	for _, e := range entries {
		var err error
		if e.Value == "" {
			_, err = fmt.Fprintln(w, e.Key)
		} else {
			_, err = fmt.Fprintf(w, "%s %s\n", e.Key, e.Value)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
