// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package cli

import "fmt"

// Exit codes used by the binary.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError carries the exit code for a failed command together with the
// message shown on stderr. Commands return it when the default
// classification in userMessage is not specific enough.
type ExitError struct {
	code int
	msg  string
}

// NewExitError builds an ExitError.
func NewExitError(code int, format string, args ...any) *ExitError {
	return &ExitError{code: code, msg: fmt.Sprintf(format, args...)}
}

func (e *ExitError) Error() string { return e.msg }

// Code returns the process exit code.
func (e *ExitError) Code() int { return e.code }
