package domain

import (
	"errors"
	"fmt"
)

// Process exit codes. Scripts wrapping the CLI distinguish failure classes
// by exit code alone, without parsing log text.
const (
	ExitOK         = 0
	ExitConfig     = 1
	ExitValidation = 2
	ExitSubmission = 3
)

// ConfigError means credentials (or other required configuration) could not
// be resolved. Detected before any other work.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

// ValidationError means the order intent fails the builder's structural
// rules. Detected before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// SubmissionError wraps a remote rejection or transport failure without
// reinterpreting it. Code is the exchange's error code when one was
// returned, zero otherwise.
type SubmissionError struct {
	Code int
	Msg  string
	Err  error
}

func (e *SubmissionError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("order submission failed: code=%d msg=%s", e.Code, e.Msg)
	}
	return fmt.Sprintf("order submission failed: %s", e.Msg)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error from the run pipeline to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var (
		cfgErr *ConfigError
		valErr *ValidationError
		subErr *SubmissionError
	)
	switch {
	case errors.As(err, &cfgErr):
		return ExitConfig
	case errors.As(err, &valErr):
		return ExitValidation
	case errors.As(err, &subErr):
		return ExitSubmission
	default:
		return ExitSubmission
	}
}
