package model

import (
	"errors"
	"fmt"
)

// ErrAssessmentNotFound is returned by repositories when no assessment exists
// for the requested application.
var ErrAssessmentNotFound = errors.New("assessment not found")

// ---------------------------------------------------------------------------
// Error taxonomy
// ---------------------------------------------------------------------------

// ValidationError reports a malformed or incomplete loan application. It is
// raised before any collaborator is invoked and is always fatal.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation: %s", e.Reason)
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// UpstreamError reports the failure of a required collaborator. Step names
// the pipeline step for diagnosis; the underlying failure is wrapped.
type UpstreamError struct {
	Step string
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Step, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NewUpstreamError wraps a collaborator failure with its pipeline step name.
func NewUpstreamError(step string, err error) *UpstreamError {
	return &UpstreamError{Step: step, Err: err}
}

// ConfigurationError reports an invalid orchestrator construction: missing
// mandatory collaborators or invalid thresholds. It is raised at construction
// time, never mid-assessment.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s", e.Reason)
}

// NewConfigurationError builds a ConfigurationError.
func NewConfigurationError(reason string) *ConfigurationError {
	return &ConfigurationError{Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUpstream reports whether err is (or wraps) an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsConfiguration reports whether err is (or wraps) a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
