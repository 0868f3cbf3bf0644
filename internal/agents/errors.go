package agents

import (
	"errors"
	"fmt"
)

// TextRequiredMessage is returned to callers that submit no usable text
const TextRequiredMessage = "Text is required"

// InvalidInputError indicates the submitted text was absent or blank
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(message string) *InvalidInputError {
	return &InvalidInputError{Message: message}
}

// MisconfiguredError indicates the upstream credential is missing or still a placeholder
type MisconfiguredError struct {
	Setting string
	Message string
}

func (e *MisconfiguredError) Error() string {
	return e.Message
}

// NewMisconfiguredError creates a new misconfiguration error for the given environment variable
func NewMisconfiguredError(setting, providerName string) *MisconfiguredError {
	return &MisconfiguredError{
		Setting: setting,
		Message: fmt.Sprintf("API key not configured. Please add your %s API key to the .env file", providerName),
	}
}

// UpstreamError indicates the model API call failed
type UpstreamError struct {
	Agent string
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("agent %s: upstream model call failed: %v", e.Agent, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// Detail is the upstream message relayed to API callers
func (e *UpstreamError) Detail() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

// NewUpstreamError creates a new upstream error
func NewUpstreamError(agent string, cause error) *UpstreamError {
	return &UpstreamError{
		Agent: agent,
		Cause: cause,
	}
}

// IsInvalidInput checks if an error is an invalid input error
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsMisconfigured checks if an error is a misconfiguration error
func IsMisconfigured(err error) bool {
	var target *MisconfiguredError
	return errors.As(err, &target)
}

// IsUpstream checks if an error is an upstream error
func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}
