package services

import "fmt"

type ConfigurationError struct{ Message string }

func (e *ConfigurationError) Error() string { return e.Message }

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// PolicyError marks a message rejected by the topic filter.
type PolicyError struct{ Message string }

func (e *PolicyError) Error() string { return e.Message }

// UpstreamError wraps a failed completion call. Its text is the provider's
// error text so handlers can relay it as-is.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s completion failed", e.Provider)
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }
