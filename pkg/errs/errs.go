package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// ConfigurationError reports required configuration that is missing or
// unusable. Always a server-side failure.
type ConfigurationError struct {
	ErrorMessage
}

// ValidationError reports a bad request parameter; the message
// enumerates the accepted input.
type ValidationError struct {
	ErrorMessage
}

// NoAccountsError reports that zero accounts remained after the
// authorization filter.
type NoAccountsError struct {
	ErrorMessage
}

// UpstreamError reports a failed or malformed upstream API exchange.
type UpstreamError struct {
	ErrorMessage
	Err error
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{ErrorMessage: ErrorMessage{Message: message}}
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{ErrorMessage: ErrorMessage{Message: fmt.Sprintf(format, args...)}}
}

func NewNoAccountsError() *NoAccountsError {
	return &NoAccountsError{ErrorMessage: ErrorMessage{Message: "no authorized accounts to merge"}}
}

func NewUpstreamError(err error, format string, args ...any) *UpstreamError {
	return &UpstreamError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf(format, args...)},
		Err:          err,
	}
}
