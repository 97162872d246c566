package errs

import (
	"net/http"

	"github.com/rs/zerolog"
)

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	switch err.(type) {
	case *ValidationError, *NoAccountsError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteHTTP maps an error to a status code and a plain-text body.
// Unexpected errors are logged with full detail but reported to the
// caller with a generic message.
func WriteHTTP(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	message := "an unexpected error occurred"

	switch e := err.(type) {
	case *ValidationError:
		message = e.Message
	case *NoAccountsError:
		message = e.Message
	case *ConfigurationError:
		message = e.Message
	case *UpstreamError:
		logger.Error().Err(e.Err).Msg(e.Message)
	default:
		logger.Error().Err(err).Msg("unhandled error")
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(StatusOf(err))
	_, _ = w.Write([]byte(message))
}
