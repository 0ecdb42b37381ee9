package ollama

import "errors"

// Error kinds mirror the three adapter operations. Each type reports the
// backend's own message verbatim so callers can surface it unchanged; the
// failure kind is carried by the type, not the text.

// backendUnavailableError signals that the inference service could not be
// reached during a listing call.
type backendUnavailableError struct{ err error }

func (e backendUnavailableError) Error() string { return e.err.Error() }
func (e backendUnavailableError) Unwrap() error { return e.err }

// ErrBackendUnavailable wraps err as a backend-unavailable failure.
func ErrBackendUnavailable(err error) error { return backendUnavailableError{err: err} }

// IsBackendUnavailable reports whether err indicates an unreachable backend.
func IsBackendUnavailable(err error) bool {
	var e backendUnavailableError
	return errors.As(err, &e)
}

// acquisitionFailedError signals that a model pull/install failed.
type acquisitionFailedError struct {
	model string
	err   error
}

func (e acquisitionFailedError) Error() string { return e.err.Error() }
func (e acquisitionFailedError) Unwrap() error { return e.err }

// ErrAcquisitionFailed wraps err as a failed pull of model.
func ErrAcquisitionFailed(model string, err error) error {
	return acquisitionFailedError{model: model, err: err}
}

// IsAcquisitionFailed reports whether err indicates a failed model pull.
func IsAcquisitionFailed(err error) bool {
	var e acquisitionFailedError
	return errors.As(err, &e)
}

// generationFailedError signals that the backend rejected a generate call or
// the connection dropped mid-response.
type generationFailedError struct {
	model string
	err   error
}

func (e generationFailedError) Error() string { return e.err.Error() }
func (e generationFailedError) Unwrap() error { return e.err }

// ErrGenerationFailed wraps err as a failed generation with model.
func ErrGenerationFailed(model string, err error) error {
	return generationFailedError{model: model, err: err}
}

// IsGenerationFailed reports whether err indicates a failed generate call.
func IsGenerationFailed(err error) bool {
	var e generationFailedError
	return errors.As(err, &e)
}
