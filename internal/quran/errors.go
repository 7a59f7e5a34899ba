package quran

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors returned by the client. Reference errors are detected
// locally and never reach the network.
var (
	// ErrOutOfRange is returned when a surah, page, juz or ayah number falls
	// outside the bounds of the corpus.
	ErrOutOfRange = errors.New("number out of range")

	// ErrInvalidReference is returned when an ayah reference or search request
	// cannot be parsed.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrRemoteService is matched by every transport failure and every
	// response whose envelope code is not 200.
	ErrRemoteService = errors.New("remote service error")

	// ErrMalformedResponse is matched when a successful response cannot be
	// decoded into the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// RemoteError describes a failed call to the remote service.
type RemoteError struct {
	Path       string // request path relative to the base URL
	HTTPStatus int    // HTTP status code, 0 when no response arrived
	Code       int    // envelope code, 0 when the body had none
	Status     string // envelope status or HTTP status text
	Detail     string // envelope data when the service sent a message there
	Err        error  // transport error, nil when a response arrived
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("quran api %s: %s", e.Path, ErrRemoteService)
	if e.Status != "" {
		msg += ": " + e.Status
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteService
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the service answered that nothing matched.
func (e *RemoteError) NotFound() bool {
	return e.Code == http.StatusNotFound || e.HTTPStatus == http.StatusNotFound
}

// MalformedResponseError describes a response that could not be decoded.
type MalformedResponseError struct {
	Path string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("quran api %s: %s: %v", e.Path, ErrMalformedResponse, e.Err)
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a remote "not found" answer, which the
// service also uses for searches without matches.
func IsNotFound(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr) && remoteErr.NotFound()
}

// IsInputError reports whether err was caused by the caller's reference
// rather than by the remote service.
func IsInputError(err error) bool {
	return errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrInvalidReference)
}
