package objects

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Sentinel errors for conditions callers commonly branch on.
// Use errors.Is() to check for them; they are wrapped by the returned errors.
var (
	// ErrInvalidConfig indicates a missing or malformed configuration field.
	ErrInvalidConfig = errors.New("invalid objects config")

	// ErrFileNotFound indicates the local source file for an upload is missing.
	// Deliberately distinct from the Upload error kind so callers can tell
	// "local file missing" apart from "backend rejected the upload".
	ErrFileNotFound = errors.New("local file not found")

	// ErrClientClosed indicates an operation was attempted after Close.
	ErrClientClosed = errors.New("objects client is closed")

	// ErrInvalidExpiry indicates a non-positive presigned-URL lifetime.
	ErrInvalidExpiry = errors.New("expiry must be positive")
)

// Kind identifies the failure category of an Error.
type Kind uint8

const (
	KindGeneric Kind = iota // config, delete, closed-client misuse
	KindUpload
	KindList
	KindDownload // presigned URLs and existence checks
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindUpload:
		return "upload"
	case KindList:
		return "list"
	case KindDownload:
		return "download"
	default:
		return "objects"
	}
}

// Error is the error type returned by every SDK operation that reaches the
// backend. It carries the backend-provided machine code alongside a human
// message so failures can be correlated with backend-side diagnostics.
// Callers can catch broadly with errors.As(*Error) or narrowly by Kind.
// Errors are immutable once constructed.
type Error struct {
	Kind    Kind
	Code    string // backend machine code, "Unknown" when absent
	Message string
	Err     error // underlying cause, may be nil
}

// Error renders the message with the machine code prefixed when present.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

// IsUploadError reports whether err is an upload-kind SDK error.
func IsUploadError(err error) bool { return hasKind(err, KindUpload) }

// IsListError reports whether err is a list-kind SDK error.
func IsListError(err error) bool { return hasKind(err, KindList) }

// IsDownloadError reports whether err is a download-kind SDK error.
func IsDownloadError(err error) bool { return hasKind(err, KindDownload) }

func hasKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// unknownCode is the placeholder when the backend supplied no machine code.
const unknownCode = "Unknown"

// errorCode extracts the backend machine code from a transport failure.
func errorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() != "" {
		return apiErr.ErrorCode()
	}
	return unknownCode
}

// newError wraps a transport failure into the taxonomy, preserving the
// backend code and appending the backend's own message for diagnostics.
func newError(kind Kind, err error, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
			msg += ": " + apiErr.ErrorMessage()
		} else {
			msg += ": " + err.Error()
		}
	}
	return &Error{
		Kind:    kind,
		Code:    errorCode(err),
		Message: msg,
		Err:     err,
	}
}

// configError builds a generic-kind error for invalid configuration.
func configError(msg string) *Error {
	return &Error{Kind: KindGeneric, Code: "InvalidConfig", Message: msg, Err: ErrInvalidConfig}
}

// closedError builds the fail-fast error for operations on a closed client.
func closedError(op string) *Error {
	return &Error{Kind: KindGeneric, Code: "ClientClosed", Message: op + " called on closed client", Err: ErrClientClosed}
}

// isNotFound reports whether err is a confirmed "object absent" response,
// as opposed to a transport-level failure.
func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "404":
			return true
		}
	}
	return false
}
