package mail

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinel errors for validation failures. These are raised before any
// network I/O and are safe to retry after fixing the input.
var (
	// ErrMissingSubject indicates an empty subject on a send
	ErrMissingSubject = errors.New("subject is required")

	// ErrMissingBody indicates neither text nor HTML body was provided
	ErrMissingBody = errors.New("either text or HTML body must be provided")

	// ErrNoRecipients indicates a send without any recipient
	ErrNoRecipients = errors.New("at least one recipient is required")

	// ErrNoAttachments indicates an attachment send without attachments
	ErrNoAttachments = errors.New("at least one attachment is required")

	// ErrInvalidCount indicates a read count outside [1,1000]
	ErrInvalidCount = errors.New("count must be between 1 and 1000")

	// ErrInvalidPage indicates a search page below 1
	ErrInvalidPage = errors.New("page must be at least 1")

	// ErrInvalidLimit indicates a search limit outside [1,100]
	ErrInvalidLimit = errors.New("limit must be between 1 and 100")

	// ErrMissingEmailID indicates a blank message id argument
	ErrMissingEmailID = errors.New("email id is required")

	// ErrEmailNotFound indicates the requested message does not exist
	ErrEmailNotFound = errors.New("email not found")

	// ErrScheduleInPast indicates a schedule time that is not in the future
	ErrScheduleInPast = errors.New("scheduled time must be in the future")
)

// Stable codes attached to wrapped transport errors.
const (
	CodeIMAPConnect = "IMAP_CONNECT_FAILED"
	CodeSMTPSend    = "SMTP_SEND_FAILED"
	CodeTimeout     = "OP_TIMEOUT"
)

// ProtocolError wraps a transport failure with a stable code while
// keeping the underlying cause for diagnostics.
type ProtocolError struct {
	Code string
	Err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// AddressError reports a recipient that failed shape validation.
type AddressError struct {
	Address string
	Err     error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid email address %q", e.Address)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}

// IsAddressError checks if an error is an AddressError.
func IsAddressError(err error) bool {
	var ae *AddressError
	return errors.As(err, &ae)
}

// IsConnectError checks for a wrapped IMAP connect/auth failure.
func IsConnectError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Code == CodeIMAPConnect
}

// IsAuthError reports whether a transport error looks like a rejected
// login. Neither protocol gives a structured error here, so this is a
// message-text heuristic used only to pick a user-facing hint.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "auth") ||
		strings.Contains(msg, "login") ||
		strings.Contains(msg, "password")
}

// IsTimeout checks for a deadline expiry anywhere in the chain.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	var pe *ProtocolError
	if errors.As(err, &pe) && pe.Code == CodeTimeout {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// wrapTransport attaches a stable code, preferring the timeout code
// when the cause is a deadline expiry.
func wrapTransport(code string, err error) error {
	if err == nil {
		return nil
	}
	if IsTimeout(err) {
		code = CodeTimeout
	}
	return &ProtocolError{Code: code, Err: err}
}
