package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"

	"github.com/amimof/huego"
)

// Category is the kind of failure reported by the bridge client
type Category int

const (
	// CategoryNetwork indicates the bridge could not be reached
	CategoryNetwork Category = iota
	// CategoryTimeout indicates a request ran past its deadline
	CategoryTimeout
	// CategoryAuth indicates the application key was rejected
	CategoryAuth
	// CategoryProtocol indicates a malformed request or response
	CategoryProtocol
	// CategoryNotFound indicates the addressed light, group or scene no longer exists
	CategoryNotFound
	// CategoryUnknown indicates an unexpected error
	CategoryUnknown
)

// Hue API error types, see the bridge's "error messages" reference
const (
	apiErrUnauthorized     = 1
	apiErrResourceNotFound = 3
)

// String returns a human-readable name for the category
func (c Category) String() string {
	switch c {
	case CategoryNetwork:
		return "Network Error"
	case CategoryTimeout:
		return "Timeout"
	case CategoryAuth:
		return "Authentication Error"
	case CategoryProtocol:
		return "Protocol Error"
	case CategoryNotFound:
		return "Not Found"
	case CategoryUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// BridgeError is an error that occurred while talking to the bridge
type BridgeError struct {
	Category  Category // Kind of failure
	Message   string   // Human-readable description
	Err       error    // Underlying error, if any
	Addr      string   // Bridge address
	Retryable bool     // Whether repeating the request may succeed
}

// Error implements the error interface
func (e *BridgeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *BridgeError) Unwrap() error {
	return e.Err
}

// Classify maps an error returned by the Hue client onto a BridgeError.
// It returns nil for a nil error.
func Classify(err error, addr string) *BridgeError {
	if err == nil {
		return nil
	}

	var bridgeErr *BridgeError
	if errors.As(err, &bridgeErr) {
		return bridgeErr
	}

	if errors.Is(err, context.Canceled) {
		return &BridgeError{
			Category: CategoryUnknown,
			Message:  "Request cancelled",
			Err:      err,
			Addr:     addr,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &BridgeError{
			Category:  CategoryTimeout,
			Message:   "Request timed out",
			Err:       err,
			Addr:      addr,
			Retryable: true,
		}
	}

	var apiErr *huego.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Type {
		case apiErrUnauthorized:
			return &BridgeError{
				Category: CategoryAuth,
				Message:  "Application key rejected by bridge",
				Err:      err,
				Addr:     addr,
			}
		case apiErrResourceNotFound:
			return &BridgeError{
				Category: CategoryNotFound,
				Message:  fmt.Sprintf("Resource %s not available", apiErr.Address),
				Err:      err,
				Addr:     addr,
			}
		default:
			return &BridgeError{
				Category: CategoryProtocol,
				Message:  apiErr.Description,
				Err:      err,
				Addr:     addr,
			}
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &BridgeError{
			Category: CategoryProtocol,
			Message:  "Malformed response from bridge",
			Err:      err,
			Addr:     addr,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &BridgeError{
			Category: CategoryNetwork,
			Message:  fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:      err,
			Addr:     addr,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch {
		case errors.Is(opErr.Err, syscall.ECONNREFUSED):
			return &BridgeError{
				Category:  CategoryNetwork,
				Message:   "Bridge refused connection",
				Err:       err,
				Addr:      addr,
				Retryable: true,
			}
		case errors.Is(opErr.Err, syscall.EHOSTUNREACH):
			return &BridgeError{
				Category:  CategoryNetwork,
				Message:   "Host unreachable",
				Err:       err,
				Addr:      addr,
				Retryable: true,
			}
		case errors.Is(opErr.Err, syscall.ENETUNREACH):
			return &BridgeError{
				Category:  CategoryNetwork,
				Message:   "Network unreachable",
				Err:       err,
				Addr:      addr,
				Retryable: true,
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return Classify(urlErr.Err, addr)
	}

	return &BridgeError{
		Category:  CategoryNetwork,
		Message:   "Network error occurred",
		Err:       err,
		Addr:      addr,
		Retryable: true,
	}
}

func newProtocolError(message string, err error) *BridgeError {
	return &BridgeError{
		Category: CategoryProtocol,
		Message:  message,
		Err:      err,
	}
}

// IsAuthError checks if an error is an authentication error
func IsAuthError(err error) bool {
	var bridgeErr *BridgeError
	return errors.As(err, &bridgeErr) && bridgeErr.Category == CategoryAuth
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	var bridgeErr *BridgeError
	if errors.As(err, &bridgeErr) {
		return bridgeErr.Retryable
	}
	// Unknown errors are not retryable by default
	return false
}

// ShortMessage returns a concise message suitable for the status bar
func ShortMessage(err error) string {
	var bridgeErr *BridgeError
	if !errors.As(err, &bridgeErr) {
		return err.Error()
	}

	switch bridgeErr.Category {
	case CategoryTimeout:
		return "Bridge not responding (timeout)"
	case CategoryAuth:
		return "Application key rejected - check HUE_APP_KEY"
	case CategoryNetwork:
		return "Bridge unreachable - check network connection"
	case CategoryNotFound:
		return "Device no longer exists"
	case CategoryProtocol:
		return "Unexpected bridge response"
	default:
		return bridgeErr.Message
	}
}
