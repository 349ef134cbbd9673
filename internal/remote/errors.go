package remote

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"
)

// Kind is the machine-readable classification of a remote channel failure.
type Kind string

const (
	KindConnectionRefused    Kind = "connection_refused"
	KindHostUnreachable      Kind = "host_unreachable"
	KindTimeout              Kind = "timeout"
	KindAuthenticationFailed Kind = "authentication_failed"
	KindPermissionDenied     Kind = "permission_denied"
	KindNotFound             Kind = "not_found"
	KindUnknown              Kind = "unknown"
)

// Error wraps a transport failure with its classification and the
// operation that produced it. The original cause stays reachable through
// Unwrap for diagnostics.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("remote %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("remote %s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a classified remote not-found failure.
func IsNotFound(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == KindNotFound
}

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return err
	}
	return &Error{Kind: classify(err), Op: op, Path: path, Err: err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return KindNotFound
	case errors.Is(err, os.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, syscall.ECONNREFUSED):
		return KindConnectionRefused
	case errors.Is(err, syscall.EHOSTUNREACH), errors.Is(err, syscall.ENETUNREACH):
		return KindHostUnreachable
	case errors.Is(err, os.ErrDeadlineExceeded):
		return KindTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return KindTimeout
		}
		return KindHostUnreachable
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unable to authenticate"), strings.Contains(msg, "auth fail"):
		return KindAuthenticationFailed
	case strings.Contains(msg, "permission denied"):
		return KindPermissionDenied
	case strings.Contains(msg, "no such file"), strings.Contains(msg, "file does not exist"):
		return KindNotFound
	}

	return KindUnknown
}
