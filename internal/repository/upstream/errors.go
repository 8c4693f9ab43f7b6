package upstream

import (
	"errors"
	"fmt"
	"net"
)

// ErrBodyTooLarge is reported when a buffered response exceeds the size the
// gateway is willing to hold in memory.
var ErrBodyTooLarge = errors.New("response body too large")

// Error is a non-2xx answer from an upstream service. Detail carries the
// service's own explanation when it sent one.
type Error struct {
	Service string
	Status  int
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s responded %d", e.Service, e.Status)
	}

	return fmt.Sprintf("%s responded %d: %s", e.Service, e.Status, e.Detail)
}

// UnreachableError wraps a transport failure talking to an upstream service.
type UnreachableError struct {
	Service string
	Err     error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%s unreachable: %v", e.Service, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline rather than a refused
// or broken connection.
func (e *UnreachableError) Timeout() bool {
	var netErr net.Error

	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// IsOffline reports whether err means the service could not be reached or
// answered with a server error.
func IsOffline(err error) bool {
	var unreachable *UnreachableError
	if errors.As(err, &unreachable) {
		return true
	}

	var upErr *Error

	return errors.As(err, &upErr) && upErr.Status >= 500
}
