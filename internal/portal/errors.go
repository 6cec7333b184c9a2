package portal

import (
	"errors"
	"fmt"
)

// ErrEndpoint marks an application-level failure reported inside an
// otherwise successful response (the "error" field of the payload). It is
// treated the same as a transport failure by callers.
var ErrEndpoint = errors.New("portal endpoint error")

// StatusError is a non-2xx HTTP response from the portal.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("portal returned HTTP %d for %s", e.Code, e.URL)
}
