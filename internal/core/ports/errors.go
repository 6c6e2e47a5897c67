package ports

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotConfigured is returned by a gateway whose base URL or credentials are missing.
var ErrNotConfigured = errors.New("remote service not configured")

// UpstreamError describes a failed call to a remote service: a transport
// failure (Status 0), a non-2xx status, an unusable body, or a payload that
// reported Success=false.
type UpstreamError struct {
	Service string
	Status  int
	Body    []byte
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Service, e.Message)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Details returns the upstream body for the client: decoded JSON when the body
// is JSON, the raw text otherwise, or the message when there is no body.
func (e *UpstreamError) Details() any {
	if len(e.Body) == 0 {
		return e.Message
	}
	var v any
	if err := json.Unmarshal(e.Body, &v); err == nil {
		return v
	}
	return string(e.Body)
}

// RelayStatus maps the upstream status onto the status returned to the
// browser: upstream 5xx is relayed, anything else becomes 502.
func (e *UpstreamError) RelayStatus() int {
	if e.Status >= http.StatusInternalServerError {
		return e.Status
	}
	return http.StatusBadGateway
}

// AsUpstreamError unwraps err into an *UpstreamError when possible.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
