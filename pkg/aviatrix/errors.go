package aviatrix

import (
	"net/http"

	"github.com/avxops/avxgo/internal/common/apperrors"
)

var (
	// ErrConfiguration indicates bad call-site usage: an empty controller
	// address, missing credentials, or an unsupported HTTP method.
	ErrConfiguration = apperrors.New("aviatrix: invalid configuration").SetStatusCode(http.StatusBadRequest)

	// ErrRequestFailed indicates the request never reached a meaningful
	// controller decision: a transport failure, a non-2xx status, or a body
	// carrying the controller's out-of-band "Error:" prefix.
	ErrRequestFailed = apperrors.New("aviatrix: request failed").SetStatusCode(http.StatusBadGateway)

	// ErrREST indicates a well-formed controller rejection: the response
	// envelope carried return=false. The reason is available through
	// *RESTError.
	ErrREST = apperrors.New("aviatrix: controller rejected request")

	// ErrUnexpectedResponse indicates a successful call whose payload did
	// not have the shape the typed wrapper expected.
	ErrUnexpectedResponse = apperrors.New("aviatrix: unexpected response shape")

	// ErrGatewayNotFound is returned by GetGatewayByName when no gateway
	// matches the requested name.
	ErrGatewayNotFound = apperrors.New("aviatrix: gateway not found").SetStatusCode(http.StatusNotFound)
)

// RESTError is a controller rejection. It carries the action that failed and
// the human-readable reason string from the response envelope. RESTError
// matches ErrREST under errors.Is.
type RESTError struct {
	Action string // controller action that was rejected
	Reason string // reason string from the failure envelope
}

// Error implements the error interface.
func (e *RESTError) Error() string {
	if e.Reason == "" {
		return "aviatrix: action " + e.Action + " rejected by controller"
	}
	return "aviatrix: " + e.Reason
}

// Unwrap makes RESTError match ErrREST under errors.Is.
func (e *RESTError) Unwrap() error {
	return ErrREST
}
