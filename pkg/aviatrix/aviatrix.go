// Package aviatrix provides a typed Go client for the Aviatrix Controller
// REST API. Every public operation maps to a single controller action: the
// client builds the request, injects the session token obtained from Login,
// issues one synchronous HTTPS call, and decodes the controller's response
// envelope into a typed result or an error.
//
// Controllers commonly run with self-signed certificates, so certificate
// verification is disabled by default. Use WithStrictTLS to re-enable it.
//
// Usage:
//
//	client, err := aviatrix.NewClient("203.0.113.10")
//	if err != nil { ... }
//	if err := client.Login(ctx, "admin", "password"); err != nil { ... }
//	gws, err := client.ListGateways(ctx, "prod-account")
//
// A Client is intended for one caller at a time. Concurrent use of a single
// Client requires external synchronization.
package aviatrix

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Client holds the controller session: the controller address, the CID
// session token set by Login, and the HTTP plumbing used by every call.
type Client struct {
	controllerAddr string
	baseURL        string
	cid            string
	httpClient     *http.Client
	logger         zerolog.Logger
	validate       *validator.Validate
}

// Option configures a Client during construction.
type Option func(*Client)

// WithStrictTLS re-enables certificate chain and hostname verification.
// The default is to skip verification because controllers are typically
// deployed with self-signed certificates.
func WithStrictTLS() Option {
	return func(c *Client) {
		c.httpClient.Transport = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
		}
	}
}

// WithTimeout sets a request timeout on the underlying HTTP client.
// The zero default leaves requests without a client-side deadline; use a
// context deadline for per-call control.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely. The caller
// then owns the TLS policy; WithStrictTLS has no effect on a replaced client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request/response debug logging.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithBaseURL overrides the derived https://<controller> origin. Intended
// for tests and for deployments that front the controller with a proxy on a
// non-standard scheme or port.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a client for the controller at the given host name or IP
// address. The address is required; an empty address fails with
// ErrConfiguration. The session token is empty until Login succeeds.
func NewClient(controllerAddr string, opts ...Option) (*Client, error) {
	if controllerAddr == "" {
		return nil, ErrConfiguration.New("controller address is required")
	}

	c := &Client{
		controllerAddr: controllerAddr,
		baseURL:        "https://" + controllerAddr,
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
				},
			},
		},
		logger:   zerolog.Nop(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ControllerAddr returns the controller host name or IP address the client
// was constructed with.
func (c *Client) ControllerAddr() string {
	return c.controllerAddr
}

// CID returns the current session token. It is empty until Login succeeds.
func (c *Client) CID() string {
	return c.cid
}
