package aviatrix

import (
	"context"
	"net/http"
	"net/url"
)

// Login authenticates against the controller and stores the returned CID as
// the session token for all subsequent calls. Both username and password are
// required; empty values fail with ErrConfiguration before any network
// request is made.
//
// A rejected login returns the controller's error (typically a *RESTError)
// and leaves the session token untouched, so a client that never logged in
// successfully keeps an empty token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrConfiguration.New("username and password are required")
	}

	params := url.Values{}
	params.Set("username", username)
	params.Set("password", password)

	res, err := c.call(ctx, http.MethodGet, "login", params, endpointAPI)
	if err != nil {
		return err
	}

	cid := res.Root("CID").String()
	if cid == "" {
		return ErrUnexpectedResponse.New("login response did not include a CID")
	}
	c.cid = cid
	return nil
}
