package aviatrix

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// endpoint selects the controller base path for an action. Most actions go
// through the general API path; a handful (statistics, VPN user attach, the
// controller public IP lookup) are served from the backend path. The choice
// is a per-action constant, never a runtime decision.
type endpoint string

const (
	endpointAPI     endpoint = "/v1/api"
	endpointBackend endpoint = "/v1/backend1"
)

// errorBodyPrefix is a controller convention: some transport-level failures
// are reported as a plain body starting with this literal, outside the JSON
// envelope.
const errorBodyPrefix = "Error:"

// call is the pipeline every public operation funnels through. It injects
// the action name and session token into the parameter set, issues exactly
// one request against the selected base path, and interprets the response
// envelope. There are no retries.
//
// The session token is merged unconditionally; for the login action it is
// simply empty because no token exists yet.
func (c *Client) call(ctx context.Context, method string, action string, params url.Values, ep endpoint) (Result, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return Result{}, ErrConfiguration.New(fmt.Sprintf("unsupported HTTP method %q", method))
	}

	merged := url.Values{}
	for k, vs := range params {
		merged[k] = append([]string(nil), vs...)
	}
	merged.Set("action", action)
	merged.Set("CID", c.cid)
	encoded := merged.Encode()

	var req *http.Request
	var err error
	switch method {
	case http.MethodGet:
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+string(ep)+"?"+encoded, nil)
	case http.MethodPost:
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+string(ep), strings.NewReader(encoded))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return Result{}, ErrRequestFailed.MsgErr("failed to build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, ErrRequestFailed.MsgErr(fmt.Sprintf("action %s: request failed", action), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, ErrRequestFailed.MsgErr(fmt.Sprintf("action %s: failed to read response", action), err)
	}

	c.logger.Debug().
		Str("action", action).
		Str("method", method).
		Int("status", resp.StatusCode).
		Bytes("body", body).
		Msg("controller response")

	// Out-of-band failure convention. Checked before the status code so the
	// controller's text is surfaced verbatim whatever the status was.
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte(errorBodyPrefix)) {
		return Result{}, ErrRequestFailed.New(string(bytes.TrimSpace(body)))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, ErrRequestFailed.New(fmt.Sprintf("action %s: controller returned status %d", action, resp.StatusCode))
	}

	// Some actions answer with plain text rather than JSON. That is a valid
	// success, not a decode error.
	if !gjson.ValidBytes(body) {
		return Result{text: true, raw: body, full: body}, nil
	}

	ret := gjson.GetBytes(body, "return")
	if !ret.Exists() {
		return Result{raw: body, full: body}, nil
	}
	if !ret.Bool() {
		return Result{}, &RESTError{
			Action: action,
			Reason: gjson.GetBytes(body, "reason").String(),
		}
	}
	results := gjson.GetBytes(body, "results")
	return Result{raw: []byte(results.Raw), full: body}, nil
}
