package aviatrix

import (
	"context"
	"net/http"
	"net/url"
)

// VPNUserRequest describes a VPN user to add or attach. LBName, VpcID and
// Username are required; the remaining fields are optional and omitted from
// the wire call when empty.
type VPNUserRequest struct {
	LBName       string `json:"lb_name" validate:"required"`
	VpcID        string `json:"vpc_id" validate:"required"`
	Username     string `json:"username" validate:"required"`
	UserEmail    string `json:"user_email"`
	ProfileName  string `json:"profile_name"`
	SAMLEndpoint string `json:"saml_endpoint"`
}

// ListVPNUsers lists all VPN users.
func (c *Client) ListVPNUsers(ctx context.Context) (Result, error) {
	return c.call(ctx, http.MethodGet, "list_vpn_users", url.Values{}, endpointAPI)
}

// AddVPNUser adds a new VPN user. The user's certificate and instructions
// are emailed when UserEmail is set.
func (c *Client) AddVPNUser(ctx context.Context, req VPNUserRequest) error {
	if err := c.validate.Struct(req); err != nil {
		return ErrConfiguration.MsgErr("invalid VPN user request", err)
	}
	params := url.Values{}
	params.Set("lb_name", req.LBName)
	params.Set("vpc_id", req.VpcID)
	params.Set("username", req.Username)
	params.Set("dns", "false")
	params.Set("external_user", "false")
	if req.UserEmail != "" {
		params.Set("user_email", req.UserEmail)
	}
	if req.ProfileName != "" {
		params.Set("profile_name", req.ProfileName)
	}
	if req.SAMLEndpoint != "" {
		params.Set("saml_endpoint", req.SAMLEndpoint)
	}
	_, err := c.call(ctx, http.MethodPost, "add_vpn_user", params, endpointBackend)
	return err
}

// AttachVPNUser attaches an existing VPN user to a VPC. Setting ProfileName
// also enables profile use for the user.
func (c *Client) AttachVPNUser(ctx context.Context, req VPNUserRequest) error {
	if err := c.validate.Struct(req); err != nil {
		return ErrConfiguration.MsgErr("invalid VPN user request", err)
	}
	params := url.Values{}
	params.Set("lb_name", req.LBName)
	params.Set("vpc_id_or_dns_name", req.VpcID)
	params.Set("username", req.Username)
	params.Set("dns", "false")
	params.Set("external_user", "false")
	params.Set("use_profile", "false")
	if req.UserEmail != "" {
		params.Set("user_email", req.UserEmail)
	}
	if req.ProfileName != "" {
		params.Set("use_profile", "true")
		params.Set("profile_name", req.ProfileName)
	}
	if req.SAMLEndpoint != "" {
		params.Set("saml_endpoint", req.SAMLEndpoint)
	}
	_, err := c.call(ctx, http.MethodPost, "attach_vpn_user", params, endpointAPI)
	return err
}

// DetachVPNUser detaches a VPN user from the VPC it is currently attached
// to.
func (c *Client) DetachVPNUser(ctx context.Context, vpcID, username string) error {
	params := url.Values{}
	params.Set("vpc_id_or_dns_name", vpcID)
	params.Set("username", username)
	params.Set("dns", "false")
	_, err := c.call(ctx, http.MethodPost, "detach_vpn_user", params, endpointAPI)
	return err
}

// DeleteVPNUser deletes a VPN user from the given VPC.
func (c *Client) DeleteVPNUser(ctx context.Context, vpcID, username string) error {
	params := url.Values{}
	params.Set("vpc_id", vpcID)
	params.Set("username", username)
	_, err := c.call(ctx, http.MethodGet, "delete_vpn_user", params, endpointAPI)
	return err
}
