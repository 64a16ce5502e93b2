package aviatrix

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Gateway is a provisioned cloud-networking node managed through the
// controller. The controller reports more fields than are modeled here;
// use ListGatewaysRaw for the full payload.
type Gateway struct {
	VpcName     string    `json:"vpc_name"`
	AccountName string    `json:"account_name"`
	CloudType   CloudType `json:"cloud_type"`
	VpcID       string    `json:"vpc_id"`
	VpcRegion   string    `json:"vpc_reg"`
	VpcSize     string    `json:"vpc_size"`
	VpcNet      string    `json:"vpc_net"`
	VpcState    string    `json:"vpc_state"`
	PublicIP    string    `json:"public_ip"`
}

// createGatewayAllowed is the allow-list of optional parameters accepted by
// CreateGateway. Extra parameters outside this list are silently dropped
// before transmission.
var createGatewayAllowed = []string{
	"cloud_type", "account_name", "gw_name", "vpc_reg",
	"zone", "vpc_net", "vpc_size", "vpc_id", "enable_nat",
	"vpn_access", "cidr", "otp_mode", "duo_integration_key",
	"duo_secret_key", "duo_api_hostname", "duo_push_mode",
	"okta_url", "okta_token", "okta_username_suffix",
	"enable_elb", "elb_name", "enable_client_cert_sharing",
	"max_conn", "split_tunnel", "additional_cidrs",
	"nameservers", "search_domains", "enable_pbr",
	"pbr_subnet", "pbr_default_gateway", "pbr_logging",
	"enable_ldap", "ldap_server", "ldap_bind_dn",
	"ldap_password", "ldap_base_dn", "ldap_user_attr",
	"ldap_additional_req", "ldap_use_ssl",
	"ldap_client_cert", "ldap_ca_cert", "save_template",
	"allocate_new_eip",
}

// createSpokeGatewayAllowed is the allow-list of optional parameters
// accepted by CreateSpokeGateway.
var createSpokeGatewayAllowed = []string{
	"account_name", "cloud_type", "region", "vpc_id", "public_subnet",
	"gw_name", "gw_size", "dns_server", "nat_enabled", "tags",
}

// mergeAllowed copies the entries of extra whose keys appear in allowed into
// params. Everything else is dropped without error.
func mergeAllowed(params url.Values, extra map[string]string, allowed []string) {
	if len(extra) == 0 {
		return
	}
	ok := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		ok[k] = true
	}
	for k, v := range extra {
		if ok[k] {
			params.Set(k, v)
		}
	}
}

// CreateGatewayRequest holds the required parameters for CreateGateway.
type CreateGatewayRequest struct {
	AccountName string    `json:"account_name" validate:"required"`
	CloudType   CloudType `json:"cloud_type" validate:"required"`
	GwName      string    `json:"gw_name" validate:"required"`
	VpcID       string    `json:"vpc_id" validate:"required"`
	VpcRegion   string    `json:"vpc_reg" validate:"required"`
	VpcSize     string    `json:"vpc_size" validate:"required"`
	VpcNet      string    `json:"vpc_net" validate:"required"`
}

// CreateGateway provisions a new gateway. Optional parameters may be passed
// in extra; keys outside the create-gateway allow-list are silently dropped.
// The wire action is the controller's legacy connect_container name.
func (c *Client) CreateGateway(ctx context.Context, req CreateGatewayRequest, extra map[string]string) error {
	if err := c.validate.Struct(req); err != nil {
		return ErrConfiguration.MsgErr("invalid create gateway request", err)
	}
	params := url.Values{}
	params.Set("account_name", req.AccountName)
	params.Set("cloud_type", strconv.Itoa(int(req.CloudType)))
	params.Set("gw_name", req.GwName)
	params.Set("vpc_id", req.VpcID)
	params.Set("vpc_reg", req.VpcRegion)
	params.Set("vpc_size", req.VpcSize)
	params.Set("vpc_net", req.VpcNet)
	mergeAllowed(params, extra, createGatewayAllowed)
	_, err := c.call(ctx, http.MethodPost, "connect_container", params, endpointAPI)
	return err
}

// CreateSpokeGatewayRequest holds the required parameters for
// CreateSpokeGateway.
type CreateSpokeGatewayRequest struct {
	AccountName  string    `json:"account_name" validate:"required"`
	CloudType    CloudType `json:"cloud_type" validate:"required"`
	Region       string    `json:"region" validate:"required"`
	VpcID        string    `json:"vpc_id" validate:"required"`
	PublicSubnet string    `json:"public_subnet" validate:"required"`
	GwName       string    `json:"gw_name" validate:"required"`
	GwSize       string    `json:"gw_size" validate:"required"`
}

// CreateSpokeGateway provisions a new spoke gateway. Keys in extra outside
// the spoke allow-list are silently dropped.
func (c *Client) CreateSpokeGateway(ctx context.Context, req CreateSpokeGatewayRequest, extra map[string]string) error {
	if err := c.validate.Struct(req); err != nil {
		return ErrConfiguration.MsgErr("invalid create spoke gateway request", err)
	}
	params := url.Values{}
	params.Set("account_name", req.AccountName)
	params.Set("cloud_type", strconv.Itoa(int(req.CloudType)))
	params.Set("region", req.Region)
	params.Set("vpc_id", req.VpcID)
	params.Set("public_subnet", req.PublicSubnet)
	params.Set("gw_name", req.GwName)
	params.Set("gw_size", req.GwSize)
	mergeAllowed(params, extra, createSpokeGatewayAllowed)
	_, err := c.call(ctx, http.MethodPost, "create_spoke_gw", params, endpointAPI)
	return err
}

// DeleteGateway deletes a gateway. The wire action is the controller's
// legacy delete_container name.
func (c *Client) DeleteGateway(ctx context.Context, cloudType CloudType, gwName string) error {
	params := url.Values{}
	params.Set("cloud_type", strconv.Itoa(int(cloudType)))
	params.Set("gw_name", gwName)
	_, err := c.call(ctx, http.MethodGet, "delete_container", params, endpointAPI)
	return err
}

// ListGateways lists the gateways provisioned in the given cloud account.
func (c *Client) ListGateways(ctx context.Context, accountName string) ([]Gateway, error) {
	res, err := c.ListGatewaysRaw(ctx, accountName)
	if err != nil {
		return nil, err
	}
	var gws []Gateway
	if err := res.Decode(&gws); err != nil {
		return nil, err
	}
	return gws, nil
}

// ListGatewaysRaw lists gateways and returns the undecoded controller
// payload for callers that need fields not modeled on Gateway.
func (c *Client) ListGatewaysRaw(ctx context.Context, accountName string) (Result, error) {
	params := url.Values{}
	params.Set("account_name", accountName)
	return c.call(ctx, http.MethodGet, "list_vpcs_summary", params, endpointAPI)
}

// GetGatewayByName looks up a gateway by its exact name within an account.
// A missing gateway is reported with ErrGatewayNotFound, never a controller
// rejection.
func (c *Client) GetGatewayByName(ctx context.Context, accountName, gwName string) (*Gateway, error) {
	gws, err := c.ListGateways(ctx, accountName)
	if err != nil {
		return nil, err
	}
	for i := range gws {
		if gws[i].VpcName == gwName {
			return &gws[i], nil
		}
	}
	return nil, ErrGatewayNotFound.New("gateway " + gwName + " not found in account " + accountName)
}

// ListSpokeGateways lists spoke gateways.
func (c *Client) ListSpokeGateways(ctx context.Context) (Result, error) {
	return c.call(ctx, http.MethodGet, "list_spoke_gws", url.Values{}, endpointAPI)
}

// ListTransitGateways lists transit gateways.
func (c *Client) ListTransitGateways(ctx context.Context) (Result, error) {
	return c.call(ctx, http.MethodGet, "list_transit_gws", url.Values{}, endpointAPI)
}

// ListSpokeGatewaySizes lists the instance sizes supported for spoke
// gateways.
func (c *Client) ListSpokeGatewaySizes(ctx context.Context) (Result, error) {
	return c.call(ctx, http.MethodGet, "list_spoke_gw_supported_sizes", url.Values{}, endpointAPI)
}

// ListPublicSubnets lists the public subnets of a VPC.
func (c *Client) ListPublicSubnets(ctx context.Context, accountName, region, vpcID string, cloudType CloudType) (Result, error) {
	params := url.Values{}
	params.Set("account_name", accountName)
	params.Set("region", region)
	params.Set("vpc_id", vpcID)
	params.Set("cloud_type", strconv.Itoa(int(cloudType)))
	return c.call(ctx, http.MethodGet, "list_public_subnets", params, endpointAPI)
}

// EnableNAT enables NAT on the given gateway.
func (c *Client) EnableNAT(ctx context.Context, gwName string) error {
	params := url.Values{}
	params.Set("gw_name", gwName)
	_, err := c.call(ctx, http.MethodPost, "enable_nat", params, endpointAPI)
	return err
}

// DisableNAT disables NAT on the given gateway.
func (c *Client) DisableNAT(ctx context.Context, gwName string) error {
	params := url.Values{}
	params.Set("gw_name", gwName)
	_, err := c.call(ctx, http.MethodPost, "disable_nat", params, endpointAPI)
	return err
}

// EnableVPCHA enables HA for a gateway in the given subnet.
func (c *Client) EnableVPCHA(ctx context.Context, vpcName, specificSubnet string) error {
	params := url.Values{}
	params.Set("vpc_name", vpcName)
	params.Set("specific_subnet", specificSubnet)
	_, err := c.call(ctx, http.MethodPost, "enable_vpc_ha", params, endpointAPI)
	return err
}

// DisableVPCHA disables HA for a gateway.
func (c *Client) DisableVPCHA(ctx context.Context, vpcName, specificSubnet string) error {
	params := url.Values{}
	params.Set("vpc_name", vpcName)
	params.Set("specific_subnet", specificSubnet)
	_, err := c.call(ctx, http.MethodPost, "disable_vpc_ha", params, endpointAPI)
	return err
}

// EnableSingleAZHA enables single-AZ HA on the given gateway.
func (c *Client) EnableSingleAZHA(ctx context.Context, gwName string) error {
	params := url.Values{}
	params.Set("gw_name", gwName)
	_, err := c.call(ctx, http.MethodPost, "enable_single_az_ha", params, endpointAPI)
	return err
}

// EnableSpokeHA enables HA on a spoke gateway, deploying the HA gateway into
// the given public subnet.
func (c *Client) EnableSpokeHA(ctx context.Context, gwName, publicSubnet string) error {
	params := url.Values{}
	params.Set("gw_name", gwName)
	params.Set("public_subnet", publicSubnet)
	_, err := c.call(ctx, http.MethodPost, "enable_spoke_ha", params, endpointAPI)
	return err
}

// AttachSpokeToTransitGW attaches a spoke gateway to a transit gateway.
func (c *Client) AttachSpokeToTransitGW(ctx context.Context, spokeGw, transitGw string) error {
	params := url.Values{}
	params.Set("spoke_gw", spokeGw)
	params.Set("transit_gw", transitGw)
	_, err := c.call(ctx, http.MethodPost, "attach_spoke_to_transit_gw", params, endpointAPI)
	return err
}
