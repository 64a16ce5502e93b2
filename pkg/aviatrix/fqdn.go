package aviatrix

import (
	"context"
	"net/http"
	"net/url"
)

// AddFQDNFilterTag creates a new FQDN filter tag.
func (c *Client) AddFQDNFilterTag(ctx context.Context, tagName string) error {
	params := url.Values{}
	params.Set("tag_name", tagName)
	_, err := c.call(ctx, http.MethodPost, "add_fqdn_filter_tag", params, endpointAPI)
	return err
}

// DeleteFQDNFilterTag deletes an FQDN filter tag.
func (c *Client) DeleteFQDNFilterTag(ctx context.Context, tagName string) error {
	params := url.Values{}
	params.Set("tag_name", tagName)
	_, err := c.call(ctx, http.MethodPost, "del_fqdn_filter_tag", params, endpointAPI)
	return err
}

// SetFQDNFilterDomains replaces the domain definitions of the given filter
// tag, e.g. ["*.example.com", "example.org"]. Each domain is sent as a
// repeated domain_names[] form key.
func (c *Client) SetFQDNFilterDomains(ctx context.Context, tagName string, domains []string) error {
	params := url.Values{}
	params.Set("tag_name", tagName)
	for _, d := range domains {
		params.Add("domain_names[]", d)
	}
	_, err := c.call(ctx, http.MethodPost, "set_fqdn_filter_tag_domain_names", params, endpointAPI)
	return err
}

// GetFQDNFilterDomains returns the domain definitions of the given filter
// tag.
func (c *Client) GetFQDNFilterDomains(ctx context.Context, tagName string) (Result, error) {
	params := url.Values{}
	params.Set("tag_name", tagName)
	return c.call(ctx, http.MethodGet, "list_fqdn_filter_tag_domain_names", params, endpointAPI)
}

// SetFQDNFilterBlackList makes the filter a black list.
func (c *Client) SetFQDNFilterBlackList(ctx context.Context, tagName string) error {
	return c.setFQDNFilterColor(ctx, tagName, "black")
}

// SetFQDNFilterWhiteList makes the filter a white list.
func (c *Client) SetFQDNFilterWhiteList(ctx context.Context, tagName string) error {
	return c.setFQDNFilterColor(ctx, tagName, "white")
}

func (c *Client) setFQDNFilterColor(ctx context.Context, tagName, color string) error {
	params := url.Values{}
	params.Set("tag_name", tagName)
	params.Set("color", color)
	_, err := c.call(ctx, http.MethodPost, "set_fqdn_filter_tag_color", params, endpointAPI)
	return err
}

// EnableFQDNFilter enables the given filter tag.
func (c *Client) EnableFQDNFilter(ctx context.Context, tagName string) error {
	return c.setFQDNFilterState(ctx, tagName, "enabled")
}

// DisableFQDNFilter disables the given filter tag.
func (c *Client) DisableFQDNFilter(ctx context.Context, tagName string) error {
	return c.setFQDNFilterState(ctx, tagName, "disabled")
}

func (c *Client) setFQDNFilterState(ctx context.Context, tagName, status string) error {
	params := url.Values{}
	params.Set("tag_name", tagName)
	params.Set("status", status)
	_, err := c.call(ctx, http.MethodPost, "set_fqdn_filter_tag_state", params, endpointAPI)
	return err
}

// AttachFQDNFilterToGateway attaches the filter tag to a gateway.
func (c *Client) AttachFQDNFilterToGateway(ctx context.Context, tagName, gwName string) error {
	params := url.Values{}
	params.Set("tag_name", tagName)
	params.Set("gw_name", gwName)
	_, err := c.call(ctx, http.MethodPost, "attach_fqdn_filter_tag_to_gw", params, endpointAPI)
	return err
}

// DetachFQDNFilterFromGateway detaches the filter tag from a gateway.
func (c *Client) DetachFQDNFilterFromGateway(ctx context.Context, tagName, gwName string) error {
	params := url.Values{}
	params.Set("tag_name", tagName)
	params.Set("gw_name", gwName)
	_, err := c.call(ctx, http.MethodPost, "detach_fqdn_filter_tag_from_gw", params, endpointAPI)
	return err
}

// ListFQDNFilterGateways lists the gateways the filter tag is attached to.
func (c *Client) ListFQDNFilterGateways(ctx context.Context, tagName string) (Result, error) {
	params := url.Values{}
	params.Set("tag_name", tagName)
	return c.call(ctx, http.MethodGet, "list_fqdn_filter_tag_attached_gws", params, endpointAPI)
}

// ListFQDNFilters lists all FQDN filter tags.
func (c *Client) ListFQDNFilters(ctx context.Context) (Result, error) {
	return c.call(ctx, http.MethodGet, "list_fqdn_filter_tags", url.Values{}, endpointAPI)
}
