package aviatrix

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// FWTagMember is one named CIDR inside a firewall policy tag.
type FWTagMember struct {
	Name string `json:"name"`
	CIDR string `json:"cidr"`
}

// SecurityRule is one firewall policy rule on a gateway.
type SecurityRule struct {
	Protocol  string `json:"protocol" validate:"required,oneof=all tcp udp icmp sctp rdp dccp"`
	SrcIP     string `json:"s_ip" validate:"required"`     // CIDR or tag name
	DstIP     string `json:"d_ip" validate:"required"`     // CIDR or tag name
	Port      string `json:"port" validate:"required"`     // single port or range, e.g. "25" or "25:1024"
	DenyAllow string `json:"deny_allow" validate:"required,oneof=allow deny"`
	LogEnable string `json:"log_enable" validate:"required,oneof=on off"`
}

// FWPolicy is the full firewall policy of a gateway.
type FWPolicy struct {
	BasePolicy          string         `json:"base_policy"`
	BasePolicyLogEnable string         `json:"base_policy_log_enable"`
	SecurityRules       []SecurityRule `json:"security_rules"`
}

// ListFWTags lists all firewall policy tags.
func (c *Client) ListFWTags(ctx context.Context) (Result, error) {
	return c.call(ctx, http.MethodPost, "list_policy_tags", url.Values{}, endpointBackend)
}

// AddFWTag creates a new firewall policy tag.
func (c *Client) AddFWTag(ctx context.Context, tagName string) error {
	params := url.Values{}
	params.Set("tag_name", tagName)
	_, err := c.call(ctx, http.MethodPost, "add_policy_tag", params, endpointAPI)
	return err
}

// DeleteFWTag removes a firewall policy tag.
func (c *Client) DeleteFWTag(ctx context.Context, tagName string) error {
	params := url.Values{}
	params.Set("tag_name", tagName)
	_, err := c.call(ctx, http.MethodPost, "del_policy_tag", params, endpointAPI)
	return err
}

// GetFWTagMembers returns the members (name + CIDR) of a firewall policy
// tag.
func (c *Client) GetFWTagMembers(ctx context.Context, tagName string) ([]FWTagMember, error) {
	params := url.Values{}
	params.Set("tag_name", tagName)
	res, err := c.call(ctx, http.MethodGet, "list_policy_members", params, endpointAPI)
	if err != nil {
		return nil, err
	}
	members := res.Get("members")
	if !members.Exists() {
		return nil, ErrUnexpectedResponse.New("policy members response did not include members")
	}
	var out []FWTagMember
	if err := (Result{raw: []byte(members.Raw)}).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetFWTagMembers replaces the members of a firewall policy tag. Members
// are transmitted as indexed new_policies form keys, matching the
// controller's form-array convention.
func (c *Client) SetFWTagMembers(ctx context.Context, tagName string, members []FWTagMember) error {
	params := url.Values{}
	params.Set("tag_name", tagName)
	for i, m := range members {
		params.Set(fmt.Sprintf("new_policies[%d][name]", i), m.Name)
		params.Set(fmt.Sprintf("new_policies[%d][cidr]", i), m.CIDR)
	}
	_, err := c.call(ctx, http.MethodPost, "update_policy_members", params, endpointAPI)
	return err
}

// GetFWPolicy returns the firewall policy of a single gateway. The returned
// SecurityRules correspond to what SetFWPolicySecurityRules sets.
func (c *Client) GetFWPolicy(ctx context.Context, gwName string) (*FWPolicy, error) {
	params := url.Values{}
	params.Set("vpc_name", gwName)
	res, err := c.call(ctx, http.MethodGet, "vpc_access_policy", params, endpointAPI)
	if err != nil {
		return nil, err
	}
	var policy FWPolicy
	if err := res.Decode(&policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// SetFWPolicySecurityRules replaces the firewall policy rules of the given
// gateway. The rule list travels as a JSON document under the new_policy
// parameter.
func (c *Client) SetFWPolicySecurityRules(ctx context.Context, gwName string, rules []SecurityRule) error {
	for i, r := range rules {
		if err := c.validate.Struct(r); err != nil {
			return ErrConfiguration.MsgErr(fmt.Sprintf("invalid security rule at index %d", i), err)
		}
	}
	doc, err := jsonit.Marshal(rules)
	if err != nil {
		return ErrConfiguration.MsgErr("failed to encode security rules", err)
	}
	params := url.Values{}
	params.Set("vpc_name", gwName)
	params.Set("new_policy", string(doc))
	_, err = c.call(ctx, http.MethodGet, "update_access_policy", params, endpointAPI)
	return err
}
