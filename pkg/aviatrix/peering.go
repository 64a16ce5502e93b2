package aviatrix

import (
	"context"
	"net/http"
	"net/url"
)

// PeerPair is one entry of the controller's peering pair list.
type PeerPair struct {
	VpcName1     string `json:"vpc_name1"`
	VpcName2     string `json:"vpc_name2"`
	PeeringState string `json:"peering_state"`
}

// Peer connects two gateways with encrypted peering.
func (c *Client) Peer(ctx context.Context, vpcName1, vpcName2 string) error {
	params := url.Values{}
	params.Set("vpc_name1", vpcName1)
	params.Set("vpc_name2", vpcName2)
	_, err := c.call(ctx, http.MethodGet, "peer_vpc_pair", params, endpointAPI)
	return err
}

// Unpeer disconnects two peered gateways.
func (c *Client) Unpeer(ctx context.Context, vpcName1, vpcName2 string) error {
	params := url.Values{}
	params.Set("vpc_name1", vpcName1)
	params.Set("vpc_name2", vpcName2)
	_, err := c.call(ctx, http.MethodGet, "unpeer_vpc_pair", params, endpointAPI)
	return err
}

// ExtendedVPCPeer configures transitive peering: traffic from the source
// gateway to the reachable CIDR is routed through the next-hop gateway.
func (c *Client) ExtendedVPCPeer(ctx context.Context, source, nexthop, reachableCIDR string) error {
	params := url.Values{}
	params.Set("source", source)
	params.Set("nexthop", nexthop)
	params.Set("reachable_cidr", reachableCIDR)
	_, err := c.call(ctx, http.MethodPost, "add_extended_vpc_peer", params, endpointAPI)
	return err
}

// ListPeers lists the gateway pairs that are currently peered.
func (c *Client) ListPeers(ctx context.Context) ([]PeerPair, error) {
	res, err := c.call(ctx, http.MethodGet, "list_peer_vpc_pairs", url.Values{}, endpointAPI)
	if err != nil {
		return nil, err
	}
	pairs := res.Get("pair_list")
	if !pairs.Exists() {
		return nil, ErrUnexpectedResponse.New("peer list response did not include pair_list")
	}
	var out []PeerPair
	if err := (Result{raw: []byte(pairs.Raw)}).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
