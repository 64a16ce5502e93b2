package aviatrix_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avxops/avxgo/internal/controllersim"
	"github.com/avxops/avxgo/pkg/aviatrix"
)

func newSimClient(t *testing.T) *aviatrix.Client {
	t.Helper()
	sim := controllersim.New(controllersim.DefaultSeed("admin", "secret"))
	server := httptest.NewTLSServer(sim.Router)
	t.Cleanup(server.Close)

	client, err := aviatrix.NewClient("controller.test", aviatrix.WithBaseURL(server.URL))
	require.NoError(t, err)
	require.NoError(t, client.Login(context.Background(), "admin", "secret"))
	return client
}

func TestLoginAgainstSimulator(t *testing.T) {
	sim := controllersim.New(controllersim.DefaultSeed("admin", "secret"))
	server := httptest.NewTLSServer(sim.Router)
	t.Cleanup(server.Close)

	client, err := aviatrix.NewClient("controller.test", aviatrix.WithBaseURL(server.URL))
	require.NoError(t, err)

	err = client.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, aviatrix.ErrREST)
	assert.Empty(t, client.CID())

	require.NoError(t, client.Login(context.Background(), "admin", "secret"))
	assert.NotEmpty(t, client.CID())
}

func TestSessionRequiredAgainstSimulator(t *testing.T) {
	sim := controllersim.New(controllersim.DefaultSeed("admin", "secret"))
	server := httptest.NewTLSServer(sim.Router)
	t.Cleanup(server.Close)

	client, err := aviatrix.NewClient("controller.test", aviatrix.WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.ListAccounts(context.Background())
	var restErr *aviatrix.RESTError
	require.ErrorAs(t, err, &restErr)
	assert.Equal(t, "Session expired", restErr.Reason)
}

func TestGatewayLifecycleAgainstSimulator(t *testing.T) {
	ctx := context.Background()
	client := newSimClient(t)

	req := aviatrix.CreateGatewayRequest{
		AccountName: "test-account",
		CloudType:   aviatrix.CloudTypeAWS,
		GwName:      "gw-app",
		VpcID:       "vpc-0123",
		VpcRegion:   "us-east-1",
		VpcSize:     "t3.small",
		VpcNet:      "10.0.1.0/24",
	}
	require.NoError(t, client.CreateGateway(ctx, req, map[string]string{"enable_nat": "yes"}))

	gw, err := client.GetGatewayByName(ctx, "test-account", "gw-app")
	require.NoError(t, err)
	assert.Equal(t, "vpc-0123", gw.VpcID)
	assert.Equal(t, "up", gw.VpcState)

	spoke := req
	spoke.GwName = "gw-spoke"
	spoke.VpcID = "vpc-0456"
	require.NoError(t, client.CreateGateway(ctx, spoke, nil))

	require.NoError(t, client.Peer(ctx, "gw-app", "gw-spoke"))
	pairs, err := client.ListPeers(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "gw-app", pairs[0].VpcName1)
	assert.Equal(t, "gw-spoke", pairs[0].VpcName2)

	require.NoError(t, client.Unpeer(ctx, "gw-app", "gw-spoke"))
	pairs, err = client.ListPeers(ctx)
	require.NoError(t, err)
	assert.Empty(t, pairs)

	require.NoError(t, client.DeleteGateway(ctx, aviatrix.CloudTypeAWS, "gw-spoke"))
	_, err = client.GetGatewayByName(ctx, "test-account", "gw-spoke")
	assert.ErrorIs(t, err, aviatrix.ErrGatewayNotFound)

	err = client.DeleteGateway(ctx, aviatrix.CloudTypeAWS, "gw-spoke")
	assert.ErrorIs(t, err, aviatrix.ErrREST)
}

func TestVPNUserLifecycleAgainstSimulator(t *testing.T) {
	ctx := context.Background()
	client := newSimClient(t)

	req := aviatrix.VPNUserRequest{
		LBName:   "lb-vpn",
		VpcID:    "vpc-0123",
		Username: "alice",
	}
	require.NoError(t, client.AddVPNUser(ctx, req))

	err := client.AddVPNUser(ctx, req)
	var restErr *aviatrix.RESTError
	require.ErrorAs(t, err, &restErr)
	assert.Contains(t, restErr.Reason, "already exists")

	require.NoError(t, client.DetachVPNUser(ctx, "vpc-0123", "alice"))
	require.NoError(t, client.AttachVPNUser(ctx, req))

	res, err := client.ListVPNUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Get("0.username").String())

	require.NoError(t, client.DeleteVPNUser(ctx, "vpc-0123", "alice"))
	assert.ErrorIs(t, client.DetachVPNUser(ctx, "vpc-0123", "alice"), aviatrix.ErrREST)
}

func TestFQDNFilterLifecycleAgainstSimulator(t *testing.T) {
	ctx := context.Background()
	client := newSimClient(t)

	require.NoError(t, client.AddFQDNFilterTag(ctx, "web-filter"))
	require.NoError(t, client.SetFQDNFilterDomains(ctx, "web-filter", []string{"*.example.com", "example.org"}))
	require.NoError(t, client.SetFQDNFilterBlackList(ctx, "web-filter"))
	require.NoError(t, client.EnableFQDNFilter(ctx, "web-filter"))
	require.NoError(t, client.AttachFQDNFilterToGateway(ctx, "web-filter", "gw-app"))

	res, err := client.GetFQDNFilterDomains(ctx, "web-filter")
	require.NoError(t, err)
	assert.Equal(t, "*.example.com", res.Get("0").String())
	assert.Equal(t, "example.org", res.Get("1").String())

	res, err = client.ListFQDNFilterGateways(ctx, "web-filter")
	require.NoError(t, err)
	assert.Equal(t, "gw-app", res.Get("0").String())

	require.NoError(t, client.DetachFQDNFilterFromGateway(ctx, "web-filter", "gw-app"))
	require.NoError(t, client.DisableFQDNFilter(ctx, "web-filter"))
	require.NoError(t, client.DeleteFQDNFilterTag(ctx, "web-filter"))

	_, err = client.GetFQDNFilterDomains(ctx, "web-filter")
	assert.ErrorIs(t, err, aviatrix.ErrREST)
}

func TestFirewallLifecycleAgainstSimulator(t *testing.T) {
	ctx := context.Background()
	client := newSimClient(t)

	require.NoError(t, client.AddFWTag(ctx, "prod-tag"))
	members := []aviatrix.FWTagMember{
		{Name: "web", CIDR: "10.0.1.0/24"},
		{Name: "db", CIDR: "10.0.2.0/24"},
	}
	require.NoError(t, client.SetFWTagMembers(ctx, "prod-tag", members))

	got, err := client.GetFWTagMembers(ctx, "prod-tag")
	require.NoError(t, err)
	assert.Equal(t, members, got)

	res, err := client.ListFWTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, "prod-tag", res.Get("tags.0").String())

	rules := []aviatrix.SecurityRule{
		{Protocol: "tcp", SrcIP: "10.0.1.0/24", DstIP: "10.0.2.0/24", Port: "5432", DenyAllow: "allow", LogEnable: "on"},
		{Protocol: "all", SrcIP: "0.0.0.0/0", DstIP: "10.0.2.0/24", Port: "0", DenyAllow: "deny", LogEnable: "off"},
	}
	require.NoError(t, client.SetFWPolicySecurityRules(ctx, "gw-app", rules))

	policy, err := client.GetFWPolicy(ctx, "gw-app")
	require.NoError(t, err)
	assert.Equal(t, rules, policy.SecurityRules)

	require.NoError(t, client.DeleteFWTag(ctx, "prod-tag"))
	_, err = client.GetFWTagMembers(ctx, "prod-tag")
	assert.ErrorIs(t, err, aviatrix.ErrREST)
}

func TestStatisticsAgainstSimulator(t *testing.T) {
	ctx := context.Background()
	client := newSimClient(t)

	res, err := client.GetCurrentGatewayStatistics(ctx, "gw-app")
	require.NoError(t, err)
	assert.Equal(t, int64(99), res.Get("cpu_idle").Int())

	_, err = client.GetGatewayStatistics(ctx, []string{"gw-app"},
		time.Now().Add(-time.Hour), time.Now(), aviatrix.StatRateAvgTotal)
	require.NoError(t, err)
}

func TestControllerIPAndAccountsAgainstSimulator(t *testing.T) {
	ctx := context.Background()
	client := newSimClient(t)

	ip, err := client.GetControllerPublicIP(ctx)
	require.NoError(t, err)
	assert.Equal(t, "198.51.100.10", ip)

	res, err := client.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test-account", res.Get("account_list.0.account_name").String())
}
