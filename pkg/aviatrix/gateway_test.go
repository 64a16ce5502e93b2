package aviatrix

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGatewayReq = CreateGatewayRequest{
	AccountName: "prod",
	CloudType:   CloudTypeAWS,
	GwName:      "gw-app",
	VpcID:       "vpc-0123",
	VpcRegion:   "us-east-1",
	VpcSize:     "t3.small",
	VpcNet:      "10.0.1.0/24",
}

func TestCreateGatewayFiltersOptionalParams(t *testing.T) {
	var gotForm url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(`{"return": true, "results": "ok"}`))
	})

	extra := map[string]string{
		"enable_nat": "yes",     // allow-listed
		"bogus_knob": "ignored", // not allow-listed, must be dropped
	}
	require.NoError(t, client.CreateGateway(context.Background(), testGatewayReq, extra))

	assert.Equal(t, "connect_container", gotForm.Get("action"))
	assert.Equal(t, "yes", gotForm.Get("enable_nat"))
	assert.False(t, gotForm.Has("bogus_knob"))
	assert.Equal(t, "prod", gotForm.Get("account_name"))
	assert.Equal(t, "1", gotForm.Get("cloud_type"))
	assert.Equal(t, "10.0.1.0/24", gotForm.Get("vpc_net"))
}

func TestCreateGatewayValidatesRequiredFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid gateway spec")
	})

	req := testGatewayReq
	req.GwName = ""
	err := client.CreateGateway(context.Background(), req, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestCreateSpokeGatewayFiltersOptionalParams(t *testing.T) {
	var gotForm url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(`{"return": true, "results": "ok"}`))
	})

	req := CreateSpokeGatewayRequest{
		AccountName:  "prod",
		CloudType:    CloudTypeAWS,
		Region:       "us-east-1",
		VpcID:        "vpc-0123",
		PublicSubnet: "10.0.0.0/24~~us-east-1a~~public-a",
		GwName:       "gw-spoke",
		GwSize:       "t3.small",
	}
	extra := map[string]string{
		"nat_enabled": "yes",
		"otp_mode":    "2", // allowed for gateways, not for spoke gateways
	}
	require.NoError(t, client.CreateSpokeGateway(context.Background(), req, extra))

	assert.Equal(t, "create_spoke_gw", gotForm.Get("action"))
	assert.Equal(t, "yes", gotForm.Get("nat_enabled"))
	assert.False(t, gotForm.Has("otp_mode"))
}

func TestListGatewaysDecodesPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "list_vpcs_summary", r.URL.Query().Get("action"))
		assert.Equal(t, "prod", r.URL.Query().Get("account_name"))
		w.Write([]byte(`{"return": true, "results": [
			{"vpc_name": "gw-app", "account_name": "prod", "cloud_type": 1, "vpc_id": "vpc-0123", "vpc_state": "up"},
			{"vpc_name": "gw-db", "account_name": "prod", "cloud_type": 1, "vpc_id": "vpc-0456", "vpc_state": "up"}
		]}`))
	})

	gws, err := client.ListGateways(context.Background(), "prod")
	require.NoError(t, err)
	require.Len(t, gws, 2)
	assert.Equal(t, "gw-app", gws[0].VpcName)
	assert.Equal(t, CloudTypeAWS, gws[0].CloudType)
	assert.Equal(t, "vpc-0456", gws[1].VpcID)
}

func TestGetGatewayByName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"return": true, "results": [
			{"vpc_name": "gw-app", "account_name": "prod"},
			{"vpc_name": "gw-db", "account_name": "prod"}
		]}`))
	})

	gw, err := client.GetGatewayByName(context.Background(), "prod", "gw-db")
	require.NoError(t, err)
	assert.Equal(t, "gw-db", gw.VpcName)

	_, err = client.GetGatewayByName(context.Background(), "prod", "gw-missing")
	assert.ErrorIs(t, err, ErrGatewayNotFound)
}
