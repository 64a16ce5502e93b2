package aviatrix

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGatewayStatisticsEncodesRange(t *testing.T) {
	var gotPath string
	var gotForm url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotForm = r.PostForm
		w.Write([]byte(`{"return": true, "results": {"gw-app": []}}`))
	})

	start := time.Unix(1700000000, 0)
	end := time.Unix(1700003600, 0)
	_, err := client.GetGatewayStatistics(context.Background(), []string{"gw-app", "gw-db"}, start, end, StatCPUIdle)
	require.NoError(t, err)

	assert.Equal(t, "/v1/backend1", gotPath)
	assert.Equal(t, "get_statistics", gotForm.Get("action"))
	assert.Equal(t, "1700000000", gotForm.Get("start_time"))
	assert.Equal(t, "1700003600", gotForm.Get("end_time"))
	assert.Equal(t, "cpu_idle", gotForm.Get("ds_name"))
	assert.Equal(t, "0", gotForm.Get("db_id"))
	assert.Equal(t, "gw-app,gw-db", gotForm.Get("gw_name"))
}

func TestGetGatewayStatisticsOpenRange(t *testing.T) {
	var gotForm url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(`{"return": true, "results": {}}`))
	})

	_, err := client.GetGatewayStatistics(context.Background(), []string{"gw-app"}, time.Time{}, time.Time{}, StatDataAvgTotal)
	require.NoError(t, err)

	assert.Equal(t, "0", gotForm.Get("start_time"))
	assert.Equal(t, "0", gotForm.Get("end_time"))
}

func TestGetCurrentGatewayStatisticsUsesBackendPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/v1/backend1", r.URL.Path)
		assert.Equal(t, "show_packets_stat_for_gw", r.PostForm.Get("action"))
		assert.Equal(t, "gw-app", r.PostForm.Get("gw_name"))
		w.Write([]byte(`{"return": true, "results": {"sent": "42", "received": "7"}}`))
	})

	res, err := client.GetCurrentGatewayStatistics(context.Background(), "gw-app")
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.Get("sent").Int())
}
