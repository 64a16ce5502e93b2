package aviatrix

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTLSPolicyAcceptsSelfSigned(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"return": true, "results": "ok"}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("controller.test", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.call(context.Background(), http.MethodGet, "list_accounts", url.Values{}, endpointAPI)
	assert.NoError(t, err)
}

func TestStrictTLSRejectsSelfSigned(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"return": true, "results": "ok"}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("controller.test", WithBaseURL(server.URL), WithStrictTLS())
	require.NoError(t, err)

	_, err = client.call(context.Background(), http.MethodGet, "list_accounts", url.Values{}, endpointAPI)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestWithTimeout(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("controller.test", WithBaseURL(server.URL), WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = client.call(context.Background(), http.MethodGet, "list_accounts", url.Values{}, endpointAPI)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("controller.test", WithBaseURL(server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.call(ctx, http.MethodGet, "list_accounts", url.Values{}, endpointAPI)
	assert.ErrorIs(t, err, ErrRequestFailed)
}
