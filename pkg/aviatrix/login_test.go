package aviatrix

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAddress(t *testing.T) {
	_, err := NewClient("")
	assert.ErrorIs(t, err, ErrConfiguration)

	client, err := NewClient("203.0.113.10")
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.10", client.ControllerAddr())
	assert.Empty(t, client.CID())
}

func TestLoginRequiresCredentials(t *testing.T) {
	var requests atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	assert.ErrorIs(t, client.Login(context.Background(), "", "secret"), ErrConfiguration)
	assert.ErrorIs(t, client.Login(context.Background(), "admin", ""), ErrConfiguration)
	assert.Zero(t, requests.Load(), "no network request may be issued for invalid credentials")
}

func TestLoginStoresCID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "admin", r.URL.Query().Get("username"))
		assert.Equal(t, "secret", r.URL.Query().Get("password"))
		assert.Equal(t, "login", r.URL.Query().Get("action"))
		w.Write([]byte(`{"return": true, "results": {"CID": "ignored"}, "CID": "abc123"}`))
	})

	require.NoError(t, client.Login(context.Background(), "admin", "secret"))
	assert.Equal(t, "abc123", client.CID())
}

func TestLoginFailureLeavesTokenUntouched(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"return": false, "reason": "bad creds"}`))
	})

	err := client.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrREST)
	assert.Empty(t, client.CID())

	// an earlier session survives a later failed login
	client.cid = "previous-session"
	require.Error(t, client.Login(context.Background(), "admin", "wrong"))
	assert.Equal(t, "previous-session", client.CID())
}

func TestLoginResponseWithoutCID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"return": true, "results": "authorized"}`))
	})

	err := client.Login(context.Background(), "admin", "secret")
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
	assert.Empty(t, client.CID())
}
