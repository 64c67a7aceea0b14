package odin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOdin(t *testing.T, h http.HandlerFunc) *Verifier {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "k-1"})
	require.NoError(t, err)
	return NewVerifier(c)
}

func TestVerify_ReturnsClaimsWithRole(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyPath, r.URL.Path)
		assert.Equal(t, "k-1", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var in verifyRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "tok", in.Token)

		_ = json.NewEncoder(w).Encode(verifyResponse{UserID: " u-1 ", Role: "Health_Provider"})
	})

	claims, err := v.Verify(context.Background(), " tok ")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "health_provider", claims.Role)
}

func TestVerify_Unauthorized(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrOdinUnauthorized)
}

func TestVerify_UpstreamAndMissingUser(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrOdinUpstream)

	v = newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(verifyResponse{})
	})
	_, err = v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrOdinUpstream)
}

func TestVerify_NotConfiguredOrEmptyToken(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)

	_, err = NewVerifier(c).Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrOdinNotConfigured)

	_, err = NewVerifier(c).Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	var nilVerifier *Verifier
	_, err = nilVerifier.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrOdinNotConfigured)
}
