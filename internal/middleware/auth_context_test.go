package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"beneficiary-trajectory/internal/ports/auth"

	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
	token  string
}

func (v *stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	v.token = token
	return v.claims, v.err
}

func captureClaims(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) (auth.Claims, bool) {
	t.Helper()

	var (
		got auth.Claims
		ok  bool
	)
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetClaims(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func TestAuthContext_DevHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderDebugUserID, " u-1 ")
	req.Header.Set(HeaderDebugUserRole, "health_provider")

	claims, ok := captureClaims(t, AuthContext(nil), req)
	assert.True(t, ok)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "health_provider", claims.Role)
}

func TestAuthContext_DevRoleIsNormalized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderDebugUserID, "u-1")
	req.Header.Set(HeaderDebugUserRole, " Health_Provider ")

	claims, ok := captureClaims(t, AuthContext(nil), req)
	assert.True(t, ok)
	assert.Equal(t, "health_provider", claims.Role)
}

func TestAuthContext_DevWithoutHeader(t *testing.T) {
	_, ok := captureClaims(t, AuthContext(nil), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestAuthContext_Verifier(t *testing.T) {
	v := &stubVerifier{claims: auth.Claims{UserID: "u-2", Role: "community_agent"}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer tok-123")

	claims, ok := captureClaims(t, AuthContext(v), req)
	assert.True(t, ok)
	assert.Equal(t, "tok-123", v.token)
	assert.Equal(t, "community_agent", claims.Role)

	// headers dev ignorados cuando hay verifier
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.Header.Set(HeaderDebugUserID, "u-dev")
	_, ok = captureClaims(t, AuthContext(v), req2)
	assert.False(t, ok)
}

func TestAuthContext_VerifierError(t *testing.T) {
	v := &stubVerifier{err: errors.New("expired")}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")

	_, ok := captureClaims(t, AuthContext(v), req)
	assert.False(t, ok)
}

func TestRequireClaims(t *testing.T) {
	h := RequireClaims(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithClaims(req.Context(), auth.Claims{UserID: "u"}))
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}
