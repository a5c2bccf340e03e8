package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityProbe(t *testing.T, issuer *TokenIssuer, mutate func(*http.Request)) (*httptest.ResponseRecorder, *uint) {
	t.Helper()

	var seen *uint
	handler := Identity(issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := UserID(r.Context()); ok {
			seen = &userID
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	mutate(req)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seen
}

func TestIdentityAnonymous(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	rec, seen := identityProbe(t, issuer, func(r *http.Request) {})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)
}

func TestIdentityBearerToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Issue(42)
	require.NoError(t, err)

	rec, seen := identityProbe(t, issuer, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, uint(42), *seen)
}

// An explicit but invalid bearer token is an error, not anonymity
func TestIdentityInvalidBearerRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	rec, seen := identityProbe(t, issuer, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer bogus")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestIdentityMalformedAuthorizationHeader(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	rec, _ := identityProbe(t, issuer, func(r *http.Request) {
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIdentitySessionCookie(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Issue(7)
	require.NoError(t, err)

	rec, seen := identityProbe(t, issuer, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, uint(7), *seen)
}

// A stale or bogus cookie degrades to anonymous, matching browser sessions
func TestIdentityStaleCookieIsAnonymous(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	rec, seen := identityProbe(t, issuer, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)
}

func TestIdentityBearerWinsOverCookie(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	bearer, err := issuer.Issue(1)
	require.NoError(t, err)
	cookie, err := issuer.Issue(2)
	require.NoError(t, err)

	_, seen := identityProbe(t, issuer, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+bearer)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	})

	require.NotNil(t, seen)
	assert.Equal(t, uint(1), *seen)
}

func TestRequireUser(t *testing.T) {
	handler := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/collection/add/base1-4", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/collection/add/base1-4", nil)
	req = req.WithContext(WithUserID(req.Context(), 42))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
