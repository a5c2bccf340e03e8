package auth

import (
	"context"
	"net/http"
	"strings"
)

// SessionCookieName is the cookie carrying the session-channel token
const SessionCookieName = "cardbinder_session"

type contextKey string

const userIDKey contextKey = "user_id"

// Identity resolves the optional viewer from either identity channel: the
// Authorization bearer header or the session cookie. Both carry the same
// token format and yield the same resolved-identity shape downstream. An
// explicit but invalid bearer token is rejected; a stale cookie is treated
// as anonymous, matching browser session behavior.
func Identity(tokens *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if header := r.Header.Get("Authorization"); header != "" {
				tokenString, ok := strings.CutPrefix(header, "Bearer ")
				if !ok {
					writeUnauthorized(w, "invalid authorization header")
					return
				}
				userID, err := tokens.Verify(tokenString)
				if err != nil {
					writeUnauthorized(w, "invalid token")
					return
				}
				next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
				return
			}

			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				if userID, err := tokens.Verify(cookie.Value); err == nil {
					next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects requests without a resolved identity. Mounted on the
// collection mutation and dump routes.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserID(r.Context()); !ok {
			writeUnauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID returns the resolved viewer id, if any
func UserID(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(userIDKey).(uint)
	return userID, ok
}

// WithUserID attaches a resolved identity to the context
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"msg":"` + msg + `"}`))
}
