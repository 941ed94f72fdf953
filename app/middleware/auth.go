package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "frota-api/app/jwt"
)

type ctxKey int

const (
	ClaimsKey ctxKey = iota + 1
	RequestIDKey
)

type Auth struct{ Signer *jwtutil.Signer }

func (a *Auth) parse(r *http.Request) *jwtutil.Claims {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return nil
	}
	claims, err := a.Signer.Parse(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		return nil
	}
	return claims
}

// RequireAuth rejects requests without a valid bearer token.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := a.parse(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects requests without a valid token (401) or whose token
// carries none of the given roles (403).
func (a *Auth) RequireRole(next http.Handler, roles ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := a.parse(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		allowed := false
		for _, role := range roles {
			if claims.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
