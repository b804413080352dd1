package session

import (
	"context"
	"net/http"

	"github.com/frahmantamala/ops-dashboard/internal/transport"
	"github.com/frahmantamala/ops-dashboard/pkg/logger"
)

type ctxKey struct{}

// ContextWithClaims is meant for the transport layer only; services receive claims as an argument.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*Claims)
	return claims, ok && claims != nil
}

// TokenFromRequest reads the bearer token and falls back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if token := transport.BearerToken(r); token != "" {
		return token
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// Middleware attaches claims when the request carries a valid session and passes everything
// else through untouched. Handlers decide whether a session is required.
func (a *Authorizer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := a.Authorize(token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := ContextWithClaims(r.Context(), claims)
		ctx = logger.With(ctx, "user_id", claims.IdentityID(), "role", claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
