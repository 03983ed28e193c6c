package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/pkg/utils"
)

type Authenticator interface {
	Authenticate(token string) (entities.Identity, error)
}

type identityKey struct{}

// IdentityFrom returns the caller attached by Auth. Anonymous requests yield
// the zero Identity.
func IdentityFrom(ctx context.Context) entities.Identity {
	id, _ := ctx.Value(identityKey{}).(entities.Identity)
	return id
}

func WithIdentity(ctx context.Context, id entities.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// Auth resolves the caller from a bearer token, falling back to cookieName.
// Requests without a credential pass through anonymously; a credential that
// fails verification is rejected with 401.
func Auth(authn Authenticator, cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := Credential(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := authn.Authenticate(token)
			if err != nil {
				utils.WriteError(w, "invalid or expired credential", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// Credential extracts the raw token from the Authorization header or the
// named cookie.
func Credential(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
