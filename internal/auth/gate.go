// Package auth verifies signed credentials and enforces role-scoped access.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/config"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("access denied")
	ErrEmailNotVerified = fmt.Errorf("%w: email is not verified", ErrForbidden)
)

// Claims is the payload of a credential. Role and email are trusted only after
// the signature has been checked.
type Claims struct {
	Email    string        `json:"email"`
	Role     entities.Role `json:"role"`
	Verified bool          `json:"verified"`
	jwt.RegisteredClaims
}

type Gate struct {
	secret         []byte
	issuer         string
	ttl            time.Duration
	verifiedEmails bool
	now            func() time.Time
}

func NewGate(cfg config.Auth) *Gate {
	return &Gate{
		secret:         []byte(cfg.Secret),
		issuer:         cfg.Issuer,
		ttl:            cfg.TTL,
		verifiedEmails: cfg.RequireVerifiedEmail,
		now:            time.Now,
	}
}

// Issue signs a credential for id.
func (g *Gate) Issue(id entities.Identity) (string, error) {
	if !id.Role.Valid() {
		return "", fmt.Errorf("unknown role %q", id.Role)
	}
	now := g.now()
	claims := Claims{
		Email:    id.Email,
		Role:     id.Role,
		Verified: id.Verified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.SubjectID,
			Issuer:    g.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

// Authenticate checks signature, issuer and expiry of token and returns the
// identity it carries.
func (g *Gate) Authenticate(token string) (entities.Identity, error) {
	if token == "" {
		return entities.Identity{}, ErrUnauthenticated
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(g.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return entities.Identity{}, fmt.Errorf("%w: malformed claims", ErrUnauthenticated)
	}

	return entities.Identity{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		Verified:  claims.Verified,
	}, nil
}

// Authorize is a pure check of id against required. Admin routes accept admin
// and super admin, vendor routes accept only vendors, customer routes accept
// any identity with a verified email when verification is enabled.
func (g *Gate) Authorize(id entities.Identity, required entities.RequiredRole) (entities.Identity, error) {
	if id.SubjectID == "" {
		return entities.Identity{}, ErrUnauthenticated
	}

	switch required {
	case entities.RequireAuthenticated:
		return id, nil
	case entities.RequireCustomer:
		if g.verifiedEmails && !id.Verified {
			return entities.Identity{}, ErrEmailNotVerified
		}
		return id, nil
	case entities.RequireVendor:
		if id.Role == entities.RoleVendor {
			return id, nil
		}
	case entities.RequireAdmin:
		if id.Role == entities.RoleAdmin || id.Role == entities.RoleSuperAdmin {
			return id, nil
		}
	}
	return entities.Identity{}, ErrForbidden
}
