package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
)

// AccessGrant is the stateless capability gating the thank-you page: an
// HMAC-signed token embedding its own expiry. Validity is decided purely by
// signature and clock; there is no server-side store and no revocation.
type AccessGrant struct {
	Token     string
	ExpiresAt time.Time
}

// ExpiresAtMillis is the epoch-milliseconds form carried in JSON responses.
func (g AccessGrant) ExpiresAtMillis() int64 {
	return g.ExpiresAt.UnixMilli()
}

// GrantIssuer issues and verifies thank-you access grants.
type GrantIssuer interface {
	Issue(now time.Time) (AccessGrant, error)
	Verify(tokenStr string) (time.Time, error)
}

type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue mints a grant expiring AccessGrantTTL after now. Each call produces
// an independent token; identical submissions are deliberately not
// deduplicated, the partner tags duplicates.
func (i *Issuer) Issue(now time.Time) (AccessGrant, error) {
	expiresAt := now.Add(consts.AccessGrantTTL)

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return AccessGrant{}, fmt.Errorf("sign access grant: %w", err)
	}

	return AccessGrant{Token: signed, ExpiresAt: expiresAt}, nil
}

// Verify checks signature and expiry, returning the embedded expiry time.
func (i *Issuer) Verify(tokenStr string) (time.Time, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return time.Time{}, consts.ErrorAccessTokenInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ExpiresAt == nil {
		return time.Time{}, consts.ErrorAccessTokenInvalid
	}

	return claims.ExpiresAt.Time, nil
}
