package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// AccessClaims is the typed payload of an access token. Roles are a snapshot
// taken at issuance; authorization always re-checks the live user record, so
// the claim is informational.
type AccessClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates signed bearer tokens. Validation is pure:
// no store access is needed to reject a bad token.
type TokenIssuer struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewTokenIssuer builds a TokenIssuer for the given HMAC algorithm name
// (HS256, HS384 or HS512). An empty secret or unknown algorithm is a
// configuration error.
func NewTokenIssuer(secret, algorithm string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret must not be empty")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("token: unsupported signing algorithm %q", algorithm)
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenIssuer{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// Issue creates a signed token for the given subject and role snapshot,
// expiring after the configured ttl.
func (t *TokenIssuer) Issue(username string, roles []string) (string, error) {
	now := time.Now().UTC()
	claims := AccessClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
}

// Validate verifies signature and expiry and returns the decoded claims.
// Malformed, tampered and expired tokens all collapse into
// domain.ErrInvalidToken.
func (t *TokenIssuer) Validate(raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{t.method.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
