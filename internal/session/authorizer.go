package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frahmantamala/ops-dashboard/internal"
)

type Authorizer struct {
	secret []byte
	logger *slog.Logger
}

func NewAuthorizer(secret string, logger *slog.Logger) *Authorizer {
	return &Authorizer{
		secret: []byte(secret),
		logger: logger,
	}
}

// Authorize verifies the signature and returns the claims. Expiry is the issuer's concern and
// is not checked here.
func (a *Authorizer) Authorize(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, internal.ErrUnauthorized
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, a.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		a.logger.Debug("session token rejected", "error", err)
		return nil, internal.ErrUnauthorized.WithCause(err)
	}

	if !claims.IsAuthenticated {
		return nil, internal.ErrUnauthorized.WithCause(errors.New("session is not authenticated"))
	}
	if claims.IdentityID() == "" {
		return nil, internal.ErrUnauthorized.WithCause(errors.New("session has no identity"))
	}
	return claims, nil
}

func (a *Authorizer) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return a.secret, nil
}

// Issue signs claims with the shared secret. Used by the session-token command for local
// development only.
func (a *Authorizer) Issue(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	if claims.Subject == "" {
		claims.Subject = claims.UserID
	}
	claims.IssuedAt = jwt.NewNumericDate(now)
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}
