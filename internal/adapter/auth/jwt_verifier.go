package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ressKim-io/intent-service/internal/domain/service"
	"github.com/ressKim-io/intent-service/internal/infrastructure/config"
)

var (
	ErrVerifierUnavailable = errors.New("token verifier not configured")
	ErrMissingSubject      = errors.New("token has no subject")
)

// JWTVerifier validates HMAC-signed JWTs and returns their subject
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

var _ service.TokenVerifier = (*JWTVerifier)(nil)

// NewJWTVerifier creates a verifier from the auth configuration
func NewJWTVerifier(cfg config.AuthConfig) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &JWTVerifier{
		secret: []byte(cfg.JWTSecret),
		parser: jwt.NewParser(opts...),
	}
}

// Verify parses token and returns the sub claim
func (v *JWTVerifier) Verify(_ context.Context, token string) (string, error) {
	if len(v.secret) == 0 {
		return "", ErrVerifierUnavailable
	}

	var claims jwt.RegisteredClaims
	if _, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}); err != nil {
		return "", fmt.Errorf("token validation failed: %w", err)
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
