package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/ressKim-io/intent-service/internal/domain/service"
	"github.com/ressKim-io/intent-service/internal/infrastructure/config"
)

// DevOwner is the identity attached to every request in dev mode
const DevOwner = "dev_user"

// NewGate selects the gate for the runtime mode. The choice is made once, at startup.
func NewGate(app config.AppConfig, verifier service.TokenVerifier, logger *zap.Logger) service.AuthGate {
	if app.IsDev() {
		return NewBypassGate()
	}
	return NewVerifyingGate(verifier, logger)
}

// BypassGate skips verification and returns a fixed identity
type BypassGate struct {
	owner string
}

// NewBypassGate creates a gate that always resolves to DevOwner
func NewBypassGate() *BypassGate {
	return &BypassGate{owner: DevOwner}
}

// ResolveOwner ignores token
func (g *BypassGate) ResolveOwner(_ context.Context, _ string) (string, error) {
	return g.owner, nil
}

// VerifyingGate delegates to a TokenVerifier and hides why verification failed
type VerifyingGate struct {
	verifier service.TokenVerifier
	logger   *zap.Logger
}

// NewVerifyingGate creates a gate backed by verifier
func NewVerifyingGate(verifier service.TokenVerifier, logger *zap.Logger) *VerifyingGate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VerifyingGate{verifier: verifier, logger: logger}
}

// ResolveOwner returns the verified identity or ErrAuthenticationFailed
func (g *VerifyingGate) ResolveOwner(ctx context.Context, token string) (string, error) {
	if token == "" {
		g.logger.Debug("Authentication failed", zap.String("reason", "missing token"))
		return "", service.ErrAuthenticationFailed
	}
	if g.verifier == nil {
		g.logger.Error("Authentication failed", zap.String("reason", "no token verifier configured"))
		return "", service.ErrAuthenticationFailed
	}

	owner, err := g.verifier.Verify(ctx, token)
	if err != nil {
		g.logger.Warn("Authentication failed", zap.Error(err))
		return "", service.ErrAuthenticationFailed
	}
	if owner == "" {
		g.logger.Warn("Authentication failed", zap.String("reason", "empty identity"))
		return "", service.ErrAuthenticationFailed
	}

	return owner, nil
}
