package service

import (
	"context"
	"errors"
)

// ErrAuthenticationFailed is the only error an AuthGate exposes to callers
var ErrAuthenticationFailed = errors.New("authentication failed")

// AuthGate resolves the identity that owns a request
type AuthGate interface {
	ResolveOwner(ctx context.Context, token string) (string, error)
}

// TokenVerifier validates a bearer token and returns the identity it was issued to
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
