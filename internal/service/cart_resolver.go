package service

import (
	"context"
	"errors"
	"log/slog"

	"luxe-be/internal/identity"
	"luxe-be/internal/models"
)

// TokenVerifier checks a bearer token locally and returns its subject.
type TokenVerifier interface {
	ValidateToken(token string) (string, error)
}

// ProfileFetcher confirms a token with the identity service.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, token string) (*models.UserResponse, error)
}

// CartIdentity is the outcome of resolving who owns the cart for one request.
type CartIdentity struct {
	Key           string
	UserID        string // empty for anonymous callers
	Authenticated bool
}

// UserCartKey is the storage key of an authenticated user's cart.
func UserCartKey(userID string) string {
	return "user:" + userID
}

// SessionCartKey is the storage key of an anonymous session's cart.
func SessionCartKey(sessionID string) string {
	return "session:" + sessionID
}

// CartResolver decides between a user cart and a session cart on every request.
type CartResolver struct {
	verifier TokenVerifier
	profiles ProfileFetcher
	logger   *slog.Logger
	strict   bool
}

// NewCartResolver builds a resolver. With strict set, an unreachable identity
// service fails the request instead of falling back to the session cart.
func NewCartResolver(verifier TokenVerifier, profiles ProfileFetcher, logger *slog.Logger, strict bool) *CartResolver {
	return &CartResolver{
		verifier: verifier,
		profiles: profiles,
		logger:   logger,
		strict:   strict,
	}
}

// Resolve maps an optional bearer token and a session id to a cart identity.
// Any verification or confirmation failure yields the anonymous session cart.
func (r *CartResolver) Resolve(ctx context.Context, token, sessionID string) (CartIdentity, error) {
	anonymous := CartIdentity{Key: SessionCartKey(sessionID)}
	if token == "" {
		return anonymous, nil
	}

	subject, err := r.verifier.ValidateToken(token)
	if err != nil {
		r.logger.Debug("token failed local verification", slog.Any("error", err))
		return anonymous, nil
	}

	profile, err := r.profiles.FetchProfile(ctx, token)
	if err != nil {
		if r.strict && errors.Is(err, identity.ErrUnavailable) {
			return CartIdentity{}, ErrIdentityUnavailable
		}
		r.logger.Warn("identity confirmation failed, using session cart",
			slog.String("user_id", subject),
			slog.Any("error", err))
		return anonymous, nil
	}
	if profile.ID != subject {
		r.logger.Warn("identity service returned a different user",
			slog.String("token_subject", subject),
			slog.String("profile_id", profile.ID))
		return anonymous, nil
	}

	return CartIdentity{
		Key:           UserCartKey(profile.ID),
		UserID:        profile.ID,
		Authenticated: true,
	}, nil
}
