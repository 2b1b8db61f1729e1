package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxe-be/internal/identity"
	"luxe-be/internal/jwt"
	"luxe-be/internal/logger"
	"luxe-be/internal/models"
)

type stubProfiles struct {
	profile *models.UserResponse
	err     error
	calls   int
}

func (s *stubProfiles) FetchProfile(context.Context, string) (*models.UserResponse, error) {
	s.calls++
	return s.profile, s.err
}

func newResolver(profiles ProfileFetcher, strict bool) (*CartResolver, *jwt.JWTService) {
	tokens := jwt.NewJWTService("shared-secret", jwt.AccessTokenTTL)
	return NewCartResolver(tokens, profiles, logger.Discard(), strict), tokens
}

func TestResolve_NoToken(t *testing.T) {
	profiles := &stubProfiles{}
	r, _ := newResolver(profiles, false)

	id, err := r.Resolve(context.Background(), "", "s1")
	require.NoError(t, err)
	assert.Equal(t, CartIdentity{Key: "session:s1"}, id)
	assert.Zero(t, profiles.calls)
}

func TestResolve_Authenticated(t *testing.T) {
	profiles := &stubProfiles{profile: &models.UserResponse{ID: "u1"}}
	r, tokens := newResolver(profiles, false)
	token, err := tokens.GenerateToken("u1")
	require.NoError(t, err)

	id, err := r.Resolve(context.Background(), token, "s1")
	require.NoError(t, err)
	assert.True(t, id.Authenticated)
	assert.Equal(t, "user:u1", id.Key)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, 1, profiles.calls)
}

func TestResolve_WrongSignatureMatchesNoToken(t *testing.T) {
	profiles := &stubProfiles{profile: &models.UserResponse{ID: "u1"}}
	r, _ := newResolver(profiles, false)
	forged, err := jwt.NewJWTService("other-secret", jwt.AccessTokenTTL).GenerateToken("u1")
	require.NoError(t, err)

	withForged, err := r.Resolve(context.Background(), forged, "s1")
	require.NoError(t, err)
	without, err := r.Resolve(context.Background(), "", "s1")
	require.NoError(t, err)

	assert.Equal(t, without, withForged)
	assert.Zero(t, profiles.calls, "unverifiable tokens never reach the identity service")
}

func TestResolve_ConfirmationFailureFallsBackToSession(t *testing.T) {
	for name, err := range map[string]error{
		"rejected":    fmt.Errorf("%w: status 401", identity.ErrRejected),
		"unavailable": fmt.Errorf("%w: dial tcp", identity.ErrUnavailable),
	} {
		t.Run(name, func(t *testing.T) {
			r, tokens := newResolver(&stubProfiles{err: err}, false)
			token, tokErr := tokens.GenerateToken("u1")
			require.NoError(t, tokErr)

			id, resolveErr := r.Resolve(context.Background(), token, "s1")
			require.NoError(t, resolveErr)
			assert.Equal(t, CartIdentity{Key: "session:s1"}, id)
		})
	}
}

func TestResolve_ProfileMismatchFallsBackToSession(t *testing.T) {
	r, tokens := newResolver(&stubProfiles{profile: &models.UserResponse{ID: "someone-else"}}, false)
	token, err := tokens.GenerateToken("u1")
	require.NoError(t, err)

	id, err := r.Resolve(context.Background(), token, "s1")
	require.NoError(t, err)
	assert.False(t, id.Authenticated)
	assert.Equal(t, "session:s1", id.Key)
}

func TestResolve_StrictModeSurfacesUnavailable(t *testing.T) {
	r, tokens := newResolver(&stubProfiles{err: fmt.Errorf("%w: timeout", identity.ErrUnavailable)}, true)
	token, err := tokens.GenerateToken("u1")
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), token, "s1")
	assert.ErrorIs(t, err, ErrIdentityUnavailable)
}

func TestResolve_StrictModeStillDegradesOnRejection(t *testing.T) {
	r, tokens := newResolver(&stubProfiles{err: fmt.Errorf("%w: status 401", identity.ErrRejected)}, true)
	token, err := tokens.GenerateToken("u1")
	require.NoError(t, err)

	id, err := r.Resolve(context.Background(), token, "s1")
	require.NoError(t, err)
	assert.Equal(t, "session:s1", id.Key)
}
