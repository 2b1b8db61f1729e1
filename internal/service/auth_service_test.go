package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"luxe-be/internal/jwt"
	"luxe-be/internal/models"
	"luxe-be/internal/repository"
)

func newAuthService(t *testing.T) (AuthService, *repository.MemoryUserRepository, *jwt.JWTService) {
	t.Helper()
	repo := repository.NewMemoryUserRepository()
	tokens := jwt.NewJWTService("test-secret", jwt.AccessTokenTTL)
	return NewAuthService(repo, tokens), repo, tokens
}

func registerRequest(email, password string) *models.RegisterRequest {
	return &models.RegisterRequest{Email: email, Password: password, FirstName: "Ada", LastName: "Lovelace"}
}

func strPtr(s string) *string { return &s }

func TestRegister_ThenLoginResolvesToSameUser(t *testing.T) {
	svc, _, tokens := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerRequest("a@x.com", "Secur3Pass!"))
	require.NoError(t, err)
	assert.Equal(t, "bearer", reg.TokenType)
	assert.Equal(t, 1800, reg.ExpiresIn)
	assert.True(t, reg.User.IsActive)

	login, err := svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "Secur3Pass!"})
	require.NoError(t, err)

	subject, err := tokens.ValidateToken(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, subject)
}

func TestRegister_StoresSaltedHashOnly(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	ctx := context.Background()

	req := registerRequest("a@x.com", "Secur3Pass!")
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, req.Password, "plaintext is cleared after hashing")

	stored, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "Secur3Pass!", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secur3Pass!")))

	_, err = svc.Register(ctx, registerRequest("b@x.com", "Secur3Pass!"))
	require.NoError(t, err)
	other, err := repo.FindByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, stored.PasswordHash, other.PasswordHash, "each hash carries its own salt")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest("a@x.com", "Secur3Pass!"))
	require.NoError(t, err)

	second := &models.RegisterRequest{Email: "a@x.com", Password: "different", FirstName: "Bob", LastName: "Other", Phone: strPtr("555")}
	_, err = svc.Register(ctx, second)
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register(ctx, registerRequest("A@x.com", "Secur3Pass!"))
	assert.NoError(t, err, "email matching is case-sensitive")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, registerRequest("a@x.com", "Secur3Pass!"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "nobody@x.com", Password: "Secur3Pass!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	ctx := context.Background()
	reg, err := svc.Register(ctx, registerRequest("a@x.com", "Secur3Pass!"))
	require.NoError(t, err)

	user, err := repo.FindByID(ctx, reg.User.ID)
	require.NoError(t, err)
	user.IsActive = false
	require.NoError(t, repo.Update(ctx, user))

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "Secur3Pass!"})
	assert.ErrorIs(t, err, ErrInactiveAccount)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "credentials are checked before activity")
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()
	reg, err := svc.Register(ctx, registerRequest("a@x.com", "Secur3Pass!"))
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, reg.User.ID, &models.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "N3wPass!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, reg.User.ID, &models.ChangePasswordRequest{CurrentPassword: "Secur3Pass!", NewPassword: "Secur3Pass!"}),
		"reusing the same password is allowed")
	require.NoError(t, svc.ChangePassword(ctx, reg.User.ID, &models.ChangePasswordRequest{CurrentPassword: "Secur3Pass!", NewPassword: "N3wPass!"}))

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "Secur3Pass!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "N3wPass!"})
	assert.NoError(t, err)

	err = svc.ChangePassword(ctx, "missing", &models.ChangePasswordRequest{CurrentPassword: "x", NewPassword: "y"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()
	req := registerRequest("a@x.com", "Secur3Pass!")
	req.Phone = strPtr("111")
	reg, err := svc.Register(ctx, req)
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, reg.User.ID, &models.UpdateProfileRequest{LastName: strPtr("Byron")})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "Byron", updated.LastName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "111", *updated.Phone)
	assert.Equal(t, "a@x.com", updated.Email)

	updated, err = svc.UpdateProfile(ctx, reg.User.ID, &models.UpdateProfileRequest{Phone: strPtr("222")})
	require.NoError(t, err)
	assert.Equal(t, "Byron", updated.LastName)
	assert.Equal(t, "222", *updated.Phone)

	profile, err := svc.GetProfile(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *profile)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "Secur3Pass!"})
	assert.NoError(t, err, "password untouched by profile updates")
}

func TestGetProfile_UnknownUser(t *testing.T) {
	svc, _, _ := newAuthService(t)
	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = svc.Register(ctx, registerRequest("a@x.com", "Secur3Pass!"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, registerRequest("b@x.com", "Secur3Pass!"))
	require.NoError(t, err)

	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@x.com", users[0].Email)
}
