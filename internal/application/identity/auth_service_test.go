package identity

import (
	"context"
	"testing"
	"time"

	"github.com/ilidanrock/ecohome-sub001/internal/domain/identity"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/auth"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-at-least-32-chars!",
		RefreshSecret:          "test-refresh-secret-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "ecohome-test",
		MaxRefreshCount:        10,
	})
}

type authServiceFixture struct {
	service   *AuthService
	userRepo  *MockUserRepository
	blacklist *auth.InMemoryTokenBlacklist
	jwt       *auth.JWTService
}

func newAuthServiceFixture() *authServiceFixture {
	userRepo := new(MockUserRepository)
	blacklist := auth.NewInMemoryTokenBlacklist()
	jwtService := newTestJWTService()
	return &authServiceFixture{
		service:   NewAuthService(userRepo, jwtService, blacklist, zap.NewNop()),
		userRepo:  userRepo,
		blacklist: blacklist,
		jwt:       jwtService,
	}
}

func newTestUser(t *testing.T, email, password string, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Maria Quispe", email, password, role)
	require.NoError(t, err)
	return user
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("returns token pair for valid credentials", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newTestUser(t, "maria@example.com", "secret-pass-123", identity.RoleAdmin)

		f.userRepo.On("FindByEmail", ctx, "maria@example.com").Return(user, nil)

		result, err := f.service.Login(ctx, LoginInput{
			Email:    "maria@example.com",
			Password: "secret-pass-123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, user.ID, result.User.ID)
		assert.Equal(t, "ADMIN", result.User.Role)

		claims, err := f.jwt.ValidateAccessToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "ADMIN", claims.Role)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, nil)

		_, err := f.service.Login(ctx, LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever-pass",
		})

		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("rejects wrong password with the same error as unknown email", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newTestUser(t, "maria@example.com", "secret-pass-123", identity.RoleUser)
		f.userRepo.On("FindByEmail", ctx, "maria@example.com").Return(user, nil)

		_, err := f.service.Login(ctx, LoginInput{
			Email:    "maria@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a new token pair", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newTestUser(t, "tenant@example.com", "secret-pass-123", identity.RoleUser)
		f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		pair, err := f.jwt.GenerateTokenPair(auth.GenerateTokenInput{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role.String(),
		})
		require.NoError(t, err)

		result, err := f.service.RefreshToken(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)

		claims, err := f.jwt.ValidateAccessToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		f := newAuthServiceFixture()

		_, err := f.service.RefreshToken(ctx, RefreshTokenInput{RefreshToken: "not-a-token"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})

	t.Run("rejects a refresh token after user-wide invalidation", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newTestUser(t, "tenant@example.com", "secret-pass-123", identity.RoleUser)

		pair, err := f.jwt.GenerateTokenPair(auth.GenerateTokenInput{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role.String(),
		})
		require.NoError(t, err)

		// Invalidation timestamps have second precision; make sure the
		// invalidation lands strictly after the token's issued-at.
		time.Sleep(1100 * time.Millisecond)
		require.NoError(t, f.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), time.Hour))

		_, err = f.service.RefreshToken(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
		f.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("returns user not found when the account was deleted", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newTestUser(t, "tenant@example.com", "secret-pass-123", identity.RoleUser)
		f.userRepo.On("FindByID", ctx, user.ID).Return(nil, nil)

		pair, err := f.jwt.GenerateTokenPair(auth.GenerateTokenInput{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role.String(),
		})
		require.NoError(t, err)

		_, err = f.service.RefreshToken(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		assert.ErrorIs(t, err, identity.ErrUserNotFound)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("blacklists the access token JTI", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newTestUser(t, "maria@example.com", "secret-pass-123", identity.RoleAdmin)

		err := f.service.Logout(ctx, LogoutInput{
			UserID: user.ID,
			JTI:    "token-jti-1",
			TTL:    10 * time.Minute,
		})
		require.NoError(t, err)

		blacklisted, err := f.blacklist.IsBlacklisted(ctx, "token-jti-1")
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("succeeds without a JTI", func(t *testing.T) {
		f := newAuthServiceFixture()
		err := f.service.Logout(ctx, LogoutInput{UserID: newTestUser(t, "a@b.com", "secret-pass-123", identity.RoleUser).ID})
		assert.NoError(t, err)
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user profile", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newTestUser(t, "maria@example.com", "secret-pass-123", identity.RoleAdmin)
		f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		info, err := f.service.GetCurrentUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, info.Email)
		assert.Equal(t, "ADMIN", info.Role)
	})

	t.Run("returns not found for an unknown user", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newTestUser(t, "maria@example.com", "secret-pass-123", identity.RoleUser)
		f.userRepo.On("FindByID", ctx, user.ID).Return(nil, nil)

		_, err := f.service.GetCurrentUser(ctx, user.ID)
		assert.ErrorIs(t, err, identity.ErrUserNotFound)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("changes the password and saves the user", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newTestUser(t, "maria@example.com", "old-password-1", identity.RoleUser)
		f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		f.userRepo.On("Save", ctx, user).Return(nil)

		err := f.service.ChangePassword(ctx, ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "old-password-1",
			NewPassword: "new-password-2",
		})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("new-password-2"))
		f.userRepo.AssertExpectations(t)
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newTestUser(t, "maria@example.com", "old-password-1", identity.RoleUser)
		f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err := f.service.ChangePassword(ctx, ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "not-the-password",
			NewPassword: "new-password-2",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PASSWORD", domainErr.Code)
		f.userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
