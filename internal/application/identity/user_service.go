package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/identity"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrEmailAlreadyExists is returned when registering a duplicate email
var ErrEmailAlreadyExists = shared.NewDomainError("EMAIL_ALREADY_EXISTS", "A user with this email already exists")

// UserService handles user management operations
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser registers a new user account
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*UserInfo, error) {
	role := identity.Role(input.Role)
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be ADMIN or USER")
	}

	// Emails are stored normalized; check against the normalized form.
	email := strings.ToLower(strings.TrimSpace(input.Email))
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	user, err := identity.NewUser(input.Name, email, input.Password, role)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()),
	)

	info := toUserInfo(user)
	return &info, nil
}

// GetUserByID returns a user's profile
func (s *UserService) GetUserByID(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load user")
	}
	if user == nil {
		return nil, identity.ErrUserNotFound
	}
	info := toUserInfo(user)
	return &info, nil
}
