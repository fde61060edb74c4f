package services

import (
	"context"
	"errors"
	"strings"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/adapters/persistence/repositories"
	"sacco-ledger/internal/config"
	"sacco-ledger/internal/core/domain"
	"sacco-ledger/internal/pkg/jwt"
	"sacco-ledger/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication and user management
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

// LoginInput represents login input
type LoginInput struct {
	Username string
	Password string
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	User        *models.UserResponse `json:"user"`
	AccessToken string               `json:"access_token"`
}

// Login authenticates a user. Unknown username and wrong password both fail
// with the same generic error so callers cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, string(user.Role), s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:        user.ToResponse(),
		AccessToken: token,
	}, nil
}

// CreateUserInput represents user creation input
type CreateUserInput struct {
	Username string
	Password string
	Role     models.Role
}

// CreateUser creates a user with a freshly derived password hash. Plaintext
// is never persisted.
func (s *AuthService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.UserResponse, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if len(input.Password) < 8 {
		return nil, domain.NewValidationError("password", "must be at least 8 characters")
	}
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := password.Generate(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         input.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(translateConstraint(err), domain.ErrDuplicateEntry) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, err
	}

	return user.ToResponse(), nil
}

// ChangePassword updates a user's password after verifying the current one
func (s *AuthService) ChangePassword(ctx context.Context, username, current, next string) error {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if !password.Verify(current, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}
	if len(next) < 8 {
		return domain.NewValidationError("new_password", "must be at least 8 characters")
	}

	hash, err := password.Generate(next)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	return s.userRepo.Update(ctx, user)
}

// ListUsers lists all users
func (s *AuthService) ListUsers(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}
	return responses, nil
}
