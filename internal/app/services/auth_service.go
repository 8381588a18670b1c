package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/davidmtz/escolar/internal/app/models"
	"github.com/davidmtz/escolar/internal/app/models/dto"
	"github.com/davidmtz/escolar/internal/pkg/apperrors"
	"github.com/davidmtz/escolar/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	users      UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a user and issues an access token. Unknown email,
// wrong password and disabled account all collapse to ErrInvalidCredentials
// so the response doesn't reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn().Str("email", email).Msg("Login attempt on disabled account")
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Role:        string(user.Role),
	}, nil
}

// Register creates a new user account. The role is always USER: letting a
// self-registering client pick its own role would allow privilege
// escalation, so any requested role is ignored.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleUser,
		IsActive: true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Int64("userID", user.ID).Msg("User registered")
	return user, nil
}

// CurrentUser resolves the account behind a verified token subject.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (*models.User, error) {
	return s.users.GetByEmail(ctx, email)
}
