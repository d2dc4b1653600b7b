package services

import (
	"context"
	"errors"
	"time"

	"github.com/careerhub/career-portal-backend/internal/apperrors"
	"github.com/careerhub/career-portal-backend/internal/config"
	"github.com/careerhub/career-portal-backend/internal/logger"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/repositories"
	"github.com/careerhub/career-portal-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login verifies credentials and returns the user with a signed session
	// token. A missing user and a wrong password are indistinguishable to
	// the caller.
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
}

type authService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Login handles credential verification and session issuance
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", apperrors.ErrAccountDisabled
	}

	token, err := utils.GenerateSessionToken(utils.SessionClaims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, s.cfg.Session.Secret, s.cfg.Session.Lifetime)
	if err != nil {
		return nil, "", err
	}

	// Best effort, a failed stamp must not fail the login
	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		logger.Warn().Err(err).Str("username", user.Username).Msg("Failed to update last login")
	} else {
		user.LastLogin = &now
	}

	user.Password = ""
	return user, token, nil
}
