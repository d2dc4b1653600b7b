package services

import (
	"context"
	"errors"

	"github.com/careerhub/career-portal-backend/internal/apperrors"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines the interface for user management operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	ResetPassword(ctx context.Context, id primitive.ObjectID, newPassword string) error
	Count(ctx context.Context) (int64, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService implementation
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetAllUsers lists every account. Password hashes are stripped.
func (s *userService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

// CreateUser provisions an account. Usernames are unique.
func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	_, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		IsAdmin:  req.IsAdmin,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent insert can slip past the lookup; the unique index
		// reports it as a duplicate key.
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// ResetPassword replaces a user's password hash
func (s *userService) ResetPassword(ctx context.Context, id primitive.ObjectID, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, id, string(hash)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

// Count returns the number of accounts
func (s *userService) Count(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
