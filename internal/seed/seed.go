package seed

import (
	"context"

	"github.com/careerhub/career-portal-backend/internal/config"
	"github.com/careerhub/career-portal-backend/internal/logger"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/services"
)

// EnsureAdmin provisions the bootstrap admin account when the users
// collection is empty. Idempotent across restarts.
func EnsureAdmin(ctx context.Context, userService services.UserService, cfg *config.Config) error {
	count, err := userService.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.Admin.Password == "" {
		logger.Warn().Msg("No users exist and ADMIN_PASSWORD is unset, skipping admin seed")
		return nil
	}

	user, err := userService.CreateUser(ctx, &models.CreateUserRequest{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		IsAdmin:  true,
	})
	if err != nil {
		return err
	}

	logger.Info().Str("username", user.Username).Msg("Seeded bootstrap admin account")
	return nil
}
