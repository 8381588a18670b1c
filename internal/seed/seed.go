package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/davidmtz/escolar/internal/app/models"
	"github.com/davidmtz/escolar/internal/app/repositories"
	"github.com/davidmtz/escolar/internal/config"
	"github.com/davidmtz/escolar/internal/pkg/auth"
)

// EnsureAdmin creates the bootstrap administrator account if it does not
// exist yet. It is idempotent so restarts are safe.
func EnsureAdmin(ctx context.Context, users *repositories.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	exists, err := users.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already exists, skipping seed")
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:    cfg.Admin.Email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Admin account created")
	return nil
}
