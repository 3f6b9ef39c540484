package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appModels "github.com/skillmap/skillmap/internal/app/models"
	appRepos "github.com/skillmap/skillmap/internal/app/repositories"
	"github.com/skillmap/skillmap/internal/config"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/skillmap/skillmap/internal/pkg/auth"
	"github.com/skillmap/skillmap/internal/pkg/validation"
)

// CreateDefaultData creates the default majors and, when configured, the first
// administrator account. Running it again changes nothing.
func CreateDefaultData(
	ctx context.Context,
	repos *appRepos.Repositories,
	hasher *auth.PasswordHasher,
	cfg config.SeedConfig,
	emailDomain string,
	lgr zerolog.Logger,
) error {
	if !cfg.Enabled {
		lgr.Debug().Msg("Seeding disabled")
		return nil
	}

	lgr.Info().Msg("Checking/Creating default data (Majors/Administrator)...")
	var finalErr error // To collect potential errors without stopping the process

	for _, name := range cfg.Majors {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if err := repos.MajorRepository.Ensure(ctx, name); err != nil {
			lgr.Error().Err(err).Str("major", name).Msg("Error creating major")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if cfg.AdminEmail != "" {
		if err := createAdministrator(ctx, repos.UserRepository, hasher, cfg, emailDomain, lgr); err != nil {
			lgr.Error().Err(err).Msg("Error creating default administrator")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation completed.")
	}
	return finalErr
}

func createAdministrator(
	ctx context.Context,
	userRepo appRepos.IUserRepository,
	hasher *auth.PasswordHasher,
	cfg config.SeedConfig,
	emailDomain string,
	lgr zerolog.Logger,
) error {
	email, err := validation.NormalizeEmail(cfg.AdminEmail, emailDomain)
	if err != nil {
		return fmt.Errorf("invalid admin email: %w", err)
	}

	exists, err := userRepo.FacultyAdminEmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check admin email: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Default administrator already exists")
		return nil
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.FacultyAdmin{
		Email:        email,
		FirstName:    "System",
		LastName:     "Administrator",
		IsAdmin:      true,
		PasswordHash: hash,
	}
	if err := userRepo.CreateFacultyAdmin(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	lgr.Info().Str("email", email).Int64("userID", admin.ID).Msg("Default administrator created")
	return nil
}
