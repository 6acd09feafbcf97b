// Package seed creates the baseline data the back office needs on first
// boot: the Administrator role, the permissioned pages and the initial
// admin account.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/app/repositories"
	"github.com/campushq/backoffice/internal/app/routes"
	"github.com/campushq/backoffice/internal/config"
	"github.com/campushq/backoffice/internal/pkg/auth"
)

// defaultPages are the back-office pages permission rows are keyed by
var defaultPages = []struct {
	Name string
	Path string
}{
	{"Notifications", routes.PageNotifications},
	{"Gallery", routes.PageGallery},
	{"Banners", routes.PageBanners},
	{"Important Links", routes.PageImportantLinks},
	{"Faculty", routes.PageFaculty},
	{"Permissions", routes.PagePermissions},
}

// CreateDefaultData seeds the Administrator role, the page catalog and the
// admin user. It is idempotent; existing rows are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	permissionRepo := repositories.NewPermissionRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	adminRoleID, err := permissionRepo.EnsureRole(ctx, models.AdministratorRole)
	if err != nil {
		lgr.Error().Err(err).Msg("Error ensuring Administrator role")
		finalErr = errors.Join(finalErr, err)
	}

	for _, page := range defaultPages {
		if _, err := permissionRepo.EnsurePage(ctx, page.Name, page.Path); err != nil {
			lgr.Error().Err(err).Str("page", page.Path).Msg("Error ensuring page")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if adminRoleID > 0 && cfg.Admin.Password != "" {
		if _, err := userRepo.GetByEmail(ctx, cfg.Admin.Email); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				lgr.Info().Str("email", cfg.Admin.Email).Msg("Creating default admin user...")

				hashedPassword, hashErr := auth.HashPassword(cfg.Admin.Password)
				if hashErr != nil {
					lgr.Error().Err(hashErr).Msg("Error hashing admin password")
					finalErr = errors.Join(finalErr, hashErr)
				} else {
					admin := &models.User{
						Email:        cfg.Admin.Email,
						PasswordHash: hashedPassword,
						FullName:     "System Administrator",
						RoleID:       adminRoleID,
						IsActive:     true,
						CreatedOn:    time.Now(),
					}

					adminID, createErr := userRepo.Create(ctx, admin)
					if createErr != nil {
						lgr.Error().Err(createErr).Msg("Error creating admin user")
						finalErr = errors.Join(finalErr, createErr)
					} else {
						lgr.Info().Int64("adminID", adminID).Msg("Default admin user created")
					}
				}
			} else {
				lgr.Error().Err(err).Msg("Error checking for admin user")
				finalErr = errors.Join(finalErr, err)
			}
		} else {
			lgr.Info().Msg("Admin user already exists, skipping creation")
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
