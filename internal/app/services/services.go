// Package services holds the business logic between the HTTP controllers
// and the repositories. Each service validates input, stamps audit
// metadata, moves uploaded files into storage and delegates persistence.
//
// Services defined in this package:
//   - AuthService: login and token issuance
//   - NotificationService: notice CRUD with optional attachment
//   - BannerService: banner image CRUD and visibility
//   - GalleryService: gallery photo CRUD and visibility
//   - LinkService: important-link CRUD and visibility
//   - FacultyService: faculty profile CRUD, documents, visibility
//   - PermissionService: role/page/permission administration
package services

import (
	"errors"

	"github.com/campushq/backoffice/internal/app/repositories"
	"github.com/campushq/backoffice/internal/pkg/apperrors"
)

// notFound translates the repository's shared not-found sentinel into an
// API-level not-found error carrying a resource-specific message.
func notFound(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NewResourceNotFoundError(message)
	}
	return err
}
