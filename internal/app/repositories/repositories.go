package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for lookups that match no row.
var ErrNotFound = errors.New("record not found")

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	NotificationRepository *NotificationRepository
	BannerRepository       *BannerRepository
	GalleryRepository      *GalleryRepository
	LinkRepository         *LinkRepository
	FacultyRepository      *FacultyRepository
	PermissionRepository   *PermissionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		BannerRepository:       NewBannerRepository(db),
		GalleryRepository:      NewGalleryRepository(db),
		LinkRepository:         NewLinkRepository(db),
		FacultyRepository:      NewFacultyRepository(db),
		PermissionRepository:   NewPermissionRepository(db),
	}
}
