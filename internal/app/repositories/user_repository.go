package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/pkg/logger"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUserWithRole(row pgx.Row) (*models.User, error) {
	u := &models.User{Role: &models.Role{}}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.RoleID,
		&u.IsActive, &u.CreatedOn, &u.Role.ID, &u.Role.Name)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByEmail retrieves a user with its role by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("u.id", "u.email", "u.password_hash", "u.full_name",
		"u.role_id", "u.is_active", "u.created_on", "r.id", "r.name").
		From("users u").
		Join("roles r ON r.id = u.role_id").
		Where(squirrel.Eq{"u.email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	u, err := scanUserWithRole(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return u, nil
}

// GetByID retrieves a user with its role by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select("u.id", "u.email", "u.password_hash", "u.full_name",
		"u.role_id", "u.is_active", "u.created_on", "r.id", "r.name").
		From("users u").
		Join("roles r ON r.id = u.role_id").
		Where(squirrel.Eq{"u.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by ID query: %w", err)
	}

	u, err := scanUserWithRole(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return u, nil
}

// Create inserts a new user and returns its ID
func (r *UserRepository) Create(ctx context.Context, u *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("email", "password_hash", "full_name", "role_id", "is_active", "created_on").
		Values(u.Email, u.PasswordHash, u.FullName, u.RoleID, u.IsActive, u.CreatedOn).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, fmt.Errorf("user with email %s already exists", u.Email)
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}
