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

// PermissionRepository handles role, page and permission lookups
type PermissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPermissionRepository creates a new PermissionRepository
func NewPermissionRepository(db *pgxpool.Pool) *PermissionRepository {
	return &PermissionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const permissionColumns = "id, role_id, page_id, can_create, can_read, can_update, can_delete"

func scanPermission(row pgx.Row) (*models.Permission, error) {
	p := &models.Permission{}
	err := row.Scan(&p.ID, &p.RoleID, &p.PageID,
		&p.CanCreate, &p.CanRead, &p.CanUpdate, &p.CanDelete)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetPageByPath retrieves a page by its URL path
func (r *PermissionRepository) GetPageByPath(ctx context.Context, path string) (*models.Page, error) {
	sql, args, err := r.sb.Select("id", "name", "path").
		From("pages").
		Where(squirrel.Eq{"path": path}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get page query: %w", err)
	}

	p := &models.Page{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.Name, &p.Path)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("path", path).Msg("Error scanning page row")
		return nil, fmt.Errorf("error getting page by path: %w", err)
	}

	return p, nil
}

// GetPermission retrieves the permission row for a role on a page
func (r *PermissionRepository) GetPermission(ctx context.Context, roleID, pageID int64) (*models.Permission, error) {
	sql, args, err := r.sb.Select(permissionColumns).
		From("permissions").
		Where(squirrel.Eq{"role_id": roleID, "page_id": pageID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get permission query: %w", err)
	}

	p, err := scanPermission(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("roleID", roleID).Int64("pageID", pageID).Msg("Error scanning permission row")
		return nil, fmt.Errorf("error getting permission: %w", err)
	}

	return p, nil
}

// GetAllPermissions retrieves the full permission table
func (r *PermissionRepository) GetAllPermissions(ctx context.Context) ([]*models.Permission, error) {
	sql, args, err := r.sb.Select(permissionColumns).
		From("permissions").
		OrderBy("role_id ASC", "page_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all permissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all permissions query")
		return nil, fmt.Errorf("error querying permissions: %w", err)
	}
	defer rows.Close()

	permissions := []*models.Permission{}
	for rows.Next() {
		p, err := scanPermission(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning permission row: %w", err)
		}
		permissions = append(permissions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permission rows: %w", err)
	}

	return permissions, nil
}

// GetPermissionByID retrieves a permission row by its ID
func (r *PermissionRepository) GetPermissionByID(ctx context.Context, id int64) (*models.Permission, error) {
	sql, args, err := r.sb.Select(permissionColumns).
		From("permissions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get permission by id query: %w", err)
	}

	p, err := scanPermission(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("permissionID", id).Msg("Error scanning permission row")
		return nil, fmt.Errorf("error getting permission by ID: %w", err)
	}

	return p, nil
}

// UpdatePermission rewrites the flags of an existing permission row
func (r *PermissionRepository) UpdatePermission(ctx context.Context, p *models.Permission) error {
	sql, args, err := r.sb.Update("permissions").
		SetMap(map[string]interface{}{
			"can_create": p.CanCreate,
			"can_read":   p.CanRead,
			"can_update": p.CanUpdate,
			"can_delete": p.CanDelete,
		}).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update permission query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("permissionID", p.ID).Msg("Error executing update permission query")
		return fmt.Errorf("error updating permission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// UpsertPermission creates or replaces the permission row for (role, page)
func (r *PermissionRepository) UpsertPermission(ctx context.Context, p *models.Permission) (int64, error) {
	sql, args, err := r.sb.Insert("permissions").
		Columns("role_id", "page_id", "can_create", "can_read", "can_update", "can_delete").
		Values(p.RoleID, p.PageID, p.CanCreate, p.CanRead, p.CanUpdate, p.CanDelete).
		Suffix(`ON CONFLICT (role_id, page_id) DO UPDATE SET
			can_create = EXCLUDED.can_create,
			can_read = EXCLUDED.can_read,
			can_update = EXCLUDED.can_update,
			can_delete = EXCLUDED.can_delete
			RETURNING id`).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build upsert permission query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing upsert permission query")
		return 0, fmt.Errorf("error upserting permission: %w", err)
	}

	return id, nil
}

// GetAllRoles retrieves all roles
func (r *PermissionRepository) GetAllRoles(ctx context.Context) ([]*models.Role, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("roles").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all roles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying roles: %w", err)
	}
	defer rows.Close()

	roles := []*models.Role{}
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("error scanning role row: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}

	return roles, nil
}

// GetAllPages retrieves all pages
func (r *PermissionRepository) GetAllPages(ctx context.Context) ([]*models.Page, error) {
	sql, args, err := r.sb.Select("id", "name", "path").
		From("pages").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all pages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying pages: %w", err)
	}
	defer rows.Close()

	pages := []*models.Page{}
	for rows.Next() {
		page := &models.Page{}
		if err := rows.Scan(&page.ID, &page.Name, &page.Path); err != nil {
			return nil, fmt.Errorf("error scanning page row: %w", err)
		}
		pages = append(pages, page)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating page rows: %w", err)
	}

	return pages, nil
}

// EnsureRole inserts a role if absent and returns its ID
func (r *PermissionRepository) EnsureRole(ctx context.Context, name string) (int64, error) {
	sql, args, err := r.sb.Insert("roles").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build ensure role query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error ensuring role %s: %w", name, err)
	}
	return id, nil
}

// EnsurePage inserts a page if absent and returns its ID
func (r *PermissionRepository) EnsurePage(ctx context.Context, name, path string) (int64, error) {
	sql, args, err := r.sb.Insert("pages").
		Columns("name", "path").
		Values(name, path).
		Suffix("ON CONFLICT (path) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build ensure page query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error ensuring page %s: %w", path, err)
	}
	return id, nil
}
