package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/pkg/logger"
)

// FacultyRepository handles faculty database operations. The document list
// is stored JSON-encoded in a single column and decoded on scan; malformed
// stored JSON is surfaced as an error rather than silently dropped.
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const facultyColumns = "id, name, qualification, designation, photo_url, documents, monthly_salary, yearly_leave, is_visible, created_by, created_on, modify_by, modify_on"

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	f := &models.Faculty{}
	var rawDocs string
	err := row.Scan(&f.ID, &f.Name, &f.Qualification, &f.Designation, &f.PhotoURL,
		&rawDocs, &f.MonthlySalary, &f.YearlyLeave, &f.IsVisible,
		&f.CreatedBy, &f.CreatedOn, &f.ModifyBy, &f.ModifyOn)
	if err != nil {
		return nil, err
	}

	docs, err := models.ParseDocuments(rawDocs)
	if err != nil {
		return nil, fmt.Errorf("faculty %d: %w", f.ID, err)
	}
	f.Documents = docs

	return f, nil
}

// GetAll retrieves all faculty members ordered by name
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns).
		From("faculty_members").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all faculty query")
		return nil, fmt.Errorf("error querying faculty members: %w", err)
	}
	defer rows.Close()

	members := []*models.Faculty{}
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty row")
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		members = append(members, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return members, nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns).
		From("faculty_members").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	f, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty member by ID: %w", err)
	}

	return f, nil
}

// Create inserts a new faculty member and returns its ID
func (r *FacultyRepository) Create(ctx context.Context, f *models.Faculty) (int64, error) {
	rawDocs, err := f.Documents.Encode()
	if err != nil {
		return 0, err
	}

	sql, args, err := r.sb.Insert("faculty_members").
		Columns("name", "qualification", "designation", "photo_url", "documents",
			"monthly_salary", "yearly_leave", "is_visible", "created_by", "created_on").
		Values(f.Name, f.Qualification, f.Designation, f.PhotoURL, rawDocs,
			f.MonthlySalary, f.YearlyLeave, f.IsVisible, f.CreatedBy, f.CreatedOn).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty member: %w", err)
	}

	return id, nil
}

// Update rewrites a faculty member's mutable fields
func (r *FacultyRepository) Update(ctx context.Context, f *models.Faculty) error {
	rawDocs, err := f.Documents.Encode()
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("faculty_members").
		SetMap(map[string]interface{}{
			"name":           f.Name,
			"qualification":  f.Qualification,
			"designation":    f.Designation,
			"photo_url":      f.PhotoURL,
			"documents":      rawDocs,
			"monthly_salary": f.MonthlySalary,
			"yearly_leave":   f.YearlyLeave,
			"modify_by":      f.ModifyBy,
			"modify_on":      f.ModifyOn,
		}).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", f.ID).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a faculty member by ID
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculty_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ToggleVisibility flips the visibility flag and stamps the actor
func (r *FacultyRepository) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	sql, args, err := r.sb.Update("faculty_members").
		Set("is_visible", squirrel.Expr("NOT is_visible")).
		Set("modify_by", modifyBy).
		Set("modify_on", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build toggle visibility query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing toggle visibility query")
		return fmt.Errorf("error toggling faculty visibility: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
