package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/db"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/skillmap/skillmap/internal/pkg/dberrors"
	"github.com/skillmap/skillmap/internal/pkg/logger"
)

// ICourseRepository defines read access to the course catalogue
type ICourseRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, major string) ([]*models.Course, error)
	GetByCodes(ctx context.Context, codes []string) ([]*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(database *db.PostgresDB) *CourseRepository {
	return &CourseRepository{
		db: database.Pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "code", "major").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	var course models.Course
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.Code, &course.Major); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &course, nil
}

// List returns courses ordered by code. An empty major returns every course.
func (r *CourseRepository) List(ctx context.Context, major string) ([]*models.Course, error) {
	q := r.sb.Select("id", "code", "major").From("courses")
	if major != "" {
		q = q.Where(squirrel.Eq{"major": major})
	}
	return r.query(ctx, q.OrderBy("code ASC"))
}

// GetByCodes returns the courses whose code is in codes
func (r *CourseRepository) GetByCodes(ctx context.Context, codes []string) ([]*models.Course, error) {
	if len(codes) == 0 {
		return []*models.Course{}, nil
	}
	q := r.sb.Select("id", "code", "major").
		From("courses").
		Where(squirrel.Eq{"code": codes}).
		OrderBy("code ASC")
	return r.query(ctx, q)
}

// Create inserts a course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("code", "major").
		Values(course.Code, course.Major).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.NewConflictError(fmt.Sprintf("Course %s already exists", course.Code))
		}
		logger.Error().Err(err).Str("code", course.Code).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

func (r *CourseRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Course, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Major); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// IMajorRepository defines access to academic majors
type IMajorRepository interface {
	List(ctx context.Context) ([]*models.Major, error)
	Ensure(ctx context.Context, name string) error
}

// MajorRepository handles major database operations
type MajorRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewMajorRepository creates a new MajorRepository
func NewMajorRepository(database *db.PostgresDB) *MajorRepository {
	return &MajorRepository{
		db: database.Pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns all majors ordered by name
func (r *MajorRepository) List(ctx context.Context) ([]*models.Major, error) {
	sql, args, err := r.sb.Select("id", "name").From("majors").OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list majors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list majors query")
		return nil, fmt.Errorf("error listing majors: %w", err)
	}
	defer rows.Close()

	majors := []*models.Major{}
	for rows.Next() {
		var m models.Major
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("error scanning major row: %w", err)
		}
		majors = append(majors, &m)
	}
	return majors, rows.Err()
}

// Ensure inserts the major unless it already exists
func (r *MajorRepository) Ensure(ctx context.Context, name string) error {
	sql, args, err := r.sb.Insert("majors").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build ensure major query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error ensuring major %q: %w", name, err)
	}
	return nil
}
