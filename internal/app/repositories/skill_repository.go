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

const skillDescriptionIndex = "skills_description_lower_key"

var skillColumns = []string{"id", "skill_name", "type", "description"}

// ISkillRepository defines access to the skills table
type ISkillRepository interface {
	List(ctx context.Context) ([]*models.Skill, error)
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	FindSkillByDescription(ctx context.Context, description string) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
}

// SkillRepository handles skill and competency rows
type SkillRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(database *db.PostgresDB) *SkillRepository {
	return &SkillRepository{
		db: database.Pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns every skill and competency ordered by ID
func (r *SkillRepository) List(ctx context.Context) ([]*models.Skill, error) {
	sql, args, err := r.sb.Select(skillColumns...).From("skills").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list skills query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list skills query")
		return nil, fmt.Errorf("error listing skills: %w", err)
	}
	defer rows.Close()

	return scanSkills(rows)
}

// GetByID retrieves a skill or competency by ID
func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	return r.getOne(ctx, r.sb.Select(skillColumns...).From("skills").Where(squirrel.Eq{"id": id}))
}

// FindSkillByDescription looks up a skill (type=false) whose description matches case-insensitively
func (r *SkillRepository) FindSkillByDescription(ctx context.Context, description string) (*models.Skill, error) {
	q := r.sb.Select(skillColumns...).
		From("skills").
		Where(squirrel.Eq{"type": false}).
		Where("LOWER(description) = LOWER(?)", description).
		OrderBy("id ASC").
		Limit(1)
	return r.getOne(ctx, q)
}

func (r *SkillRepository) getOne(ctx context.Context, q squirrel.SelectBuilder) (*models.Skill, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get skill query: %w", err)
	}

	var s models.Skill
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.SkillName, &s.Type, &s.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSkillNotFound
		}
		logger.Error().Err(err).Msg("Error scanning skill row")
		return nil, fmt.Errorf("error retrieving skill: %w", err)
	}
	return &s, nil
}

// Create inserts a skill row. A description that collides case-insensitively
// with an existing skill fails with ErrSkillAlreadyExists.
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	sql, args, err := r.sb.Insert("skills").
		Columns("skill_name", "type", "description").
		Values(skill.SkillName, skill.Type, skill.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create skill query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&skill.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, skillDescriptionIndex) {
			return apperrors.ErrSkillAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create skill query")
		return fmt.Errorf("error creating skill: %w", err)
	}

	logger.Info().Int64("skillID", skill.ID).Bool("competency", skill.Type).Msg("Skill created successfully")
	return nil
}

func scanSkills(rows pgx.Rows) ([]*models.Skill, error) {
	skills := []*models.Skill{}
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.SkillName, &s.Type, &s.Description); err != nil {
			return nil, fmt.Errorf("error scanning skill row: %w", err)
		}
		skills = append(skills, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}
	return skills, nil
}
