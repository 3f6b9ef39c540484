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

const mappingsTable = "course_skill_mappings"

// IMappingRepository defines access to course/skill associations
type IMappingRepository interface {
	GetByCourse(ctx context.Context, courseID int64) ([]*models.Skill, error)
	GetByCourses(ctx context.Context, courseIDs []int64) ([]*models.MappedSkill, error)
	Replace(ctx context.Context, courseID int64, skillIDs []int64) error
	DeleteSkillEverywhere(ctx context.Context, skillID int64) (int64, error)
}

// MappingRepository handles the course_skill_mappings table
type MappingRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewMappingRepository creates a new MappingRepository
func NewMappingRepository(database *db.PostgresDB) *MappingRepository {
	return &MappingRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByCourse returns the skills and competencies mapped to a course, ordered by skill ID
func (r *MappingRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Skill, error) {
	sql, args, err := r.sb.Select("s.id", "s.skill_name", "s.type", "s.description").
		From(mappingsTable + " m").
		Join("skills s ON s.id = m.skill_id").
		Where(squirrel.Eq{"m.course_id": courseID}).
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get mapping query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get mapping query")
		return nil, fmt.Errorf("error retrieving mapping: %w", err)
	}
	defer rows.Close()

	return scanSkills(rows)
}

// GetByCourses returns the mapped rows of several courses at once
func (r *MappingRepository) GetByCourses(ctx context.Context, courseIDs []int64) ([]*models.MappedSkill, error) {
	if len(courseIDs) == 0 {
		return []*models.MappedSkill{}, nil
	}

	sql, args, err := r.sb.Select("m.course_id", "s.id", "s.skill_name", "s.type", "s.description").
		From(mappingsTable + " m").
		Join("skills s ON s.id = m.skill_id").
		Where(squirrel.Eq{"m.course_id": courseIDs}).
		OrderBy("m.course_id ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get mappings query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get mappings query")
		return nil, fmt.Errorf("error retrieving mappings: %w", err)
	}
	defer rows.Close()

	mapped := []*models.MappedSkill{}
	for rows.Next() {
		var m models.MappedSkill
		if err := rows.Scan(&m.CourseID, &m.ID, &m.SkillName, &m.Type, &m.Description); err != nil {
			return nil, fmt.Errorf("error scanning mapping row: %w", err)
		}
		mapped = append(mapped, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mapping rows: %w", err)
	}
	return mapped, nil
}

// Replace makes skillIDs the complete mapping of a course.
// The course row is locked, existing rows are deleted and the new set inserted
// in a single transaction, so a failure leaves the previous mapping intact.
func (r *MappingRepository) Replace(ctx context.Context, courseID int64, skillIDs []int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		lockSQL, lockArgs, err := r.sb.Select("id").
			From("courses").
			Where(squirrel.Eq{"id": courseID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build lock course query: %w", err)
		}

		var id int64
		if err := tx.QueryRow(ctx, lockSQL, lockArgs...).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course: %w", err)
		}

		deleteSQL, deleteArgs, err := r.sb.Delete(mappingsTable).
			Where(squirrel.Eq{"course_id": courseID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete mapping query: %w", err)
		}

		tag, err := tx.Exec(ctx, deleteSQL, deleteArgs...)
		if err != nil {
			return fmt.Errorf("error deleting mapping: %w", err)
		}

		if len(skillIDs) > 0 {
			insert := r.sb.Insert(mappingsTable).Columns("course_id", "skill_id")
			for _, skillID := range skillIDs {
				insert = insert.Values(courseID, skillID)
			}
			insertSQL, insertArgs, err := insert.Suffix("ON CONFLICT DO NOTHING").ToSql()
			if err != nil {
				return fmt.Errorf("failed to build insert mapping query: %w", err)
			}

			if _, err := tx.Exec(ctx, insertSQL, insertArgs...); err != nil {
				if dberrors.IsForeignKeyError(err, "course_skill_mappings_skill_id_fkey") {
					return apperrors.ErrSkillNotFound
				}
				if dberrors.IsForeignKeyError(err, "course_skill_mappings_course_id_fkey") {
					return apperrors.ErrCourseNotFound
				}
				return fmt.Errorf("error inserting mapping: %w", err)
			}
		}

		logger.Info().
			Int64("courseID", courseID).
			Int64("removed", tag.RowsAffected()).
			Int("inserted", len(skillIDs)).
			Msg("Course mapping replaced")
		return nil
	})
}

// DeleteSkillEverywhere removes every mapping of a skill and then the skill itself.
// It returns the number of mapping rows removed.
func (r *MappingRepository) DeleteSkillEverywhere(ctx context.Context, skillID int64) (int64, error) {
	var removed int64
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		mappingSQL, mappingArgs, err := r.sb.Delete(mappingsTable).
			Where(squirrel.Eq{"skill_id": skillID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete skill mappings query: %w", err)
		}

		tag, err := tx.Exec(ctx, mappingSQL, mappingArgs...)
		if err != nil {
			return fmt.Errorf("error deleting skill mappings: %w", err)
		}
		removed = tag.RowsAffected()

		skillSQL, skillArgs, err := r.sb.Delete("skills").
			Where(squirrel.Eq{"id": skillID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete skill query: %w", err)
		}

		tag, err = tx.Exec(ctx, skillSQL, skillArgs...)
		if err != nil {
			return fmt.Errorf("error deleting skill: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrSkillNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("skillID", skillID).Int64("mappingsRemoved", removed).Msg("Skill deleted")
	return removed, nil
}
