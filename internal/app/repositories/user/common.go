package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/db"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/skillmap/skillmap/internal/pkg/logger"
)

// Common errors
var (
	ErrUserNotFound       = apperrors.ErrUserNotFound
	ErrEmailAlreadyExists = apperrors.ErrEmailAlreadyExists
)

// Table names
const (
	studentsTable      = "students"
	facultyAdminsTable = "faculty_admins"
)

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// emailExists checks whether email is taken in table
func emailExists(ctx context.Context, conn db.DBTX, sb squirrel.StatementBuilderType, table, email string) (bool, error) {
	var exists bool
	sql, args, err := sb.Select("1").
		From(table).
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building email exists SQL")
		return false, fmt.Errorf("failed to build email exists query: %w", err)
	}

	if err := conn.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error checking email existence")
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// buildProfileUpdate returns the UPDATE statement for a profile change.
// Major is only written when includeMajor is set.
func buildProfileUpdate(sb squirrel.StatementBuilderType, table string, id int64, update models.ProfileUpdate, includeMajor bool) (string, []interface{}, error) {
	q := sb.Update(table).
		Set("first_name", update.FirstName).
		Set("last_name", update.LastName)
	if includeMajor && update.Major != nil {
		q = q.Set("major", *update.Major)
	}
	if update.PasswordHash != nil {
		q = q.Set("password_hash", *update.PasswordHash)
	}
	return q.Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}
