package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/db"
	"github.com/skillmap/skillmap/internal/pkg/dberrors"
	"github.com/skillmap/skillmap/internal/pkg/logger"
)

var facultyAdminColumns = []string{"id", "email", "first_name", "last_name", "is_admin", "password_hash", "created_at", "updated_at"}

// FacultyAdminRepository handles faculty and administrator accounts
type FacultyAdminRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewFacultyAdminRepository creates a new FacultyAdminRepository
func NewFacultyAdminRepository(conn db.DBTX) *FacultyAdminRepository {
	return &FacultyAdminRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

// CreateFacultyAdmin inserts an account and fills in its ID and timestamps
func (r *FacultyAdminRepository) CreateFacultyAdmin(ctx context.Context, account *models.FacultyAdmin) error {
	sql, args, err := r.sb.Insert(facultyAdminsTable).
		Columns("email", "first_name", "last_name", "is_admin", "password_hash").
		Values(account.Email, account.FirstName, account.LastName, account.IsAdmin, account.PasswordHash).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty admin SQL")
		return fmt.Errorf("failed to build create faculty admin query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_admins_email_key") {
			logger.Warn().Str("email", account.Email).Msg("Attempted to create faculty admin with duplicate email")
			return ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", account.Email).Msg("Error executing create faculty admin query")
		return fmt.Errorf("error creating faculty admin: %w", err)
	}

	logger.Info().Int64("facultyAdminID", account.ID).Bool("isAdmin", account.IsAdmin).Msg("Faculty admin created successfully")
	return nil
}

// GetFacultyAdminByEmail retrieves an account by email
func (r *FacultyAdminRepository) GetFacultyAdminByEmail(ctx context.Context, email string) (*models.FacultyAdmin, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetFacultyAdminByID retrieves an account by ID
func (r *FacultyAdminRepository) GetFacultyAdminByID(ctx context.Context, id int64) (*models.FacultyAdmin, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *FacultyAdminRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.FacultyAdmin, error) {
	sql, args, err := r.sb.Select(facultyAdminColumns...).
		From(facultyAdminsTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty admin SQL")
		return nil, fmt.Errorf("failed to build get faculty admin query: %w", err)
	}

	var account models.FacultyAdmin
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&account.ID, &account.Email, &account.FirstName, &account.LastName,
		&account.IsAdmin, &account.PasswordHash, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning faculty admin row")
		return nil, fmt.Errorf("error retrieving faculty admin: %w", err)
	}

	return &account, nil
}

// FacultyAdminEmailExists checks if a faculty or administrator account uses the email
func (r *FacultyAdminRepository) FacultyAdminEmailExists(ctx context.Context, email string) (bool, error) {
	return emailExists(ctx, r.db, r.sb, facultyAdminsTable, email)
}

// UpdateFacultyAdminProfile updates names and optionally the password hash
func (r *FacultyAdminRepository) UpdateFacultyAdminProfile(ctx context.Context, id int64, update models.ProfileUpdate) error {
	sql, args, err := buildProfileUpdate(r.sb, facultyAdminsTable, id, update, false)
	if err != nil {
		logger.Error().Err(err).Msg("Error building update faculty admin SQL")
		return fmt.Errorf("failed to build update faculty admin query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyAdminID", id).Msg("Error executing update faculty admin query")
		return fmt.Errorf("error updating faculty admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
