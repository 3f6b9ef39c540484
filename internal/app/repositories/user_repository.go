package repositories

import (
	"context"

	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/app/repositories/user"
	"github.com/skillmap/skillmap/internal/db"
)

// IUserRepository defines the interface for account-related database operations
type IUserRepository interface {
	// Registration
	CreateStudent(ctx context.Context, student *models.Student) error
	CreateFacultyAdmin(ctx context.Context, account *models.FacultyAdmin) error
	StudentEmailExists(ctx context.Context, email string) (bool, error)
	FacultyAdminEmailExists(ctx context.Context, email string) (bool, error)

	// Authentication
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	GetFacultyAdminByEmail(ctx context.Context, email string) (*models.FacultyAdmin, error)

	// Profile
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetFacultyAdminByID(ctx context.Context, id int64) (*models.FacultyAdmin, error)
	UpdateStudentProfile(ctx context.Context, id int64, update models.ProfileUpdate) error
	UpdateFacultyAdminProfile(ctx context.Context, id int64, update models.ProfileUpdate) error
}

// UserRepository combines the student and faculty/admin repositories
type UserRepository struct {
	*user.StudentRepository
	*user.FacultyAdminRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		StudentRepository:      user.NewStudentRepository(database.Pool),
		FacultyAdminRepository: user.NewFacultyAdminRepository(database.Pool),
	}
}

var _ IUserRepository = (*UserRepository)(nil)
