package repositories

import (
	"github.com/skillmap/skillmap/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    IUserRepository
	CourseRepository  ICourseRepository
	MajorRepository   IMajorRepository
	SkillRepository   ISkillRepository
	MappingRepository IMappingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(database),
		CourseRepository:  NewCourseRepository(database),
		MajorRepository:   NewMajorRepository(database),
		SkillRepository:   NewSkillRepository(database),
		MappingRepository: NewMappingRepository(database),
	}
}
