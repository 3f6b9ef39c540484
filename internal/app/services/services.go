package services

import (
	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/repositories"
	"github.com/skillmap/skillmap/internal/pkg/auth"
)

// Services holds every service instance
type Services struct {
	Auth    *AuthService
	Course  CourseService
	Skill   *SkillService
	Mapping *MappingService
}

// NewServices wires services on top of the repositories
func NewServices(
	repos *repositories.Repositories,
	hasher *auth.PasswordHasher,
	jwtService *auth.JWTService,
	authConfig AuthConfig,
	logger zerolog.Logger,
) *Services {
	return &Services{
		Auth:    NewAuthService(repos.UserRepository, hasher, jwtService, authConfig, logger),
		Course:  NewCourseService(repos.CourseRepository, repos.MajorRepository, repos.MappingRepository),
		Skill:   NewSkillService(repos.SkillRepository, repos.MappingRepository, logger),
		Mapping: NewMappingService(repos.CourseRepository, repos.MappingRepository, logger),
	}
}
