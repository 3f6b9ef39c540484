package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/app/repositories"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/skillmap/skillmap/internal/pkg/helpers"
)

// MappingService reads and replaces course mappings
type MappingService struct {
	courseRepo  repositories.ICourseRepository
	mappingRepo repositories.IMappingRepository
	logger      zerolog.Logger
}

// NewMappingService creates a new MappingService
func NewMappingService(courseRepo repositories.ICourseRepository, mappingRepo repositories.IMappingRepository, logger zerolog.Logger) *MappingService {
	return &MappingService{
		courseRepo:  courseRepo,
		mappingRepo: mappingRepo,
		logger:      logger.With().Str("service", "mapping").Logger(),
	}
}

// Get returns the skills and competencies mapped to a course
func (s *MappingService) Get(ctx context.Context, courseID int64) (*models.CourseMapping, error) {
	if courseID <= 0 {
		return nil, apperrors.NewBadRequestError("courseId must be a positive integer")
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, courseError(err)
	}

	rows, err := s.mappingRepo.GetByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping: %w", err)
	}
	mapping := models.NewCourseMapping(rows)
	return &mapping, nil
}

// Replace makes the union of the submitted skill and competency ids the
// complete mapping of the course, then returns the stored result.
func (s *MappingService) Replace(ctx context.Context, courseID int64, req *dto.ReplaceMappingRequest) (*models.CourseMapping, error) {
	if courseID <= 0 {
		return nil, apperrors.NewBadRequestError("courseId must be a positive integer")
	}
	if id, found := helpers.FirstNonPositive(req.SkillIDs, req.CompetencyIDs); found {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("ids must be positive integers, got %d", id))
	}

	ids := helpers.UniqueIDs(req.SkillIDs, req.CompetencyIDs)
	if err := s.mappingRepo.Replace(ctx, courseID, ids); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCourseNotFound):
			return nil, courseError(err)
		case errors.Is(err, apperrors.ErrSkillNotFound):
			return nil, apperrors.NewCustomError(apperrors.ErrSkillNotFound, "One or more skill ids do not exist")
		default:
			return nil, fmt.Errorf("failed to replace mapping: %w", err)
		}
	}

	s.logger.Info().Int64("courseID", courseID).Int("size", len(ids)).Msg("Mapping replaced")
	return s.Get(ctx, courseID)
}

func courseError(err error) error {
	if errors.Is(err, apperrors.ErrCourseNotFound) {
		return apperrors.NewCustomError(apperrors.ErrCourseNotFound, "Course not found")
	}
	return fmt.Errorf("failed to load course: %w", err)
}
