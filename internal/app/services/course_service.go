package services

import (
	"context"
	"fmt"

	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/app/repositories"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/skillmap/skillmap/internal/pkg/helpers"
)

// CourseService defines the interface for catalogue operations
type CourseService interface {
	ListMajors(ctx context.Context) ([]string, error)
	CoursesByMajor(ctx context.Context) (map[string][]dto.CourseSummary, error)
	AdminCourseRows(ctx context.Context, major, status string) ([]dto.AdminCourseRow, error)
	SkillsForCourseCodes(ctx context.Context, codes []string) (map[string][]*models.Skill, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo  repositories.ICourseRepository
	majorRepo   repositories.IMajorRepository
	mappingRepo repositories.IMappingRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	majorRepo repositories.IMajorRepository,
	mappingRepo repositories.IMappingRepository,
) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		majorRepo:   majorRepo,
		mappingRepo: mappingRepo,
	}
}

// ListMajors returns major names ordered by name
func (s *courseServiceImpl) ListMajors(ctx context.Context) ([]string, error) {
	majors, err := s.majorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list majors: %w", err)
	}
	names := make([]string, 0, len(majors))
	for _, m := range majors {
		names = append(names, m.Name)
	}
	return names, nil
}

// CoursesByMajor groups every course by its major
func (s *courseServiceImpl) CoursesByMajor(ctx context.Context) (map[string][]dto.CourseSummary, error) {
	courses, err := s.courseRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	grouped := make(map[string][]dto.CourseSummary)
	for _, c := range courses {
		grouped[c.Major] = append(grouped[c.Major], dto.CourseSummary{ID: c.ID, Code: c.Code})
	}
	return grouped, nil
}

// ParseCompletionStatus parses the status filter. An empty value means All.
func ParseCompletionStatus(raw string) (models.CompletionStatus, error) {
	switch models.CompletionStatus(raw) {
	case "", models.CompletionAll:
		return models.CompletionAll, nil
	case models.CompletionMapped, models.CompletionUnmapped:
		return models.CompletionStatus(raw), nil
	default:
		return "", apperrors.NewBadRequestError(fmt.Sprintf("status must be one of %s, %s, %s",
			models.CompletionMapped, models.CompletionUnmapped, models.CompletionAll))
	}
}

// AdminCourseRows lists courses with their mapping, optionally filtered by major and completion
func (s *courseServiceImpl) AdminCourseRows(ctx context.Context, major, status string) ([]dto.AdminCourseRow, error) {
	filter, err := ParseCompletionStatus(status)
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.List(ctx, major)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	mapped, err := s.mappingRepo.GetByCourses(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings: %w", err)
	}

	byCourse := make(map[int64][]*models.Skill)
	for _, m := range mapped {
		skill := m.Skill
		byCourse[m.CourseID] = append(byCourse[m.CourseID], &skill)
	}

	rows := make([]dto.AdminCourseRow, 0, len(courses))
	for _, c := range courses {
		mapping := models.NewCourseMapping(byCourse[c.ID])
		completion := mapping.Completion()
		if filter != models.CompletionAll && filter != completion {
			continue
		}
		rows = append(rows, dto.AdminCourseRow{
			ID:           c.ID,
			Course:       c.Code,
			Major:        c.Major,
			Completion:   completion,
			Skills:       mapping.Skills,
			Competencies: mapping.Competencies,
		})
	}
	return rows, nil
}

// SkillsForCourseCodes resolves course codes to the skills mapped to each course.
// Unknown codes are left out of the result.
func (s *courseServiceImpl) SkillsForCourseCodes(ctx context.Context, codes []string) (map[string][]*models.Skill, error) {
	codes = helpers.UniqueStrings(codes)
	result := make(map[string][]*models.Skill)
	if len(codes) == 0 {
		return result, nil
	}

	courses, err := s.courseRepo.GetByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve course codes: %w", err)
	}

	ids := make([]int64, 0, len(courses))
	codeByID := make(map[int64]string, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
		codeByID[c.ID] = c.Code
		result[c.Code] = []*models.Skill{}
	}

	mapped, err := s.mappingRepo.GetByCourses(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings: %w", err)
	}

	seen := make(map[string]map[int64]struct{})
	for _, m := range mapped {
		code := codeByID[m.CourseID]
		if seen[code] == nil {
			seen[code] = make(map[int64]struct{})
		}
		if _, dup := seen[code][m.ID]; dup {
			continue
		}
		seen[code][m.ID] = struct{}{}
		skill := m.Skill
		result[code] = append(result[code], &skill)
	}
	return result, nil
}
