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
	"github.com/skillmap/skillmap/internal/pkg/validation"
)

// SkillService manages skill rows and their removal from course mappings
type SkillService struct {
	skillRepo   repositories.ISkillRepository
	mappingRepo repositories.IMappingRepository
	logger      zerolog.Logger
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo repositories.ISkillRepository, mappingRepo repositories.IMappingRepository, logger zerolog.Logger) *SkillService {
	return &SkillService{
		skillRepo:   skillRepo,
		mappingRepo: mappingRepo,
		logger:      logger.With().Str("service", "skill").Logger(),
	}
}

// Options splits every row into skills and competencies
func (s *SkillService) Options(ctx context.Context) (*dto.SkillsOptionsResponse, error) {
	all, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	resp := &dto.SkillsOptionsResponse{
		Skills:       []*models.Skill{},
		Competencies: []*models.Skill{},
	}
	for _, skill := range all {
		if skill.IsCompetency() {
			resp.Competencies = append(resp.Competencies, skill)
		} else {
			resp.Skills = append(resp.Skills, skill)
		}
	}
	return resp, nil
}

// FindOrCreate returns the skill whose description matches case-insensitively,
// or creates one. created reports whether a new row was inserted.
func (s *SkillService) FindOrCreate(ctx context.Context, description string) (skill *models.Skill, created bool, err error) {
	description = validation.NormalizeDescription(description)
	if err := validation.NewStringValidation(description).WithMaxLength(validation.DescriptionMaxLength).Check(); err != nil {
		return nil, false, apperrors.NewValidationError(
			fmt.Sprintf("description is required and must be at most %d characters", validation.DescriptionMaxLength))
	}

	existing, err := s.skillRepo.FindSkillByDescription(ctx, description)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrSkillNotFound) {
		return nil, false, fmt.Errorf("failed to look up skill: %w", err)
	}

	skill = &models.Skill{
		SkillName:   models.SkillPlaceholderName,
		Type:        false,
		Description: &description,
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		if !errors.Is(err, apperrors.ErrSkillAlreadyExists) {
			return nil, false, fmt.Errorf("failed to create skill: %w", err)
		}
		// lost a race with a concurrent insert of the same description
		existing, findErr := s.skillRepo.FindSkillByDescription(ctx, description)
		if findErr != nil {
			return nil, false, fmt.Errorf("failed to look up conflicting skill: %w", findErr)
		}
		return existing, false, nil
	}

	s.logger.Info().Int64("skillID", skill.ID).Msg("Skill created")
	return skill, true, nil
}

// DeleteEverywhere removes a skill from every course and then deletes it
func (s *SkillService) DeleteEverywhere(ctx context.Context, skillID int64) (int64, error) {
	if skillID <= 0 {
		return 0, apperrors.NewBadRequestError("skillId must be a positive integer")
	}
	removed, err := s.mappingRepo.DeleteSkillEverywhere(ctx, skillID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSkillNotFound) {
			return 0, apperrors.NewCustomError(apperrors.ErrSkillNotFound, "Skill not found")
		}
		return 0, fmt.Errorf("failed to delete skill: %w", err)
	}
	return removed, nil
}
