package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/app/repositories/repotest"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillService_FindOrCreateIsCaseInsensitive(t *testing.T) {
	store := repotest.NewStore()
	svc := NewSkillService(store.Skills(), store.Mappings(), zerolog.Nop())
	ctx := context.Background()

	first, created, err := svc.FindOrCreate(ctx, "Led team")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Skill", first.SkillName)
	assert.False(t, first.Type)

	second, created, err := svc.FindOrCreate(ctx, "  LED TEAM ")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.SkillCount())
}

func TestSkillService_FindOrCreateKeepsInnerWhitespace(t *testing.T) {
	store := repotest.NewStore()
	seeded := store.AddSkill("Led  team")
	svc := NewSkillService(store.Skills(), store.Mappings(), zerolog.Nop())
	ctx := context.Background()

	found, created, err := svc.FindOrCreate(ctx, " led  TEAM ")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, seeded, found.ID)

	other, created, err := svc.FindOrCreate(ctx, "Led team")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, seeded, other.ID)
	require.NotNil(t, other.Description)
	assert.Equal(t, "Led team", *other.Description)
}

func TestSkillService_CompetencyNamesDoNotCollide(t *testing.T) {
	store := repotest.NewStore()
	store.AddCompetency("Teamwork")
	svc := NewSkillService(store.Skills(), store.Mappings(), zerolog.Nop())

	_, created, err := svc.FindOrCreate(context.Background(), "Teamwork")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestSkillService_FindOrCreateValidation(t *testing.T) {
	store := repotest.NewStore()
	svc := NewSkillService(store.Skills(), store.Mappings(), zerolog.Nop())

	_, _, err := svc.FindOrCreate(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, _, err = svc.FindOrCreate(context.Background(), strings.Repeat("x", 501))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSkillService_DeleteEverywhere(t *testing.T) {
	store := repotest.NewStore()
	ctx := context.Background()
	skillSvc := NewSkillService(store.Skills(), store.Mappings(), zerolog.Nop())
	mappingSvc := NewMappingService(store.Courses(), store.Mappings(), zerolog.Nop())

	skillID := store.AddSkill("Led team")
	keep := store.AddSkill("Wrote docs")
	for _, code := range []string{"SER-120", "SER-225", "SER-491"} {
		courseID := store.AddCourse(code, "Software Engineering")
		_, err := mappingSvc.Replace(ctx, courseID, &dto.ReplaceMappingRequest{SkillIDs: []int64{skillID, keep}})
		require.NoError(t, err)
	}
	require.Equal(t, 3, store.MappingCount(skillID))

	removed, err := skillSvc.DeleteEverywhere(ctx, skillID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.Equal(t, 0, store.MappingCount(skillID))
	assert.Equal(t, 3, store.MappingCount(keep))

	_, err = store.Skills().GetByID(ctx, skillID)
	assert.ErrorIs(t, err, apperrors.ErrSkillNotFound)

	_, err = skillSvc.DeleteEverywhere(ctx, skillID)
	assert.ErrorIs(t, err, apperrors.ErrSkillNotFound)

	_, err = skillSvc.DeleteEverywhere(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestSkillService_Options(t *testing.T) {
	store := repotest.NewStore()
	store.AddSkill("Led team")
	store.AddCompetency("Communication")
	store.AddCompetency("Problem solving")

	opts, err := NewSkillService(store.Skills(), store.Mappings(), zerolog.Nop()).Options(context.Background())
	require.NoError(t, err)
	assert.Len(t, opts.Skills, 1)
	assert.Len(t, opts.Competencies, 2)
}
