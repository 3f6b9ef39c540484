package services

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/app/repositories/repotest"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogue struct {
	store        *repotest.Store
	courseID     int64
	skills       map[int64]string
	competencies map[int64]string
}

func newCatalogue(t *testing.T) *catalogue {
	t.Helper()
	store := repotest.NewStore()
	c := &catalogue{
		store:        store,
		courseID:     store.AddCourse("SER-491", "Software Engineering"),
		skills:       map[int64]string{},
		competencies: map[int64]string{},
	}
	for i := 0; i < 6; i++ {
		desc := fmt.Sprintf("Skill description %d", i)
		c.skills[store.AddSkill(desc)] = desc
	}
	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("Competency %d", i)
		c.competencies[store.AddCompetency(name)] = name
	}
	return c
}

func (c *catalogue) allIDs() []int64 {
	var ids []int64
	for id := range c.skills {
		ids = append(ids, id)
	}
	for id := range c.competencies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sorted(values []string) []string {
	out := append([]string{}, values...)
	sort.Strings(out)
	return out
}

func TestMappingService_ReplaceIsFullReplacement(t *testing.T) {
	c := newCatalogue(t)
	svc := NewMappingService(c.store.Courses(), c.store.Mappings(), zerolog.Nop())
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	all := c.allIDs()

	for round := 0; round < 50; round++ {
		var subset []int64
		for _, id := range all {
			if rng.Intn(2) == 0 {
				subset = append(subset, id)
			}
		}
		// submit duplicates and mix skills into competency ids
		split := rng.Intn(len(subset) + 1)
		req := &dto.ReplaceMappingRequest{
			SkillIDs:      append(append([]int64{}, subset[:split]...), subset...),
			CompetencyIDs: subset[split:],
		}

		_, err := svc.Replace(ctx, c.courseID, req)
		require.NoError(t, err)

		got, err := svc.Get(ctx, c.courseID)
		require.NoError(t, err)

		wantSkills, wantCompetencies := []string{}, []string{}
		for _, id := range subset {
			if desc, ok := c.skills[id]; ok {
				wantSkills = append(wantSkills, desc)
			} else {
				wantCompetencies = append(wantCompetencies, c.competencies[id])
			}
		}
		assert.Equal(t, sorted(wantSkills), sorted(got.Skills), "round %d", round)
		assert.Equal(t, sorted(wantCompetencies), sorted(got.Competencies), "round %d", round)
	}
}

func TestMappingService_ReplaceWithEmptySetClears(t *testing.T) {
	c := newCatalogue(t)
	svc := NewMappingService(c.store.Courses(), c.store.Mappings(), zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Replace(ctx, c.courseID, &dto.ReplaceMappingRequest{SkillIDs: c.allIDs()})
	require.NoError(t, err)

	got, err := svc.Replace(ctx, c.courseID, &dto.ReplaceMappingRequest{})
	require.NoError(t, err)
	assert.Empty(t, got.Skills)
	assert.Empty(t, got.Competencies)
	assert.Equal(t, models.CompletionUnmapped, got.Completion())
}

func TestMappingService_ReplaceErrors(t *testing.T) {
	c := newCatalogue(t)
	svc := NewMappingService(c.store.Courses(), c.store.Mappings(), zerolog.Nop())
	ctx := context.Background()
	valid := c.allIDs()[:2]

	_, err := svc.Replace(ctx, c.courseID, &dto.ReplaceMappingRequest{SkillIDs: valid})
	require.NoError(t, err)

	_, err = svc.Replace(ctx, 0, &dto.ReplaceMappingRequest{})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Replace(ctx, c.courseID, &dto.ReplaceMappingRequest{SkillIDs: []int64{1, -4}})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Replace(ctx, 9999, &dto.ReplaceMappingRequest{SkillIDs: valid})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.Replace(ctx, c.courseID, &dto.ReplaceMappingRequest{SkillIDs: []int64{valid[0], 9999}})
	assert.ErrorIs(t, err, apperrors.ErrSkillNotFound)

	// a rejected replacement leaves the previous mapping in place
	got, err := svc.Get(ctx, c.courseID)
	require.NoError(t, err)
	assert.Len(t, append(got.Skills, got.Competencies...), 2)

	_, err = svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseService_AdminCourseRows(t *testing.T) {
	c := newCatalogue(t)
	ctx := context.Background()
	other := c.store.AddCourse("CSC-110", "Computer Science")
	mapping := NewMappingService(c.store.Courses(), c.store.Mappings(), zerolog.Nop())
	courses := NewCourseService(c.store.Courses(), c.store.Majors(), c.store.Mappings())

	var skillID, competencyID int64
	for id := range c.skills {
		skillID = id
		break
	}
	for id := range c.competencies {
		competencyID = id
		break
	}
	_, err := mapping.Replace(ctx, c.courseID, &dto.ReplaceMappingRequest{SkillIDs: []int64{skillID}, CompetencyIDs: []int64{competencyID}})
	require.NoError(t, err)
	_, err = mapping.Replace(ctx, other, &dto.ReplaceMappingRequest{SkillIDs: []int64{skillID}})
	require.NoError(t, err)

	rows, err := courses.AdminCourseRows(ctx, "", "All")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	mapped, err := courses.AdminCourseRows(ctx, "", "Mapped")
	require.NoError(t, err)
	require.Len(t, mapped, 1)
	assert.Equal(t, "SER-491", mapped[0].Course)
	assert.Equal(t, models.CompletionMapped, mapped[0].Completion)

	unmapped, err := courses.AdminCourseRows(ctx, "Computer Science", "Unmapped")
	require.NoError(t, err)
	require.Len(t, unmapped, 1)
	assert.Equal(t, "CSC-110", unmapped[0].Course)

	_, err = courses.AdminCourseRows(ctx, "", "Partial")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	bySkill, err := courses.SkillsForCourseCodes(ctx, []string{"SER-491", "SER-491", "NOPE-000"})
	require.NoError(t, err)
	assert.Len(t, bySkill, 1)
	assert.Len(t, bySkill["SER-491"], 2)

	grouped, err := courses.CoursesByMajor(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.CourseSummary{{ID: other, Code: "CSC-110"}}, grouped["Computer Science"])
}

func TestCourseService_ListMajors(t *testing.T) {
	store := repotest.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Majors().Ensure(ctx, "Software Engineering"))
	require.NoError(t, store.Majors().Ensure(ctx, "Computer Science"))
	require.NoError(t, store.Majors().Ensure(ctx, "Computer Science"))

	names, err := NewCourseService(store.Courses(), store.Majors(), store.Mappings()).ListMajors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Computer Science", "Software Engineering"}, names)
}
