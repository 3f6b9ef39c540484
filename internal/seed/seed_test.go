package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/app/repositories/repotest"
	"github.com/skillmap/skillmap/internal/config"
	"github.com/skillmap/skillmap/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateDefaultData_Idempotent(t *testing.T) {
	store := repotest.NewStore()
	repos := store.Repositories()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	cfg := config.SeedConfig{
		Enabled:       true,
		Majors:        []string{"Software Engineering", " Computer Science ", ""},
		AdminEmail:    "admin",
		AdminPassword: "change-me",
	}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, CreateDefaultData(ctx, repos, hasher, cfg, "quinnipiac.edu", zerolog.Nop()))
	}

	majors, err := repos.MajorRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, majors, 2)
	assert.Equal(t, "Computer Science", majors[0].Name)

	admin, err := repos.UserRepository.GetFacultyAdminByEmail(ctx, "admin@quinnipiac.edu")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, models.RoleAdministrator, admin.Role())
	assert.True(t, hasher.Verify("change-me", admin.PasswordHash))
}

func TestCreateDefaultData_Disabled(t *testing.T) {
	store := repotest.NewStore()
	repos := store.Repositories()

	err := CreateDefaultData(context.Background(), repos, auth.NewPasswordHasher(bcrypt.MinCost),
		config.SeedConfig{Enabled: false, Majors: []string{"Data Science"}}, "quinnipiac.edu", zerolog.Nop())
	require.NoError(t, err)

	majors, err := repos.MajorRepository.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, majors)
}
