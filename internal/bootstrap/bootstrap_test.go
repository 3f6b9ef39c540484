package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/app/repositories/repotest"
	"github.com/skillmap/skillmap/internal/config"
	"github.com/skillmap/skillmap/internal/seed"
)

type testApp struct {
	store  *repotest.Store
	deps   *Dependencies
	router *gin.Engine
}

func newTestApp(t *testing.T, overrides ...func(*config.Config)) *testApp {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Mode = gin.TestMode
	cfg.JWT.Secret = "test-secret"
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.RateLimit.Enabled = false
	cfg.Seed.AdminEmail = "admin"
	cfg.Seed.AdminPassword = "adminpass"
	for _, override := range overrides {
		override(cfg)
	}

	store := repotest.NewStore()
	deps, err := BuildDependencies(cfg, store.Repositories(), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, seed.CreateDefaultData(context.Background(), deps.Repos, deps.PasswordHasher, cfg.Seed, cfg.Auth.EmailDomain, zerolog.Nop()))

	return &testApp{store: store, deps: deps, router: SetupRouter(cfg, deps, zerolog.Nop())}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (a *testApp) login(t *testing.T, email, password string) dto.LoginResponse {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.LoginResponse](t, w)
}

func TestRouter_StudentFlow(t *testing.T) {
	app := newTestApp(t)
	major := "Software Engineering"

	w := app.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		UserType: "Student", FirstName: "John", LastName: "Doe", Email: "jdoe", Major: &major, Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	registered := decode[dto.RegisterResponse](t, w)
	assert.Equal(t, models.RoleStudent, registered.UserType)
	assert.Equal(t, "jdoe@quinnipiac.edu", registered.UserEmail)

	w = app.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		UserType: "Student", FirstName: "John", LastName: "Doe", Email: "JDOE", Password: "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	session := app.login(t, "jdoe", "secret1")
	assert.Equal(t, registered.UserID, session.UserID)
	assert.Equal(t, models.RoleStudent, session.UserType)
	assert.Equal(t, "John", session.FirstName)

	payload, err := app.deps.JWTService.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, payload.UserID)

	w = app.do(t, http.MethodGet, "/api/auth/me", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[dto.ProfileResponse](t, w)
	assert.Equal(t, "John", profile.FirstName)
	assert.Equal(t, "Doe", profile.LastName)
	require.NotNil(t, profile.Major)
	assert.Equal(t, major, *profile.Major)

	w = app.do(t, http.MethodPut, "/api/auth/me", session.Token, dto.UpdateProfileRequest{FirstName: "Johnny", LastName: "Doe"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.OKResponse](t, w).OK)

	// password unchanged when omitted
	assert.Equal(t, "Johnny", app.login(t, "jdoe", "secret1").FirstName)

	w = app.do(t, http.MethodGet, "/api/admin/courses", session.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, decode[dto.ErrorResponse](t, w).Code)
}

func TestRouter_Unauthenticated(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/majors", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[[]string](t, w), "Software Engineering")

	for _, path := range []string{"/api/auth/me", "/api/courses/skills?code=SER-491", "/api/admin/skills-options"} {
		w = app.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, dto.ErrorResponse{Error: "Authentication required", Code: dto.ErrorCodeUnauthorized}, decode[dto.ErrorResponse](t, w))
	}

	w = app.do(t, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, decode[dto.ErrorResponse](t, w).Code)

	w = app.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "skillmap_http_requests_total")
	assert.Contains(t, w.Body.String(), "skillmap_auth_failures_total")
}

func TestRouter_FacultyIsNotAdministrator(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		UserType: "Faculty/Administrator", FirstName: "Ada", LastName: "Prof", Email: "aprof", Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	session := app.login(t, "aprof", "secret1")
	assert.Equal(t, models.RoleFacultyAdmin, session.UserType)

	w = app.do(t, http.MethodPost, "/api/admin/skills", session.Token, dto.CreateSkillRequest{Description: "Led team"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, app.store.SkillCount())
}

func TestRouter_AdminMappingFlow(t *testing.T) {
	app := newTestApp(t)
	courseID := app.store.AddCourse("SER-491", "Software Engineering")
	competencyID := app.store.AddCompetency("Teamwork")

	session := app.login(t, "admin", "adminpass")
	require.Equal(t, models.RoleAdministrator, session.UserType)
	token := session.Token

	w := app.do(t, http.MethodPost, "/api/admin/skills", token, dto.CreateSkillRequest{Description: "Led team"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	skill := decode[models.Skill](t, w)
	assert.False(t, skill.Type)

	w = app.do(t, http.MethodPost, "/api/admin/skills", token, dto.CreateSkillRequest{Description: "  led TEAM"})
	require.Equal(t, http.StatusConflict, w.Code)
	conflict := decode[dto.SkillConflictResponse](t, w)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, conflict.Code)
	require.NotNil(t, conflict.Existing)
	assert.Equal(t, skill.ID, conflict.Existing.ID)

	w = app.do(t, http.MethodPost, "/api/admin/skills", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mappingPath := fmt.Sprintf("/api/admin/courses/%d/mapping", courseID)
	w = app.do(t, http.MethodPut, mappingPath, token, dto.ReplaceMappingRequest{
		SkillIDs:      []int64{skill.ID, skill.ID},
		CompetencyIDs: []int64{competencyID},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	mapping := decode[models.CourseMapping](t, w)
	assert.Equal(t, []string{"Led team"}, mapping.Skills)
	assert.Equal(t, []string{"Teamwork"}, mapping.Competencies)

	w = app.do(t, http.MethodGet, "/api/admin/courses?status=Mapped", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode[[]dto.AdminCourseRow](t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, models.CompletionMapped, rows[0].Completion)

	w = app.do(t, http.MethodGet, "/api/courses/skills?code=SER-491&code=XYZ-000", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bySkill := decode[map[string][]models.Skill](t, w)
	assert.Len(t, bySkill, 1)
	assert.Len(t, bySkill["SER-491"], 2)

	w = app.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/skills/%d", skill.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.DeleteSkillResponse{OK: true, MappingsRemoved: 1}, decode[dto.DeleteSkillResponse](t, w))

	w = app.do(t, http.MethodGet, mappingPath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	mapping = decode[models.CourseMapping](t, w)
	assert.Empty(t, mapping.Skills)
	assert.Equal(t, []string{"Teamwork"}, mapping.Competencies)

	w = app.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/skills/%d", skill.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodGet, "/api/admin/courses/abc/mapping", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(decode[dto.ErrorResponse](t, w).Error, "courseId"))
}

func TestRouter_LoginRateLimitUsesRemoteAddress(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) {
		cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2}
	})

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		body, err := json.Marshal(dto.LoginRequest{Email: "admin", Password: "wrong"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		w := httptest.NewRecorder()
		app.router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{
		http.StatusUnauthorized, http.StatusUnauthorized,
		http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusTooManyRequests,
	}, codes)
}
