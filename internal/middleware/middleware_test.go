package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/skillmap/skillmap/internal/pkg/auth"
	"github.com/skillmap/skillmap/internal/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newJWT(t *testing.T, c *clock) *auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(auth.JWTConfig{SecretKey: "middleware-secret", TokenTTL: 8 * time.Hour}, auth.WithClock(c.Now))
	require.NoError(t, err)
	return svc
}

func sign(t *testing.T, svc *auth.JWTService, role models.Role) string {
	t.Helper()
	token, err := svc.Sign(auth.TokenPayload{UserID: 7, UserType: role, UserEmail: "user@quinnipiac.edu"})
	require.NoError(t, err)
	return token
}

func newGatedRouter(am *AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.GET("/me", am.RequireAuth(), func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "userType": identity.UserType})
	})
	r.GET("/admin", am.RequireAuth(), am.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/admin-only", am.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireAuth(t *testing.T) {
	c := &clock{now: time.Now()}
	svc := newJWT(t, c)
	m := metrics.NewMetrics()
	router := newGatedRouter(NewAuthMiddleware(svc, zerolog.Nop(), m))

	valid := sign(t, svc, models.RoleStudent)

	t.Run("valid token attaches identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+valid)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":7,"userType":"Student"}`, rec.Body.String())
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token " + valid},
		{"lowercase scheme", "bearer " + valid},
		{"raw token", valid},
		{"garbage", "Bearer not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, dto.ErrorCodeUnauthorized, decodeError(t, rec).Code)
		})
	}
}

func TestRequireAuth_ExpiredAndInvalidLookAlike(t *testing.T) {
	c := &clock{now: time.Now()}
	svc := newJWT(t, c)
	m := metrics.NewMetrics()
	router := newGatedRouter(NewAuthMiddleware(svc, zerolog.Nop(), m))

	expired := sign(t, svc, models.RoleStudent)
	c.now = c.now.Add(8*time.Hour + time.Minute)

	other, err := auth.NewJWTService(auth.JWTConfig{SecretKey: "another-secret"}, auth.WithClock(c.Now))
	require.NoError(t, err)
	forged := sign(t, other, models.RoleAdministrator)

	var bodies []string
	for _, token := range []string{expired, forged} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}
	assert.Equal(t, bodies[0], bodies[1])

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthFailuresTotal.WithLabelValues(metrics.ReasonExpired)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthFailuresTotal.WithLabelValues(metrics.ReasonInvalid)))
}

func TestRequireAdmin(t *testing.T) {
	c := &clock{now: time.Now()}
	svc := newJWT(t, c)
	router := newGatedRouter(NewAuthMiddleware(svc, zerolog.Nop(), nil))

	tests := []struct {
		role models.Role
		want int
	}{
		{models.RoleAdministrator, http.StatusNoContent},
		{models.RoleFacultyAdmin, http.StatusForbidden},
		{models.RoleStudent, http.StatusForbidden},
	}
	for _, path := range []string{"/admin", "/admin-only"} {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s %s", path, tt.role), func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, path, nil)
				req.Header.Set("Authorization", "Bearer "+sign(t, svc, tt.role))
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, req)

				assert.Equal(t, tt.want, rec.Code)
				if tt.want == http.StatusForbidden {
					assert.Equal(t, dto.ErrorResponse{
						Error: "You do not have permission to perform this action",
						Code:  dto.ErrorCodeForbidden,
					}, decodeError(t, rec))
				}
			})
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"credentials", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid email or password"), http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password"},
		{"validation", apperrors.NewValidationError("firstName is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "firstName is required"},
		{"password", apperrors.NewCustomError(apperrors.ErrInvalidPassword, "Password must be at least 6 characters"), http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Password must be at least 6 characters"},
		{"bad request", apperrors.NewBadRequestError("courseId must be a positive integer"), http.StatusBadRequest, dto.ErrorCodeBadRequest, "courseId must be a positive integer"},
		{"forbidden", apperrors.NewForbiddenError("nope"), http.StatusForbidden, dto.ErrorCodeForbidden, "nope"},
		{"missing identity", apperrors.ErrTokenMissing, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required"},
		{"course not found", apperrors.NewCustomError(apperrors.ErrCourseNotFound, "Course not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"},
		{"duplicate email", apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email is already registered"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email is already registered"},
		{"wrapped sentinel keeps generic text", fmt.Errorf("lookup: %w", apperrors.ErrSkillNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
		{"unexpected", errors.New(`pq: relation "skills" does not exist`), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { HandleAPIError(c, tt.err) })
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestLoginRateLimiter(t *testing.T) {
	m := metrics.NewMetrics()
	limiter := NewLoginRateLimiter(0.001, 2, zerolog.Nop(), m)
	r := gin.New()
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthFailuresTotal.WithLabelValues(metrics.ReasonRateLimit)))
}

func TestLoginRateLimiter_IgnoresUntrustedForwardedFor(t *testing.T) {
	limiter := NewLoginRateLimiter(0.001, 2, zerolog.Nop(), nil)
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	passed, limited := 0, 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:4321"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		switch rec.Code {
		case http.StatusOK:
			passed++
		case http.StatusTooManyRequests:
			limited++
		}
	}
	assert.Equal(t, 2, passed)
	assert.Equal(t, 48, limited)
}

func TestLimiterCache_EvictsRefilledBucketsFirst(t *testing.T) {
	lc := newLimiterCache[string](0.001, 1, 2)

	require.True(t, lc.get("throttled").Allow())
	lc.get("idle")

	lc.get("newcomer")
	assert.Len(t, lc.limiters, 2)
	assert.NotContains(t, lc.limiters, "idle")
	assert.False(t, lc.get("throttled").Allow())
}

func TestLimiterCache_StaysBounded(t *testing.T) {
	lc := newLimiterCache[string](0.001, 1, 3)
	for i := 0; i < 20; i++ {
		require.True(t, lc.get(fmt.Sprintf("10.0.0.%d", i)).Allow())
		assert.LessOrEqual(t, len(lc.limiters), 3)
	}
	assert.Contains(t, lc.limiters, "10.0.0.19")
}

func TestRequestIDAndCORS(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), CORS([]string{"http://localhost:3000"}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBindJSON(t *testing.T) {
	r := gin.New()
	r.POST("/login", func(c *gin.Context) {
		var req dto.LoginRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"jdoe"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Code)
	assert.Equal(t, "password is required", body.Error)
}
