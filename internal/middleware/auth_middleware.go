package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/skillmap/skillmap/internal/pkg/auth"
	"github.com/skillmap/skillmap/internal/pkg/metrics"
)

const identityKey = "identity"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewAuthMiddleware creates a new AuthMiddleware. metrics may be nil.
func NewAuthMiddleware(jwtService *auth.JWTService, logger zerolog.Logger, m *metrics.Metrics) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger.With().Str("component", "auth_middleware").Logger(),
		metrics:    m,
	}
}

// RequireAuth verifies the bearer token and attaches the identity to the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.authenticate(c); !ok {
			return
		}
		c.Next()
	}
}

// RequireAdmin accepts only identities whose role is exactly Administrator
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(models.RoleAdministrator)
}

// RequireRole accepts identities carrying one of roles. It authenticates the
// request itself when RequireAuth has not run before it.
func (m *AuthMiddleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			if identity, ok = m.authenticate(c); !ok {
				return
			}
		}

		for _, role := range roles {
			if identity.UserType == role {
				c.Next()
				return
			}
		}

		m.metrics.RecordAuthFailure(metrics.ReasonForbidden)
		m.logger.Warn().
			Int64("userID", identity.UserID).
			Str("userType", identity.UserType.String()).
			Str("path", c.FullPath()).
			Msg("Insufficient role")
		HandleAPIError(c, apperrors.NewForbiddenError("You do not have permission to perform this action"))
	}
}

// authenticate aborts the request with 401 when the token is missing or fails verification.
// Expired and invalid tokens produce the same response and differ only in the log.
func (m *AuthMiddleware) authenticate(c *gin.Context) (auth.TokenPayload, bool) {
	token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		m.reject(c, metrics.ReasonMissing, err)
		return auth.TokenPayload{}, false
	}

	payload, err := m.jwtService.Verify(token)
	if err != nil {
		reason := metrics.ReasonInvalid
		if errors.Is(err, auth.ErrExpiredToken) {
			reason = metrics.ReasonExpired
		}
		m.reject(c, reason, err)
		return auth.TokenPayload{}, false
	}

	c.Set(identityKey, *payload)
	return *payload, true
}

func (m *AuthMiddleware) reject(c *gin.Context, reason string, err error) {
	m.metrics.RecordAuthFailure(reason)
	m.logger.Info().
		Err(err).
		Str("reason", reason).
		Str("path", c.Request.URL.Path).
		Str("clientIP", c.ClientIP()).
		Msg("Request rejected by auth gate")
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
}

// GetIdentity returns the identity attached by RequireAuth
func GetIdentity(c *gin.Context) (auth.TokenPayload, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return auth.TokenPayload{}, false
	}
	identity, ok := value.(auth.TokenPayload)
	return identity, ok
}
