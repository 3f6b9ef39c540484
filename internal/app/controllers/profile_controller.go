package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/app/services"
	"github.com/skillmap/skillmap/internal/middleware"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
)

// ProfileController serves the signed-in user's own profile
type ProfileController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(authService *services.AuthService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		authService: authService,
		logger:      logger.With().Str("controller", "profile").Logger(),
	}
}

// GetProfile returns the profile of the token's identity
// @Summary Get current user profile
// @Description The profile is resolved from the token, never from a client-supplied id
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/me [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	profile, err := c.authService.GetProfile(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile updates names, major and optionally the password
// @Summary Update current user profile
// @Description Names are required. Major only applies to students. An empty or missing password leaves it unchanged.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile data"
// @Success 200 {object} dto.OKResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed or password too short"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/me [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	var req dto.UpdateProfileRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.authService.UpdateProfile(ctx.Request.Context(), identity, &req); err != nil {
		c.logger.Warn().Err(err).Int64("userID", identity.UserID).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewOKResponse())
}
