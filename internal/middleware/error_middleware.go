package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
)

// HandleAPIError translates a service error into the matching status code and error body.
// Unexpected errors are logged and reported with a generic message.
func HandleAPIError(c *gin.Context, err error) {
	status, body := classifyError(err)
	if status == http.StatusInternalServerError {
		logger := zerolog.Ctx(c.Request.Context())
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
	}
	c.AbortWithStatusJSON(status, body)
}

func classifyError(err error) (int, *dto.ErrorResponse) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials,
			apperrors.ClientMessage(err, "Invalid email or password"))
	case errors.Is(err, apperrors.ErrTokenMissing):
		return http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorResponse(dto.ErrorCodeForbidden,
			apperrors.ClientMessage(err, "Permission denied"))
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidEmail,
			apperrors.ClientMessage(err, "Email is not valid"))
	case errors.Is(err, apperrors.ErrInvalidPassword):
		return http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidPassword,
			apperrors.ClientMessage(err, "Password is not valid"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed,
			apperrors.ClientMessage(err, "Validation failed"))
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeBadRequest,
			apperrors.ClientMessage(err, "Bad request"))
	case apperrors.Is(err, apperrors.ErrUserNotFound, apperrors.ErrCourseNotFound, apperrors.ErrSkillNotFound):
		return http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound,
			apperrors.ClientMessage(err, "Resource not found"))
	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists, apperrors.ErrSkillAlreadyExists):
		return http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists,
			apperrors.ClientMessage(err, "Resource already exists"))
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeConflict,
			apperrors.ClientMessage(err, "Conflict"))
	default:
		return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
