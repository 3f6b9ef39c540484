package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/app/services"
	"github.com/skillmap/skillmap/internal/middleware"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/skillmap/skillmap/internal/pkg/helpers"
	"github.com/skillmap/skillmap/internal/pkg/metrics"
)

// AdminController handles the administrator mapping dashboard
type AdminController struct {
	courseService  services.CourseService
	skillService   *services.SkillService
	mappingService *services.MappingService
	metrics        *metrics.Metrics
	logger         zerolog.Logger
}

// NewAdminController creates a new AdminController. metrics may be nil.
func NewAdminController(
	courseService services.CourseService,
	skillService *services.SkillService,
	mappingService *services.MappingService,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		courseService:  courseService,
		skillService:   skillService,
		mappingService: mappingService,
		metrics:        m,
		logger:         logger.With().Str("controller", "admin").Logger(),
	}
}

// ListCourses returns course rows with their mapping
// @Summary List courses with mappings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param major query string false "Major filter"
// @Param status query string false "Completion filter" Enums(Mapped, Unmapped, All)
// @Success 200 {array} dto.AdminCourseRow
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses [get]
func (c *AdminController) ListCourses(ctx *gin.Context) {
	rows, err := c.courseService.AdminCourseRows(ctx.Request.Context(), ctx.Query("major"), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// GetMapping returns the skills and competencies of a course
// @Summary Get course mapping
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} models.CourseMapping
// @Failure 400 {object} dto.ErrorResponse "Invalid course id"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{courseId}/mapping [get]
func (c *AdminController) GetMapping(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	mapping, err := c.mappingService.Get(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapping)
}

// ReplaceMapping replaces the complete mapping of a course
// @Summary Replace course mapping
// @Description The union of skillIds and competencyIds becomes the complete mapping. An empty body clears it.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Param request body dto.ReplaceMappingRequest true "Desired mapping"
// @Success 200 {object} models.CourseMapping
// @Failure 400 {object} dto.ErrorResponse "Invalid ids"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Course or skill not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{courseId}/mapping [put]
func (c *AdminController) ReplaceMapping(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.ReplaceMappingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mapping, err := c.mappingService.Replace(ctx.Request.Context(), courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.metrics.RecordMappingReplacement()
	identity, _ := middleware.GetIdentity(ctx)
	c.logger.Info().
		Int64("courseID", courseID).
		Int64("adminID", identity.UserID).
		Int("skills", len(mapping.Skills)).
		Int("competencies", len(mapping.Competencies)).
		Msg("Course mapping replaced")
	ctx.JSON(http.StatusOK, mapping)
}

// SkillsOptions lists every selectable skill and competency
// @Summary List skill and competency options
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SkillsOptionsResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/skills-options [get]
func (c *AdminController) SkillsOptions(ctx *gin.Context) {
	opts, err := c.skillService.Options(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, opts)
}

// CreateSkill creates a free-text skill
// @Summary Create a skill
// @Description Descriptions are unique case-insensitively. A match returns 409 with the existing skill.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSkillRequest true "Skill description"
// @Success 201 {object} models.Skill
// @Failure 400 {object} dto.ErrorResponse "Description missing or too long"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 409 {object} dto.SkillConflictResponse "Skill already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/skills [post]
func (c *AdminController) CreateSkill(ctx *gin.Context) {
	var req dto.CreateSkillRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	skill, created, err := c.skillService.FindOrCreate(ctx.Request.Context(), req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusConflict, dto.SkillConflictResponse{
			Error:    "Skill already exists",
			Code:     dto.ErrorCodeResourceAlreadyExists,
			Existing: skill,
		})
		return
	}

	c.metrics.RecordSkillCreated()
	ctx.JSON(http.StatusCreated, skill)
}

// DeleteSkill removes a skill from every course and deletes it
// @Summary Delete a skill everywhere
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param skillId path int true "Skill ID"
// @Success 200 {object} dto.DeleteSkillResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid skill id"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Skill not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/skills/{skillId} [delete]
func (c *AdminController) DeleteSkill(ctx *gin.Context) {
	skillID, ok := pathID(ctx, "skillId")
	if !ok {
		return
	}

	removed, err := c.skillService.DeleteEverywhere(ctx.Request.Context(), skillID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("skillID", skillID).Int64("mappingsRemoved", removed).Msg("Skill deleted")
	ctx.JSON(http.StatusOK, dto.DeleteSkillResponse{OK: true, MappingsRemoved: removed})
}

// pathID parses a positive id path parameter, writing 400 on failure
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := helpers.ParseID(ctx.Param(name))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}
