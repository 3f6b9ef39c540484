package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillmap/skillmap/internal/app/services"
	"github.com/skillmap/skillmap/internal/middleware"
)

// CourseController serves the majors and course catalogue
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListMajors returns every major name
// @Summary List majors
// @Tags courses
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /majors [get]
func (c *CourseController) ListMajors(ctx *gin.Context) {
	majors, err := c.courseService.ListMajors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, majors)
}

// ListCourses returns courses grouped by major
// @Summary List courses by major
// @Tags courses
// @Produce json
// @Success 200 {object} map[string][]dto.CourseSummary
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	grouped, err := c.courseService.CoursesByMajor(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grouped)
}

// SkillsForCourses resolves course codes to their mapped skills
// @Summary Skills for completed courses
// @Description Unknown course codes are left out of the result
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param code query []string true "Course codes" collectionFormat(multi)
// @Success 200 {object} map[string][]models.Skill
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/skills [get]
func (c *CourseController) SkillsForCourses(ctx *gin.Context) {
	skills, err := c.courseService.SkillsForCourseCodes(ctx.Request.Context(), ctx.QueryArray("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, skills)
}
