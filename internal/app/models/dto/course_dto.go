package dto

import "github.com/skillmap/skillmap/internal/app/models"

// CourseSummary is a course entry of the catalogue grouped by major
type CourseSummary struct {
	ID   int64  `json:"id" example:"15"`
	Code string `json:"code" example:"SER-491"`
}

// AdminCourseRow is one row of the administrator course table
type AdminCourseRow struct {
	ID           int64                   `json:"id" example:"15"`
	Course       string                  `json:"course" example:"SER-491"`
	Major        string                  `json:"major" example:"Software Engineering"`
	Completion   models.CompletionStatus `json:"completion" example:"Mapped"`
	Skills       []string                `json:"skills"`
	Competencies []string                `json:"competencies"`
}

// ReplaceMappingRequest is the complete desired mapping of a course
type ReplaceMappingRequest struct {
	SkillIDs      []int64 `json:"skillIds"`
	CompetencyIDs []int64 `json:"competencyIds"`
}

// SkillsOptionsResponse lists every selectable skill and competency
type SkillsOptionsResponse struct {
	Skills       []*models.Skill `json:"skills"`
	Competencies []*models.Skill `json:"competencies"`
}

// CreateSkillRequest represents a new free-text skill
type CreateSkillRequest struct {
	Description string `json:"description" binding:"required" example:"Led a team of four through an agile sprint"`
}

// DeleteSkillResponse reports a deleted skill
type DeleteSkillResponse struct {
	OK              bool  `json:"ok" example:"true"`
	MappingsRemoved int64 `json:"mappingsRemoved" example:"3"`
}
