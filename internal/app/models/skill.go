package models

// SkillPlaceholderName is stored as skill_name for free-text skills
const SkillPlaceholderName = "Skill"

// Skill is a row of the 'skills' table. Type=false rows are skills displayed by
// Description, Type=true rows are competencies displayed by SkillName.
type Skill struct {
	ID          int64   `json:"id" db:"id" example:"42"`
	SkillName   string  `json:"skillName" db:"skill_name" example:"Teamwork"`
	Type        bool    `json:"type" db:"type" example:"false"`
	Description *string `json:"description" db:"description" example:"Led a team of four through an agile sprint"`
}

// IsCompetency reports whether the row is a competency
func (s *Skill) IsCompetency() bool {
	return s.Type
}

// DisplayText returns the text shown for the row: the name for competencies,
// the description for skills.
func (s *Skill) DisplayText() string {
	if s.Type {
		return s.SkillName
	}
	if s.Description == nil {
		return ""
	}
	return *s.Description
}

// CourseMapping is the skills/competencies projection of a course's mapping rows
type CourseMapping struct {
	Skills       []string `json:"skills"`
	Competencies []string `json:"competencies"`
}

// NewCourseMapping partitions mapped rows by their Type flag. Rows with empty
// display text are skipped.
func NewCourseMapping(rows []*Skill) CourseMapping {
	mapping := CourseMapping{
		Skills:       []string{},
		Competencies: []string{},
	}
	for _, row := range rows {
		if row == nil {
			continue
		}
		text := row.DisplayText()
		if text == "" {
			continue
		}
		if row.IsCompetency() {
			mapping.Competencies = append(mapping.Competencies, text)
		} else {
			mapping.Skills = append(mapping.Skills, text)
		}
	}
	return mapping
}

// Completion returns Mapped when both lists are non-empty
func (m CourseMapping) Completion() CompletionStatus {
	if len(m.Skills) > 0 && len(m.Competencies) > 0 {
		return CompletionMapped
	}
	return CompletionUnmapped
}

// MappedSkill is a skill row joined to the course it is mapped to
type MappedSkill struct {
	CourseID int64
	Skill
}
