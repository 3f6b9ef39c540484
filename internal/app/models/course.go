package models

// Course represents a catalogue course owned by a major.
type Course struct {
	ID    int64  `json:"id" db:"id" example:"15"`
	Code  string `json:"code" db:"code" example:"SER-491"`
	Major string `json:"major" db:"major" example:"Software Engineering"`
}

// Major represents an academic major
type Major struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" example:"Software Engineering"`
}
