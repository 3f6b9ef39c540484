package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"jdoe@quinnipiac.edu"`
	FirstName    string    `json:"firstName" db:"first_name" example:"John"`
	LastName     string    `json:"lastName" db:"last_name" example:"Doe"`
	Major        *string   `json:"major,omitempty" db:"major" example:"Software Engineering"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Role returns the token role of a student
func (s *Student) Role() Role {
	return RoleStudent
}

// FacultyAdmin defines the faculty/administrator model based on the 'faculty_admins' table
type FacultyAdmin struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"prof@quinnipiac.edu"`
	FirstName    string    `json:"firstName" db:"first_name" example:"Jane"`
	LastName     string    `json:"lastName" db:"last_name" example:"Smith"`
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Role returns the token role derived from the is_admin flag
func (f *FacultyAdmin) Role() Role {
	if f.IsAdmin {
		return RoleAdministrator
	}
	return RoleFacultyAdmin
}

// ProfileUpdate carries the mutable profile fields.
// Nil pointers leave the stored value untouched.
type ProfileUpdate struct {
	FirstName    string
	LastName     string
	Major        *string
	PasswordHash *string
}
