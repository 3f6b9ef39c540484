package dto

import "github.com/skillmap/skillmap/internal/app/models"

// LoginRequest represents login credentials. Email may omit the university domain.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token     string      `json:"token"`
	UserID    int64       `json:"userId" example:"7"`
	UserType  models.Role `json:"userType" swaggertype:"string" example:"Student"`
	UserEmail string      `json:"userEmail" example:"jdoe@quinnipiac.edu"`
	FirstName string      `json:"firstName" example:"John"`
	LastName  string      `json:"lastName" example:"Doe"`
}

// RegisterRequest represents an account registration
type RegisterRequest struct {
	UserType  string  `json:"userType" binding:"required" example:"Student" enums:"Student,Faculty/Administrator"`
	FirstName string  `json:"firstName" binding:"required,max=100" example:"John"`
	LastName  string  `json:"lastName" binding:"required,max=100" example:"Doe"`
	Email     string  `json:"email" binding:"required" example:"jdoe"`
	Major     *string `json:"major,omitempty" example:"Software Engineering"`
	Password  string  `json:"password" binding:"required" example:"secret1"`
}

// RegisterResponse represents a successful registration
type RegisterResponse struct {
	Token     string      `json:"token"`
	UserID    int64       `json:"userId" example:"7"`
	UserType  models.Role `json:"userType" swaggertype:"string" example:"Student"`
	UserEmail string      `json:"userEmail" example:"jdoe@quinnipiac.edu"`
}

// ProfileResponse represents the signed-in user's profile
type ProfileResponse struct {
	ID        int64       `json:"id" example:"7"`
	Email     string      `json:"email" example:"jdoe@quinnipiac.edu"`
	FirstName string      `json:"firstName" example:"John"`
	LastName  string      `json:"lastName" example:"Doe"`
	UserType  models.Role `json:"userType" swaggertype:"string" example:"Student"`
	Major     *string     `json:"major,omitempty" example:"Software Engineering"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	FirstName string  `json:"firstName" binding:"required,max=100" example:"John"`
	LastName  string  `json:"lastName" binding:"required,max=100" example:"Doe"`
	Major     *string `json:"major,omitempty" example:"Computer Science"`
	Password  *string `json:"password,omitempty" example:"newsecret"`
}
