package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/app/repositories"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
	"github.com/skillmap/skillmap/internal/pkg/auth"
	"github.com/skillmap/skillmap/internal/pkg/helpers"
	"github.com/skillmap/skillmap/internal/pkg/validation"
)

const invalidCredentialsMessage = "Invalid email or password"

// AuthConfig holds the account rules applied by AuthService
type AuthConfig struct {
	EmailDomain       string
	MinPasswordLength int
}

// AuthService handles registration, login and profile operations
type AuthService struct {
	userRepo   repositories.IUserRepository
	hasher     *auth.PasswordHasher
	jwtService *auth.JWTService
	config     AuthConfig
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	hasher *auth.PasswordHasher,
	jwtService *auth.JWTService,
	config AuthConfig,
	logger zerolog.Logger,
) *AuthService {
	if config.MinPasswordLength <= 0 {
		config.MinPasswordLength = 6
	}
	return &AuthService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		config:     config,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a Student or Faculty/Administrator account and signs a token for it.
// Administrators cannot self-register.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role, err := models.ParseRole(strings.TrimSpace(req.UserType))
	if err != nil || role == models.RoleAdministrator {
		return nil, apperrors.NewValidationError(fmt.Sprintf("userType must be %q or %q", models.RoleStudent, models.RoleFacultyAdmin))
	}

	firstName, lastName, err := s.validateNames(req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	email, err := s.normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.emailTaken(ctx, role, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email is already registered")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	var userID int64
	switch role {
	case models.RoleStudent:
		student := &models.Student{
			Email:        email,
			FirstName:    firstName,
			LastName:     lastName,
			Major:        helpers.OptionalString(req.Major),
			PasswordHash: hash,
		}
		if err := s.userRepo.CreateStudent(ctx, student); err != nil {
			return nil, s.registrationError(err)
		}
		userID = student.ID
	default:
		account := &models.FacultyAdmin{
			Email:        email,
			FirstName:    firstName,
			LastName:     lastName,
			IsAdmin:      false,
			PasswordHash: hash,
		}
		if err := s.userRepo.CreateFacultyAdmin(ctx, account); err != nil {
			return nil, s.registrationError(err)
		}
		userID = account.ID
	}

	token, err := s.jwtService.Sign(auth.TokenPayload{UserID: userID, UserType: role, UserEmail: email})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Str("userType", role.String()).Msg("Account registered")
	return &dto.RegisterResponse{
		Token:     token,
		UserID:    userID,
		UserType:  role,
		UserEmail: email,
	}, nil
}

// emailTaken checks the table the new account goes into. A student and a
// faculty account may share an email.
func (s *AuthService) emailTaken(ctx context.Context, role models.Role, email string) (bool, error) {
	if role == models.RoleStudent {
		return s.userRepo.StudentEmailExists(ctx, email)
	}
	return s.userRepo.FacultyAdminEmailExists(ctx, email)
}

func (s *AuthService) registrationError(err error) error {
	if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		return apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email is already registered")
	}
	return fmt.Errorf("failed to create account: %w", err)
}

// Login authenticates by email and password. Students are checked before staff;
// a student match with the wrong password falls through to the staff table.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	invalid := apperrors.NewCustomError(apperrors.ErrInvalidCredentials, invalidCredentialsMessage)

	email, err := validation.NormalizeEmail(req.Email, s.config.EmailDomain)
	if err != nil {
		return nil, invalid
	}

	student, err := s.userRepo.GetStudentByEmail(ctx, email)
	switch {
	case err == nil:
		if s.hasher.Verify(req.Password, student.PasswordHash) {
			s.rehashIfNeeded(ctx, student.ID, models.RoleStudent, student.FirstName, student.LastName, req.Password, student.PasswordHash)
			return s.loginResponse(student.ID, models.RoleStudent, student.Email, student.FirstName, student.LastName)
		}
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}

	account, err := s.userRepo.GetFacultyAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, invalid
		}
		return nil, fmt.Errorf("failed to look up faculty admin: %w", err)
	}
	if !s.hasher.Verify(req.Password, account.PasswordHash) {
		return nil, invalid
	}
	s.rehashIfNeeded(ctx, account.ID, account.Role(), account.FirstName, account.LastName, req.Password, account.PasswordHash)
	return s.loginResponse(account.ID, account.Role(), account.Email, account.FirstName, account.LastName)
}

func (s *AuthService) loginResponse(id int64, role models.Role, email, firstName, lastName string) (*dto.LoginResponse, error) {
	token, err := s.jwtService.Sign(auth.TokenPayload{UserID: id, UserType: role, UserEmail: email})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("userID", id).Str("userType", role.String()).Msg("Login succeeded")
	return &dto.LoginResponse{
		Token:     token,
		UserID:    id,
		UserType:  role,
		UserEmail: email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// rehashIfNeeded upgrades a stored hash to the configured cost after a successful login
func (s *AuthService) rehashIfNeeded(ctx context.Context, id int64, role models.Role, firstName, lastName, password, hash string) {
	if !s.hasher.NeedsRehash(hash) {
		return
	}
	newHash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userID", id).Msg("Failed to rehash password")
		return
	}
	update := models.ProfileUpdate{FirstName: firstName, LastName: lastName, PasswordHash: &newHash}
	if role == models.RoleStudent {
		err = s.userRepo.UpdateStudentProfile(ctx, id, update)
	} else {
		err = s.userRepo.UpdateFacultyAdminProfile(ctx, id, update)
	}
	if err != nil {
		s.logger.Warn().Err(err).Int64("userID", id).Msg("Failed to store rehashed password")
	}
}

// GetProfile returns the profile of the identity carried by the token
func (s *AuthService) GetProfile(ctx context.Context, identity auth.TokenPayload) (*dto.ProfileResponse, error) {
	if identity.UserType == models.RoleStudent {
		student, err := s.userRepo.GetStudentByID(ctx, identity.UserID)
		if err != nil {
			return nil, s.profileError(err)
		}
		return &dto.ProfileResponse{
			ID:        student.ID,
			Email:     student.Email,
			FirstName: student.FirstName,
			LastName:  student.LastName,
			UserType:  models.RoleStudent,
			Major:     student.Major,
		}, nil
	}

	account, err := s.userRepo.GetFacultyAdminByID(ctx, identity.UserID)
	if err != nil {
		return nil, s.profileError(err)
	}
	return &dto.ProfileResponse{
		ID:        account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		UserType:  account.Role(),
	}, nil
}

// UpdateProfile changes names, the student's major and optionally the password
func (s *AuthService) UpdateProfile(ctx context.Context, identity auth.TokenPayload, req *dto.UpdateProfileRequest) error {
	firstName, lastName, err := s.validateNames(req.FirstName, req.LastName)
	if err != nil {
		return err
	}

	update := models.ProfileUpdate{FirstName: firstName, LastName: lastName}
	if req.Password != nil && *req.Password != "" {
		if err := s.validatePassword(*req.Password); err != nil {
			return err
		}
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return err
		}
		update.PasswordHash = &hash
	}

	if identity.UserType == models.RoleStudent {
		update.Major = helpers.OptionalString(req.Major)
		err = s.userRepo.UpdateStudentProfile(ctx, identity.UserID, update)
	} else {
		err = s.userRepo.UpdateFacultyAdminProfile(ctx, identity.UserID, update)
	}
	if err != nil {
		return s.profileError(err)
	}

	s.logger.Info().Int64("userID", identity.UserID).Bool("passwordChanged", update.PasswordHash != nil).Msg("Profile updated")
	return nil
}

func (s *AuthService) profileError(err error) error {
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
	}
	return fmt.Errorf("failed to access profile: %w", err)
}

func (s *AuthService) validateNames(first, last string) (string, string, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if err := validation.NewStringValidation(first).WithMaxLength(validation.NameMaxLength).Check(); err != nil {
		return "", "", apperrors.NewValidationError("firstName is required and must be at most 100 characters")
	}
	if err := validation.NewStringValidation(last).WithMaxLength(validation.NameMaxLength).Check(); err != nil {
		return "", "", apperrors.NewValidationError("lastName is required and must be at most 100 characters")
	}
	return first, last, nil
}

func (s *AuthService) validatePassword(password string) error {
	if err := validation.NewStringValidation(password).WithMinLength(s.config.MinPasswordLength).Check(); err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			fmt.Sprintf("Password must be at least %d characters", s.config.MinPasswordLength))
	}
	return nil
}

func (s *AuthService) normalizeEmail(raw string) (string, error) {
	email, err := validation.NormalizeEmail(raw, s.config.EmailDomain)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrForeignDomain):
			return "", apperrors.NewCustomError(apperrors.ErrInvalidEmail, fmt.Sprintf("Email must be a @%s address", s.config.EmailDomain))
		default:
			return "", apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Email is not valid")
		}
	}
	return email, nil
}
