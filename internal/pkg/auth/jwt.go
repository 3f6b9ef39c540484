package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/skillmap/skillmap/internal/app/models"
)

// JWT errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid authorization header format")
	ErrMissingSecret = errors.New("jwt secret is not configured")
)

// DefaultTokenTTL is the validity window of an issued token
const DefaultTokenTTL = 8 * time.Hour

const bearerPrefix = "Bearer "

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey   string
	TokenTTL    time.Duration
	TokenIssuer string
}

// TokenPayload is the identity carried by a token
type TokenPayload struct {
	UserID    int64
	UserType  models.Role
	UserEmail string
}

// Claims defines JWT token content
type Claims struct {
	UserID    int64  `json:"userId"`
	UserType  string `json:"userType"`
	UserEmail string `json:"userEmail"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies identity tokens
type JWTService struct {
	config JWTConfig
	now    func() time.Time
}

// Option configures a JWTService
type Option func(*JWTService)

// WithClock replaces the time source used for issuing and verifying tokens
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService creates a new JWT service. An empty secret is rejected.
func NewJWTService(config JWTConfig, opts ...Option) (*JWTService, error) {
	if strings.TrimSpace(config.SecretKey) == "" {
		return nil, ErrMissingSecret
	}
	if config.TokenTTL <= 0 {
		config.TokenTTL = DefaultTokenTTL
	}
	s := &JWTService{
		config: config,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TTL returns the validity window of issued tokens
func (s *JWTService) TTL() time.Duration {
	return s.config.TokenTTL
}

// Sign issues a token for the payload, valid for the configured TTL
func (s *JWTService) Sign(payload TokenPayload) (string, error) {
	if payload.UserType == models.RoleUnknown {
		return "", fmt.Errorf("failed to create token: unknown role")
	}

	issuedAt := s.now()
	claims := &Claims{
		UserID:    payload.UserID,
		UserType:  payload.UserType.String(),
		UserEmail: payload.UserEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", payload.UserID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to create token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns its payload.
// Expired tokens fail with ErrExpiredToken, every other failure with ErrInvalidToken.
func (s *JWTService) Verify(tokenString string) (*TokenPayload, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	role, err := models.ParseRole(claims.UserType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID <= 0 || claims.UserEmail == "" {
		return nil, ErrInvalidToken
	}

	return &TokenPayload{
		UserID:    claims.UserID,
		UserType:  role,
		UserEmail: claims.UserEmail,
	}, nil
}

// ExtractBearerToken extracts the token from the Authorization header.
// The header must use the "Bearer " scheme.
func ExtractBearerToken(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrInvalidFormat
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" {
		return "", ErrInvalidFormat
	}
	return token, nil
}
