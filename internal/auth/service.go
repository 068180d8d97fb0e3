package auth

import (
	"fmt"
	"time"

	"file-portal-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT token claims attached to every authenticated
// request. This is the explicit request context passed downstream; handlers
// must not reach for ambient state.
type Claims struct {
	UserID        uuid.UUID   `json:"id"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	Organization  string      `json:"organization"`
	UploadFolders []string    `json:"uploadFolders,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and validates bearer tokens
type Service struct {
	secret []byte
	expiry time.Duration
}

// NewService creates a new token service
func NewService(secret string, expiry time.Duration) *Service {
	if expiry == 0 {
		expiry = 24 * time.Hour
	}
	return &Service{secret: []byte(secret), expiry: expiry}
}

// GenerateToken signs a JWT for the given user
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:        user.ID,
		Email:         user.Email,
		Role:          user.Role,
		Organization:  user.Organization,
		UploadFolders: user.UploadFolders,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "file-portal-backend",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies a bearer token and returns its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
