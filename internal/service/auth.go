package service

import (
	"errors"
	"fmt"
	"time"

	"file-portal-backend/internal/auth"
	"file-portal-backend/internal/database/models"
	apperrors "file-portal-backend/internal/errors"
	"file-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// AuthService handles signup, login and logout
type AuthService struct {
	userRepo    repository.UserRepositoryInterface
	sessionRepo repository.SessionRepositoryInterface
	tokens      *auth.Service
	validator   *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepositoryInterface, sessionRepo repository.SessionRepositoryInterface, tokens *auth.Service, validator *validator.Validate) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		validator:   validator,
	}
}

// SignupRequest represents the data needed to create an account
type SignupRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	Role         string `json:"role" validate:"required"`
	Organization string `json:"organization" validate:"max=100"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the public projection of a user returned by auth endpoints
type UserSummary struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	Organization  string      `json:"organization"`
	UploadFolders []string    `json:"upload_folders"`
	IsDeleted     bool        `json:"is_deleted"`
	IsDisabled    bool        `json:"is_disabled"`
}

// LoginResponse carries the token and the user it was issued for
type LoginResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

// Signup creates a new account with the default upload folders
func (s *AuthService) Signup(req *SignupRequest) (*UserSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	role := models.Role(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		Password:      string(hashed),
		Role:          role,
		Organization:  req.Organization,
		UploadFolders: models.DefaultUploadFolders(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return summarize(user), nil
}

// Login authenticates credentials and opens the user's session window.
// A still-open session on another device blocks the login until logout.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.userRepo.GetByEmailWithSession(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsDeleted {
		return nil, apperrors.ErrAccountDeleted
	}
	if user.IsDisabled {
		return nil, apperrors.ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.CurrentSession.IsActive() {
		return nil, apperrors.ErrSessionActive
	}

	now := time.Now()
	if user.CurrentSession != nil {
		user.CurrentSession.LoginTimestamp = now
		user.CurrentSession.LogoutTimestamp = nil
		if err := s.sessionRepo.Update(user.CurrentSession); err != nil {
			return nil, fmt.Errorf("reset session: %w", err)
		}
	} else {
		session := &models.Session{
			UserID:         user.ID,
			LoginTimestamp: now,
		}
		if err := s.sessionRepo.Create(session); err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResponse{User: *summarize(user), Token: token}, nil
}

// Logout stamps the logout timestamp of the user's open session
func (s *AuthService) Logout(userID uuid.UUID) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	session, err := s.sessionRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotLoggedIn
		}
		return err
	}
	if !session.IsActive() {
		return apperrors.ErrNotLoggedIn
	}

	now := time.Now()
	session.LogoutTimestamp = &now
	return s.sessionRepo.Update(session)
}

func summarize(user *models.User) *UserSummary {
	return &UserSummary{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		Organization:  user.Organization,
		UploadFolders: user.UploadFolders,
		IsDeleted:     user.IsDeleted,
		IsDisabled:    user.IsDisabled,
	}
}
