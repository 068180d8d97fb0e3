package service

import (
	"errors"
	"fmt"

	"file-portal-backend/internal/database/models"
	apperrors "file-portal-backend/internal/errors"
	"file-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Actor identifies the authenticated user performing an operation. It is an
// explicit parameter on every administrative call rather than ambient state.
type Actor struct {
	UserID       uuid.UUID
	Email        string
	Role         models.Role
	Organization string
}

// UserService handles administrative user management and role policy
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// AddUserRequest represents the data needed to create a user administratively
type AddUserRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	Role         string `json:"role" validate:"required"`
	Organization string `json:"organization" validate:"max=100"`
}

// UsersListResponse is the response schema for user listings
type UsersListResponse struct {
	Users  []UserSummary `json:"users"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// AddUser creates a user on behalf of an administrator. ROOT_ADMIN may create
// anyone; TENANT_ADMIN only USER/TENANT_ADMIN inside its own organization;
// member-grade roles may not create users at all.
func (s *UserService) AddUser(actor Actor, req *AddUserRequest) (*UserSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	role := models.Role(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	switch actor.Role {
	case models.RoleRootAdmin:
		// unrestricted
	case models.RoleTenantAdmin:
		if !actor.Role.CanAssign(role) {
			return nil, apperrors.NewAuthorizationError("TENANT_ADMIN can only create USER and TENANT_ADMIN roles")
		}
		if actor.Organization != req.Organization {
			return nil, apperrors.NewAuthorizationError("TENANT_ADMIN can only create users within its organization")
		}
	default:
		return nil, apperrors.NewAuthorizationError("regular users cannot create any user")
	}

	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		// Duplicate email on admin creation is a recoverable validation error
		return nil, apperrors.NewValidationError("email", "user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:          req.FirstName + " " + req.LastName,
		Email:         req.Email,
		Password:      string(hashed),
		Role:          role,
		Organization:  req.Organization,
		UploadFolders: models.DefaultUploadFolders(),
		IsDisabled:    false,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return summarize(user), nil
}

// ListUsers returns the users the actor may administer, excluding the actor
// itself and soft-deleted rows. ROOT_ADMIN sees every non-root user;
// TENANT_ADMIN sees its own organization.
func (s *UserService) ListUsers(actor Actor, limit, offset int) (*UsersListResponse, error) {
	limit, offset = normalizePage(limit, offset)

	var (
		users []models.User
		total int64
		err   error
	)
	switch actor.Role {
	case models.RoleRootAdmin:
		users, total, err = s.repo.ListNonRoot(limit, offset)
	case models.RoleTenantAdmin:
		users, total, err = s.repo.ListByOrganization(actor.Organization, limit, offset)
	default:
		return nil, apperrors.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	out := make([]UserSummary, 0, len(users))
	for i := range users {
		if users[i].ID == actor.UserID {
			continue
		}
		out = append(out, *summarize(&users[i]))
	}

	return &UsersListResponse{Users: out, Total: total, Limit: limit, Offset: offset}, nil
}

// ListOnlyUsers returns users with the plain USER role, scoped by the actor
func (s *UserService) ListOnlyUsers(actor Actor, limit, offset int) (*UsersListResponse, error) {
	limit, offset = normalizePage(limit, offset)

	var organization string
	switch actor.Role {
	case models.RoleRootAdmin:
		organization = ""
	case models.RoleTenantAdmin:
		organization = actor.Organization
	default:
		return nil, apperrors.ErrForbidden
	}

	users, total, err := s.repo.ListByRole(models.RoleUser, organization, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, *summarize(&users[i]))
	}
	return &UsersListResponse{Users: out, Total: total, Limit: limit, Offset: offset}, nil
}

// ListTenants returns all tenant-level users. ROOT_ADMIN only.
func (s *UserService) ListTenants(actor Actor, limit, offset int) (*UsersListResponse, error) {
	if actor.Role != models.RoleRootAdmin {
		return nil, apperrors.ErrForbidden
	}
	limit, offset = normalizePage(limit, offset)

	users, total, err := s.repo.ListTenants(limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, *summarize(&users[i]))
	}
	return &UsersListResponse{Users: out, Total: total, Limit: limit, Offset: offset}, nil
}

// DeleteUser soft-deletes a user; the row is kept for its session history
func (s *UserService) DeleteUser(actor Actor, userID uuid.UUID) (*UserSummary, error) {
	user, err := s.getManaged(actor, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetDeleted(userID); err != nil {
		return nil, err
	}
	user.IsDeleted = true
	return summarize(user), nil
}

// ResetPassword replaces a user's password
func (s *UserService) ResetPassword(actor Actor, userID uuid.UUID, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.NewValidationError("new_password", "must be at least 8 characters")
	}
	if _, err := s.getManaged(actor, userID); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(userID, string(hashed))
}

// ManageRole changes a user's role subject to the assignment policy
func (s *UserService) ManageRole(actor Actor, userID uuid.UUID, newRole models.Role) (*UserSummary, error) {
	if !newRole.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}
	if !actor.Role.CanAssign(newRole) {
		return nil, apperrors.ErrRoleNotAssignable
	}

	user, err := s.getManaged(actor, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRole(userID, newRole); err != nil {
		return nil, err
	}
	user.Role = newRole
	return summarize(user), nil
}

// DisableUser sets the disabled flag; admin roles only
func (s *UserService) DisableUser(actor Actor, userID uuid.UUID) (*UserSummary, error) {
	return s.setDisabled(actor, userID, true)
}

// EnableUser clears the disabled flag; admin roles only
func (s *UserService) EnableUser(actor Actor, userID uuid.UUID) (*UserSummary, error) {
	return s.setDisabled(actor, userID, false)
}

func (s *UserService) setDisabled(actor Actor, userID uuid.UUID, disabled bool) (*UserSummary, error) {
	if !actor.Role.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.getManaged(actor, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetDisabled(userID, disabled); err != nil {
		return nil, err
	}
	user.IsDisabled = disabled
	return summarize(user), nil
}

// getManaged loads a user and enforces the actor's administrative scope:
// TENANT_ADMIN may only touch users of its own organization.
func (s *UserService) getManaged(actor Actor, userID uuid.UUID) (*models.User, error) {
	if !actor.Role.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if actor.Role == models.RoleTenantAdmin && user.Organization != actor.Organization {
		return nil, apperrors.ErrOrganizationMismatch
	}
	return user, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
