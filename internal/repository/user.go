package repository

import (
	"file-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailWithSession retrieves a user by email with the current session preloaded
func (r *UserRepository) GetByEmailWithSession(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("CurrentSession").First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListNonRoot retrieves all users except ROOT_ADMINs and soft-deleted ones, with pagination
func (r *UserRepository) ListNonRoot(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).
		Where("role <> ? AND is_deleted = ?", models.RoleRootAdmin, false)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListByOrganization retrieves all non-deleted users of an organization with pagination
func (r *UserRepository) ListByOrganization(organization string, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).
		Where("organization = ? AND is_deleted = ?", organization, false)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListByRole retrieves non-deleted users with a specific role, optionally
// scoped to an organization (empty organization means no scoping).
func (r *UserRepository) ListByRole(role models.Role, organization string, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).
		Where("role = ? AND is_deleted = ?", role, false)
	if organization != "" {
		query = query.Where("organization = ?", organization)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListTenants retrieves all users carrying a tenant-level role
func (r *UserRepository) ListTenants(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).
		Where("role IN ?", []models.Role{models.RoleTenantAdmin, models.RoleTenant})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateRole updates a user's role
func (r *UserRepository) UpdateRole(id uuid.UUID, role models.Role) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role).Error
}

// UpdatePassword replaces a user's hashed password
func (r *UserRepository) UpdatePassword(id uuid.UUID, hashedPassword string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("password", hashedPassword).Error
}

// UpdateUploadFolders replaces a user's upload-folder set
func (r *UserRepository) UpdateUploadFolders(id uuid.UUID, folders models.StringList) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("upload_folders", folders).Error
}

// SetDeleted soft-deletes a user. Rows are never hard-deleted once sessions exist.
func (r *UserRepository) SetDeleted(id uuid.UUID) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("is_deleted", true).Error
}

// SetDisabled sets the disabled flag of a user
func (r *UserRepository) SetDisabled(id uuid.UUID, disabled bool) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("is_disabled", disabled).Error
}
