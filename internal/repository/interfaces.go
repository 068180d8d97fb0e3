package repository

import (
	"encoding/json"

	"file-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailWithSession(email string) (*models.User, error)
	ListNonRoot(limit, offset int) ([]models.User, int64, error)
	ListByOrganization(organization string, limit, offset int) ([]models.User, int64, error)
	ListByRole(role models.Role, organization string, limit, offset int) ([]models.User, int64, error)
	ListTenants(limit, offset int) ([]models.User, int64, error)
	UpdateRole(id uuid.UUID, role models.Role) error
	UpdatePassword(id uuid.UUID, hashedPassword string) error
	UpdateUploadFolders(id uuid.UUID, folders models.StringList) error
	SetDeleted(id uuid.UUID) error
	SetDisabled(id uuid.UUID, disabled bool) error
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByUserID(userID uuid.UUID) (*models.Session, error)
	Update(session *models.Session) error
}

// FileUploadRepositoryInterface defines the interface for file upload repository operations
type FileUploadRepositoryInterface interface {
	Create(file *models.FileUpload) error
	GetByID(id uuid.UUID) (*models.FileUpload, error)
	GetByNameInFolder(organization, folderName, fileName string) (*models.FileUpload, error)
	ListVisible(organization string, requesterID uuid.UUID, limit, offset int) ([]models.FileUpload, int64, error)
	ListByUploader(uploaderID uuid.UUID, limit, offset int) ([]models.FileUpload, int64, error)
	ListByFolder(organization, folderName string, limit, offset int) ([]models.FileUpload, int64, error)
	GetGlobalTemplate(organization string) (*models.FileUpload, error)
	SwapGlobalTemplate(organization string, fileID uuid.UUID) error
	UpdateTemplateData(id uuid.UUID, data json.RawMessage) error
}

// RelatedFileRepositoryInterface defines the interface for related file repository operations
type RelatedFileRepositoryInterface interface {
	Create(related *models.RelatedFile) error
	GetByID(id uuid.UUID) (*models.RelatedFile, error)
	ListByPrimaryFileID(primaryFileID uuid.UUID) ([]models.RelatedFile, error)
	Delete(id uuid.UUID) error
}
