package testutils

import (
	"time"

	"file-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique email per instance so unique-index collisions never bleed
	// between tests
	email := "user-" + id.String()[:8] + "@test.com"

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:          "Jane Doe",
		Email:         email,
		Password:      string(hash),
		Role:          models.RoleUser,
		Organization:  "acme",
		UploadFolders: models.DefaultUploadFolders(),
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithOrganization sets a custom organization for the user
func (f *UserFactory) WithOrganization(organization string) *models.User {
	user := f.Create()
	user.Organization = organization
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Deleted creates a soft-deleted user
func (f *UserFactory) Deleted() *models.User {
	user := f.Create()
	user.IsDeleted = true
	return user
}

// Disabled creates a disabled user
func (f *UserFactory) Disabled() *models.User {
	user := f.Create()
	user.IsDisabled = true
	return user
}

// SessionFactory provides methods to create test Session data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Active creates an open session for the given user
func (f *SessionFactory) Active(userID uuid.UUID) *models.Session {
	return &models.Session{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         userID,
		LoginTimestamp: time.Now().Add(-time.Hour),
	}
}

// Closed creates a session that has been logged out
func (f *SessionFactory) Closed(userID uuid.UUID) *models.Session {
	session := f.Active(userID)
	logout := time.Now().Add(-30 * time.Minute)
	session.LogoutTimestamp = &logout
	return session
}

// FileUploadFactory provides methods to create test FileUpload data
type FileUploadFactory struct{}

// NewFileUploadFactory creates a new FileUploadFactory
func NewFileUploadFactory() *FileUploadFactory {
	return &FileUploadFactory{}
}

// Create creates a test FileUpload with default values
func (f *FileUploadFactory) Create(uploaderID uuid.UUID) *models.FileUpload {
	id := uuid.New()
	name := "report-" + id.String()[:8] + ".pdf"

	return &models.FileUpload{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FileName:        name,
		FileSize:        2048,
		FileType:        "application/pdf",
		UploadedByID:    uploaderID,
		Organization:    "acme",
		FolderName:      models.FolderAnnualReports,
		StorageKey:      "acme/" + models.FolderAnnualReports + "/" + name,
		FilePath:        "https://storage.test/" + name,
		UploadTimestamp: time.Now(),
	}
}

// Confidential creates a confidential upload
func (f *FileUploadFactory) Confidential(uploaderID uuid.UUID) *models.FileUpload {
	file := f.Create(uploaderID)
	file.Confidential = true
	return file
}

// InFolder creates an upload in a custom folder
func (f *FileUploadFactory) InFolder(uploaderID uuid.UUID, folderName string) *models.FileUpload {
	file := f.Create(uploaderID)
	file.FolderName = folderName
	file.StorageKey = file.Organization + "/" + folderName + "/" + file.FileName
	return file
}

// GlobalTemplate creates an upload flagged as the global template
func (f *FileUploadFactory) GlobalTemplate(uploaderID uuid.UUID) *models.FileUpload {
	file := f.InFolder(uploaderID, models.FolderTemplates)
	file.IsGlobalTemplate = true
	return file
}

// RelatedFileFactory provides methods to create test RelatedFile data
type RelatedFileFactory struct{}

// NewRelatedFileFactory creates a new RelatedFileFactory
func NewRelatedFileFactory() *RelatedFileFactory {
	return &RelatedFileFactory{}
}

// Create creates a test RelatedFile attached to the given primary file
func (f *RelatedFileFactory) Create(primaryFileID uuid.UUID) *models.RelatedFile {
	id := uuid.New()
	name := "appendix-" + id.String()[:8] + ".pdf"

	return &models.RelatedFile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PrimaryFileID: primaryFileID,
		FileName:      name,
		FileSize:      512,
		StorageKey:    "acme/related/" + primaryFileID.String() + "/" + name,
		FilePath:      "https://storage.test/" + name,
	}
}
