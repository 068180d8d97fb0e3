package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FileUpload represents one uploaded object together with its metadata row.
//
// Invariant: within an organization at most one FileUpload carries
// IsGlobalTemplate=true at any time. The flag swap is transactional in the
// repository layer.
type FileUpload struct {
	BaseModel
	FileName         string          `json:"file_name" gorm:"not null;size:255" validate:"required,max=255"`
	FileSize         int64           `json:"file_size" gorm:"not null"`
	FileType         string          `json:"file_type" gorm:"size:100"`
	UploadedByID     uuid.UUID       `json:"uploaded_by_id" gorm:"type:uuid;index;not null"`
	UploadedBy       *User           `json:"uploaded_by,omitempty" gorm:"foreignKey:UploadedByID"`
	Organization     string          `json:"organization" gorm:"index;size:100"`
	FolderName       string          `json:"folder_name" gorm:"size:100;not null" validate:"required,max=100"`
	Confidential     bool            `json:"confidential" gorm:"not null;default:false"`
	IsGlobalTemplate bool            `json:"is_global_template" gorm:"not null;default:false;index"`
	StorageBucket    string          `json:"storage_bucket" gorm:"size:100"`
	StorageKey       string          `json:"storage_key" gorm:"size:500;not null"`
	FilePath         string          `json:"file_path" gorm:"size:2000"` // signed URL at upload time
	UploadTimestamp  time.Time       `json:"upload_timestamp"`
	TemplateData     json.RawMessage `json:"template_data,omitempty" gorm:"type:jsonb"`
	Comment          string          `json:"comment" gorm:"size:500"`

	RelatedFiles []RelatedFile `json:"related_files,omitempty" gorm:"foreignKey:PrimaryFileID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for FileUpload
func (FileUpload) TableName() string {
	return "file_uploads"
}

// RelatedFile is an auxiliary attachment belonging to exactly one FileUpload.
type RelatedFile struct {
	BaseModel
	PrimaryFileID uuid.UUID `json:"primary_file_id" gorm:"type:uuid;index;not null"`
	FileName      string    `json:"file_name" gorm:"not null;size:255"`
	FileSize      int64     `json:"file_size"`
	StorageKey    string    `json:"storage_key" gorm:"size:500;not null"`
	FilePath      string    `json:"file_path" gorm:"size:2000"`
}

// TableName returns the table name for RelatedFile
func (RelatedFile) TableName() string {
	return "related_files"
}
