package models

// User represents an account within an organization. Organization is the
// tenancy boundary: every listing and visibility query scopes by it.
//
// IsDeleted and IsDisabled are independent flags; all four combinations are
// observed by the handlers, so they are not collapsed into a status enum.
type User struct {
	BaseModel
	Name          string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email         string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password      string     `json:"-" gorm:"not null;size:100"`
	Role          Role       `json:"role" gorm:"type:varchar(20);not null;default:'USER'" validate:"required"`
	Organization  string     `json:"organization" gorm:"index;size:100" validate:"max=100"`
	UploadFolders StringList `json:"upload_folders" gorm:"type:jsonb"`
	IsDeleted     bool       `json:"is_deleted" gorm:"not null;default:false"`
	IsDisabled    bool       `json:"is_disabled" gorm:"not null;default:false"`

	// Relationships
	CurrentSession *Session     `json:"current_session,omitempty" gorm:"foreignKey:UserID"`
	Uploads        []FileUpload `json:"uploads,omitempty" gorm:"foreignKey:UploadedByID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Folder names every account starts with
const (
	FolderTemplates     = "Templates"
	FolderAnnualReports = "Annual Reports"
)

// DefaultUploadFolders returns the folder set every new user starts with.
func DefaultUploadFolders() StringList {
	return StringList{FolderTemplates, FolderAnnualReports}
}
