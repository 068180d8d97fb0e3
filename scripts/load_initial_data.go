package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"file-portal-backend/internal/config"
	"file-portal-backend/internal/database"
	"file-portal-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name          string   `yaml:"name"`
	Email         string   `yaml:"email"`
	Password      string   `yaml:"password"`
	Role          string   `yaml:"role"`
	Organization  string   `yaml:"organization"`
	UploadFolders []string `yaml:"upload_folders,omitempty"`
	IsDisabled    bool     `yaml:"is_disabled,omitempty"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM query logging while seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	created := 0
	for _, userData := range users {
		wasCreated, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Users: %d created, %d total", created, len(users))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func createUser(db *gorm.DB, userData UserData) (bool, error) {
	role := models.Role(userData.Role)
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", userData.Role)
	}

	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashed, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return false, fmt.Errorf("failed to hash password: %w", err)
			}

			folders := models.DefaultUploadFolders()
			if len(userData.UploadFolders) > 0 {
				folders = models.StringList(userData.UploadFolders)
			}

			user = models.User{
				Name:          userData.Name,
				Email:         userData.Email,
				Password:      string(hashed),
				Role:          role,
				Organization:  userData.Organization,
				UploadFolders: folders,
				IsDisabled:    userData.IsDisabled,
			}

			if err := db.Create(&user).Error; err != nil {
				return false, fmt.Errorf("failed to create user: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	return false, nil // created = false (existing)
}
