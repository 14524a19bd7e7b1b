package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// StandardDirectory is one of the Windows Installer standard directory
// properties (ProgramFilesFolder, CommonAppDataFolder, ...).
type StandardDirectory struct {
	BaseModel
	DirectoryID string `gorm:"uniqueIndex" json:"directory_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Scope       string `gorm:"index" json:"scope"`
	ExamplePath string `json:"example_path"`
}

func (StandardDirectory) TableName() string {
	return "standard_directories"
}

func (s StandardDirectory) String() string {
	return fmt.Sprintf("%s (%s)", s.DirectoryID, s.Scope)
}

func (s StandardDirectory) Pretty() string {
	return fmt.Sprintf("ID: %s\nName: %s\nScope: %s\nExample: %s\nDescription: %s\n", s.DirectoryID, s.Name, s.Scope, s.ExamplePath, s.Description)
}

func (s StandardDirectory) TableHeaders() []string {
	return []string{"Directory", "Scope", "Example", "Description"}
}

func (s StandardDirectory) TableRow() []string {
	return []string{s.DirectoryID, s.Scope, s.ExamplePath, s.Description}
}

// StandardDirectoryFilter represents available standard directory filters
type StandardDirectoryFilter struct {
	Scope string
	Query string
}

// ListStandardDirectories lists standard directories ordered by id
func (d *DatabaseConnection) ListStandardDirectories(filter StandardDirectoryFilter) (dirs []*StandardDirectory, count int64, err error) {
	query := d.db.Model(&StandardDirectory{})

	if filter.Scope != "" {
		query = query.Where("scope = ?", filter.Scope)
	}

	if filter.Query != "" {
		likeQuery := "%" + filter.Query + "%"
		query = query.Where("directory_id LIKE ? OR description LIKE ?", likeQuery, likeQuery)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	err = query.Order("directory_id asc").Find(&dirs).Error
	return dirs, count, err
}

// SaveStandardDirectory upserts a standard directory keyed by its
// directory id. Returns true when the row is new.
func (d *DatabaseConnection) SaveStandardDirectory(dir *StandardDirectory) (bool, error) {
	var existing StandardDirectory
	result := d.db.Where("directory_id = ?", dir.DirectoryID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return true, d.db.Create(dir).Error
		}
		return false, result.Error
	}

	dir.ID = existing.ID
	dir.CreatedAt = existing.CreatedAt
	return false, d.db.Model(&existing).Select("Name", "Description", "Scope", "ExamplePath").Updates(dir).Error
}
