package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// DataSource records the provenance of knowledge base content.
type DataSource struct {
	BaseModel
	Name string `gorm:"uniqueIndex" json:"name"`
	URL  string `json:"url"`
	Kind string `gorm:"index" json:"kind"`
}

func (DataSource) TableName() string {
	return "sources"
}

func (s DataSource) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Kind)
}

func (s DataSource) Pretty() string {
	return fmt.Sprintf("Name: %s\nKind: %s\nURL: %s\n", s.Name, s.Kind, s.URL)
}

func (s DataSource) TableHeaders() []string {
	return []string{"Name", "Kind", "URL"}
}

func (s DataSource) TableRow() []string {
	return []string{s.Name, s.Kind, s.URL}
}

// DataSourceFilter represents available data source filters
type DataSourceFilter struct {
	Kinds []string
}

// ListDataSources lists provenance rows ordered by name
func (d *DatabaseConnection) ListDataSources(filter DataSourceFilter) (sources []*DataSource, count int64, err error) {
	query := d.db.Model(&DataSource{})

	if len(filter.Kinds) > 0 {
		query = query.Where("kind IN ?", filter.Kinds)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	err = query.Order("name asc").Find(&sources).Error
	return sources, count, err
}

// SaveDataSource upserts a provenance row keyed by name.
// Returns true when the row is new.
func (d *DatabaseConnection) SaveDataSource(source *DataSource) (bool, error) {
	var existing DataSource
	result := d.db.Where("name = ?", source.Name).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return true, d.db.Create(source).Error
		}
		return false, result.Error
	}

	source.ID = existing.ID
	source.CreatedAt = existing.CreatedAt
	return false, d.db.Model(&existing).Select("URL", "Kind").Updates(source).Error
}
