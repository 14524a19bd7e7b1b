package db

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MsiTable describes one Windows Installer database table.
type MsiTable struct {
	BaseModel
	Name        string      `gorm:"uniqueIndex" json:"name"`
	Description string      `json:"description"`
	Columns     []MsiColumn `json:"columns,omitempty" gorm:"foreignKey:MsiTableRef;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// MsiColumn is one column of an MSI table per the Windows Installer SDK.
type MsiColumn struct {
	BaseModel
	MsiTableRef uint   `gorm:"index" json:"-"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Nullable    bool   `json:"nullable"`
	Key         bool   `json:"key"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

func (MsiTable) TableName() string {
	return "msi_tables"
}

func (MsiColumn) TableName() string {
	return "msi_columns"
}

func (t MsiTable) String() string {
	return fmt.Sprintf("%s (%d columns)", t.Name, len(t.Columns))
}

func (t MsiTable) Pretty() string {
	out := fmt.Sprintf("Table: %s\nDescription: %s\nColumns:\n", t.Name, t.Description)
	for _, col := range t.Columns {
		out += fmt.Sprintf("  %s (%s)\n", col.Name, col.Type)
	}
	return out
}

func (t MsiTable) TableHeaders() []string {
	return []string{"Table", "Columns", "Description"}
}

func (t MsiTable) TableRow() []string {
	return []string{t.Name, fmt.Sprintf("%d", len(t.Columns)), t.Description}
}

// MsiTableFilter represents available MSI table filters
type MsiTableFilter struct {
	Names []string
	Query string
}

// ListMsiTables lists MSI tables with their columns ordered by name
func (d *DatabaseConnection) ListMsiTables(filter MsiTableFilter) (tables []*MsiTable, count int64, err error) {
	query := d.db.Model(&MsiTable{}).Preload("Columns", func(db *gorm.DB) *gorm.DB {
		return db.Order("msi_columns.position asc")
	})

	if len(filter.Names) > 0 {
		query = query.Where("name IN ?", filter.Names)
	}

	if filter.Query != "" {
		likeQuery := "%" + filter.Query + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", likeQuery, likeQuery)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	err = query.Order("name asc").Find(&tables).Error
	return tables, count, err
}

// GetMsiTableByName fetches one MSI table by its natural identifier
func (d *DatabaseConnection) GetMsiTableByName(name string) (table MsiTable, err error) {
	err = d.db.Preload("Columns", func(db *gorm.DB) *gorm.DB {
		return db.Order("msi_columns.position asc")
	}).Where("name = ?", name).First(&table).Error
	return table, err
}

// SaveMsiTable upserts an MSI table and replaces its column layout.
// Returns true when the table did not exist before.
func (d *DatabaseConnection) SaveMsiTable(table *MsiTable) (bool, error) {
	columns := table.Columns
	table.Columns = nil

	var existing MsiTable
	created := false
	result := d.db.Where("name = ?", table.Name).First(&existing)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, result.Error
		}
		if err := d.db.Create(table).Error; err != nil {
			log.Error().Err(err).Str("table", table.Name).Msg("Failed to create MSI table")
			return false, err
		}
		existing = *table
		created = true
	} else if table.Description != "" && table.Description != existing.Description {
		if err := d.db.Model(&existing).Update("description", table.Description).Error; err != nil {
			return false, err
		}
	}

	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("msi_table_ref = ?", existing.ID).Delete(&MsiColumn{}).Error; err != nil {
			return err
		}
		for i := range columns {
			columns[i].ID = 0
			columns[i].MsiTableRef = existing.ID
			columns[i].Position = i
		}
		if len(columns) == 0 {
			return nil
		}
		return tx.Create(&columns).Error
	})
	if err != nil {
		log.Error().Err(err).Str("table", table.Name).Msg("Failed to save MSI table columns")
		return created, err
	}
	table.Columns = columns
	return created, nil
}
