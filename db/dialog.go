package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dialog is one of the stock WiX UI dialogs harvested from the UI
// extension wixlib sources.
type Dialog struct {
	BaseUUIDModel
	Name        string          `gorm:"uniqueIndex" json:"name"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Controls    []DialogControl `json:"controls,omitempty" gorm:"foreignKey:DialogRef;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// DialogControl is a control placed on a dialog.
type DialogControl struct {
	BaseModel
	DialogRef uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Control   string    `json:"control"`
	Type      string    `json:"type"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Text      string    `json:"text"`
	Position  int       `json:"position"`
}

func (Dialog) TableName() string {
	return "dialogs"
}

func (DialogControl) TableName() string {
	return "dialog_controls"
}

func (dlg Dialog) String() string {
	return fmt.Sprintf("%s (%d controls)", dlg.Name, len(dlg.Controls))
}

func (dlg Dialog) Pretty() string {
	out := fmt.Sprintf("Dialog: %s\nSource: %s\nDescription: %s\nControls:\n", dlg.Name, dlg.Source, dlg.Description)
	for _, control := range dlg.Controls {
		out += fmt.Sprintf("  %s (%s)\n", control.Control, control.Type)
	}
	return out
}

func (dlg Dialog) TableHeaders() []string {
	return []string{"Dialog", "Controls", "Description"}
}

func (dlg Dialog) TableRow() []string {
	return []string{dlg.Name, fmt.Sprintf("%d", len(dlg.Controls)), dlg.Description}
}

// DialogFilter represents available dialog filters
type DialogFilter struct {
	Query string
}

// ListDialogs lists dialogs with their controls ordered by name
func (d *DatabaseConnection) ListDialogs(filter DialogFilter) (dialogs []*Dialog, count int64, err error) {
	query := d.db.Model(&Dialog{}).Preload("Controls", func(db *gorm.DB) *gorm.DB {
		return db.Order("dialog_controls.position asc")
	})

	if filter.Query != "" {
		likeQuery := "%" + filter.Query + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", likeQuery, likeQuery)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	err = query.Order("name asc").Find(&dialogs).Error
	return dialogs, count, err
}

// SaveDialog upserts a dialog and replaces its control layout.
// Returns true when the dialog did not exist before.
func (d *DatabaseConnection) SaveDialog(dialog *Dialog) (bool, error) {
	controls := dialog.Controls
	dialog.Controls = nil

	var existing Dialog
	created := false
	result := d.db.Where("name = ?", dialog.Name).First(&existing)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, result.Error
		}
		if err := d.db.Create(dialog).Error; err != nil {
			return false, err
		}
		existing = *dialog
		created = true
	} else {
		if err := d.db.Model(&existing).Select("Description", "Source").Updates(dialog).Error; err != nil {
			return false, err
		}
	}

	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("dialog_ref = ?", existing.ID).Delete(&DialogControl{}).Error; err != nil {
			return err
		}
		for i := range controls {
			controls[i].ID = 0
			controls[i].DialogRef = existing.ID
			controls[i].Position = i
		}
		if len(controls) == 0 {
			return nil
		}
		return tx.Create(&controls).Error
	})
	if err != nil {
		return created, err
	}
	dialog.Controls = controls
	return created, nil
}
