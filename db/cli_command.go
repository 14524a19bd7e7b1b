package db

import (
	"errors"
	"fmt"

	"github.com/wixkit/wixkit/lib"

	"gorm.io/gorm"
)

// CliCommand documents the syntax of one wix.exe CLI command.
type CliCommand struct {
	BaseModel
	Command     string      `gorm:"uniqueIndex" json:"command"`
	Syntax      string      `json:"syntax"`
	Description string      `json:"description"`
	Examples    StringSlice `json:"examples"`
}

func (CliCommand) TableName() string {
	return "cli_commands"
}

func (c CliCommand) String() string {
	return fmt.Sprintf("%s - %s", c.Command, c.Description)
}

func (c CliCommand) Pretty() string {
	out := fmt.Sprintf("Command: %s\nSyntax: %s\nDescription: %s\n", c.Command, c.Syntax, c.Description)
	if len(c.Examples) > 0 {
		out += "Examples:\n" + lib.StringsSliceToText(c.Examples)
	}
	return out
}

func (c CliCommand) TableHeaders() []string {
	return []string{"Command", "Syntax", "Description"}
}

func (c CliCommand) TableRow() []string {
	return []string{c.Command, c.Syntax, c.Description}
}

// ListCliCommands lists documented CLI commands
func (d *DatabaseConnection) ListCliCommands() (commands []*CliCommand, count int64, err error) {
	query := d.db.Model(&CliCommand{})
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	err = query.Order("command asc").Find(&commands).Error
	return commands, count, err
}

// SaveCliCommand upserts a CLI command keyed by the command name.
// Returns true when the row is new.
func (d *DatabaseConnection) SaveCliCommand(command *CliCommand) (bool, error) {
	var existing CliCommand
	result := d.db.Where("command = ?", command.Command).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return true, d.db.Create(command).Error
		}
		return false, result.Error
	}

	command.ID = existing.ID
	command.CreatedAt = existing.CreatedAt
	return false, d.db.Model(&existing).Select("Syntax", "Description", "Examples").Updates(command).Error
}
