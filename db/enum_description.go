package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// EnumDescription documents one allowed value of an enumerated element
// attribute, keyed by element + attribute + value.
type EnumDescription struct {
	BaseModel
	Element     string `gorm:"index:idx_enum_value,unique" json:"element"`
	Attribute   string `gorm:"index:idx_enum_value,unique" json:"attribute"`
	Value       string `gorm:"index:idx_enum_value,unique" json:"value"`
	Description string `json:"description"`
}

func (EnumDescription) TableName() string {
	return "attribute_enum_values"
}

func (e EnumDescription) String() string {
	return fmt.Sprintf("%s/@%s = %s", e.Element, e.Attribute, e.Value)
}

func (e EnumDescription) Pretty() string {
	return fmt.Sprintf("Element: %s\nAttribute: %s\nValue: %s\nDescription: %s\n", e.Element, e.Attribute, e.Value, e.Description)
}

func (e EnumDescription) TableHeaders() []string {
	return []string{"Element", "Attribute", "Value", "Description"}
}

func (e EnumDescription) TableRow() []string {
	return []string{e.Element, e.Attribute, e.Value, e.Description}
}

// EnumDescriptionFilter represents available enum description filters
type EnumDescriptionFilter struct {
	Element    string
	Attribute  string
	Pagination Pagination
}

// ListEnumDescriptions lists enum value descriptions
func (d *DatabaseConnection) ListEnumDescriptions(filter EnumDescriptionFilter) (values []*EnumDescription, count int64, err error) {
	query := d.db.Model(&EnumDescription{})

	if filter.Element != "" {
		query = query.Where("element = ?", filter.Element)
	}

	if filter.Attribute != "" {
		query = query.Where("attribute = ?", filter.Attribute)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if filter.Pagination.PageSize > 0 {
		offset, limit := filter.Pagination.GetData()
		query = query.Offset(offset).Limit(limit)
	}

	err = query.Order("element asc, attribute asc, value asc").Find(&values).Error
	return values, count, err
}

// SaveEnumDescription upserts an enum value description keyed by
// element + attribute + value. Returns true when the row is new.
func (d *DatabaseConnection) SaveEnumDescription(value *EnumDescription) (bool, error) {
	var existing EnumDescription
	result := d.db.Where("element = ? AND attribute = ? AND value = ?", value.Element, value.Attribute, value.Value).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return true, d.db.Create(value).Error
		}
		return false, result.Error
	}

	value.ID = existing.ID
	value.CreatedAt = existing.CreatedAt
	if value.Description == existing.Description {
		return false, nil
	}
	return false, d.db.Model(&existing).Update("description", value.Description).Error
}
