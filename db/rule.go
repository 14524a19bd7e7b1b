package db

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Rule holds lint rule metadata: what the rule checks and the curated
// rationale and fix suggestion layered on top.
type Rule struct {
	BaseModel
	RuleID        string          `gorm:"uniqueIndex" json:"rule_id"`
	Category      string          `gorm:"index" json:"category"`
	Severity      string          `gorm:"index" json:"severity"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Rationale     string          `json:"rationale"`
	FixSuggestion string          `json:"fix_suggestion"`
	AutoFixable   bool            `json:"auto_fixable"`
	References    StringSlice     `json:"references"`
	Conditions    []RuleCondition `json:"conditions,omitempty" gorm:"foreignKey:RuleRef;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// RuleCondition defines how a rule is evaluated against a WiX document.
type RuleCondition struct {
	BaseModel
	RuleRef       uint   `gorm:"index" json:"-"`
	ConditionType string `json:"condition_type"`
	Target        string `json:"target"`
	Operator      string `json:"operator"`
	Value         string `json:"value"`
	Position      int    `json:"position"`
}

func (Rule) TableName() string {
	return "rules"
}

func (RuleCondition) TableName() string {
	return "rule_conditions"
}

func (r Rule) String() string {
	return fmt.Sprintf("%s [%s] %s", r.RuleID, r.Severity, r.Title)
}

func (r Rule) Pretty() string {
	return fmt.Sprintf("ID: %s\nCategory: %s\nSeverity: %s\nTitle: %s\nRationale: %s\nFix: %s\n", r.RuleID, r.Category, r.Severity, r.Title, r.Rationale, r.FixSuggestion)
}

func (r Rule) TableHeaders() []string {
	return []string{"Rule", "Category", "Severity", "Title", "Auto-fixable"}
}

func (r Rule) TableRow() []string {
	autoFixable := "no"
	if r.AutoFixable {
		autoFixable = "yes"
	}
	return []string{r.RuleID, r.Category, r.Severity, r.Title, autoFixable}
}

// RuleFilter represents available rule filters
type RuleFilter struct {
	Categories []string
	Severities []string
	Query      string
	Pagination Pagination
}

// ListRules lists rules ordered by rule id
func (d *DatabaseConnection) ListRules(filter RuleFilter) (rules []*Rule, count int64, err error) {
	query := d.db.Model(&Rule{}).Preload("Conditions", func(db *gorm.DB) *gorm.DB {
		return db.Order("rule_conditions.position asc")
	})

	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", filter.Categories)
	}

	if len(filter.Severities) > 0 {
		query = query.Where("severity IN ?", filter.Severities)
	}

	if filter.Query != "" {
		likeQuery := "%" + filter.Query + "%"
		query = query.Where("rule_id LIKE ? OR title LIKE ? OR rationale LIKE ?", likeQuery, likeQuery, likeQuery)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if filter.Pagination.PageSize > 0 {
		offset, limit := filter.Pagination.GetData()
		query = query.Offset(offset).Limit(limit)
	}

	err = query.Order("rule_id asc").Find(&rules).Error
	return rules, count, err
}

// GetRuleByRuleID fetches a single rule by its natural identifier
func (d *DatabaseConnection) GetRuleByRuleID(ruleID string) (rule Rule, err error) {
	err = d.db.Preload("Conditions", func(db *gorm.DB) *gorm.DB {
		return db.Order("rule_conditions.position asc")
	}).Where("rule_id = ?", ruleID).First(&rule).Error
	return rule, err
}

// SaveRule upserts a rule keyed by its rule id. Returns true when the
// rule did not exist before.
func (d *DatabaseConnection) SaveRule(rule *Rule) (bool, error) {
	var existing Rule
	result := d.db.Where("rule_id = ?", rule.RuleID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := d.db.Create(rule).Error; err != nil {
				log.Error().Err(err).Str("rule", rule.RuleID).Msg("Failed to create rule")
				return false, err
			}
			return true, nil
		}
		return false, result.Error
	}

	rule.ID = existing.ID
	rule.CreatedAt = existing.CreatedAt
	if err := d.db.Model(&existing).Select("Category", "Severity", "Title", "Description", "Rationale", "FixSuggestion", "AutoFixable", "References").Updates(rule).Error; err != nil {
		log.Error().Err(err).Str("rule", rule.RuleID).Msg("Failed to update rule")
		return false, err
	}
	return false, nil
}

// ReplaceRuleConditions swaps the stored evaluation conditions of a rule
// for the given ordered set.
func (d *DatabaseConnection) ReplaceRuleConditions(ruleID string, conditions []RuleCondition) error {
	rule, err := d.GetRuleByRuleID(ruleID)
	if err != nil {
		return fmt.Errorf("rule %s: %w", ruleID, err)
	}

	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("rule_ref = ?", rule.ID).Delete(&RuleCondition{}).Error; err != nil {
			return err
		}
		for i := range conditions {
			conditions[i].ID = 0
			conditions[i].RuleRef = rule.ID
			conditions[i].Position = i
		}
		if len(conditions) == 0 {
			return nil
		}
		return tx.Create(&conditions).Error
	})
}
