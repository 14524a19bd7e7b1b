package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRuleUpsert(t *testing.T) {
	rule := Rule{
		RuleID:      "TST001",
		Category:    "testing",
		Severity:    "warning",
		Title:       "Test rule",
		Description: "A rule used by the test suite.",
		Rationale:   "Initial rationale.",
	}

	created, err := Connection.SaveRule(&rule)
	require.Nil(t, err)
	assert.True(t, created)

	// Same natural key again updates instead of duplicating.
	update := Rule{
		RuleID:    "TST001",
		Category:  "testing",
		Severity:  "error",
		Title:     "Test rule",
		Rationale: "Changed rationale.",
	}
	created, err = Connection.SaveRule(&update)
	require.Nil(t, err)
	assert.False(t, created)

	fetched, err := Connection.GetRuleByRuleID("TST001")
	require.Nil(t, err)
	assert.Equal(t, "error", fetched.Severity)
	assert.Equal(t, "Changed rationale.", fetched.Rationale)

	items, count, err := Connection.ListRules(RuleFilter{Query: "TST001"})
	require.Nil(t, err)
	assert.Equal(t, int64(1), count)
	assert.Len(t, items, 1)
}

func TestGetRuleByRuleIDMissing(t *testing.T) {
	_, err := Connection.GetRuleByRuleID("NOPE999")
	assert.NotNil(t, err)
}

func TestReplaceRuleConditions(t *testing.T) {
	rule := Rule{RuleID: "TST002", Category: "testing", Severity: "warning", Title: "Conditions rule"}
	_, err := Connection.SaveRule(&rule)
	require.Nil(t, err)

	conditions := []RuleCondition{
		{ConditionType: "element_exists", Target: "MajorUpgrade", Operator: "exists"},
		{ConditionType: "attribute_value", Target: "Component/@Guid", Operator: "not_equals", Value: "PUT-GUID-HERE"},
	}
	require.Nil(t, Connection.ReplaceRuleConditions("TST002", conditions))

	fetched, err := Connection.GetRuleByRuleID("TST002")
	require.Nil(t, err)
	require.Len(t, fetched.Conditions, 2)
	assert.Equal(t, 0, fetched.Conditions[0].Position)
	assert.Equal(t, "element_exists", fetched.Conditions[0].ConditionType)
	assert.Equal(t, 1, fetched.Conditions[1].Position)

	// Replacement swaps the whole set.
	require.Nil(t, Connection.ReplaceRuleConditions("TST002", []RuleCondition{
		{ConditionType: "element_count", Target: "Package", Operator: "equals", Value: "1"},
	}))
	fetched, err = Connection.GetRuleByRuleID("TST002")
	require.Nil(t, err)
	require.Len(t, fetched.Conditions, 1)
	assert.Equal(t, "element_count", fetched.Conditions[0].ConditionType)
}

func TestReplaceRuleConditionsUnknownRule(t *testing.T) {
	err := Connection.ReplaceRuleConditions("MISSING001", []RuleCondition{
		{ConditionType: "element_exists", Target: "X", Operator: "exists"},
	})
	assert.NotNil(t, err)
}

func TestListRulesFilters(t *testing.T) {
	_, err := Connection.SaveRule(&Rule{RuleID: "TST003", Category: "bundles", Severity: "error", Title: "Bundle rule"})
	require.Nil(t, err)

	items, _, err := Connection.ListRules(RuleFilter{Categories: []string{"bundles"}})
	require.Nil(t, err)
	found := false
	for _, item := range items {
		assert.Equal(t, "bundles", item.Category)
		if item.RuleID == "TST003" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestListRulesPaginationCount(t *testing.T) {
	for _, id := range []string{"PAG001", "PAG002", "PAG003"} {
		_, err := Connection.SaveRule(&Rule{RuleID: id, Category: "pagination", Severity: "info", Title: "Paged rule " + id})
		require.Nil(t, err)
	}

	items, count, err := Connection.ListRules(RuleFilter{
		Categories: []string{"pagination"},
		Pagination: Pagination{Page: 1, PageSize: 2},
	})
	require.Nil(t, err)
	assert.Len(t, items, 2)
	// Count reflects the whole filtered set, not the page.
	assert.Equal(t, int64(3), count)

	items, count, err = Connection.ListRules(RuleFilter{
		Categories: []string{"pagination"},
		Pagination: Pagination{Page: 2, PageSize: 2},
	})
	require.Nil(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, "PAG003", items[0].RuleID)
}
