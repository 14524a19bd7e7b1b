package curation

import (
	"testing"

	"github.com/wixkit/wixkit/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAllIdempotent(t *testing.T) {
	seeder := NewSeeder(db.Connection)

	first, err := seeder.SeedAll()
	require.Nil(t, err)
	assert.Greater(t, first.Total(), 0)

	// A second run only updates, never creates.
	second, err := seeder.SeedAll()
	require.Nil(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, first.Total(), second.Total())
}

func TestSeedRulesThenConditions(t *testing.T) {
	seeder := NewSeeder(db.Connection)

	_, err := seeder.SeedRules()
	require.Nil(t, err)
	_, err = seeder.SeedConditions()
	require.Nil(t, err)

	rule, err := db.Connection.GetRuleByRuleID("COMP001")
	require.Nil(t, err)
	assert.NotEmpty(t, rule.Rationale)
	assert.NotEmpty(t, rule.Conditions)
}

func TestCurationTablesAreConsistent(t *testing.T) {
	ruleIDs := make(map[string]bool, len(Rules))
	for _, rule := range Rules {
		assert.NotEmpty(t, rule.RuleID)
		assert.NotEmpty(t, rule.Severity)
		assert.False(t, ruleIDs[rule.RuleID], "duplicate rule id %s", rule.RuleID)
		ruleIDs[rule.RuleID] = true
	}

	// Every curated condition set references a curated rule.
	for ruleID := range RuleConditions {
		assert.True(t, ruleIDs[ruleID], "conditions for unknown rule %s", ruleID)
	}

	tableNames := make(map[string]bool, len(MsiTables))
	for _, table := range MsiTables {
		assert.False(t, tableNames[table.Name], "duplicate table %s", table.Name)
		tableNames[table.Name] = true
		assert.NotEmpty(t, table.Columns, "table %s has no columns", table.Name)
	}

	dirIDs := make(map[string]bool, len(StandardDirectories))
	for _, dir := range StandardDirectories {
		assert.False(t, dirIDs[dir.DirectoryID], "duplicate directory %s", dir.DirectoryID)
		dirIDs[dir.DirectoryID] = true
		assert.Contains(t, []string{"machine", "user", "both"}, dir.Scope)
	}
}
