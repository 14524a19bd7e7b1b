package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveMsiTableUpsert(t *testing.T) {
	table := MsiTable{
		Name:        "TestTable",
		Description: "Table used by the test suite.",
		Columns: []MsiColumn{
			{Name: "Key", Type: "s72", Key: true, Description: "Primary key."},
			{Name: "Value", Type: "s255", Nullable: true, Description: "Value column."},
		},
	}

	created, err := Connection.SaveMsiTable(&table)
	require.Nil(t, err)
	assert.True(t, created)

	update := MsiTable{
		Name:        "TestTable",
		Description: "Updated description.",
		Columns: []MsiColumn{
			{Name: "Key", Type: "s72", Key: true, Description: "Primary key."},
		},
	}
	created, err = Connection.SaveMsiTable(&update)
	require.Nil(t, err)
	assert.False(t, created)

	fetched, err := Connection.GetMsiTableByName("TestTable")
	require.Nil(t, err)
	assert.Equal(t, "Updated description.", fetched.Description)
	require.Len(t, fetched.Columns, 1)
	assert.Equal(t, "Key", fetched.Columns[0].Name)
	assert.Equal(t, 0, fetched.Columns[0].Position)
}

func TestGetMsiTableByNameMissing(t *testing.T) {
	_, err := Connection.GetMsiTableByName("NoSuchTable")
	assert.NotNil(t, err)
}
