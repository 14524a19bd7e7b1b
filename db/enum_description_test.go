package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveEnumDescriptionUpsert(t *testing.T) {
	value := EnumDescription{
		Element:     "TestElement",
		Attribute:   "Action",
		Value:       "install",
		Description: "Installs the thing.",
	}

	created, err := Connection.SaveEnumDescription(&value)
	require.Nil(t, err)
	assert.True(t, created)

	update := EnumDescription{
		Element:     "TestElement",
		Attribute:   "Action",
		Value:       "install",
		Description: "Installs the thing, updated.",
	}
	created, err = Connection.SaveEnumDescription(&update)
	require.Nil(t, err)
	assert.False(t, created)

	items, count, err := Connection.ListEnumDescriptions(EnumDescriptionFilter{Element: "TestElement", Attribute: "Action"})
	require.Nil(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, items, 1)
	assert.Equal(t, "Installs the thing, updated.", items[0].Description)

	// Same attribute, different value is a separate row.
	other := EnumDescription{Element: "TestElement", Attribute: "Action", Value: "remove", Description: "Removes it."}
	created, err = Connection.SaveEnumDescription(&other)
	require.Nil(t, err)
	assert.True(t, created)
}

func TestListEnumDescriptionsPaginationCount(t *testing.T) {
	for _, value := range []string{"alpha", "beta", "gamma"} {
		_, err := Connection.SaveEnumDescription(&EnumDescription{
			Element:     "PagedElement",
			Attribute:   "Mode",
			Value:       value,
			Description: "Mode " + value,
		})
		require.Nil(t, err)
	}

	items, count, err := Connection.ListEnumDescriptions(EnumDescriptionFilter{
		Element:    "PagedElement",
		Pagination: Pagination{Page: 1, PageSize: 2},
	})
	require.Nil(t, err)
	assert.Len(t, items, 2)
	// Count reflects the whole filtered set, not the page.
	assert.Equal(t, int64(3), count)
}
