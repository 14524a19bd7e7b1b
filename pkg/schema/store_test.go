package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewDescriptorStore(t.TempDir())
	require.Nil(t, err)

	element := Element{
		Name:        "MajorUpgrade",
		Namespace:   "wxs",
		Since:       "v4",
		Description: "The MajorUpgrade element.",
		Attributes: map[string]Attribute{
			"AllowDowngrades": {Type: TypeYesNo, Description: "The AllowDowngrades attribute."},
		},
	}
	require.Nil(t, store.Write(element))

	// Lower-cased file name.
	_, err = os.Stat(filepath.Join(store.Dir(), "majorupgrade.json"))
	assert.Nil(t, err)

	loaded, ok := store.LoadExisting("MajorUpgrade")
	require.True(t, ok)
	assert.Equal(t, element.Name, loaded.Name)
	assert.Equal(t, element.Attributes, loaded.Attributes)
	assert.NotNil(t, loaded.Parents)
	assert.NotNil(t, loaded.Children)
}

func TestStoreLoadMissing(t *testing.T) {
	store, err := NewDescriptorStore(t.TempDir())
	require.Nil(t, err)

	_, ok := store.LoadExisting("Nothing")
	assert.False(t, ok)
}

func TestStoreLoadCorrupt(t *testing.T) {
	store, err := NewDescriptorStore(t.TempDir())
	require.Nil(t, err)

	require.Nil(t, os.WriteFile(store.Path("Broken"), []byte("{not json"), 0644))

	_, ok := store.LoadExisting("Broken")
	assert.False(t, ok)
}

func TestStoreList(t *testing.T) {
	store, err := NewDescriptorStore(t.TempDir())
	require.Nil(t, err)

	require.Nil(t, store.Write(Element{Name: "File"}))
	require.Nil(t, store.Write(Element{Name: "Component"}))

	names, err := store.List()
	require.Nil(t, err)
	assert.ElementsMatch(t, []string{"file", "component"}, names)
}

func TestStoreWriteDeterministic(t *testing.T) {
	store, err := NewDescriptorStore(t.TempDir())
	require.Nil(t, err)

	element := Element{
		Name: "Shortcut",
		Attributes: map[string]Attribute{
			"Name":      {Type: TypeString},
			"Directory": {Type: TypeString},
			"Advertise": {Type: TypeYesNo},
		},
	}
	require.Nil(t, store.Write(element))
	first, err := os.ReadFile(store.Path("Shortcut"))
	require.Nil(t, err)

	require.Nil(t, store.Write(element))
	second, err := os.ReadFile(store.Path("Shortcut"))
	require.Nil(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, byte('\n'), first[len(first)-1])
}
