package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/pkg/schema"
)

func TestExportElementParents(t *testing.T) {
	elementsDir := t.TempDir()
	store, err := schema.NewDescriptorStore(elementsDir)
	require.Nil(t, err)

	require.Nil(t, store.Write(schema.Element{Name: "Component", Parents: []string{"Directory", "ComponentGroup"}}))
	require.Nil(t, store.Write(schema.Element{Name: "File", Parents: []string{"Component"}}))
	// Root elements have no parents and stay out of the fixture.
	require.Nil(t, store.Write(schema.Element{Name: "Wix"}))

	fixturesDir := t.TempDir()
	exporter, err := NewExporter(db.Connection, fixturesDir)
	require.Nil(t, err)
	exporter.WithElementsDir(elementsDir)

	count, err := exporter.ExportElementParents()
	require.Nil(t, err)
	assert.Equal(t, 2, count)

	data, err := os.ReadFile(filepath.Join(fixturesDir, "element-parents.json"))
	require.Nil(t, err)

	var fixture elementParentsFixture
	require.Nil(t, json.Unmarshal(data, &fixture))
	assert.Equal(t, "Element parent relationships", fixture.Source)
	require.Len(t, fixture.Parents, 2)
	assert.Equal(t, "Component", fixture.Parents[0].Element)
	assert.Equal(t, []string{"ComponentGroup", "Directory"}, fixture.Parents[0].Parents)
	assert.Equal(t, "File", fixture.Parents[1].Element)
}

func TestExportElementParentsRequiresDir(t *testing.T) {
	exporter, err := NewExporter(db.Connection, t.TempDir())
	require.Nil(t, err)

	_, err = exporter.ExportElementParents()
	assert.NotNil(t, err)
}
