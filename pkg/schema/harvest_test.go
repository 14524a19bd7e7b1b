package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSampleSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wix.xsd")
	require.Nil(t, os.WriteFile(path, []byte(sampleSchema), 0644))
	return path
}

func newTestHarvester(t *testing.T, dir string, opts HarvestOptions) *Harvester {
	t.Helper()
	store, err := NewDescriptorStore(dir)
	require.Nil(t, err)
	return NewHarvester(NewParser(), NewFetcher(t.TempDir()), store, opts)
}

func TestHarvestReconcileCreates(t *testing.T) {
	dir := t.TempDir()
	harvester := newTestHarvester(t, dir, HarvestOptions{})

	require.Nil(t, harvester.HarvestFile(writeSampleSchema(t), "wxs"))

	summary, err := harvester.Reconcile()
	require.Nil(t, err)
	assert.Equal(t, 5, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 0, summary.Skipped)

	// Relationship resolution ran before the write.
	store, err := NewDescriptorStore(dir)
	require.Nil(t, err)
	bar, ok := store.LoadExisting("Bar")
	require.True(t, ok)
	assert.Equal(t, []string{"Foo"}, bar.Parents)
}

func TestHarvestReconcileSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDescriptorStore(dir)
	require.Nil(t, err)
	require.Nil(t, store.Write(Element{Name: "Foo", Description: "Curated."}))

	harvester := newTestHarvester(t, dir, HarvestOptions{})
	require.Nil(t, harvester.HarvestFile(writeSampleSchema(t), "wxs"))

	summary, err := harvester.Reconcile()
	require.Nil(t, err)
	assert.Equal(t, 4, summary.Created)
	assert.Equal(t, 1, summary.Skipped)

	foo, ok := store.LoadExisting("Foo")
	require.True(t, ok)
	assert.Equal(t, "Curated.", foo.Description)
	assert.Empty(t, foo.Children)
}

func TestHarvestReconcileForceMerges(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDescriptorStore(dir)
	require.Nil(t, err)
	require.Nil(t, store.Write(Element{Name: "Foo", Description: "Curated."}))

	harvester := newTestHarvester(t, dir, HarvestOptions{Force: true})
	require.Nil(t, harvester.HarvestFile(writeSampleSchema(t), "wxs"))

	summary, err := harvester.Reconcile()
	require.Nil(t, err)
	assert.Equal(t, 4, summary.Created)
	assert.Equal(t, 1, summary.Updated)

	foo, ok := store.LoadExisting("Foo")
	require.True(t, ok)
	assert.Equal(t, "Curated.", foo.Description)
	assert.Equal(t, []string{"Bar", "Baz"}, foo.Children)
}

func TestHarvestDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	harvester := newTestHarvester(t, dir, HarvestOptions{DryRun: true})
	require.Nil(t, harvester.HarvestFile(writeSampleSchema(t), "wxs"))

	summary, err := harvester.Reconcile()
	require.Nil(t, err)
	assert.Equal(t, 5, summary.Created)

	entries, err := os.ReadDir(dir)
	require.Nil(t, err)
	assert.Empty(t, entries)
}

func TestHarvestReconcileEmpty(t *testing.T) {
	harvester := newTestHarvester(t, t.TempDir(), HarvestOptions{})
	_, err := harvester.Reconcile()
	assert.ErrorIs(t, err, ErrNoElements)
}

func TestHarvestFileMissing(t *testing.T) {
	harvester := newTestHarvester(t, t.TempDir(), HarvestOptions{})
	err := harvester.HarvestFile(filepath.Join(t.TempDir(), "missing.xsd"), "wxs")
	assert.NotNil(t, err)
}
