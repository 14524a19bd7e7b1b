package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exists.txt")
	require.Nil(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, LocalFileExists(path))
	assert.False(t, LocalFileExists(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestStringsSliceToText(t *testing.T) {
	assert.Equal(t, " - one\n - two\n", StringsSliceToText([]string{"one", "two"}))
	assert.Equal(t, "", StringsSliceToText(nil))
}

func TestSliceContains(t *testing.T) {
	items := []string{"apple", "banana"}
	assert.True(t, SliceContains(items, "banana"))
	assert.False(t, SliceContains(items, "cherry"))
	assert.False(t, SliceContains(nil, "apple"))
}
