package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceRoundTrip(t *testing.T) {
	original := StringSlice{"one", "two"}

	value, err := original.Value()
	require.Nil(t, err)

	var scanned StringSlice
	require.Nil(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestStringSliceScanString(t *testing.T) {
	var scanned StringSlice
	require.Nil(t, scanned.Scan(`["a","b"]`))
	assert.Equal(t, StringSlice{"a", "b"}, scanned)
}

func TestStringSliceScanInvalid(t *testing.T) {
	var scanned StringSlice
	assert.NotNil(t, scanned.Scan(42))
}
