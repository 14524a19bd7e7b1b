package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockData struct {
	Name    string
	Content string
}

func (m mockData) String() string {
	return m.Name
}

func (m mockData) Pretty() string {
	return fmt.Sprintf("Name: %s | Content: %s", m.Name, m.Content)
}

func (m mockData) TableHeaders() []string {
	return []string{"Name", "Content"}
}

func (m mockData) TableRow() []string {
	return []string{m.Name, m.Content}
}

func TestFormatOutput(t *testing.T) {
	data := []mockData{
		{Name: "First", Content: "Sample"},
		{Name: "Second", Content: "More"},
	}

	text, err := FormatOutput(data, Text)
	require.Nil(t, err)
	assert.Equal(t, "First\nSecond", text)

	pretty, err := FormatOutput(data, Pretty)
	require.Nil(t, err)
	assert.Contains(t, pretty, "Name: First | Content: Sample")

	jsonOut, err := FormatOutput(data, JSON)
	require.Nil(t, err)
	assert.Contains(t, jsonOut, `"Name": "First"`)

	yamlOut, err := FormatOutput(data, YAML)
	require.Nil(t, err)
	assert.Contains(t, yamlOut, "name: First")

	tableOut, err := FormatOutput(data, Table)
	require.Nil(t, err)
	assert.Contains(t, tableOut, "NAME")
	assert.Contains(t, tableOut, "Second")

	_, err = FormatOutput(data, FormatType("unknown"))
	assert.NotNil(t, err)
}

func TestFormatSingleOutput(t *testing.T) {
	data := mockData{Name: "Only", Content: "One"}

	text, err := FormatSingleOutput(data, Text)
	require.Nil(t, err)
	assert.Equal(t, "Only", text)

	tableOut, err := FormatSingleOutput(data, Table)
	require.Nil(t, err)
	assert.Contains(t, tableOut, "Only")
}

func TestFormatOutputToFile(t *testing.T) {
	data := []mockData{{Name: "Stored", Content: "OnDisk"}}
	path := filepath.Join(t.TempDir(), "out.json")

	require.Nil(t, FormatOutputToFile(data, JSON, path))

	content, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.True(t, strings.Contains(string(content), "Stored"))
}

func TestParseFormatType(t *testing.T) {
	tests := []struct {
		input    string
		expected FormatType
		hasErr   bool
	}{
		{"json", JSON, false},
		{"JSON", JSON, false},
		{"yaml", YAML, false},
		{"table", Table, false},
		{"text", Text, false},
		{"pretty", Pretty, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		result, err := ParseFormatType(tt.input)
		if tt.hasErr {
			assert.NotNil(t, err, tt.input)
			continue
		}
		require.Nil(t, err, tt.input)
		assert.Equal(t, tt.expected, result)
	}
}
