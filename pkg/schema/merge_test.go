package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergePreservesProse(t *testing.T) {
	existing := Element{
		Name:        "Component",
		Description: "Hand-written description.",
		Attributes: map[string]Attribute{
			"Id": {Type: TypeString, Description: "Curated attribute prose."},
		},
	}
	extracted := Element{
		Name:        "Component",
		Namespace:   "wxs",
		Since:       "v4",
		Description: "The Component element.",
		Attributes: map[string]Attribute{
			"Id": {Type: TypeGuid, Required: true, Description: "The Id attribute."},
		},
	}

	merged := Merge(existing, extracted)

	assert.Equal(t, "Hand-written description.", merged.Description)
	assert.Equal(t, "wxs", merged.Namespace)
	assert.Equal(t, "v4", merged.Since)

	id := merged.Attributes["Id"]
	assert.Equal(t, "Curated attribute prose.", id.Description)
	// Structural facts follow the extraction.
	assert.Equal(t, TypeGuid, id.Type)
	assert.True(t, id.Required)
}

func TestMergeFillsEmptyDescription(t *testing.T) {
	existing := Element{Name: "File"}
	extracted := Element{Name: "File", Description: "The File element."}

	merged := Merge(existing, extracted)
	assert.Equal(t, "The File element.", merged.Description)
}

func TestMergeNeverShrinks(t *testing.T) {
	existing := Element{
		Name:     "Product",
		Children: []string{"OnlyInExisting", "Shared"},
		Parents:  []string{"Wix"},
		Attributes: map[string]Attribute{
			"Legacy": {Type: TypeString, Description: "Kept even when the schema dropped it."},
		},
	}
	extracted := Element{
		Name:     "Product",
		Children: []string{"Shared", "OnlyInExtracted"},
		Parents:  []string{},
		Attributes: map[string]Attribute{
			"Fresh": {Type: TypeYesNo},
		},
	}

	merged := Merge(existing, extracted)

	assert.Equal(t, []string{"OnlyInExisting", "OnlyInExtracted", "Shared"}, merged.Children)
	assert.Equal(t, []string{"Wix"}, merged.Parents)
	assert.Contains(t, merged.Attributes, "Legacy")
	assert.Contains(t, merged.Attributes, "Fresh")
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	existing := Element{
		Name:       "A",
		Children:   []string{"X"},
		Attributes: map[string]Attribute{"Id": {Type: TypeString}},
	}
	extracted := Element{
		Name:       "A",
		Children:   []string{"Y"},
		Attributes: map[string]Attribute{"Id": {Type: TypeGuid}},
	}

	Merge(existing, extracted)

	assert.Equal(t, []string{"X"}, existing.Children)
	assert.Equal(t, TypeString, existing.Attributes["Id"].Type)
	assert.Equal(t, []string{"Y"}, extracted.Children)
}
