package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildElements() map[string]*Element {
	return map[string]*Element{
		"A": {Name: "A", Children: []string{"C"}, Parents: []string{}},
		"B": {Name: "B", Children: []string{"C", "A"}, Parents: []string{}},
		"C": {Name: "C", Children: []string{}, Parents: []string{}},
	}
}

func TestResolveRelationships(t *testing.T) {
	elements := buildElements()
	ResolveRelationships(elements)

	assert.Equal(t, []string{"A", "B"}, elements["C"].Parents)
	assert.Equal(t, []string{"B"}, elements["A"].Parents)
	assert.Empty(t, elements["B"].Parents)
}

func TestResolveRelationshipsIdempotent(t *testing.T) {
	elements := buildElements()
	ResolveRelationships(elements)
	ResolveRelationships(elements)

	assert.Equal(t, []string{"A", "B"}, elements["C"].Parents)
	assert.Equal(t, []string{"B"}, elements["A"].Parents)
}

func TestResolveRelationshipsDanglingChild(t *testing.T) {
	elements := map[string]*Element{
		"A": {Name: "A", Children: []string{"NotDefinedHere"}, Parents: []string{}},
	}
	ResolveRelationships(elements)
	assert.Empty(t, elements["A"].Parents)
}
