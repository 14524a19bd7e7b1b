package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DescriptorStore reads and writes per-element descriptor JSON files.
// Files are named by the lower-cased element name.
type DescriptorStore struct {
	dir string
}

// NewDescriptorStore creates a store rooted at dir, creating the
// directory when missing.
func NewDescriptorStore(dir string) (*DescriptorStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create descriptor directory: %w", err)
	}
	return &DescriptorStore{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *DescriptorStore) Dir() string {
	return s.dir
}

// Path returns the descriptor file path for an element name.
func (s *DescriptorStore) Path(name string) string {
	return filepath.Join(s.dir, strings.ToLower(name)+".json")
}

// LoadExisting reads the persisted descriptor for an element. A
// missing file or one that fails to parse as JSON is reported as
// absent so the caller falls back to the fresh-write path.
func (s *DescriptorStore) LoadExisting(name string) (Element, bool) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return Element{}, false
	}
	var element Element
	if err := json.Unmarshal(data, &element); err != nil {
		return Element{}, false
	}
	return element, true
}

// Write persists a descriptor. Output is deterministic: two-space
// indentation, sorted attribute keys, trailing newline.
func (s *DescriptorStore) Write(element Element) error {
	if element.Parents == nil {
		element.Parents = []string{}
	}
	if element.Children == nil {
		element.Children = []string{}
	}
	if element.Attributes == nil {
		element.Attributes = map[string]Attribute{}
	}

	data, err := json.MarshalIndent(element, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode descriptor for %s: %w", element.Name, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.Path(element.Name), data, 0644); err != nil {
		return fmt.Errorf("failed to write descriptor for %s: %w", element.Name, err)
	}
	return nil
}

// List returns the element names with a descriptor on disk.
func (s *DescriptorStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return names, nil
}
