package schema

import "fmt"

// Attribute kinds the knowledge base understands. Anything the XSD
// declares that does not map onto one of these is treated as a string.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeYesNo   = "yesno"
	TypeGuid    = "guid"
	TypeVersion = "version"
	TypeEnum    = "enum"
)

// Attribute describes one attribute of a WiX element.
type Attribute struct {
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Description string   `json:"description"`
	Default     string   `json:"default,omitempty"`
	Values      []string `json:"values,omitempty"`
}

// Element is the persisted descriptor of one element the schema
// permits. Parents is derived by relationship resolution, never
// authored by the parser.
type Element struct {
	SchemaRef     string               `json:"$schema,omitempty"`
	Name          string               `json:"name"`
	Namespace     string               `json:"namespace"`
	Since         string               `json:"since"`
	Description   string               `json:"description"`
	Documentation string               `json:"documentation"`
	Parents       []string             `json:"parents"`
	Children      []string             `json:"children"`
	Attributes    map[string]Attribute `json:"attributes"`
}

func (e Element) String() string {
	return fmt.Sprintf("%s: %d attributes, %d children", e.Name, len(e.Attributes), len(e.Children))
}

func (e Element) Pretty() string {
	return fmt.Sprintf("Element: %s\nNamespace: %s\nDescription: %s\nChildren: %d\nAttributes: %d\n", e.Name, e.Namespace, e.Description, len(e.Children), len(e.Attributes))
}

func (e Element) TableHeaders() []string {
	return []string{"Element", "Namespace", "Attributes", "Children", "Parents"}
}

func (e Element) TableRow() []string {
	return []string{e.Name, e.Namespace, fmt.Sprintf("%d", len(e.Attributes)), fmt.Sprintf("%d", len(e.Children)), fmt.Sprintf("%d", len(e.Parents))}
}

// typeEntry is the resolved shape of one named complex type.
type typeEntry struct {
	attributes map[string]Attribute
	children   []string
}

// simpleEntry is the resolved shape of one named simple type. Values
// is nil for plain (non-enumerated) types.
type simpleEntry struct {
	values []string
}

// ParseResult holds everything extracted from one schema document.
// The type, simple type and group tables are build-time lookups; they
// are populated in a first pass over the document and only consulted
// afterwards.
type ParseResult struct {
	Namespace string
	Elements  map[string]*Element

	types       map[string]typeEntry
	simpleTypes map[string]simpleEntry
	groups      map[string][]string
}
