package schema

import (
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Parser extracts element descriptors from WiX XSD schema documents.
// A Parser carries no state between runs; every Parse call returns a
// self-contained ParseResult.
type Parser struct {
	client    *http.Client
	headers   map[string]string
	docsBase  string
	schemaRef string
}

// NewParser creates a new XSD parser
func NewParser() *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers:   make(map[string]string),
		docsBase:  "https://wixtoolset.org/docs/schema/wxs/",
		schemaRef: "../schema/element.schema.json",
	}
}

// WithClient sets a custom HTTP client
func (p *Parser) WithClient(client *http.Client) *Parser {
	p.client = client
	return p
}

// WithHeaders sets custom headers used when fetching schemas
func (p *Parser) WithHeaders(headers map[string]string) *Parser {
	p.headers = headers
	return p
}

// WithDocsBase sets the base URL used for per-element documentation links
func (p *Parser) WithDocsBase(base string) *Parser {
	p.docsBase = base
	return p
}

// WithSchemaRef sets the $schema reference stamped on descriptors
func (p *Parser) WithSchemaRef(ref string) *Parser {
	p.schemaRef = ref
	return p
}

// ParseFromURL fetches and parses an XSD schema from a URL
func (p *Parser) ParseFromURL(url string, namespace string) (*ParseResult, error) {
	data, err := p.fetchDocument(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schema: %w", err)
	}
	return p.ParseFromBytes(data, namespace)
}

// ParseFile parses an XSD schema from a local file
func (p *Parser) ParseFile(path string, namespace string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return p.ParseFromBytes(data, namespace)
}

// ParseFromBytes parses an XSD schema document. The returned result is
// complete except for parent relationships, which are derived later by
// ResolveRelationships over the full descriptor set.
func (p *Parser) ParseFromBytes(data []byte, namespace string) (*ParseResult, error) {
	var doc xsdSchema
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema XML: %w", err)
	}

	result := &ParseResult{
		Namespace:   namespace,
		Elements:    make(map[string]*Element),
		types:       make(map[string]typeEntry),
		simpleTypes: make(map[string]simpleEntry),
		groups:      make(map[string][]string),
	}

	// First pass: named groups, simple types and complex types.
	// Groups come first so complex types can expand group references.
	for _, group := range doc.Groups {
		if group.Name == "" {
			continue
		}
		result.groups[group.Name] = collectGroupChildren(&group)
	}

	for _, simpleType := range doc.SimpleTypes {
		if simpleType.Name == "" {
			continue
		}
		result.simpleTypes[simpleType.Name] = simpleEntry{values: enumValues(&simpleType)}
	}

	for _, complexType := range doc.ComplexTypes {
		if complexType.Name == "" {
			continue
		}
		result.types[complexType.Name] = p.parseComplexType(&complexType, result)
	}

	// Second pass: top-level element declarations.
	for _, elem := range doc.Elements {
		descriptor := p.resolveElement(&elem, result)
		if descriptor != nil {
			result.Elements[descriptor.Name] = descriptor
		}
	}

	return result, nil
}

// resolveElement builds the descriptor for one top-level element
// declaration. Parents is left empty here.
func (p *Parser) resolveElement(elem *xsdElement, result *ParseResult) *Element {
	name := elem.Name
	if name == "" {
		return nil
	}

	doc := documentationText(elem.Annotation)
	if doc == "" {
		doc = fmt.Sprintf("The %s element.", name)
	}

	attributes := make(map[string]Attribute)
	var children []string

	if typeName := localName(elem.Type); typeName != "" {
		// Unknown named types resolve to an empty shape, not an error.
		if entry, ok := result.types[typeName]; ok {
			for attrName, attr := range entry.attributes {
				attributes[attrName] = attr
			}
			children = append(children, entry.children...)
		}
	} else if elem.ComplexType != nil {
		entry := p.parseComplexType(elem.ComplexType, result)
		attributes = entry.attributes
		children = entry.children
	}

	return &Element{
		SchemaRef:     p.schemaRef,
		Name:          name,
		Namespace:     result.Namespace,
		Since:         "v4",
		Description:   doc,
		Documentation: p.docsBase + strings.ToLower(name) + "/",
		Parents:       []string{},
		Children:      children,
		Attributes:    attributes,
	}
}

// parseComplexType resolves a complexType declaration into its
// attribute set and child element list. Used for both named types and
// inline declarations.
func (p *Parser) parseComplexType(complexType *xsdComplexType, result *ParseResult) typeEntry {
	entry := typeEntry{attributes: make(map[string]Attribute)}

	for _, attr := range complexType.Attributes {
		if attr.Name == "" {
			continue
		}
		entry.attributes[attr.Name] = p.parseAttribute(&attr, result)
	}

	seen := make(map[string]bool)
	for _, particle := range []*xsdParticle{complexType.Sequence, complexType.Choice, complexType.All} {
		entry.children = appendParticleChildren(entry.children, particle, result.groups, seen)
	}

	return entry
}

// parseAttribute maps an xs:attribute declaration onto the knowledge
// base attribute model.
func (p *Parser) parseAttribute(attr *xsdAttribute, result *ParseResult) Attribute {
	parsed := Attribute{
		Type:     MapAttributeType(attr.Type),
		Required: attr.Use == "required",
		Default:  attr.Default,
	}

	parsed.Description = documentationText(attr.Annotation)
	if parsed.Description == "" {
		parsed.Description = fmt.Sprintf("The %s attribute.", attr.Name)
	}

	if typeName := localName(attr.Type); typeName != "" {
		if entry, ok := result.simpleTypes[typeName]; ok && len(entry.values) > 0 {
			parsed.Type = TypeEnum
			parsed.Values = entry.values
		}
	}

	if attr.SimpleType != nil {
		if values := enumValues(attr.SimpleType); len(values) > 0 {
			parsed.Type = TypeEnum
			parsed.Values = values
		}
	}

	return parsed
}

// appendParticleChildren walks a sequence/choice/all compositor and
// collects referenced child element names, expanding one level of
// group indirection.
func appendParticleChildren(children []string, particle *xsdParticle, groups map[string][]string, seen map[string]bool) []string {
	if particle == nil {
		return children
	}

	for _, elem := range particle.Elements {
		name := localName(elem.Ref)
		if name == "" {
			name = elem.Name
		}
		if name != "" && !seen[name] {
			seen[name] = true
			children = append(children, name)
		}
	}

	for _, groupRef := range particle.Groups {
		ref := localName(groupRef.Ref)
		for _, name := range groups[ref] {
			if !seen[name] {
				seen[name] = true
				children = append(children, name)
			}
		}
	}

	for i := range particle.Sequences {
		children = appendParticleChildren(children, &particle.Sequences[i], groups, seen)
	}
	for i := range particle.Choices {
		children = appendParticleChildren(children, &particle.Choices[i], groups, seen)
	}

	return children
}

// collectGroupChildren gathers the direct child element references of
// a named group. Nested group references are not followed; expansion
// is a single level by design.
func collectGroupChildren(group *xsdGroup) []string {
	var children []string
	seen := make(map[string]bool)
	for _, particle := range []*xsdParticle{group.Sequence, group.Choice, group.All} {
		children = appendParticleChildren(children, particle, map[string][]string{}, seen)
	}
	return children
}

// enumValues returns the ordered enumeration literals of a simple
// type restriction, or nil when the type is not an enumeration.
func enumValues(simpleType *xsdSimpleType) []string {
	if simpleType.Restriction == nil {
		return nil
	}
	var values []string
	for _, enum := range simpleType.Restriction.Enumerations {
		if enum.Value != "" {
			values = append(values, enum.Value)
		}
	}
	return values
}

// documentationText extracts the text of the nearest annotation,
// stripping embedded XHTML markup and collapsing whitespace.
func documentationText(annotation *xsdAnnotation) string {
	if annotation == nil || len(annotation.Documentation) == 0 {
		return ""
	}
	text := tagPattern.ReplaceAllString(annotation.Documentation[0].Content, " ")
	text = html.UnescapeString(text)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// localName strips an optional namespace prefix from a QName.
func localName(qname string) string {
	if qname == "" {
		return ""
	}
	parts := strings.Split(qname, ":")
	return parts[len(parts)-1]
}

// fetchDocument retrieves a schema document from a URL
func (p *Parser) fetchDocument(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/xml, application/xml")
	req.Header.Set("User-Agent", "wixkit-harvester/1.0")

	for key, value := range p.headers {
		req.Header.Set(key, value)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
