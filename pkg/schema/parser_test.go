package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `<?xml version="1.0" encoding="utf-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://wixtoolset.org/schemas/v4/wxs">
  <xs:element name="Foo">
    <xs:annotation>
      <xs:documentation>The <html:b xmlns:html="http://www.w3.org/1999/xhtml">Foo</html:b> container element.</xs:documentation>
    </xs:annotation>
    <xs:complexType>
      <xs:sequence>
        <xs:element ref="Bar" />
        <xs:element ref="Baz" />
        <xs:element ref="Bar" />
      </xs:sequence>
      <xs:attribute name="Id" type="xs:string" use="required">
        <xs:annotation>
          <xs:documentation>Unique identifier.</xs:documentation>
        </xs:annotation>
      </xs:attribute>
      <xs:attribute name="Count" type="xs:integer" />
      <xs:attribute name="KeyPath" type="YesNoType" />
      <xs:attribute name="Scope" default="perMachine">
        <xs:simpleType>
          <xs:restriction base="xs:NMTOKEN">
            <xs:enumeration value="perMachine" />
            <xs:enumeration value="perUser" />
          </xs:restriction>
        </xs:simpleType>
      </xs:attribute>
    </xs:complexType>
  </xs:element>
  <xs:element name="Bar" type="BarType" />
  <xs:element name="Baz" type="MissingType" />
  <xs:element name="Outer">
    <xs:complexType>
      <xs:sequence>
        <xs:group ref="G" />
      </xs:sequence>
    </xs:complexType>
  </xs:element>
  <xs:element name="Inner">
    <xs:complexType />
  </xs:element>
  <xs:complexType name="BarType">
    <xs:choice>
      <xs:element ref="Baz" />
    </xs:choice>
    <xs:attribute name="Action" type="BarAction" use="required" />
  </xs:complexType>
  <xs:simpleType name="BarAction">
    <xs:restriction base="xs:NMTOKEN">
      <xs:enumeration value="install" />
      <xs:enumeration value="remove" />
    </xs:restriction>
  </xs:simpleType>
  <xs:simpleType name="YesNoType">
    <xs:restriction base="xs:NMTOKEN" />
  </xs:simpleType>
  <xs:group name="G">
    <xs:choice>
      <xs:element ref="Inner" />
    </xs:choice>
  </xs:group>
</xs:schema>`

func TestParseFromBytes(t *testing.T) {
	result, err := NewParser().ParseFromBytes([]byte(sampleSchema), "wxs")
	require.Nil(t, err)
	assert.Len(t, result.Elements, 5)

	foo := result.Elements["Foo"]
	require.NotNil(t, foo)
	assert.Equal(t, "wxs", foo.Namespace)
	assert.Equal(t, "v4", foo.Since)
	assert.Equal(t, "The Foo container element.", foo.Description)
	assert.Equal(t, "https://wixtoolset.org/docs/schema/wxs/foo/", foo.Documentation)
	assert.Equal(t, []string{"Bar", "Baz"}, foo.Children)
	assert.Empty(t, foo.Parents)
}

func TestParseAttributeTypes(t *testing.T) {
	result, err := NewParser().ParseFromBytes([]byte(sampleSchema), "wxs")
	require.Nil(t, err)

	foo := result.Elements["Foo"]
	require.NotNil(t, foo)
	require.Len(t, foo.Attributes, 4)

	id := foo.Attributes["Id"]
	assert.Equal(t, TypeString, id.Type)
	assert.True(t, id.Required)
	assert.Equal(t, "Unique identifier.", id.Description)

	count := foo.Attributes["Count"]
	assert.Equal(t, TypeInteger, count.Type)
	assert.False(t, count.Required)
	assert.Equal(t, "The Count attribute.", count.Description)

	keyPath := foo.Attributes["KeyPath"]
	assert.Equal(t, TypeYesNo, keyPath.Type)

	scope := foo.Attributes["Scope"]
	assert.Equal(t, TypeEnum, scope.Type)
	assert.Equal(t, []string{"perMachine", "perUser"}, scope.Values)
	assert.Equal(t, "perMachine", scope.Default)
}

func TestParseNamedTypeReference(t *testing.T) {
	result, err := NewParser().ParseFromBytes([]byte(sampleSchema), "wxs")
	require.Nil(t, err)

	bar := result.Elements["Bar"]
	require.NotNil(t, bar)
	assert.Equal(t, []string{"Baz"}, bar.Children)

	action := bar.Attributes["Action"]
	assert.Equal(t, TypeEnum, action.Type)
	assert.Equal(t, []string{"install", "remove"}, action.Values)
	assert.True(t, action.Required)
}

func TestParseUndefinedNamedType(t *testing.T) {
	result, err := NewParser().ParseFromBytes([]byte(sampleSchema), "wxs")
	require.Nil(t, err)

	baz := result.Elements["Baz"]
	require.NotNil(t, baz)
	assert.Empty(t, baz.Attributes)
	assert.Empty(t, baz.Children)
	assert.Equal(t, "The Baz element.", baz.Description)
}

func TestParseGroupIndirection(t *testing.T) {
	result, err := NewParser().ParseFromBytes([]byte(sampleSchema), "wxs")
	require.Nil(t, err)

	outer := result.Elements["Outer"]
	require.NotNil(t, outer)
	assert.Equal(t, []string{"Inner"}, outer.Children)
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := NewParser().ParseFromBytes([]byte("<xs:schema xmlns:xs=\"http://www.w3.org/2001/XMLSchema\"><unclosed"), "wxs")
	assert.NotNil(t, err)
}

func TestMapAttributeType(t *testing.T) {
	tests := []struct {
		xsdType  string
		expected string
	}{
		{"xs:string", TypeString},
		{"xs:NMTOKEN", TypeString},
		{"xs:integer", TypeInteger},
		{"LocalizableInteger", TypeInteger},
		{"YesNoType", TypeYesNo},
		{"YesNoDefaultType", TypeYesNo},
		{"Guid", TypeGuid},
		{"AutogenGuid", TypeGuid},
		{"VersionType", TypeVersion},
		{"SomethingUnknown", TypeString},
		{"", TypeString},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, MapAttributeType(tc.xsdType), tc.xsdType)
	}
}

func TestDocumentationText(t *testing.T) {
	annotation := &xsdAnnotation{
		Documentation: []xsdDocumentation{
			{Content: "  Text with\n  an <html:a href=\"x\">embedded   link</html:a> and &amp; entity.  "},
		},
	}
	assert.Equal(t, "Text with an embedded link and & entity.", documentationText(annotation))
	assert.Equal(t, "", documentationText(nil))
}

func TestLocalName(t *testing.T) {
	assert.Equal(t, "string", localName("xs:string"))
	assert.Equal(t, "BarType", localName("BarType"))
	assert.Equal(t, "", localName(""))
}
