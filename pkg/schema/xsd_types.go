package schema

import "encoding/xml"

// Raw XML Schema document model. Only the constructs the extractor
// cares about are mapped; everything else is ignored by encoding/xml.

type xsdSchema struct {
	XMLName         xml.Name         `xml:"http://www.w3.org/2001/XMLSchema schema"`
	TargetNamespace string           `xml:"targetNamespace,attr"`
	Elements        []xsdElement     `xml:"element"`
	ComplexTypes    []xsdComplexType `xml:"complexType"`
	SimpleTypes     []xsdSimpleType  `xml:"simpleType"`
	Groups          []xsdGroup       `xml:"group"`
}

type xsdElement struct {
	Name        string          `xml:"name,attr"`
	Ref         string          `xml:"ref,attr"`
	Type        string          `xml:"type,attr"`
	Annotation  *xsdAnnotation  `xml:"annotation"`
	ComplexType *xsdComplexType `xml:"complexType"`
}

type xsdComplexType struct {
	Name       string         `xml:"name,attr"`
	Annotation *xsdAnnotation `xml:"annotation"`
	Sequence   *xsdParticle   `xml:"sequence"`
	Choice     *xsdParticle   `xml:"choice"`
	All        *xsdParticle   `xml:"all"`
	Attributes []xsdAttribute `xml:"attribute"`
}

// xsdParticle covers the sequence/choice/all compositors, which nest
// freely and may reference named groups.
type xsdParticle struct {
	Elements  []xsdElement  `xml:"element"`
	Sequences []xsdParticle `xml:"sequence"`
	Choices   []xsdParticle `xml:"choice"`
	Groups    []xsdGroupRef `xml:"group"`
}

type xsdGroup struct {
	Name     string       `xml:"name,attr"`
	Sequence *xsdParticle `xml:"sequence"`
	Choice   *xsdParticle `xml:"choice"`
	All      *xsdParticle `xml:"all"`
}

type xsdGroupRef struct {
	Ref string `xml:"ref,attr"`
}

type xsdAttribute struct {
	Name       string         `xml:"name,attr"`
	Type       string         `xml:"type,attr"`
	Use        string         `xml:"use,attr"`
	Default    string         `xml:"default,attr"`
	Annotation *xsdAnnotation `xml:"annotation"`
	SimpleType *xsdSimpleType `xml:"simpleType"`
}

type xsdSimpleType struct {
	Name        string          `xml:"name,attr"`
	Restriction *xsdRestriction `xml:"restriction"`
}

type xsdRestriction struct {
	Base         string           `xml:"base,attr"`
	Enumerations []xsdEnumeration `xml:"enumeration"`
}

type xsdEnumeration struct {
	Value string `xml:"value,attr"`
}

// xsdDocumentation keeps the raw inner XML because WiX schema
// documentation embeds XHTML markup that has to be stripped.
type xsdAnnotation struct {
	Documentation []xsdDocumentation `xml:"documentation"`
}

type xsdDocumentation struct {
	Content string `xml:",innerxml"`
}
