package schema

// attributeTypes maps XSD primitive and WiX named types onto the
// knowledge base attribute kinds. Anything absent falls back to
// string, which is a deliberate safe default rather than a failure.
var attributeTypes = map[string]string{
	"string":           TypeString,
	"NMTOKEN":          TypeString,
	"NMTOKENS":         TypeString,
	"token":            TypeString,
	"normalizedString": TypeString,

	"integer":            TypeInteger,
	"int":                TypeInteger,
	"positiveInteger":    TypeInteger,
	"nonNegativeInteger": TypeInteger,
	"long":               TypeInteger,
	"short":              TypeInteger,
	"LocalizableInteger": TypeInteger,

	"boolean":          TypeYesNo,
	"YesNoType":        TypeYesNo,
	"YesNoDefaultType": TypeYesNo,
	"YesNoButtonType":  TypeYesNo,

	"Guid":          TypeGuid,
	"GuidType":      TypeGuid,
	"ComponentGuid": TypeGuid,
	"AutogenGuid":   TypeGuid,

	"VersionType": TypeVersion,
}

// MapAttributeType converts an XSD type reference (with optional
// namespace prefix) to a knowledge base attribute kind.
func MapAttributeType(xsdType string) string {
	name := localName(xsdType)
	if name == "" {
		return TypeString
	}
	if mapped, ok := attributeTypes[name]; ok {
		return mapped
	}
	return TypeString
}
