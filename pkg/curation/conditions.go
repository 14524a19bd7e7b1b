package curation

import "github.com/wixkit/wixkit/db"

// RuleConditions defines how each rule is evaluated against a WiX
// authoring document: an ordered list of element/attribute/pattern
// checks. Seeding replaces a rule's stored conditions wholesale.
var RuleConditions = map[string][]db.RuleCondition{
	"BNDL004": {
		{ConditionType: "element", Target: "Variable", Operator: "exists"},
		{ConditionType: "attribute", Target: "Variable/@Name", Operator: "matches", Value: "^(WixBundleAction|WixBundleInstalled|WixBundleProviderKey|WixBundleTag|WixBundleVersion|WixBundleName|WixBundleManufacturer|WixBundleOriginalSource|WixBundleOriginalSourceFolder|WixBundleLastUsedSource|WixBundleElevated)$"},
	},
	"BNDL005": {
		{ConditionType: "element", Target: "MsiPackage|ExePackage|MspPackage|MsuPackage", Operator: "exists"},
		{ConditionType: "attribute", Target: "*Package/@Vital", Operator: "equals", Value: "no"},
	},
	"BNDL007": {
		{ConditionType: "element", Target: "Payload|*Package", Operator: "exists"},
		{ConditionType: "attribute", Target: "*/@DownloadUrl", Operator: "exists"},
		{ConditionType: "attribute", Target: "*/@Hash", Operator: "not_exists"},
	},
	"COMP001": {
		{ConditionType: "element", Target: "Component", Operator: "exists"},
		{ConditionType: "attribute", Target: "Component/@Guid", Operator: "not_exists"},
	},
	"COMP002": {
		{ConditionType: "element", Target: "Component", Operator: "exists"},
		{ConditionType: "pattern", Target: "Component/File count", Operator: "greater_than", Value: "1"},
	},
	"COMP003": {
		{ConditionType: "element", Target: "Component", Operator: "exists"},
		{ConditionType: "attribute", Target: "Component//*/@KeyPath", Operator: "not_exists"},
	},
	"COMP005": {
		{ConditionType: "element", Target: "Component", Operator: "exists"},
		{ConditionType: "pattern", Target: "Component target directories", Operator: "greater_than", Value: "1"},
	},
	"DIR001": {
		{ConditionType: "attribute", Target: "Directory/@Name", Operator: "matches", Value: `^[A-Za-z]:\\`},
	},
	"DIR002": {
		{ConditionType: "element", Target: "Directory", Operator: "exists"},
		{ConditionType: "pattern", Target: "Directory content", Operator: "not_exists"},
	},
	"PKG001": {
		{ConditionType: "element", Target: "Package", Operator: "exists"},
		{ConditionType: "attribute", Target: "Package/@Scope", Operator: "not_exists"},
	},
	"SEC001": {
		{ConditionType: "element", Target: "Shortcut", Operator: "exists"},
		{ConditionType: "attribute", Target: "Shortcut/@Directory", Operator: "matches", Value: "^[A-Z0-9_]+$"},
	},
}
