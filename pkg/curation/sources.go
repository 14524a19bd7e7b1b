package curation

import "github.com/wixkit/wixkit/db"

// DataSources records where knowledge base content comes from.
var DataSources = []db.DataSource{
	{Name: "wix.xsd", URL: "https://wixtoolset.org/schemas/v4/wxs/wix.xsd", Kind: "xsd"},
	{Name: "bal.xsd", URL: "https://wixtoolset.org/schemas/v4/wxs/bal.xsd", Kind: "xsd"},
	{Name: "complus.xsd", URL: "https://wixtoolset.org/schemas/v4/wxs/complus.xsd", Kind: "xsd"},
	{Name: "dependency.xsd", URL: "https://wixtoolset.org/schemas/v4/wxs/dependency.xsd", Kind: "xsd"},
	{Name: "firewall.xsd", URL: "https://wixtoolset.org/schemas/v4/wxs/firewall.xsd", Kind: "xsd"},
	{Name: "iis.xsd", URL: "https://wixtoolset.org/schemas/v4/wxs/iis.xsd", Kind: "xsd"},
	{Name: "netfx.xsd", URL: "https://wixtoolset.org/schemas/v4/wxs/netfx.xsd", Kind: "xsd"},
	{Name: "sql.xsd", URL: "https://wixtoolset.org/schemas/v4/wxs/sql.xsd", Kind: "xsd"},
	{Name: "ui.xsd", URL: "https://wixtoolset.org/schemas/v4/wxs/ui.xsd", Kind: "xsd"},
	{Name: "util.xsd", URL: "https://wixtoolset.org/schemas/v4/wxs/util.xsd", Kind: "xsd"},

	{Name: "wix-docs-main", URL: "https://wixtoolset.org/docs/", Kind: "documentation"},
	{Name: "wix-docs-schema", URL: "https://wixtoolset.org/docs/schema/", Kind: "documentation"},
	{Name: "wix-docs-tools", URL: "https://wixtoolset.org/docs/tools/", Kind: "documentation"},

	{Name: "msi-database-reference", URL: "https://learn.microsoft.com/en-us/windows/win32/msi/database-tables", Kind: "msi"},
	{Name: "msi-property-reference", URL: "https://learn.microsoft.com/en-us/windows/win32/msi/property-reference", Kind: "msi"},
	{Name: "msi-standard-actions", URL: "https://learn.microsoft.com/en-us/windows/win32/msi/standard-actions-reference", Kind: "msi"},
	{Name: "msi-conditions", URL: "https://learn.microsoft.com/en-us/windows/win32/msi/conditional-statement-syntax", Kind: "msi"},

	{Name: "ice-reference", URL: "https://learn.microsoft.com/en-us/windows/win32/msi/ice-reference", Kind: "ice"},

	{Name: "wixui-dialog-library", URL: "https://raw.githubusercontent.com/wixtoolset/wix/HEAD/src/ext/UI/wixlib", Kind: "ui"},
	{Name: "msi-controls", URL: "https://learn.microsoft.com/en-us/windows/win32/msi/controls", Kind: "ui"},
}
