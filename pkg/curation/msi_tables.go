package curation

import "github.com/wixkit/wixkit/db"

// MsiTables carries the Windows Installer database table layouts per
// the Windows Installer SDK. Column order matters and is preserved.
var MsiTables = []db.MsiTable{
	{
		Name:        "ActionText",
		Description: "Localized text shown while actions execute.",
		Columns: []db.MsiColumn{
			{Name: "Action", Type: "Identifier", Key: true, Description: "Name of the action."},
			{Name: "Description", Type: "Text", Nullable: true, Description: "Localized description of action."},
			{Name: "Template", Type: "Template", Nullable: true, Description: "Template for formatting progress messages."},
		},
	},
	{
		Name:        "AdminExecuteSequence",
		Description: "Action sequence for administrative installations.",
		Columns: []db.MsiColumn{
			{Name: "Action", Type: "Identifier", Key: true, Description: "Name of the action to execute."},
			{Name: "Condition", Type: "Condition", Nullable: true, Description: "Conditional expression for execution."},
			{Name: "Sequence", Type: "Integer", Nullable: true, Description: "Sequence number in admin install."},
		},
	},
	{
		Name:        "AppId",
		Description: "DCOM AppId registration data.",
		Columns: []db.MsiColumn{
			{Name: "AppId", Type: "GUID", Key: true, Description: "The AppId GUID."},
			{Name: "RemoteServerName", Type: "Text", Nullable: true, Description: "Remote server name for DCOM."},
			{Name: "LocalService", Type: "Text", Nullable: true, Description: "Local service name."},
			{Name: "ServiceParameters", Type: "Text", Nullable: true, Description: "Service command-line parameters."},
			{Name: "DllSurrogate", Type: "Text", Nullable: true, Description: "DLL surrogate path."},
			{Name: "ActivateAtStorage", Type: "Integer", Nullable: true, Description: "1 to activate at storage."},
			{Name: "RunAsInteractiveUser", Type: "Integer", Nullable: true, Description: "1 to run as interactive user."},
		},
	},
	{
		Name:        "AppSearch",
		Description: "Properties populated from system searches.",
		Columns: []db.MsiColumn{
			{Name: "Property", Type: "Identifier", Key: true, Description: "Property to set with search result."},
			{Name: "Signature_", Type: "Identifier", Key: true, Description: "Reference to Signature table."},
		},
	},
	{
		Name:        "Binary",
		Description: "Binary streams used by controls and custom actions.",
		Columns: []db.MsiColumn{
			{Name: "Name", Type: "Identifier", Key: true, Description: "Unique binary data identifier."},
			{Name: "Data", Type: "Binary", Description: "Binary stream data."},
		},
	},
	{
		Name:        "Component",
		Description: "The installer's unit of installation tracking.",
		Columns: []db.MsiColumn{
			{Name: "Component", Type: "Identifier", Key: true, Description: "Component identifier."},
			{Name: "ComponentId", Type: "GUID", Nullable: true, Description: "Component GUID for reference counting."},
			{Name: "Directory_", Type: "Identifier", Description: "Reference to Directory table."},
			{Name: "Attributes", Type: "Integer", Description: "Component attribute flags."},
			{Name: "Condition", Type: "Condition", Nullable: true, Description: "Condition controlling installation."},
			{Name: "KeyPath", Type: "Identifier", Nullable: true, Description: "Key file, registry value or ODBC data source."},
		},
	},
	{
		Name:        "CustomAction",
		Description: "Custom code executed during installation.",
		Columns: []db.MsiColumn{
			{Name: "Action", Type: "Identifier", Key: true, Description: "Custom action identifier."},
			{Name: "Type", Type: "Integer", Description: "Custom action type flags."},
			{Name: "Source", Type: "CustomSource", Nullable: true, Description: "Source of the action code."},
			{Name: "Target", Type: "Formatted", Nullable: true, Description: "Execution target, depends on type."},
		},
	},
	{
		Name:        "Directory",
		Description: "The directory layout of the installation.",
		Columns: []db.MsiColumn{
			{Name: "Directory", Type: "Identifier", Key: true, Description: "Directory identifier."},
			{Name: "Directory_Parent", Type: "Identifier", Nullable: true, Description: "Reference to parent directory."},
			{Name: "DefaultDir", Type: "DefaultDir", Description: "Default directory name, localizable."},
		},
	},
	{
		Name:        "Feature",
		Description: "The feature tree offered to the user.",
		Columns: []db.MsiColumn{
			{Name: "Feature", Type: "Identifier", Key: true, Description: "Feature identifier."},
			{Name: "Feature_Parent", Type: "Identifier", Nullable: true, Description: "Reference to parent feature."},
			{Name: "Title", Type: "Text", Nullable: true, Description: "Short feature title."},
			{Name: "Description", Type: "Text", Nullable: true, Description: "Longer feature description."},
			{Name: "Display", Type: "Integer", Nullable: true, Description: "Display ordering and state."},
			{Name: "Level", Type: "Integer", Description: "Install level."},
			{Name: "Directory_", Type: "Identifier", Nullable: true, Description: "Directory configurable by the user."},
			{Name: "Attributes", Type: "Integer", Description: "Feature attribute flags."},
		},
	},
	{
		Name:        "File",
		Description: "Files installed by components.",
		Columns: []db.MsiColumn{
			{Name: "File", Type: "Identifier", Key: true, Description: "File identifier."},
			{Name: "Component_", Type: "Identifier", Description: "Owning component."},
			{Name: "FileName", Type: "Filename", Description: "File name with optional short name."},
			{Name: "FileSize", Type: "DoubleInteger", Description: "Size in bytes."},
			{Name: "Version", Type: "Version", Nullable: true, Description: "Version string for versioned files."},
			{Name: "Language", Type: "Language", Nullable: true, Description: "List of decimal language IDs."},
			{Name: "Attributes", Type: "Integer", Nullable: true, Description: "File attribute flags."},
			{Name: "Sequence", Type: "Integer", Description: "Sequence within the media."},
		},
	},
	{
		Name:        "InstallExecuteSequence",
		Description: "The main execution sequence of the installation.",
		Columns: []db.MsiColumn{
			{Name: "Action", Type: "Identifier", Key: true, Description: "Name of the action to execute."},
			{Name: "Condition", Type: "Condition", Nullable: true, Description: "Conditional expression for execution."},
			{Name: "Sequence", Type: "Integer", Nullable: true, Description: "Sequence number in the install."},
		},
	},
	{
		Name:        "Property",
		Description: "Installer property name/value pairs.",
		Columns: []db.MsiColumn{
			{Name: "Property", Type: "Identifier", Key: true, Description: "Property name."},
			{Name: "Value", Type: "Text", Description: "Property value."},
		},
	},
	{
		Name:        "Registry",
		Description: "Registry values written by components.",
		Columns: []db.MsiColumn{
			{Name: "Registry", Type: "Identifier", Key: true, Description: "Registry entry identifier."},
			{Name: "Root", Type: "Integer", Description: "Predefined registry root."},
			{Name: "Key", Type: "RegPath", Description: "Registry key path."},
			{Name: "Name", Type: "Formatted", Nullable: true, Description: "Value name, empty for default value."},
			{Name: "Value", Type: "Formatted", Nullable: true, Description: "Value data."},
			{Name: "Component_", Type: "Identifier", Description: "Owning component."},
		},
	},
	{
		Name:        "Shortcut",
		Description: "Shortcuts created during installation.",
		Columns: []db.MsiColumn{
			{Name: "Shortcut", Type: "Identifier", Key: true, Description: "Shortcut identifier."},
			{Name: "Directory_", Type: "Identifier", Description: "Directory holding the shortcut."},
			{Name: "Name", Type: "Filename", Description: "Shortcut name."},
			{Name: "Component_", Type: "Identifier", Description: "Owning component."},
			{Name: "Target", Type: "Shortcut", Description: "Feature or formatted target path."},
			{Name: "Arguments", Type: "Formatted", Nullable: true, Description: "Command line arguments."},
			{Name: "Description", Type: "Text", Nullable: true, Description: "Shortcut description."},
			{Name: "Icon_", Type: "Identifier", Nullable: true, Description: "Reference to Icon table."},
			{Name: "WkDir", Type: "Identifier", Nullable: true, Description: "Working directory."},
		},
	},
	{
		Name:        "Upgrade",
		Description: "Upgrade detection ranges for major upgrades.",
		Columns: []db.MsiColumn{
			{Name: "UpgradeCode", Type: "GUID", Key: true, Description: "UpgradeCode shared by the product family."},
			{Name: "VersionMin", Type: "Text", Nullable: true, Key: true, Description: "Lower version bound."},
			{Name: "VersionMax", Type: "Text", Nullable: true, Key: true, Description: "Upper version bound."},
			{Name: "Language", Type: "Language", Nullable: true, Key: true, Description: "Language IDs to detect."},
			{Name: "Attributes", Type: "Integer", Key: true, Description: "Detection option flags."},
			{Name: "Remove", Type: "Formatted", Nullable: true, Description: "Features to remove."},
			{Name: "ActionProperty", Type: "Identifier", Description: "Property set to detected products."},
		},
	},
}
