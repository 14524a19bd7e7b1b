package curation

import "github.com/wixkit/wixkit/db"

// EnumDescriptions documents individual enum values of element
// attributes, keyed by element + attribute + value.
var EnumDescriptions = []db.EnumDescription{
	{Element: "BootstrapperApplicationDll", Attribute: "DpiAwareness", Value: "unaware", Description: "Application is not DPI aware; Windows scales content."},

	{Element: "BundleCustomData", Attribute: "Type", Value: "BootstrapperApplication", Description: "Data passed to the bootstrapper application."},
	{Element: "BundleCustomData", Attribute: "Type", Value: "BootstrapperExtension", Description: "Data passed to a bootstrapper extension."},
	{Element: "BundleCustomData", Attribute: "Type", Value: "BundleExtension", Description: "Data passed to a bundle extension."},

	{Element: "Certificate", Attribute: "StoreLocation", Value: "currentUser", Description: "Certificate store for the current user (HKCU)."},
	{Element: "Certificate", Attribute: "StoreLocation", Value: "localMachine", Description: "Certificate store for the local machine (HKLM)."},
	{Element: "Certificate", Attribute: "StoreLocation", Value: "localMachineEnterprise", Description: "Enterprise trust store for local machine."},
	{Element: "Certificate", Attribute: "StoreLocation", Value: "localMachinePolicy", Description: "Group Policy store for local machine."},
	{Element: "Certificate", Attribute: "StoreLocation", Value: "services", Description: "Certificate store for services."},
	{Element: "Certificate", Attribute: "StoreLocation", Value: "userPolicy", Description: "Group Policy store for current user."},
	{Element: "Certificate", Attribute: "StoreLocation", Value: "users", Description: "Certificate store for all users."},

	{Element: "Class", Attribute: "ThreadingModel", Value: "apartment", Description: "Single-threaded apartment (STA) model."},
	{Element: "Class", Attribute: "ThreadingModel", Value: "both", Description: "Supports both STA and MTA."},
	{Element: "Class", Attribute: "ThreadingModel", Value: "free", Description: "Multi-threaded apartment (MTA) model."},
	{Element: "Class", Attribute: "ThreadingModel", Value: "neutral", Description: "Neutral threading model; no thread affinity."},
	{Element: "Class", Attribute: "ThreadingModel", Value: "rental", Description: "Rental threading model for pooled objects."},
	{Element: "Class", Attribute: "ThreadingModel", Value: "single", Description: "Single-threaded; all calls on main thread."},

	{Element: "Column", Attribute: "Category", Value: "anyPath", Description: "Any valid file system path."},
	{Element: "Column", Attribute: "Category", Value: "binary", Description: "Binary stream data."},
	{Element: "Column", Attribute: "Category", Value: "cabinet", Description: "Cabinet file name."},
	{Element: "Column", Attribute: "Category", Value: "condition", Description: "Conditional expression string."},
	{Element: "Column", Attribute: "Category", Value: "defaultDir", Description: "Default directory path in installer format."},
	{Element: "Column", Attribute: "Category", Value: "doubleInteger", Description: "32-bit signed integer value."},
	{Element: "Column", Attribute: "Category", Value: "filename", Description: "File name with optional short name."},
	{Element: "Column", Attribute: "Category", Value: "formatted", Description: "Formatted string with property references."},
	{Element: "Column", Attribute: "Category", Value: "guid", Description: "Globally unique identifier (GUID)."},
	{Element: "Column", Attribute: "Category", Value: "identifier", Description: "MSI identifier (up to 72 characters)."},
	{Element: "Column", Attribute: "Category", Value: "integer", Description: "16-bit signed integer value."},

	{Element: "CustomAction", Attribute: "Execute", Value: "commit", Description: "Runs during commit phase after successful install."},
	{Element: "CustomAction", Attribute: "Execute", Value: "deferred", Description: "Runs elevated in the execute sequence script."},
	{Element: "CustomAction", Attribute: "Execute", Value: "immediate", Description: "Runs immediately during sequence processing."},
	{Element: "CustomAction", Attribute: "Execute", Value: "rollback", Description: "Runs only during rollback of a failed install."},

	{Element: "Package", Attribute: "Scope", Value: "perMachine", Description: "Installs for all users; requires elevation."},
	{Element: "Package", Attribute: "Scope", Value: "perUser", Description: "Installs for the current user only."},

	{Element: "ServiceInstall", Attribute: "Start", Value: "auto", Description: "Service starts automatically at boot."},
	{Element: "ServiceInstall", Attribute: "Start", Value: "demand", Description: "Service starts on demand."},
	{Element: "ServiceInstall", Attribute: "Start", Value: "disabled", Description: "Service is installed disabled."},
}
