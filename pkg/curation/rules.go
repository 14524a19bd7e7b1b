package curation

import "github.com/wixkit/wixkit/db"

// Rules is the curated lint rule catalog: what each rule checks, why
// it matters and how to fix a violation. Keyed by rule id; seeding is
// an upsert so re-running never duplicates rows.
var Rules = []db.Rule{
	{
		RuleID:        "BNDL001",
		Category:      "bundle",
		Severity:      "error",
		Title:         "Bundle is missing an UpgradeCode",
		Description:   "Every Bundle element should declare an UpgradeCode attribute.",
		Rationale:     "The UpgradeCode uniquely identifies the bundle family. Without it, Burn cannot detect existing installations and perform upgrades, leading to multiple side-by-side installations.",
		FixSuggestion: "Add UpgradeCode attribute to the Bundle element: <Bundle UpgradeCode=\"{GUID}\">",
	},
	{
		RuleID:        "BNDL002",
		Category:      "bundle",
		Severity:      "error",
		Title:         "Bundle chain contains no packages",
		Description:   "The Chain element must contain at least one package.",
		Rationale:     "A bundle without packages serves no purpose. The Chain element must contain at least one package (MsiPackage, ExePackage, etc.) to install.",
		FixSuggestion: "Add at least one package element inside the Chain element: <Chain><MsiPackage .../></Chain>",
	},
	{
		RuleID:        "BNDL003",
		Category:      "bundle",
		Severity:      "warning",
		Title:         "ExePackage without DetectCondition",
		Description:   "Exe packages should declare how Burn detects an existing installation.",
		Rationale:     "DetectCondition tells Burn how to check if a package is already installed. Without it, Burn may reinstall packages unnecessarily or fail to detect upgrades.",
		FixSuggestion: "Add DetectCondition attribute with a registry or file check: DetectCondition=\"EXISTS(path) OR REGISTRY_VALUE(...)\"",
	},
	{
		RuleID:        "BNDL004",
		Category:      "bundle",
		Severity:      "error",
		Title:         "Variable shadows a built-in Burn variable",
		Description:   "Bundle variables must not reuse built-in Burn variable names.",
		Rationale:     "Burn has built-in variables like WixBundleVersion, WixBundleName, etc. Defining variables with the same names causes conflicts and unexpected behavior.",
		FixSuggestion: "Rename the variable to avoid conflict with built-in Burn variables. Use a unique prefix for your variables.",
	},
	{
		RuleID:        "BNDL005",
		Category:      "bundle",
		Severity:      "warning",
		Title:         "Non-vital package failure is silently ignored",
		Description:   "Packages with Vital=\"no\" should be reviewed.",
		Rationale:     "When Vital=no, package installation failures are ignored. This may leave the system in a partially installed state without user awareness.",
		FixSuggestion: "Set Vital=\"yes\" (default) or ensure non-vital packages are truly optional and their failure is acceptable.",
	},
	{
		RuleID:        "BNDL007",
		Category:      "bundle",
		Severity:      "warning",
		Title:         "Remote payload without integrity hash",
		Description:   "Payloads with a DownloadUrl should carry a Hash.",
		Rationale:     "Remote payloads downloaded without hash verification can be tampered with. Hash ensures payload integrity and protects against man-in-the-middle attacks.",
		FixSuggestion: "Add Hash attribute with SHA-512 hash of the payload: Hash=\"base64-encoded-hash\"",
	},
	{
		RuleID:        "COMP001",
		Category:      "component",
		Severity:      "error",
		Title:         "Component is missing a Guid",
		Description:   "Every Component element needs a GUID for installer tracking.",
		Rationale:     "Component GUIDs identify components across installations and upgrades. Without a GUID, Windows Installer cannot track the component, breaking repair and upgrade.",
		FixSuggestion: "Add Guid=\"*\" for auto-generation based on component contents, or specify an explicit GUID.",
		AutoFixable:   true,
	},
	{
		RuleID:        "COMP002",
		Category:      "component",
		Severity:      "warning",
		Title:         "Component contains multiple files",
		Description:   "Components should hold a single file.",
		Rationale:     "Components with multiple files complicate repair and patching. If any file is damaged, all files must be restored. One file per component follows ICE guidelines.",
		FixSuggestion: "Split into multiple components with one file each. Use ComponentGroup to keep them organized.",
	},
	{
		RuleID:        "COMP003",
		Category:      "component",
		Severity:      "error",
		Title:         "Component has no KeyPath",
		Description:   "Each component needs a KeyPath resource.",
		Rationale:     "KeyPath identifies the component for installation state. Without it, Windows Installer cannot determine if the component is installed, breaking repair.",
		FixSuggestion: "Add KeyPath=\"yes\" to the primary File element, or set a RegistryValue as the KeyPath.",
		AutoFixable:   true,
	},
	{
		RuleID:        "COMP005",
		Category:      "component",
		Severity:      "error",
		Title:         "Component installs into multiple directories",
		Description:   "All resources of a component must target one directory (ICE57).",
		Rationale:     "ICE57: Components must install all resources to one directory. Multi-directory components cause installation tracking failures.",
		FixSuggestion: "Split the component into separate components, one for each target directory.",
		References:    db.StringSlice{"https://learn.microsoft.com/en-us/windows/win32/msi/ice57"},
	},
	{
		RuleID:        "COMP006",
		Category:      "component",
		Severity:      "warning",
		Title:         "Permanent component with auto-generated Guid",
		Description:   "NeverOverwrite components need stable GUIDs (ICE92).",
		Rationale:     "ICE92: Permanent components (NeverOverwrite) must have stable GUIDs for reference counting. Auto-generated GUIDs change when contents change.",
		FixSuggestion: "Add an explicit Guid attribute with a stable GUID value.",
		References:    db.StringSlice{"https://learn.microsoft.com/en-us/windows/win32/msi/ice92"},
	},
	{
		RuleID:        "DIR001",
		Category:      "directory",
		Severity:      "warning",
		Title:         "Hardcoded absolute path in directory layout",
		Description:   "Directory layouts should build on standard directory properties.",
		Rationale:     "Hardcoded paths like C:\\Program Files break on systems with different configurations. Standard directories adapt automatically.",
		FixSuggestion: "Anchor the layout under a standard directory such as ProgramFilesFolder or CommonAppDataFolder.",
	},
	{
		RuleID:        "DIR002",
		Category:      "directory",
		Severity:      "info",
		Title:         "Empty directory is never created",
		Description:   "A Directory with no content needs an explicit CreateFolder.",
		Rationale:     "Empty directories are not created by default. CreateFolder element explicitly creates the directory during installation.",
		FixSuggestion: "Add a CreateFolder element inside a component targeting the directory.",
		AutoFixable:   true,
	},
	{
		RuleID:        "PKG001",
		Category:      "package",
		Severity:      "warning",
		Title:         "Per-user scope may be unintended",
		Description:   "Packages defaulting to per-user scope should state it explicitly.",
		Rationale:     "Per-user installs don't require elevation but have limitations: no HKLM registry, limited to user profile directories.",
		FixSuggestion: "Set Scope=\"perMachine\" or Scope=\"perUser\" explicitly on the Package element.",
	},
	{
		RuleID:        "SEC001",
		Category:      "security",
		Severity:      "warning",
		Title:         "Public property controls a shortcut directory",
		Description:   "Shortcut directories should not come from public properties.",
		Rationale:     "Public properties can be modified from command line. Using them for shortcut directories is a potential security risk.",
		FixSuggestion: "Use a private property or a standard directory reference for shortcut targets.",
	},
	{
		RuleID:        "SEC002",
		Category:      "security",
		Severity:      "warning",
		Title:         "World-writable ProgramData directory",
		Description:   "Directories under CommonAppDataFolder should restrict write access.",
		Rationale:     "Loose ACLs on shared ProgramData directories let unprivileged users replace files consumed by privileged processes.",
		FixSuggestion: "Set appropriate ACLs on ProgramData directories. Restrict write access to administrators.",
	},
}
