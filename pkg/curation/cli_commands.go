package curation

import "github.com/wixkit/wixkit/db"

// CliCommands documents the wix.exe command line surface.
var CliCommands = []db.CliCommand{
	{
		Command:     "build",
		Syntax:      "wix build [options] sourcefile [sourcefile ...]",
		Description: "Compiles and links WiX source files into an MSI, MSM or bundle.",
		Examples:    db.StringSlice{"wix build Product.wxs -o Product.msi", "wix build -arch x64 -d Version=1.2.3 Product.wxs"},
	},
	{
		Command:     "convert",
		Syntax:      "wix convert [options] sourcefile [sourcefile ...]",
		Description: "Converts WiX v3 authoring to the v4 format in place.",
		Examples:    db.StringSlice{"wix convert Product.wxs"},
	},
	{
		Command:     "extension add",
		Syntax:      "wix extension add [options] extensionRef",
		Description: "Adds a WiX extension package to the project.",
		Examples:    db.StringSlice{"wix extension add WixToolset.UI.wixext", "wix extension add -g WixToolset.Util.wixext/4.0.0"},
	},
	{
		Command:     "extension list",
		Syntax:      "wix extension list [options]",
		Description: "Lists the WiX extensions available to the build.",
		Examples:    db.StringSlice{"wix extension list", "wix extension list -g"},
	},
	{
		Command:     "msi validate",
		Syntax:      "wix msi validate [options] file.msi",
		Description: "Runs ICE validation against a built MSI package.",
		Examples:    db.StringSlice{"wix msi validate Product.msi"},
	},
	{
		Command:     "msi decompile",
		Syntax:      "wix msi decompile [options] file.msi",
		Description: "Decompiles an MSI package back into WiX authoring.",
		Examples:    db.StringSlice{"wix msi decompile Product.msi -o Product.wxs"},
	},
	{
		Command:     "burn detach",
		Syntax:      "wix burn detach [options] bundle.exe",
		Description: "Detaches the burn engine from a bundle for signing.",
		Examples:    db.StringSlice{"wix burn detach Bundle.exe -engine engine.exe"},
	},
	{
		Command:     "burn reattach",
		Syntax:      "wix burn reattach [options] bundle.exe",
		Description: "Reattaches a signed burn engine to a bundle.",
		Examples:    db.StringSlice{"wix burn reattach Bundle.exe -engine engine.exe -o Signed.exe"},
	},
}
