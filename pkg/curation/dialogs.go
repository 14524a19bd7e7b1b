package curation

import "github.com/wixkit/wixkit/db"

const dialogSourceBase = "https://raw.githubusercontent.com/wixtoolset/wix/HEAD/src/ext/UI/wixlib/"

// Dialogs is the stock WiX UI dialog set shipped by the UI extension
// wixlib. Control layouts are included for the dialogs editor tooling
// renders previews for.
var Dialogs = []db.Dialog{
	{
		Name:        "BrowseDlg",
		Description: "Lets the user browse for an installation directory.",
		Source:      dialogSourceBase + "BrowseDlg.wxs",
		Controls: []db.DialogControl{
			{Control: "PathEdit", Type: "PathEdit", X: 84, Y: 202, Width: 261, Height: 18, Text: "[_BrowseProperty]"},
			{Control: "OK", Type: "PushButton", X: 240, Y: 243, Width: 56, Height: 17, Text: "OK"},
			{Control: "Cancel", Type: "PushButton", X: 304, Y: 243, Width: 56, Height: 17, Text: "Cancel"},
		},
	},
	{
		Name:        "CancelDlg",
		Description: "Asks the user to confirm cancelling the installation.",
		Source:      dialogSourceBase + "CancelDlg.wxs",
		Controls: []db.DialogControl{
			{Control: "Yes", Type: "PushButton", X: 72, Y: 57, Width: 56, Height: 17, Text: "Yes"},
			{Control: "No", Type: "PushButton", X: 132, Y: 57, Width: 56, Height: 17, Text: "No"},
			{Control: "Text", Type: "Text", X: 48, Y: 15, Width: 194, Height: 30, Text: "Are you sure you want to cancel [ProductName] installation?"},
		},
	},
	{Name: "CustomizeDlg", Description: "Feature selection tree for custom installations.", Source: dialogSourceBase + "CustomizeDlg.wxs"},
	{Name: "DiskCostDlg", Description: "Shows disk space requirements per volume.", Source: dialogSourceBase + "DiskCostDlg.wxs"},
	{Name: "ErrorDlg", Description: "Modal error message dialog.", Source: dialogSourceBase + "ErrorDlg.wxs"},
	{Name: "ExitDialog", Description: "Final dialog shown after a successful installation.", Source: dialogSourceBase + "ExitDialog.wxs"},
	{Name: "FatalError", Description: "Shown when setup ends prematurely because of an error.", Source: dialogSourceBase + "FatalError.wxs"},
	{Name: "FeaturesDlg", Description: "Flat feature selection list.", Source: dialogSourceBase + "FeaturesDlg.wxs"},
	{Name: "FilesInUse", Description: "Lists applications holding files that setup needs to update.", Source: dialogSourceBase + "FilesInUse.wxs"},
	{
		Name:        "InstallDirDlg",
		Description: "Lets the user pick the installation directory.",
		Source:      dialogSourceBase + "InstallDirDlg.wxs",
		Controls: []db.DialogControl{
			{Control: "Folder", Type: "PathEdit", X: 20, Y: 100, Width: 320, Height: 18, Text: "[WIXUI_INSTALLDIR]"},
			{Control: "ChangeFolder", Type: "PushButton", X: 20, Y: 120, Width: 56, Height: 17, Text: "Change..."},
			{Control: "Back", Type: "PushButton", X: 180, Y: 243, Width: 56, Height: 17, Text: "Back"},
			{Control: "Next", Type: "PushButton", X: 236, Y: 243, Width: 56, Height: 17, Text: "Next"},
			{Control: "Cancel", Type: "PushButton", X: 304, Y: 243, Width: 56, Height: 17, Text: "Cancel"},
		},
	},
	{Name: "InstallScopeDlg", Description: "Per-user versus per-machine scope selection.", Source: dialogSourceBase + "InstallScopeDlg.wxs"},
	{Name: "LicenseAgreementDlg", Description: "Shows the license and asks for acceptance.", Source: dialogSourceBase + "LicenseAgreementDlg.wxs"},
	{Name: "MaintenanceTypeDlg", Description: "Repair, change or remove selection for maintenance runs.", Source: dialogSourceBase + "MaintenanceTypeDlg.wxs"},
	{Name: "MaintenanceWelcomeDlg", Description: "Welcome dialog for maintenance mode.", Source: dialogSourceBase + "MaintenanceWelcomeDlg.wxs"},
	{Name: "MsiRMFilesInUse", Description: "Restart Manager variant of the files-in-use dialog.", Source: dialogSourceBase + "MsiRMFilesInUse.wxs"},
	{Name: "OutOfDiskDlg", Description: "Not enough disk space to install.", Source: dialogSourceBase + "OutOfDiskDlg.wxs"},
	{Name: "OutOfRbDiskDlg", Description: "Not enough disk space for rollback.", Source: dialogSourceBase + "OutOfRbDiskDlg.wxs"},
	{Name: "PrepareDlg", Description: "Shown while the installer gathers information.", Source: dialogSourceBase + "PrepareDlg.wxs"},
	{Name: "ProgressDlg", Description: "Installation progress bar.", Source: dialogSourceBase + "ProgressDlg.wxs"},
	{Name: "ResumeDlg", Description: "Resumes a suspended installation.", Source: dialogSourceBase + "ResumeDlg.wxs"},
	{Name: "SetupTypeDlg", Description: "Typical, custom or complete setup type selection.", Source: dialogSourceBase + "SetupTypeDlg.wxs"},
	{Name: "UserExit", Description: "Shown when the user cancels the installation.", Source: dialogSourceBase + "UserExit.wxs"},
	{Name: "VerifyReadyDlg", Description: "Last confirmation before installation starts.", Source: dialogSourceBase + "VerifyReadyDlg.wxs"},
	{Name: "WaitForCostingDlg", Description: "Shown while disk costing completes.", Source: dialogSourceBase + "WaitForCostingDlg.wxs"},
	{Name: "WelcomeDlg", Description: "First dialog of the installation wizard.", Source: dialogSourceBase + "WelcomeDlg.wxs"},
	{Name: "WelcomeEulaDlg", Description: "Combined welcome and license dialog.", Source: dialogSourceBase + "WelcomeEulaDlg.wxs"},
}
