package curation

import "github.com/wixkit/wixkit/db"

// StandardDirectories is the Windows Installer standard directory
// reference used by directory-related rules and editor tooling.
var StandardDirectories = []db.StandardDirectory{
	{DirectoryID: "AdminToolsFolder", Name: "Administrative Tools", Scope: "user", ExamplePath: `%AppData%\Microsoft\Windows\Start Menu\Programs\Administrative Tools`, Description: "Administrative tools folder of the current user."},
	{DirectoryID: "AppDataFolder", Name: "Roaming Application Data", Scope: "user", ExamplePath: `%UserProfile%\AppData\Roaming`, Description: "Per-user roaming application data."},
	{DirectoryID: "CommonAppDataFolder", Name: "Common Application Data", Scope: "machine", ExamplePath: `C:\ProgramData`, Description: "Application data shared by all users."},
	{DirectoryID: "CommonFiles64Folder", Name: "Common Files (64-bit)", Scope: "machine", ExamplePath: `C:\Program Files\Common Files`, Description: "64-bit common files directory."},
	{DirectoryID: "CommonFilesFolder", Name: "Common Files", Scope: "machine", ExamplePath: `C:\Program Files (x86)\Common Files`, Description: "32-bit common files directory."},
	{DirectoryID: "DesktopFolder", Name: "Desktop", Scope: "user", ExamplePath: `%UserProfile%\Desktop`, Description: "Desktop of the current user."},
	{DirectoryID: "FontsFolder", Name: "Fonts", Scope: "machine", ExamplePath: `C:\Windows\Fonts`, Description: "System fonts directory."},
	{DirectoryID: "LocalAppDataFolder", Name: "Local Application Data", Scope: "user", ExamplePath: `%UserProfile%\AppData\Local`, Description: "Per-user non-roaming application data."},
	{DirectoryID: "PersonalFolder", Name: "Documents", Scope: "user", ExamplePath: `%UserProfile%\Documents`, Description: "Documents folder of the current user."},
	{DirectoryID: "ProgramFiles64Folder", Name: "Program Files (64-bit)", Scope: "machine", ExamplePath: `C:\Program Files`, Description: "64-bit program files directory."},
	{DirectoryID: "ProgramFilesFolder", Name: "Program Files", Scope: "machine", ExamplePath: `C:\Program Files (x86)`, Description: "32-bit program files directory."},
	{DirectoryID: "ProgramMenuFolder", Name: "Start Menu Programs", Scope: "user", ExamplePath: `%AppData%\Microsoft\Windows\Start Menu\Programs`, Description: "Start menu programs folder."},
	{DirectoryID: "SendToFolder", Name: "SendTo", Scope: "user", ExamplePath: `%AppData%\Microsoft\Windows\SendTo`, Description: "SendTo menu folder of the current user."},
	{DirectoryID: "StartMenuFolder", Name: "Start Menu", Scope: "user", ExamplePath: `%AppData%\Microsoft\Windows\Start Menu`, Description: "Start menu root of the current user."},
	{DirectoryID: "StartupFolder", Name: "Startup", Scope: "user", ExamplePath: `%AppData%\Microsoft\Windows\Start Menu\Programs\Startup`, Description: "Programs started at logon."},
	{DirectoryID: "System64Folder", Name: "System32 (64-bit)", Scope: "machine", ExamplePath: `C:\Windows\System32`, Description: "64-bit system directory."},
	{DirectoryID: "SystemFolder", Name: "System32 (32-bit)", Scope: "machine", ExamplePath: `C:\Windows\SysWOW64`, Description: "32-bit system directory on 64-bit Windows."},
	{DirectoryID: "TempFolder", Name: "Temp", Scope: "user", ExamplePath: `%Temp%`, Description: "Temporary files directory."},
	{DirectoryID: "WindowsFolder", Name: "Windows", Scope: "machine", ExamplePath: `C:\Windows`, Description: "Windows installation directory."},
}
