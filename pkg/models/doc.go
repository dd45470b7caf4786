// Package models provides the typed configuration consumed by droidgen.
//
// A [ProjectConfig] is the decoded form of the JSON document uploaded to the
// generation endpoint. It is built once per request by internal/schema and is
// treated as immutable afterwards.
//
// # Feature toggles
//
// Every feature choice is a string type with a closed set of values and an
// IsValid method:
//
//	tk := models.UIToolkitCompose
//	if tk.IsValid() {
//	    fmt.Println("toolkit:", tk)
//	}
//
// # Derived names
//
// [ProjectInfo] derives the names used in generated sources: the archive
// folder name ([ProjectInfo.FolderName]), the theme identifier
// ([ProjectInfo.ThemeName]) and the package directory
// ([ProjectInfo.PackagePath]).
package models
