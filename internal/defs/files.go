package defs

import "io/fs"

// File and directory permissions used when writing generated projects.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
	ExecPerm fs.FileMode = 0o755
)

// Common file names used across the project.
const (
	// SettingsYAML is the default service settings file.
	SettingsYAML = "droidgen.yaml"

	// ConfigJSON is the default output name of the configuration wizard.
	ConfigJSON = "config.json"

	// AndroidManifest is the manifest file name inside app/src/main.
	AndroidManifest = "AndroidManifest.xml"

	// VersionCatalog is the Gradle version catalog path relative to the project root.
	VersionCatalog = "gradle/libs.versions.toml"

	// ZipExt is the extension of generated archives.
	ZipExt = ".zip"
)

// Prefixes for scratch directories and archives created per generation.
const (
	ScratchPrefix = "droidgen-"
	ArchivePrefix = "droidgen-*" + ZipExt
)
