package project

import (
	"path"

	"github.com/droidgen/droidgen/internal/defs"
	"github.com/droidgen/droidgen/internal/template"
	"github.com/droidgen/droidgen/pkg/models"
)

// Entry is one file the assembler will write.
type Entry struct {
	// Path is slash-separated and relative to the project root.
	Path string
	Kind template.Kind
	// Locale is the resource qualifier for localized string files.
	Locale string
	// Dark marks the values-night theme file.
	Dark bool
}

// RenderOptions returns the per-artifact render options for the entry.
func (e Entry) RenderOptions() []template.RenderOption {
	var opts []template.RenderOption
	if e.Locale != "" {
		opts = append(opts, template.WithLocale(e.Locale))
	}
	if e.Dark {
		opts = append(opts, template.WithDarkVariant())
	}
	return opts
}

// Fixed locations inside the project root.
const (
	appDir      = "app"
	mainDir     = "app/src/main"
	resDir      = "app/src/main/res"
	wrapperDir  = "gradle/wrapper"
	fontResDir  = "app/src/main/res/font"
	testDir     = "app/src/test"
	androidTest = "app/src/androidTest"
)

// resourceDirs are created under res/ for every project.
var resourceDirs = []string{
	"layout",
	"values",
	"values-night",
	"drawable",
	"mipmap-hdpi",
	"mipmap-mdpi",
	"mipmap-xhdpi",
	"mipmap-xxhdpi",
	"mipmap-xxxhdpi",
	"xml",
	"font",
}

// sourceRoot returns app/src/<set>/<kotlin|java>/<package path>.
func sourceRoot(set string, cfg *models.ProjectConfig) string {
	return path.Join(set, cfg.Configuration.SourceDir(), cfg.Project.PackagePath())
}

// Directories returns the directory skeleton for a configuration, relative
// to the project root, in creation order.
func Directories(cfg *models.ProjectConfig) []string {
	c := &cfg.Configuration
	main := sourceRoot(mainDir, cfg)

	dirs := []string{main}
	for _, d := range resourceDirs {
		dirs = append(dirs, path.Join(resDir, d))
	}
	dirs = append(dirs,
		wrapperDir,
		sourceRoot(testDir, cfg),
		sourceRoot(androidTest, cfg),
	)
	if c.IsCompose() {
		dirs = append(dirs, path.Join(main, "ui", "theme"))
	}
	for _, q := range c.AdditionalLocales() {
		dirs = append(dirs, path.Join(resDir, "values-"+q))
	}
	return dirs
}

// Plan returns every file the assembler writes for a configuration, in
// write order. It performs no I/O.
func Plan(cfg *models.ProjectConfig) []Entry {
	c := &cfg.Configuration
	ext := c.Language.SourceExt()
	script := ""
	if c.UsesKTS() {
		script = ".kts"
	}
	main := sourceRoot(mainDir, cfg)
	theme := cfg.Project.ThemeName()

	entries := []Entry{
		{Path: "build.gradle" + script, Kind: template.KindRootBuild},
		{Path: "settings.gradle" + script, Kind: template.KindSettings},
		{Path: "gradle.properties", Kind: template.KindGradleProperties},
	}
	if c.UsesVersionCatalog() {
		entries = append(entries, Entry{Path: defs.VersionCatalog, Kind: template.KindVersionCatalog})
	}
	entries = append(entries,
		Entry{Path: path.Join(wrapperDir, "gradle-wrapper.properties"), Kind: template.KindWrapperProperties},
		Entry{Path: ".gitignore", Kind: template.KindGitignore},
		Entry{Path: path.Join(appDir, "build.gradle"+script), Kind: template.KindAppBuild},
		Entry{Path: path.Join(appDir, "proguard-rules.pro"), Kind: template.KindProguardRules},
		Entry{Path: path.Join(mainDir, defs.AndroidManifest), Kind: template.KindManifest},
		Entry{Path: path.Join(main, "MainActivity."+ext), Kind: template.KindMainActivity},
	)

	if c.UsesHilt() {
		entries = append(entries, Entry{Path: path.Join(main, theme+"Application."+ext), Kind: template.KindApplication})
	}
	if c.IsCompose() && c.IsKotlin() {
		themeDir := path.Join(main, "ui", "theme")
		entries = append(entries,
			Entry{Path: path.Join(themeDir, "Theme.kt"), Kind: template.KindComposeTheme},
			Entry{Path: path.Join(themeDir, "Color.kt"), Kind: template.KindComposeColor},
			Entry{Path: path.Join(themeDir, "Type.kt"), Kind: template.KindComposeType},
		)
	}

	entries = append(entries, Entry{Path: path.Join(resDir, "values", "strings.xml"), Kind: template.KindStrings})
	for _, q := range c.AdditionalLocales() {
		entries = append(entries, Entry{
			Path:   path.Join(resDir, "values-"+q, "strings.xml"),
			Kind:   template.KindStrings,
			Locale: q,
		})
	}
	entries = append(entries,
		Entry{Path: path.Join(resDir, "values", "colors.xml"), Kind: template.KindColors},
		Entry{Path: path.Join(resDir, "values", "themes.xml"), Kind: template.KindThemes},
	)
	if c.LightDark {
		entries = append(entries, Entry{Path: path.Join(resDir, "values-night", "themes.xml"), Kind: template.KindThemes, Dark: true})
	}
	if !c.IsCompose() {
		entries = append(entries, Entry{Path: path.Join(resDir, "layout", "activity_main.xml"), Kind: template.KindActivityLayout})
	}

	entries = append(entries,
		Entry{Path: path.Join(resDir, "xml", "data_extraction_rules.xml"), Kind: template.KindDataExtraction},
		Entry{Path: path.Join(resDir, "xml", "backup_rules.xml"), Kind: template.KindBackupRules},
	)
	if c.HasNetworking() {
		entries = append(entries, Entry{Path: path.Join(resDir, "xml", "file_paths.xml"), Kind: template.KindFilePaths})
	}
	if c.HTTPNetworking {
		entries = append(entries, Entry{Path: path.Join(resDir, "xml", "network_security_config.xml"), Kind: template.KindNetworkSecurity})
	}

	entries = append(entries,
		Entry{Path: path.Join(sourceRoot(testDir, cfg), "ExampleUnitTest."+ext), Kind: template.KindUnitTest},
		Entry{Path: path.Join(sourceRoot(androidTest, cfg), "ExampleInstrumentedTest."+ext), Kind: template.KindInstrumentedTest},
	)
	return entries
}
