package template

// Kind identifies one generated artifact independent of its file name.
type Kind string

// Artifact kinds.
const (
	KindRootBuild         Kind = "root-build"
	KindSettings          Kind = "settings"
	KindVersionCatalog    Kind = "version-catalog"
	KindGradleProperties  Kind = "gradle-properties"
	KindWrapperProperties Kind = "wrapper-properties"
	KindGitignore         Kind = "gitignore"
	KindAppBuild          Kind = "app-build"
	KindProguardRules     Kind = "proguard-rules"
	KindManifest          Kind = "manifest"
	KindMainActivity      Kind = "main-activity"
	KindApplication       Kind = "application"
	KindStrings           Kind = "strings"
	KindColors            Kind = "colors"
	KindThemes            Kind = "themes"
	KindNetworkSecurity   Kind = "network-security-config"
	KindDataExtraction    Kind = "data-extraction-rules"
	KindBackupRules       Kind = "backup-rules"
	KindFilePaths         Kind = "file-paths"
	KindActivityLayout    Kind = "activity-layout"
	KindComposeTheme      Kind = "compose-theme"
	KindComposeColor      Kind = "compose-color"
	KindComposeType       Kind = "compose-type"
	KindUnitTest          Kind = "unit-test"
	KindInstrumentedTest  Kind = "instrumented-test"
)

// AllKinds returns every artifact kind.
func AllKinds() []Kind {
	return []Kind{
		KindRootBuild, KindSettings, KindVersionCatalog, KindGradleProperties,
		KindWrapperProperties, KindGitignore, KindAppBuild, KindProguardRules,
		KindManifest, KindMainActivity, KindApplication, KindStrings, KindColors,
		KindThemes, KindNetworkSecurity, KindDataExtraction, KindBackupRules,
		KindFilePaths, KindActivityLayout, KindComposeTheme, KindComposeColor,
		KindComposeType, KindUnitTest, KindInstrumentedTest,
	}
}

func (k Kind) String() string { return string(k) }

// variant describes how a kind maps to template files.
type variant struct {
	// name is the template path, or a prefix when bySource or byScript is set.
	name string
	// byScript appends ".kts" for Kotlin DSL builds.
	byScript bool
	// bySource appends the source extension (kt or java).
	bySource bool
	// kotlinOnly kinds have no Java template.
	kotlinOnly bool
}

var variants = map[Kind]variant{
	KindRootBuild:         {name: "gradle/build.gradle", byScript: true},
	KindSettings:          {name: "gradle/settings.gradle", byScript: true},
	KindVersionCatalog:    {name: "gradle/libs.versions.toml"},
	KindGradleProperties:  {name: "gradle/gradle.properties"},
	KindWrapperProperties: {name: "gradle/gradle-wrapper.properties"},
	KindGitignore:         {name: "project/gitignore"},
	KindAppBuild:          {name: "gradle/app.build.gradle", byScript: true},
	KindProguardRules:     {name: "project/proguard-rules.pro"},
	KindManifest:          {name: "res/AndroidManifest.xml"},
	KindMainActivity:      {name: "source/MainActivity", bySource: true},
	KindApplication:       {name: "source/Application", bySource: true},
	KindStrings:           {name: "res/strings.xml"},
	KindColors:            {name: "res/colors.xml"},
	KindThemes:            {name: "res/themes.xml"},
	KindNetworkSecurity:   {name: "res/network_security_config.xml"},
	KindDataExtraction:    {name: "res/data_extraction_rules.xml"},
	KindBackupRules:       {name: "res/backup_rules.xml"},
	KindFilePaths:         {name: "res/file_paths.xml"},
	KindActivityLayout:    {name: "res/activity_main.xml"},
	KindComposeTheme:      {name: "compose/Theme", bySource: true, kotlinOnly: true},
	KindComposeColor:      {name: "compose/Color", bySource: true, kotlinOnly: true},
	KindComposeType:       {name: "compose/Type", bySource: true, kotlinOnly: true},
	KindUnitTest:          {name: "source/ExampleUnitTest", bySource: true},
	KindInstrumentedTest:  {name: "source/ExampleInstrumentedTest", bySource: true},
}

// templateNames lists every template file v can select.
func (v variant) templateNames() []string {
	switch {
	case v.bySource && v.kotlinOnly:
		return []string{v.name + ".kt" + TemplateExt}
	case v.bySource:
		return []string{v.name + ".kt" + TemplateExt, v.name + ".java" + TemplateExt}
	case v.byScript:
		return []string{v.name + TemplateExt, v.name + ".kts" + TemplateExt}
	}
	return []string{v.name + TemplateExt}
}
