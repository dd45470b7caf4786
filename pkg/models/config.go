package models

// DefaultLocale is the locale served by the unqualified values/ directory.
const DefaultLocale = "en"

// ProjectInfo identifies the generated Android application.
type ProjectInfo struct {
	Name       string `json:"name" yaml:"name"`
	Package    string `json:"package" yaml:"package"`
	MinSdk     int    `json:"minSdk" yaml:"minSdk"`
	TargetSdk  int    `json:"targetSdk" yaml:"targetSdk"`
	CompileSdk int    `json:"compileSdk" yaml:"compileSdk"`
}

// I18nConfig lists the locales that receive their own strings file.
// Languages holds Android resource qualifiers (e.g. "fr", "pt-rBR").
type I18nConfig struct {
	Enabled   bool     `json:"enabled" yaml:"enabled"`
	Languages []string `json:"languages" yaml:"languages"`
}

// ThemeColors holds the three seed colors as #RRGGBB or #AARRGGBB.
type ThemeColors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Tertiary  string `json:"tertiary" yaml:"tertiary"`
}

// Configuration is the flat set of feature choices for one project.
type Configuration struct {
	ProjectName          string              `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	ProjectID            string              `json:"projectId,omitempty" yaml:"projectId,omitempty"`
	UIToolkit            UIToolkit           `json:"uiToolkit" yaml:"uiToolkit"`
	Networking           Networking          `json:"networking" yaml:"networking"`
	Serialization        Serialization       `json:"serialization" yaml:"serialization"`
	DependencyInjection  DependencyInjection `json:"dependencyInjection" yaml:"dependencyInjection"`
	LocalStorage         LocalStorage        `json:"localStorage" yaml:"localStorage"`
	EnableRoom           bool                `json:"enableRoom" yaml:"enableRoom"`
	UITheme              UITheme             `json:"uiTheme" yaml:"uiTheme"`
	Permissions          []string            `json:"permissions" yaml:"permissions"`
	Internationalization I18nConfig          `json:"internationalization" yaml:"internationalization"`
	LightDark            bool                `json:"lightDark" yaml:"lightDark"`
	HTTPNetworking       bool                `json:"httpNetworking" yaml:"httpNetworking"`
	ViewBinding          bool                `json:"viewBinding" yaml:"viewBinding"`
	Language             Language            `json:"language" yaml:"language"`
	JavaVersion          JavaVersion         `json:"javaVersion" yaml:"javaVersion"`
	BuildFormat          BuildFormat         `json:"buildFormat" yaml:"buildFormat"`
	ThemeColors          ThemeColors         `json:"themeColors" yaml:"themeColors"`
	FontName             FontName            `json:"fontName,omitempty" yaml:"fontName,omitempty"`
	Navigation           Navigation          `json:"navigation,omitempty" yaml:"navigation,omitempty"`
	UseLibsVersionsToml  bool                `json:"useLibsVersionsToml" yaml:"useLibsVersionsToml"`
}

// ProjectConfig is the root document accepted by the generator.
type ProjectConfig struct {
	Project          ProjectInfo   `json:"project" yaml:"project"`
	Configuration    Configuration `json:"configuration" yaml:"configuration"`
	GeneratedAt      string        `json:"generated_at,omitempty" yaml:"generated_at,omitempty"`
	GeneratorVersion string        `json:"generator_version,omitempty" yaml:"generator_version,omitempty"`
}

// IsCompose reports whether the project uses Jetpack Compose.
func (c *Configuration) IsCompose() bool { return c.UIToolkit == UIToolkitCompose }

// IsKotlin reports whether the project sources are Kotlin.
func (c *Configuration) IsKotlin() bool { return c.Language == LanguageKotlin }

// UsesHilt reports whether Hilt is the DI framework.
func (c *Configuration) UsesHilt() bool { return c.DependencyInjection == DIHilt }

// UsesKTS reports whether build scripts use the Kotlin DSL.
func (c *Configuration) UsesKTS() bool { return c.BuildFormat == BuildKTS }

// UsesVersionCatalog reports whether gradle/libs.versions.toml is emitted.
// The catalog is only offered on the Kotlin DSL path.
func (c *Configuration) UsesVersionCatalog() bool {
	return c.UsesKTS() && c.UseLibsVersionsToml
}

// HasNetworking reports whether an HTTP client library is selected.
func (c *Configuration) HasNetworking() bool {
	return c.Networking != "" && c.Networking != NetworkingNone
}

// SourceDir returns the source set directory name: "kotlin" or "java".
func (c *Configuration) SourceDir() string {
	if c.Language == LanguageJava {
		return "java"
	}
	return "kotlin"
}

// AdditionalLocales returns the configured locales other than the default,
// in configuration order. It is empty when internationalization is disabled.
func (c *Configuration) AdditionalLocales() []string {
	if !c.Internationalization.Enabled {
		return nil
	}
	var out []string
	for _, lang := range c.Internationalization.Languages {
		if lang == DefaultLocale {
			continue
		}
		out = append(out, lang)
	}
	return out
}
