package template

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/droidgen/droidgen/internal/permission"
	"github.com/droidgen/droidgen/pkg/models"
)

// FontInfo describes the custom font family referenced from Compose
// typography.
type FontInfo struct {
	Enabled bool
	// Family is the Kotlin identifier prefix, e.g. "OpenSans".
	Family string
	// Resource is the font resource prefix, e.g. "open_sans".
	Resource string
}

// Context holds the render data for one generation. It is built once by
// NewContext and never mutated by templates.
type Context struct {
	// Project identity
	AppName          string
	Package          string
	PackagePath      string
	FolderName       string
	ThemeName        string
	ApplicationClass string

	// SDK levels
	MinSdk     int
	TargetSdk  int
	CompileSdk int

	// Toolchain
	JavaVersion            string
	ComposeCompilerVersion string
	GradleVersion          string
	Style                  BuildStyle
	Kotlin                 bool
	KTS                    bool
	UseCatalog             bool

	// UI
	Compose           bool
	Material3         bool
	Expressive        bool
	ThemeParent       string
	LightDark         bool
	ViewBinding       bool
	ComposeNavigation bool
	JetpackNavigation bool
	Colors            models.ThemeColors
	Font              FontInfo

	// Libraries
	Hilt                 bool
	Koin                 bool
	Networking           bool
	Retrofit             bool
	Ktor                 bool
	Gson                 bool
	Moshi                bool
	KotlinxSerialization bool
	DataStore            bool
	SharedPreferences    bool
	Room                 bool
	HTTPNetworking       bool

	// Manifest
	Permissions []permission.UsesPermission
	Features    []string

	// Build scripts
	Plugins          []Plugin
	Libraries        []Library
	CatalogLibraries []Library
	CatalogVersions  []Version

	// Meta
	GeneratorVersion string

	tags map[string]bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithGeneratorVersion records the generator version in the context.
func WithGeneratorVersion(v string) ContextOption {
	return func(c *Context) {
		c.GeneratorVersion = v
	}
}

// WithComposeCompiler overrides the Compose compiler extension version.
func WithComposeCompiler(v string) ContextOption {
	return func(c *Context) {
		if v != "" {
			c.ComposeCompilerVersion = v
		}
	}
}

// NewContext derives render data from a validated configuration, then
// applies any provided options.
func NewContext(cfg *models.ProjectConfig, opts ...ContextOption) *Context {
	p := cfg.Project
	c := &cfg.Configuration
	theme := p.ThemeName()

	res := permission.Resolve(c.Permissions, p.TargetSdk)
	plugins := Plugins(cfg)
	libs := Libraries(cfg)

	ctx := &Context{
		AppName:          p.Name,
		Package:          p.Package,
		PackagePath:      p.PackagePath(),
		FolderName:       p.FolderName(),
		ThemeName:        theme,
		ApplicationClass: theme + "Application",

		MinSdk:     p.MinSdk,
		TargetSdk:  p.TargetSdk,
		CompileSdk: p.CompileSdk,

		JavaVersion:            string(c.JavaVersion),
		ComposeCompilerVersion: ComposeCompilerVersion,
		GradleVersion:          GradleVersion,
		Style:                  StyleFor(c),
		Kotlin:                 c.IsKotlin(),
		KTS:                    c.UsesKTS(),
		UseCatalog:             c.UsesVersionCatalog(),

		Compose:           c.IsCompose(),
		Material3:         c.UITheme.IsMaterial3(),
		Expressive:        c.UITheme == models.ThemeMaterial3Expressive,
		ThemeParent:       themeParent(c.UITheme),
		LightDark:         c.LightDark,
		ViewBinding:       c.ViewBinding,
		ComposeNavigation: c.Navigation == models.NavigationCompose,
		JetpackNavigation: c.Navigation == models.NavigationJetpack,
		Colors:            c.ThemeColors,
		Font:              fontInfo(c.FontName),

		Hilt:                 c.UsesHilt(),
		Koin:                 c.DependencyInjection == models.DIKoin,
		Networking:           c.HasNetworking(),
		Retrofit:             c.Networking == models.NetworkingRetrofit,
		Ktor:                 c.Networking == models.NetworkingKtor,
		Gson:                 c.Serialization == models.SerializationGson,
		Moshi:                c.Serialization == models.SerializationMoshi,
		KotlinxSerialization: c.Serialization == models.SerializationKotlinx && c.IsKotlin(),
		DataStore:            c.LocalStorage == models.StorageDataStore,
		SharedPreferences:    c.LocalStorage == models.StorageSharedPreferences,
		Room:                 c.EnableRoom,
		HTTPNetworking:       c.HTTPNetworking,

		Permissions: res.Permissions,
		Features:    res.Features,

		Plugins:          plugins,
		Libraries:        libs,
		CatalogLibraries: CatalogLibraries(libs),
		CatalogVersions:  CatalogVersions(plugins, libs),

		GeneratorVersion: cfg.GeneratorVersion,
		tags:             make(map[string]bool, len(c.Permissions)),
	}
	for _, t := range c.Permissions {
		ctx.tags[strings.ToLower(strings.TrimSpace(t))] = true
	}

	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// HasTag reports whether the configuration requested a permission tag.
func (c *Context) HasTag(tag string) bool {
	return c.tags[strings.ToLower(tag)]
}

func themeParent(t models.UITheme) string {
	switch t {
	case models.ThemeMaterial3:
		return "Theme.Material3.DayNight.NoActionBar"
	case models.ThemeMaterial3Expressive:
		return "Theme.Material3.DynamicColors.DayNight.NoActionBar"
	default:
		return "Theme.MaterialComponents.DayNight.NoActionBar"
	}
}

var titleCaser = cases.Title(language.English)

func fontInfo(f models.FontName) FontInfo {
	if !f.IsCustom() {
		return FontInfo{}
	}
	words := strings.Fields(string(f))
	return FontInfo{
		Enabled:  true,
		Family:   strings.ReplaceAll(titleCaser.String(string(f)), " ", ""),
		Resource: strings.Join(words, "_"),
	}
}

// Locale describes one string resource locale.
type Locale struct {
	// Qualifier is the resource directory suffix, e.g. "pt-rBR".
	Qualifier string
	// Name is the English display name, e.g. "Brazilian Portuguese".
	Name string
}

// NewLocale builds a Locale from a resource qualifier. Qualifiers in the
// b+lang+Script form and lang-rREGION form are both understood.
func NewLocale(qualifier string) Locale {
	tag := qualifier
	switch {
	case strings.HasPrefix(tag, "b+"):
		tag = strings.ReplaceAll(strings.TrimPrefix(tag, "b+"), "+", "-")
	case strings.Contains(tag, "-r"):
		tag = strings.Replace(tag, "-r", "-", 1)
	}

	name := qualifier
	if t, err := language.Parse(tag); err == nil {
		if n := display.English.Tags().Name(t); n != "" {
			name = n
		}
	}
	return Locale{Qualifier: qualifier, Name: name}
}
