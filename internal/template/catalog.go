package template

import (
	"fmt"
	"strings"

	"github.com/droidgen/droidgen/pkg/models"
)

// BuildStyle selects how plugins and dependencies are spelled in build scripts.
type BuildStyle string

const (
	// StyleGroovy uses Groovy DSL coordinates.
	StyleGroovy BuildStyle = "groovy"
	// StyleKTS uses Kotlin DSL coordinates.
	StyleKTS BuildStyle = "kts"
	// StyleCatalog uses Kotlin DSL with version catalog aliases.
	StyleCatalog BuildStyle = "catalog"
)

// StyleFor returns the build style implied by a configuration.
func StyleFor(c *models.Configuration) BuildStyle {
	switch {
	case c.UsesVersionCatalog():
		return StyleCatalog
	case c.UsesKTS():
		return StyleKTS
	default:
		return StyleGroovy
	}
}

// Version is one entry of the [versions] table.
type Version struct {
	Ref   string
	Value string
}

// Versions used by generated projects.
var versions = map[string]string{
	"agp":                  "8.2.0",
	"kotlin":               "1.9.0",
	"ksp":                  "1.9.0-1.0.13",
	"coreKtx":              "1.12.0",
	"lifecycleRuntimeKtx":  "2.7.0",
	"activityCompose":      "1.8.2",
	"composeBom":           "2023.10.01",
	"appcompat":            "1.6.1",
	"material":             "1.11.0",
	"constraintlayout":     "2.1.4",
	"hilt":                 "2.48",
	"koin":                 "3.5.0",
	"retrofit":             "2.9.0",
	"retrofitKotlinx":      "1.0.0",
	"okhttp":               "4.12.0",
	"gson":                 "2.10.1",
	"moshi":                "1.14.0",
	"ktor":                 "2.3.7",
	"kotlinxSerialization": "1.6.0",
	"datastore":            "1.0.0",
	"room":                 "2.6.1",
	"navigation":           "2.7.6",
	"junit":                "4.13.2",
	"junitVersion":         "1.1.5",
	"espressoCore":         "3.5.1",
}

// Fixed tool versions that are not part of the catalog.
const (
	ComposeCompilerVersion = "1.5.1"
	GradleVersion          = "8.2"
)

// Plugin is a Gradle plugin applied by generated projects.
type Plugin struct {
	// Alias is the key under [plugins] in the version catalog.
	Alias      string
	ID         string
	VersionRef string
}

// Version returns the plugin's pinned version.
func (p Plugin) Version() string { return versions[p.VersionRef] }

// RootDeclaration is the line in the root build script's plugins block.
func (p Plugin) RootDeclaration(style BuildStyle) string {
	switch style {
	case StyleCatalog:
		return fmt.Sprintf("alias(libs.plugins.%s) apply false", p.Alias)
	case StyleKTS:
		return fmt.Sprintf("id(%q) version %q apply false", p.ID, p.Version())
	default:
		return fmt.Sprintf("id '%s' version '%s' apply false", p.ID, p.Version())
	}
}

// AppDeclaration is the line in the app module's plugins block.
func (p Plugin) AppDeclaration(style BuildStyle) string {
	switch style {
	case StyleCatalog:
		return fmt.Sprintf("alias(libs.plugins.%s)", p.Alias)
	case StyleKTS:
		return fmt.Sprintf("id(%q)", p.ID)
	default:
		return fmt.Sprintf("id '%s'", p.ID)
	}
}

// CatalogEntry is the line under [plugins] in libs.versions.toml.
func (p Plugin) CatalogEntry() string {
	return fmt.Sprintf(`%s = { id = "%s", version.ref = "%s" }`, p.Alias, p.ID, p.VersionRef)
}

// Dependency configurations.
const (
	Implementation            = "implementation"
	TestImplementation        = "testImplementation"
	AndroidTestImplementation = "androidTestImplementation"
	DebugImplementation       = "debugImplementation"
	KSP                       = "ksp"
	AnnotationProcessor       = "annotationProcessor"
)

// Library is one dependency declaration of the app module.
type Library struct {
	// Alias is the key under [libraries] in the version catalog.
	Alias string
	Group string
	Name  string
	// VersionRef is empty for artifacts whose version comes from a BOM.
	VersionRef    string
	Configuration string
	Platform      bool
}

// Coordinate returns group:name[:version].
func (l Library) Coordinate() string {
	if l.VersionRef == "" {
		return l.Group + ":" + l.Name
	}
	return l.Group + ":" + l.Name + ":" + versions[l.VersionRef]
}

// Accessor returns the type-safe catalog accessor, libs.a.b.c.
func (l Library) Accessor() string {
	return "libs." + strings.ReplaceAll(l.Alias, "-", ".")
}

// Declaration is the line in the app module's dependencies block.
func (l Library) Declaration(style BuildStyle) string {
	switch style {
	case StyleCatalog:
		ref := l.Accessor()
		if l.Platform {
			ref = "platform(" + ref + ")"
		}
		return fmt.Sprintf("%s(%s)", l.Configuration, ref)
	case StyleKTS:
		ref := fmt.Sprintf("%q", l.Coordinate())
		if l.Platform {
			ref = "platform(" + ref + ")"
		}
		return fmt.Sprintf("%s(%s)", l.Configuration, ref)
	default:
		if l.Platform {
			return fmt.Sprintf("%s platform('%s')", l.Configuration, l.Coordinate())
		}
		return fmt.Sprintf("%s '%s'", l.Configuration, l.Coordinate())
	}
}

// CatalogEntry is the line under [libraries] in libs.versions.toml.
func (l Library) CatalogEntry() string {
	if l.VersionRef == "" {
		return fmt.Sprintf(`%s = { group = "%s", name = "%s" }`, l.Alias, l.Group, l.Name)
	}
	return fmt.Sprintf(`%s = { group = "%s", name = "%s", version.ref = "%s" }`, l.Alias, l.Group, l.Name, l.VersionRef)
}

var (
	pluginAndroidApplication = Plugin{"androidApplication", "com.android.application", "agp"}
	pluginKotlinAndroid      = Plugin{"jetbrainsKotlinAndroid", "org.jetbrains.kotlin.android", "kotlin"}
	pluginHilt               = Plugin{"hiltAndroid", "com.google.dagger.hilt.android", "hilt"}
	pluginSerialization      = Plugin{"kotlinSerialization", "org.jetbrains.kotlin.plugin.serialization", "kotlin"}
	pluginKSP                = Plugin{"ksp", "com.google.devtools.ksp", "ksp"}
)

// Plugins returns the Gradle plugins for a configuration in declaration order.
func Plugins(cfg *models.ProjectConfig) []Plugin {
	c := &cfg.Configuration
	plugins := []Plugin{pluginAndroidApplication}
	if c.IsKotlin() {
		plugins = append(plugins, pluginKotlinAndroid)
	}
	if c.UsesHilt() {
		plugins = append(plugins, pluginHilt)
	}
	if c.IsKotlin() && c.Serialization == models.SerializationKotlinx {
		plugins = append(plugins, pluginSerialization)
	}
	if c.IsKotlin() && (c.UsesHilt() || c.EnableRoom) {
		plugins = append(plugins, pluginKSP)
	}
	return plugins
}

func lib(alias, group, name, ref string) Library {
	return Library{Alias: alias, Group: group, Name: name, VersionRef: ref, Configuration: Implementation}
}

func (l Library) as(configuration string) Library {
	l.Configuration = configuration
	return l
}

func (l Library) platform() Library {
	l.Platform = true
	return l
}

// Libraries returns the app module dependencies for a configuration in
// declaration order.
func Libraries(cfg *models.ProjectConfig) []Library {
	c := &cfg.Configuration
	processor := AnnotationProcessor
	if c.IsKotlin() {
		processor = KSP
	}

	libs := []Library{
		lib("androidx-core-ktx", "androidx.core", "core-ktx", "coreKtx"),
		lib("androidx-lifecycle-runtime-ktx", "androidx.lifecycle", "lifecycle-runtime-ktx", "lifecycleRuntimeKtx"),
		lib("material", "com.google.android.material", "material", "material"),
	}

	composeBom := lib("androidx-compose-bom", "androidx.compose", "compose-bom", "composeBom").platform()
	if c.IsCompose() {
		libs = append(libs,
			lib("androidx-activity-compose", "androidx.activity", "activity-compose", "activityCompose"),
			composeBom,
			lib("androidx-ui", "androidx.compose.ui", "ui", ""),
			lib("androidx-ui-graphics", "androidx.compose.ui", "ui-graphics", ""),
			lib("androidx-ui-tooling-preview", "androidx.compose.ui", "ui-tooling-preview", ""),
		)
		if c.UITheme.IsMaterial3() {
			libs = append(libs, lib("androidx-material3", "androidx.compose.material3", "material3", ""))
		} else {
			libs = append(libs, lib("androidx-compose-material", "androidx.compose.material", "material", ""))
		}
	} else {
		libs = append(libs,
			lib("androidx-appcompat", "androidx.appcompat", "appcompat", "appcompat"),
			lib("androidx-constraintlayout", "androidx.constraintlayout", "constraintlayout", "constraintlayout"),
		)
	}

	switch c.Networking {
	case models.NetworkingRetrofit:
		libs = append(libs,
			lib("retrofit", "com.squareup.retrofit2", "retrofit", "retrofit"),
			lib("okhttp-logging", "com.squareup.okhttp3", "logging-interceptor", "okhttp"),
		)
		switch c.Serialization {
		case models.SerializationGson:
			libs = append(libs, lib("retrofit-converter-gson", "com.squareup.retrofit2", "converter-gson", "retrofit"))
		case models.SerializationMoshi:
			libs = append(libs, lib("retrofit-converter-moshi", "com.squareup.retrofit2", "converter-moshi", "retrofit"))
		case models.SerializationKotlinx:
			if c.IsKotlin() {
				libs = append(libs, lib("retrofit-converter-kotlinx", "com.jakewharton.retrofit", "retrofit2-kotlinx-serialization-converter", "retrofitKotlinx"))
			}
		}
	case models.NetworkingKtor:
		libs = append(libs,
			lib("ktor-client-android", "io.ktor", "ktor-client-android", "ktor"),
			lib("ktor-client-core", "io.ktor", "ktor-client-core", "ktor"),
			lib("ktor-client-logging", "io.ktor", "ktor-client-logging", "ktor"),
		)
		if c.Serialization == models.SerializationKotlinx {
			libs = append(libs,
				lib("ktor-serialization-kotlinx-json", "io.ktor", "ktor-serialization-kotlinx-json", "ktor"),
				lib("ktor-client-content-negotiation", "io.ktor", "ktor-client-content-negotiation", "ktor"),
			)
		}
	}

	switch c.Serialization {
	case models.SerializationGson:
		libs = append(libs, lib("gson", "com.google.code.gson", "gson", "gson"))
	case models.SerializationMoshi:
		libs = append(libs, lib("moshi-kotlin", "com.squareup.moshi", "moshi-kotlin", "moshi"))
	case models.SerializationKotlinx:
		// The serialization compiler plugin only exists for Kotlin sources.
		if c.IsKotlin() {
			libs = append(libs, lib("kotlinx-serialization-json", "org.jetbrains.kotlinx", "kotlinx-serialization-json", "kotlinxSerialization"))
		}
	}

	switch c.DependencyInjection {
	case models.DIHilt:
		libs = append(libs,
			lib("hilt-android", "com.google.dagger", "hilt-android", "hilt"),
			lib("hilt-compiler", "com.google.dagger", "hilt-compiler", "hilt").as(processor),
		)
	case models.DIKoin:
		libs = append(libs, lib("koin-android", "io.insert-koin", "koin-android", "koin"))
		if c.IsCompose() {
			libs = append(libs, lib("koin-androidx-compose", "io.insert-koin", "koin-androidx-compose", "koin"))
		}
	}

	if c.LocalStorage == models.StorageDataStore {
		libs = append(libs, lib("androidx-datastore-preferences", "androidx.datastore", "datastore-preferences", "datastore"))
	}

	if c.EnableRoom {
		libs = append(libs, lib("androidx-room-runtime", "androidx.room", "room-runtime", "room"))
		if c.IsKotlin() {
			libs = append(libs, lib("androidx-room-ktx", "androidx.room", "room-ktx", "room"))
		}
		libs = append(libs, lib("androidx-room-compiler", "androidx.room", "room-compiler", "room").as(processor))
	}

	switch c.Navigation {
	case models.NavigationCompose:
		libs = append(libs, lib("androidx-navigation-compose", "androidx.navigation", "navigation-compose", "navigation"))
	case models.NavigationJetpack:
		libs = append(libs,
			lib("androidx-navigation-fragment-ktx", "androidx.navigation", "navigation-fragment-ktx", "navigation"),
			lib("androidx-navigation-ui-ktx", "androidx.navigation", "navigation-ui-ktx", "navigation"),
		)
	}

	libs = append(libs,
		lib("junit", "junit", "junit", "junit").as(TestImplementation),
		lib("androidx-junit", "androidx.test.ext", "junit", "junitVersion").as(AndroidTestImplementation),
		lib("androidx-espresso-core", "androidx.test.espresso", "espresso-core", "espressoCore").as(AndroidTestImplementation),
	)
	if c.IsCompose() {
		libs = append(libs,
			composeBom.as(AndroidTestImplementation),
			lib("androidx-ui-test-junit4", "androidx.compose.ui", "ui-test-junit4", "").as(AndroidTestImplementation),
			lib("androidx-ui-tooling", "androidx.compose.ui", "ui-tooling", "").as(DebugImplementation),
			lib("androidx-ui-test-manifest", "androidx.compose.ui", "ui-test-manifest", "").as(DebugImplementation),
		)
	}

	return libs
}

// CatalogLibraries returns Libraries deduplicated by alias for the
// [libraries] table.
func CatalogLibraries(libs []Library) []Library {
	seen := make(map[string]bool, len(libs))
	out := make([]Library, 0, len(libs))
	for _, l := range libs {
		if seen[l.Alias] {
			continue
		}
		seen[l.Alias] = true
		out = append(out, l)
	}
	return out
}

// CatalogVersions returns the [versions] entries referenced by plugins and
// libraries, in first-reference order.
func CatalogVersions(plugins []Plugin, libs []Library) []Version {
	seen := make(map[string]bool)
	var out []Version
	add := func(ref string) {
		if ref == "" || seen[ref] {
			return
		}
		seen[ref] = true
		out = append(out, Version{Ref: ref, Value: versions[ref]})
	}
	for _, p := range plugins {
		add(p.VersionRef)
	}
	for _, l := range libs {
		add(l.VersionRef)
	}
	return out
}
