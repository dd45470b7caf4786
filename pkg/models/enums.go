package models

import "slices"

// UIToolkit selects the UI layer of the generated app.
type UIToolkit string

const (
	UIToolkitCompose UIToolkit = "jetpack-compose"
	UIToolkitXML     UIToolkit = "xml-views"
)

// ValidUIToolkits returns all valid UI toolkit values.
func ValidUIToolkits() []UIToolkit { return []UIToolkit{UIToolkitCompose, UIToolkitXML} }

// IsValid checks if the toolkit is a known value.
func (v UIToolkit) IsValid() bool { return slices.Contains(ValidUIToolkits(), v) }

// Networking selects the HTTP client library.
type Networking string

const (
	NetworkingRetrofit Networking = "retrofit"
	NetworkingKtor     Networking = "ktor"
	NetworkingNone     Networking = "none"
)

// ValidNetworking returns all valid networking values.
func ValidNetworking() []Networking {
	return []Networking{NetworkingRetrofit, NetworkingKtor, NetworkingNone}
}

// IsValid checks if the networking library is a known value.
func (v Networking) IsValid() bool { return slices.Contains(ValidNetworking(), v) }

// Serialization selects the JSON serialization library.
type Serialization string

const (
	SerializationGson    Serialization = "gson"
	SerializationMoshi   Serialization = "moshi"
	SerializationKotlinx Serialization = "kotlinx-serialization"
	SerializationNone    Serialization = "none"
)

// ValidSerializations returns all valid serialization values.
func ValidSerializations() []Serialization {
	return []Serialization{SerializationGson, SerializationMoshi, SerializationKotlinx, SerializationNone}
}

// IsValid checks if the serialization library is a known value.
func (v Serialization) IsValid() bool { return slices.Contains(ValidSerializations(), v) }

// DependencyInjection selects the DI framework.
type DependencyInjection string

const (
	DIHilt DependencyInjection = "hilt"
	DIKoin DependencyInjection = "koin"
	DINone DependencyInjection = "none"
)

// ValidDependencyInjections returns all valid DI values.
func ValidDependencyInjections() []DependencyInjection {
	return []DependencyInjection{DIHilt, DIKoin, DINone}
}

// IsValid checks if the DI framework is a known value.
func (v DependencyInjection) IsValid() bool { return slices.Contains(ValidDependencyInjections(), v) }

// LocalStorage selects the key-value storage library.
type LocalStorage string

const (
	StorageDataStore         LocalStorage = "datastore"
	StorageSharedPreferences LocalStorage = "shared-preferences"
	StorageNone              LocalStorage = "none"
)

// ValidLocalStorages returns all valid local storage values.
func ValidLocalStorages() []LocalStorage {
	return []LocalStorage{StorageDataStore, StorageSharedPreferences, StorageNone}
}

// IsValid checks if the storage choice is a known value.
func (v LocalStorage) IsValid() bool { return slices.Contains(ValidLocalStorages(), v) }

// UITheme selects the Material design generation.
type UITheme string

const (
	ThemeMaterial            UITheme = "material"
	ThemeMaterial3           UITheme = "material3"
	ThemeMaterial3Expressive UITheme = "material3-expressive"
)

// ValidUIThemes returns all valid theme values.
func ValidUIThemes() []UITheme {
	return []UITheme{ThemeMaterial, ThemeMaterial3, ThemeMaterial3Expressive}
}

// IsValid checks if the theme is a known value.
func (v UITheme) IsValid() bool { return slices.Contains(ValidUIThemes(), v) }

// IsMaterial3 reports whether the theme belongs to the Material 3 family.
func (v UITheme) IsMaterial3() bool {
	return v == ThemeMaterial3 || v == ThemeMaterial3Expressive
}

// Language selects the source language of the generated app.
type Language string

const (
	LanguageKotlin Language = "kotlin"
	LanguageJava   Language = "java"
)

// ValidLanguages returns all valid source languages.
func ValidLanguages() []Language { return []Language{LanguageKotlin, LanguageJava} }

// IsValid checks if the language is a known value.
func (v Language) IsValid() bool { return slices.Contains(ValidLanguages(), v) }

// SourceExt returns the source file extension without the dot.
func (v Language) SourceExt() string {
	if v == LanguageJava {
		return "java"
	}
	return "kt"
}

// JavaVersion selects the JVM bytecode target.
type JavaVersion string

const (
	Java11 JavaVersion = "11"
	Java17 JavaVersion = "17"
	Java21 JavaVersion = "21"
)

// ValidJavaVersions returns all valid JVM targets.
func ValidJavaVersions() []JavaVersion { return []JavaVersion{Java11, Java17, Java21} }

// IsValid checks if the JVM target is a known value.
func (v JavaVersion) IsValid() bool { return slices.Contains(ValidJavaVersions(), v) }

// BuildFormat selects the Gradle script dialect.
type BuildFormat string

const (
	BuildGradle BuildFormat = "gradle"
	BuildKTS    BuildFormat = "kts"
)

// ValidBuildFormats returns all valid build formats.
func ValidBuildFormats() []BuildFormat { return []BuildFormat{BuildGradle, BuildKTS} }

// IsValid checks if the build format is a known value.
func (v BuildFormat) IsValid() bool { return slices.Contains(ValidBuildFormats(), v) }

// Navigation selects the navigation library. The empty value means none.
type Navigation string

const (
	NavigationNone    Navigation = ""
	NavigationCompose Navigation = "compose-navigation"
	NavigationJetpack Navigation = "jetpack-navigation"
)

// ValidNavigations returns all valid non-empty navigation values.
func ValidNavigations() []Navigation { return []Navigation{NavigationCompose, NavigationJetpack} }

// IsValid checks if the navigation choice is empty or a known value.
func (v Navigation) IsValid() bool {
	return v == NavigationNone || slices.Contains(ValidNavigations(), v)
}

// FontName selects a bundled font family. The empty value means the platform default.
type FontName string

const (
	FontNone     FontName = ""
	FontRoboto   FontName = "roboto"
	FontPoppins  FontName = "poppins"
	FontInter    FontName = "inter"
	FontOpenSans FontName = "open sans"
	FontLato     FontName = "lato"
)

// ValidFontNames returns all valid non-empty font names.
func ValidFontNames() []FontName {
	return []FontName{FontRoboto, FontPoppins, FontInter, FontOpenSans, FontLato}
}

// IsValid checks if the font is empty or a known value.
func (v FontName) IsValid() bool {
	return v == FontNone || slices.Contains(ValidFontNames(), v)
}

// IsCustom reports whether the font needs bundled font resources.
// Roboto ships with the platform.
func (v FontName) IsCustom() bool {
	return v != FontNone && v != FontRoboto
}
