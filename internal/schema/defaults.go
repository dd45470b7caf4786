package schema

import "github.com/droidgen/droidgen/pkg/models"

// Defaults applied to optional configuration fields.
const (
	DefaultNetworking          = models.NetworkingNone
	DefaultSerialization       = models.SerializationNone
	DefaultDependencyInjection = models.DINone
	DefaultLocalStorage        = models.StorageNone
	DefaultUITheme             = models.ThemeMaterial3
	DefaultJavaVersion         = models.Java17
	DefaultBuildFormat         = models.BuildGradle

	DefaultPrimaryColor   = "#6750A4"
	DefaultSecondaryColor = "#625B71"
	DefaultTertiaryColor  = "#7D5260"

	// Lowest and highest API levels accepted for any SDK field.
	MinAPILevel = 1
	MaxAPILevel = 100
)

// legacySerializationKotlinx is the dotted spelling used by older clients.
const legacySerializationKotlinx = "kotlinx.serialization"

// NewDefaultConfig returns a valid configuration for an empty Kotlin/Compose
// project. Callers overwrite the fields they care about.
func NewDefaultConfig() *models.ProjectConfig {
	return &models.ProjectConfig{
		Project: models.ProjectInfo{
			Name:       "My App",
			Package:    "com.example.myapp",
			MinSdk:     24,
			TargetSdk:  34,
			CompileSdk: 34,
		},
		Configuration: models.Configuration{
			UIToolkit:           models.UIToolkitCompose,
			Networking:          DefaultNetworking,
			Serialization:       DefaultSerialization,
			DependencyInjection: DefaultDependencyInjection,
			LocalStorage:        DefaultLocalStorage,
			UITheme:             DefaultUITheme,
			Language:            models.LanguageKotlin,
			JavaVersion:         DefaultJavaVersion,
			BuildFormat:         DefaultBuildFormat,
			Permissions:         []string{},
			Internationalization: models.I18nConfig{
				Languages: []string{},
			},
			ThemeColors: models.ThemeColors{
				Primary:   DefaultPrimaryColor,
				Secondary: DefaultSecondaryColor,
				Tertiary:  DefaultTertiaryColor,
			},
		},
	}
}
