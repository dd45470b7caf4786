package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/droidgen/droidgen/internal/permission"
	"github.com/droidgen/droidgen/internal/schema"
	"github.com/droidgen/droidgen/pkg/models"
)

// Question IDs understood by Apply.
const (
	QProjectName    = "project_name"
	QPackage        = "package"
	QMinSdk         = "min_sdk"
	QTargetSdk      = "target_sdk"
	QCompileSdk     = "compile_sdk"
	QLanguage       = "language"
	QUIToolkit      = "ui_toolkit"
	QUITheme        = "ui_theme"
	QLightDark      = "light_dark"
	QViewBinding    = "view_binding"
	QNavigation     = "navigation"
	QBuildFormat    = "build_format"
	QVersionCatalog = "version_catalog"
	QJavaVersion    = "java_version"
	QNetworking     = "networking"
	QHTTPNetworking = "http_networking"
	QSerialization  = "serialization"
	QDI             = "dependency_injection"
	QLocalStorage   = "local_storage"
	QRoom           = "room"
	QPermissions    = "permissions"
	QLanguages      = "languages"
	QFont           = "font"
)

// commonLocales are offered by the languages question. Any BCP 47 tag is
// accepted in a configuration file; the wizard keeps the list short.
var commonLocales = []Option{
	{Label: "French", Value: "fr"},
	{Label: "German", Value: "de"},
	{Label: "Spanish", Value: "es"},
	{Label: "Italian", Value: "it"},
	{Label: "Portuguese (Brazil)", Value: "pt-BR"},
	{Label: "Japanese", Value: "ja"},
	{Label: "Korean", Value: "ko"},
	{Label: "Chinese (Simplified)", Value: "zh-Hans"},
	{Label: "Arabic", Value: "ar"},
	{Label: "Hindi", Value: "hi"},
}

// DefaultQuestions returns the standard question set. Defaults are taken
// from base, so the wizard can edit an existing configuration.
func DefaultQuestions(base *models.ProjectConfig) []Question {
	p, c := base.Project, base.Configuration

	return []Question{
		{
			ID:       QProjectName,
			Type:     QuestionTypeInput,
			Title:    "Application name",
			Default:  p.Name,
			Required: true,
		},
		{
			ID:          QPackage,
			Type:        QuestionTypeInput,
			Title:       "Package name",
			Description: "Reverse-domain application id, e.g. com.example.app",
			Default:     p.Package,
			Required:    true,
			Check: func(v string) error {
				if !schema.ValidPackage(v) {
					return errors.New("must be a dotted identifier with at least two segments")
				}
				return nil
			},
		},
		sdkQuestion(QMinSdk, "Minimum SDK", p.MinSdk),
		sdkQuestion(QTargetSdk, "Target SDK", p.TargetSdk),
		sdkQuestion(QCompileSdk, "Compile SDK", p.CompileSdk),
		{
			ID:    QLanguage,
			Type:  QuestionTypeSelect,
			Title: "Source language",
			Options: []Option{
				{Label: "Kotlin", Value: string(models.LanguageKotlin)},
				{Label: "Java", Value: string(models.LanguageJava)},
			},
			Default: string(c.Language),
		},
		{
			ID:    QUIToolkit,
			Type:  QuestionTypeSelect,
			Title: "UI toolkit",
			Options: []Option{
				{Label: "Jetpack Compose", Value: string(models.UIToolkitCompose)},
				{Label: "XML views", Value: string(models.UIToolkitXML)},
			},
			Default: string(c.UIToolkit),
		},
		{
			ID:    QUITheme,
			Type:  QuestionTypeSelect,
			Title: "Material theme",
			Options: []Option{
				{Label: "Material 3", Value: string(models.ThemeMaterial3)},
				{Label: "Material 3 Expressive", Value: string(models.ThemeMaterial3Expressive), Desc: "dynamic color"},
				{Label: "Material 2", Value: string(models.ThemeMaterial)},
			},
			Default: string(c.UITheme),
		},
		{
			ID:      QLightDark,
			Type:    QuestionTypeConfirm,
			Title:   "Generate a dark theme variant?",
			Default: strconv.FormatBool(c.LightDark),
		},
		{
			ID:        QViewBinding,
			Type:      QuestionTypeConfirm,
			Title:     "Enable view binding?",
			Default:   strconv.FormatBool(c.ViewBinding),
			Condition: func(cfg *models.ProjectConfig) bool { return !cfg.Configuration.IsCompose() },
		},
		{
			ID:    QNavigation,
			Type:  QuestionTypeSelect,
			Title: "Navigation",
			Options: []Option{
				{Label: "None", Value: "none"},
				{Label: "Compose Navigation", Value: string(models.NavigationCompose)},
				{Label: "Jetpack Navigation (fragments)", Value: string(models.NavigationJetpack)},
			},
			Default: navigationValue(c.Navigation),
		},
		{
			ID:    QBuildFormat,
			Type:  QuestionTypeSelect,
			Title: "Build script format",
			Options: []Option{
				{Label: "Groovy (build.gradle)", Value: string(models.BuildGradle)},
				{Label: "Kotlin DSL (build.gradle.kts)", Value: string(models.BuildKTS)},
			},
			Default: string(c.BuildFormat),
		},
		{
			ID:        QVersionCatalog,
			Type:      QuestionTypeConfirm,
			Title:     "Use a version catalog (libs.versions.toml)?",
			Default:   strconv.FormatBool(c.UseLibsVersionsToml),
			Condition: func(cfg *models.ProjectConfig) bool { return cfg.Configuration.UsesKTS() },
		},
		enumQuestion(QJavaVersion, "Java version", models.ValidJavaVersions(), c.JavaVersion),
		enumQuestion(QNetworking, "Networking library", models.ValidNetworking(), c.Networking),
		{
			ID:          QHTTPNetworking,
			Type:        QuestionTypeConfirm,
			Title:       "Allow cleartext HTTP?",
			Description: "Adds a network security config permitting cleartext traffic",
			Default:     strconv.FormatBool(c.HTTPNetworking),
			Condition:   func(cfg *models.ProjectConfig) bool { return cfg.Configuration.HasNetworking() },
		},
		enumQuestion(QSerialization, "Serialization library", models.ValidSerializations(), c.Serialization),
		enumQuestion(QDI, "Dependency injection", models.ValidDependencyInjections(), c.DependencyInjection),
		enumQuestion(QLocalStorage, "Local storage", models.ValidLocalStorages(), c.LocalStorage),
		{
			ID:      QRoom,
			Type:    QuestionTypeConfirm,
			Title:   "Add Room database?",
			Default: strconv.FormatBool(c.EnableRoom),
		},
		{
			ID:      QPermissions,
			Type:    QuestionTypeMultiSelect,
			Title:   "Permissions",
			Options: tagOptions(permission.KnownTags()),
			Default: strings.Join(c.Permissions, ","),
		},
		{
			ID:          QLanguages,
			Type:        QuestionTypeMultiSelect,
			Title:       "Additional languages",
			Description: "English strings are always generated",
			Options:     commonLocales,
			Default:     strings.Join(c.Internationalization.Languages, ","),
		},
		{
			ID:    QFont,
			Type:  QuestionTypeSelect,
			Title: "Font family",
			Options: append([]Option{{Label: "Platform default", Value: "none"}},
				tagOptions(fontNames())...),
			Default: fontValue(c.FontName),
		},
	}
}

func sdkQuestion(id, title string, def int) Question {
	return Question{
		ID:       id,
		Type:     QuestionTypeInput,
		Title:    title,
		Default:  strconv.Itoa(def),
		Required: true,
		Check: func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < schema.MinAPILevel || n > schema.MaxAPILevel {
				return fmt.Errorf("must be an API level between %d and %d", schema.MinAPILevel, schema.MaxAPILevel)
			}
			return nil
		},
	}
}

func enumQuestion[T ~string](id, title string, values []T, def T) Question {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Label: string(v), Value: string(v)}
	}
	return Question{ID: id, Type: QuestionTypeSelect, Title: title, Options: opts, Default: string(def)}
}

func tagOptions(tags []string) []Option {
	opts := make([]Option, len(tags))
	for i, t := range tags {
		opts[i] = Option{Label: t, Value: t}
	}
	return opts
}

func fontNames() []string {
	fonts := models.ValidFontNames()
	out := make([]string, len(fonts))
	for i, f := range fonts {
		out[i] = string(f)
	}
	return out
}

func navigationValue(n models.Navigation) string {
	if n == models.NavigationNone {
		return "none"
	}
	return string(n)
}

func fontValue(f models.FontName) string {
	if f == models.FontNone {
		return "none"
	}
	return string(f)
}

// Apply stores one answer in cfg. Multi-select answers are comma-separated.
func Apply(id, value string, cfg *models.ProjectConfig) error {
	p, c := &cfg.Project, &cfg.Configuration

	switch id {
	case QProjectName:
		p.Name = value
	case QPackage:
		p.Package = value
	case QMinSdk, QTargetSdk, QCompileSdk:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		switch id {
		case QMinSdk:
			p.MinSdk = n
		case QTargetSdk:
			p.TargetSdk = n
		default:
			p.CompileSdk = n
		}
	case QLanguage:
		c.Language = models.Language(value)
	case QUIToolkit:
		c.UIToolkit = models.UIToolkit(value)
	case QUITheme:
		c.UITheme = models.UITheme(value)
	case QLightDark:
		c.LightDark = value == "true"
	case QViewBinding:
		c.ViewBinding = value == "true"
	case QNavigation:
		if value == "none" {
			value = ""
		}
		c.Navigation = models.Navigation(value)
	case QBuildFormat:
		c.BuildFormat = models.BuildFormat(value)
	case QVersionCatalog:
		c.UseLibsVersionsToml = value == "true"
	case QJavaVersion:
		c.JavaVersion = models.JavaVersion(value)
	case QNetworking:
		c.Networking = models.Networking(value)
	case QHTTPNetworking:
		c.HTTPNetworking = value == "true"
	case QSerialization:
		c.Serialization = models.Serialization(value)
	case QDI:
		c.DependencyInjection = models.DependencyInjection(value)
	case QLocalStorage:
		c.LocalStorage = models.LocalStorage(value)
	case QRoom:
		c.EnableRoom = value == "true"
	case QPermissions:
		c.Permissions = splitList(value)
	case QLanguages:
		c.Internationalization.Languages = splitList(value)
		c.Internationalization.Enabled = len(c.Internationalization.Languages) > 0
	case QFont:
		if value == "none" {
			value = ""
		}
		c.FontName = models.FontName(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	return nil
}

func splitList(v string) []string {
	out := []string{}
	for part := range strings.SplitSeq(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
