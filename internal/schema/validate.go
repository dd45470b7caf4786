package schema

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"

	"github.com/droidgen/droidgen/pkg/models"
)

var (
	packagePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)+$`)
	colorPattern   = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
	androidLocale  = regexp.MustCompile(`^([a-zA-Z]{2,3})-r([a-zA-Z]{2})$`)
)

// ValidPackage reports whether name is a usable Android application id.
func ValidPackage(name string) bool {
	return packagePattern.MatchString(name)
}

// Validate checks a typed configuration for correctness and returns a
// *ValidationErrors listing every offending field, or nil.
func Validate(cfg *models.ProjectConfig) error {
	var errs []ValidationError

	errs = append(errs, validateProject(&cfg.Project)...)
	errs = append(errs, validateEnums(&cfg.Configuration)...)
	errs = append(errs, validateColors(&cfg.Configuration.ThemeColors)...)
	errs = append(errs, validatePermissions(cfg.Configuration.Permissions)...)
	errs = append(errs, validateLanguages(&cfg.Configuration.Internationalization)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateProject checks identity fields and the SDK ordering invariant.
func validateProject(p *models.ProjectInfo) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "project.name",
			Message: "must not be blank",
			Wrapped: ErrMissingField,
		})
	}

	if !packagePattern.MatchString(p.Package) {
		errs = append(errs, ValidationError{
			Field:   "project.package",
			Message: "must be a dotted identifier with at least two segments (example: com.example.app)",
			Value:   p.Package,
			Wrapped: ErrInvalidConfig,
		})
	}

	sdkFields := []struct {
		field string
		value int
	}{
		{"project.minSdk", p.MinSdk},
		{"project.targetSdk", p.TargetSdk},
		{"project.compileSdk", p.CompileSdk},
	}
	rangeOK := true
	for _, f := range sdkFields {
		if f.value < MinAPILevel || f.value > MaxAPILevel {
			rangeOK = false
			errs = append(errs, ValidationError{
				Field:   f.field,
				Message: fmt.Sprintf("must be between %d and %d", MinAPILevel, MaxAPILevel),
				Value:   f.value,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	if !rangeOK {
		return errs
	}

	if p.MinSdk > p.TargetSdk {
		errs = append(errs, ValidationError{
			Field:   "project.targetSdk",
			Message: fmt.Sprintf("must be greater than or equal to minSdk (%d)", p.MinSdk),
			Value:   p.TargetSdk,
			Wrapped: ErrSdkOrder,
		})
	}
	if p.TargetSdk > p.CompileSdk {
		errs = append(errs, ValidationError{
			Field:   "project.compileSdk",
			Message: fmt.Sprintf("must be greater than or equal to targetSdk (%d)", p.TargetSdk),
			Value:   p.CompileSdk,
			Wrapped: ErrSdkOrder,
		})
	}

	return errs
}

// validateEnums checks every closed-set field.
func validateEnums(c *models.Configuration) []ValidationError {
	var errs []ValidationError

	check := func(field string, value string, valid bool, allowed []string) {
		if valid {
			return
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
			Value:   value,
			Wrapped: ErrInvalidEnum,
		})
	}

	check("configuration.uiToolkit", string(c.UIToolkit), c.UIToolkit.IsValid(), names(models.ValidUIToolkits()))
	check("configuration.networking", string(c.Networking), c.Networking.IsValid(), names(models.ValidNetworking()))
	check("configuration.serialization", string(c.Serialization), c.Serialization.IsValid(), names(models.ValidSerializations()))
	check("configuration.dependencyInjection", string(c.DependencyInjection), c.DependencyInjection.IsValid(), names(models.ValidDependencyInjections()))
	check("configuration.localStorage", string(c.LocalStorage), c.LocalStorage.IsValid(), names(models.ValidLocalStorages()))
	check("configuration.uiTheme", string(c.UITheme), c.UITheme.IsValid(), names(models.ValidUIThemes()))
	check("configuration.language", string(c.Language), c.Language.IsValid(), names(models.ValidLanguages()))
	check("configuration.javaVersion", string(c.JavaVersion), c.JavaVersion.IsValid(), names(models.ValidJavaVersions()))
	check("configuration.buildFormat", string(c.BuildFormat), c.BuildFormat.IsValid(), names(models.ValidBuildFormats()))
	check("configuration.navigation", string(c.Navigation), c.Navigation.IsValid(), names(models.ValidNavigations()))
	check("configuration.fontName", string(c.FontName), c.FontName.IsValid(), names(models.ValidFontNames()))

	return errs
}

// validateColors checks the three seed colors.
func validateColors(tc *models.ThemeColors) []ValidationError {
	var errs []ValidationError
	for _, f := range []struct{ field, value string }{
		{"configuration.themeColors.primary", tc.Primary},
		{"configuration.themeColors.secondary", tc.Secondary},
		{"configuration.themeColors.tertiary", tc.Tertiary},
	} {
		if !colorPattern.MatchString(f.value) {
			errs = append(errs, ValidationError{
				Field:   f.field,
				Message: "must be a hex color in the form #RRGGBB or #AARRGGBB",
				Value:   f.value,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}

// validatePermissions rejects blank tags. Unknown tags are accepted; the
// permission resolver synthesizes an identifier for them.
func validatePermissions(tags []string) []ValidationError {
	var errs []ValidationError
	for i, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("configuration.permissions.%d", i),
				Message: "must not be blank",
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}

// validateLanguages checks that every language parses as a locale.
func validateLanguages(i18n *models.I18nConfig) []ValidationError {
	var errs []ValidationError
	for i, lang := range i18n.Languages {
		if _, err := ResourceQualifier(lang); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("configuration.internationalization.languages.%d", i),
				Message: err.Error(),
				Value:   lang,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}

// ResourceQualifier converts a BCP 47 tag or an Android locale qualifier into
// the qualifier used in resource directory names: "fr", "pt-rBR", or
// "b+zh+Hant" when a script subtag is present.
func ResourceQualifier(lang string) (string, error) {
	lang = strings.TrimSpace(lang)
	if m := androidLocale.FindStringSubmatch(lang); m != nil {
		lang = m[1] + "-" + m[2]
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("not a valid language tag: %v", err)
	}
	base, script, region := tag.Raw()
	if base.String() == "und" {
		return "", fmt.Errorf("language tag %q has no language subtag", lang)
	}
	hasScript := script.String() != "Zzzz"
	hasRegion := region.String() != "ZZ"
	switch {
	case hasScript:
		parts := []string{"b", base.String(), script.String()}
		if hasRegion {
			parts = append(parts, region.String())
		}
		return strings.Join(parts, "+"), nil
	case hasRegion:
		return base.String() + "-r" + region.String(), nil
	default:
		return base.String(), nil
	}
}

// Normalize rewrites languages into resource qualifiers and removes
// duplicates, keeping first-seen order. It assumes cfg passed Validate.
func Normalize(cfg *models.ProjectConfig) {
	langs := cfg.Configuration.Internationalization.Languages
	seen := make(map[string]bool, len(langs))
	out := make([]string, 0, len(langs))
	for _, lang := range langs {
		q, err := ResourceQualifier(lang)
		if err != nil || seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	cfg.Configuration.Internationalization.Languages = out
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
