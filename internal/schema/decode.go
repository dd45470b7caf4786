package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/droidgen/droidgen/pkg/models"
)

// wireDocument mirrors models.ProjectConfig with pointer fields so that absent
// keys can be told apart from zero values.
type wireDocument struct {
	Project          *wireProject       `json:"project"`
	Configuration    *wireConfiguration `json:"configuration"`
	GeneratedAt      string             `json:"generated_at"`
	GeneratorVersion string             `json:"generator_version"`
}

type wireProject struct {
	Name       *string `json:"name"`
	Package    *string `json:"package"`
	MinSdk     *int    `json:"minSdk"`
	TargetSdk  *int    `json:"targetSdk"`
	CompileSdk *int    `json:"compileSdk"`
}

type wireConfiguration struct {
	ProjectName          string       `json:"projectName"`
	ProjectID            string       `json:"projectId"`
	UIToolkit            *string      `json:"uiToolkit"`
	Networking           *string      `json:"networking"`
	Serialization        *string      `json:"serialization"`
	DependencyInjection  *string      `json:"dependencyInjection"`
	LocalStorage         *string      `json:"localStorage"`
	EnableRoom           *bool        `json:"enableRoom"`
	UITheme              *string      `json:"uiTheme"`
	Permissions          []string     `json:"permissions"`
	Internationalization *wireI18n    `json:"internationalization"`
	LightDark            *bool        `json:"lightDark"`
	HTTPNetworking       *bool        `json:"httpNetworking"`
	ViewBinding          *bool        `json:"viewBinding"`
	Language             *string      `json:"language"`
	JavaVersion          *javaVersion `json:"javaVersion"`
	BuildFormat          *string      `json:"buildFormat"`
	ThemeColors          *wireColors  `json:"themeColors"`
	FontName             *string      `json:"fontName"`
	Navigation           *string      `json:"navigation"`
	UseLibsVersionsToml  *bool        `json:"useLibsVersionsToml"`
	Typography           *wireTypo    `json:"typography"`
	Themes               *wireThemes  `json:"themes"`
}

type wireI18n struct {
	Enabled   bool     `json:"enabled"`
	Languages []string `json:"languages"`
}

type wireColors struct {
	Primary   *string `json:"primary"`
	Secondary *string `json:"secondary"`
	Tertiary  *string `json:"tertiary"`
}

// wireTypo and wireThemes accept the nested spellings some clients send.
type wireTypo struct {
	FontName *string `json:"fontName"`
}

type wireThemes struct {
	LightDark *bool `json:"lightDark"`
}

// javaVersion accepts the JVM target as a JSON string or number. Any other
// JSON value is kept verbatim so validation reports it with the allowed set.
type javaVersion string

// UnmarshalJSON implements json.Unmarshaler.
func (v *javaVersion) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = javaVersion(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*v = javaVersion(n.String())
		return nil
	}
	*v = javaVersion(b)
	return nil
}

// Decode parses a JSON configuration document, applies defaults and
// normalization, and validates the result. It returns an error wrapping
// ErrMalformedInput for syntax errors and a *ValidationErrors for schema
// violations, type mismatches included.
func Decode(data []byte) (*models.ProjectConfig, error) {
	var (
		doc  wireDocument
		errs []ValidationError
	)
	reported := make(map[string]bool)

	// encoding/json skips a mistyped value and keeps decoding, so the rest
	// of the document is still checked.
	if err := json.Unmarshal(data, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		errs = append(errs, ValidationError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("expected %s, got JSON %s", typeName(typeErr), typeErr.Value),
			Wrapped: ErrInvalidType,
		})
		reported[typeErr.Field] = true
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%w: document is null", ErrMalformedInput)
	}

	cfg, missing := build(&doc)
	for _, m := range missing {
		if !coveredBy(reported, m.Field) {
			errs = append(errs, m)
			reported[m.Field] = true
		}
	}
	if verr := Validate(cfg); verr != nil {
		var ve *ValidationErrors
		if errors.As(verr, &ve) {
			for _, e := range ve.Errors {
				if !coveredBy(reported, e.Field) {
					errs = append(errs, e)
				}
			}
		}
	}
	if len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}
	Normalize(cfg)
	return cfg, nil
}

// DecodeYAML converts a YAML document to JSON and decodes it like Decode.
// Field names are the JSON names.
func DecodeYAML(data []byte) (*models.ProjectConfig, error) {
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return Decode(js)
}

// DecodeFile picks the decoder from the file name extension.
func DecodeFile(name string, data []byte) (*models.ProjectConfig, error) {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return DecodeYAML(data)
	}
	return Decode(data)
}

func typeName(e *json.UnmarshalTypeError) string {
	if e.Type == nil {
		return "string or number"
	}
	return e.Type.String()
}

// build converts the wire document into a typed configuration, filling
// defaults for optional fields and recording missing required fields.
func build(doc *wireDocument) (*models.ProjectConfig, []ValidationError) {
	var missing []ValidationError
	require := func(field string) {
		missing = append(missing, ValidationError{
			Field:   field,
			Message: "field required",
			Wrapped: ErrMissingField,
		})
	}

	cfg := &models.ProjectConfig{
		GeneratedAt:      doc.GeneratedAt,
		GeneratorVersion: doc.GeneratorVersion,
	}

	if doc.Project == nil {
		require("project")
	} else {
		p := doc.Project
		cfg.Project.Name = stringOr(p.Name, "", func() { require("project.name") })
		cfg.Project.Package = stringOr(p.Package, "", func() { require("project.package") })
		cfg.Project.MinSdk = intOr(p.MinSdk, func() { require("project.minSdk") })
		cfg.Project.TargetSdk = intOr(p.TargetSdk, func() { require("project.targetSdk") })
		cfg.Project.CompileSdk = intOr(p.CompileSdk, func() { require("project.compileSdk") })
	}

	if doc.Configuration == nil {
		require("configuration")
		return cfg, missing
	}

	c := doc.Configuration
	out := &cfg.Configuration
	out.ProjectName = c.ProjectName
	out.ProjectID = c.ProjectID
	out.UIToolkit = models.UIToolkit(stringOr(c.UIToolkit, "", func() { require("configuration.uiToolkit") }))
	out.Language = models.Language(stringOr(c.Language, "", func() { require("configuration.language") }))
	out.Networking = models.Networking(stringOr(c.Networking, string(DefaultNetworking), nil))
	out.Serialization = normalizeSerialization(stringOr(c.Serialization, string(DefaultSerialization), nil))
	out.DependencyInjection = models.DependencyInjection(stringOr(c.DependencyInjection, string(DefaultDependencyInjection), nil))
	out.LocalStorage = models.LocalStorage(stringOr(c.LocalStorage, string(DefaultLocalStorage), nil))
	out.UITheme = models.UITheme(stringOr(c.UITheme, string(DefaultUITheme), nil))
	out.BuildFormat = models.BuildFormat(stringOr(c.BuildFormat, string(DefaultBuildFormat), nil))
	out.Navigation = models.Navigation(stringOr(c.Navigation, "", nil))

	out.JavaVersion = DefaultJavaVersion
	if c.JavaVersion != nil {
		out.JavaVersion = models.JavaVersion(*c.JavaVersion)
	}

	font := c.FontName
	if font == nil && c.Typography != nil {
		font = c.Typography.FontName
	}
	out.FontName = models.FontName(strings.ToLower(stringOr(font, "", nil)))

	lightDark := c.LightDark
	if lightDark == nil && c.Themes != nil {
		lightDark = c.Themes.LightDark
	}
	out.LightDark = boolOr(lightDark)
	out.EnableRoom = boolOr(c.EnableRoom)
	out.HTTPNetworking = boolOr(c.HTTPNetworking)
	out.ViewBinding = boolOr(c.ViewBinding)
	out.UseLibsVersionsToml = boolOr(c.UseLibsVersionsToml)

	out.Permissions = make([]string, 0, len(c.Permissions))
	for _, p := range c.Permissions {
		out.Permissions = append(out.Permissions, strings.TrimSpace(p))
	}

	out.Internationalization.Languages = []string{}
	if c.Internationalization != nil {
		out.Internationalization.Enabled = c.Internationalization.Enabled
		out.Internationalization.Languages = append(out.Internationalization.Languages, c.Internationalization.Languages...)
	}

	out.ThemeColors = models.ThemeColors{
		Primary:   DefaultPrimaryColor,
		Secondary: DefaultSecondaryColor,
		Tertiary:  DefaultTertiaryColor,
	}
	if tc := c.ThemeColors; tc != nil {
		out.ThemeColors.Primary = stringOr(tc.Primary, DefaultPrimaryColor, nil)
		out.ThemeColors.Secondary = stringOr(tc.Secondary, DefaultSecondaryColor, nil)
		out.ThemeColors.Tertiary = stringOr(tc.Tertiary, DefaultTertiaryColor, nil)
	}

	return cfg, missing
}

// coveredBy reports whether field or one of its parents was already reported.
func coveredBy(reported map[string]bool, field string) bool {
	for {
		if reported[field] {
			return true
		}
		i := strings.LastIndexByte(field, '.')
		if i < 0 {
			return false
		}
		field = field[:i]
	}
}

func normalizeSerialization(v string) models.Serialization {
	if v == legacySerializationKotlinx {
		return models.SerializationKotlinx
	}
	return models.Serialization(v)
}

func stringOr(v *string, def string, onMissing func()) string {
	if v == nil {
		if onMissing != nil {
			onMissing()
		}
		return def
	}
	return *v
}

func intOr(v *int, onMissing func()) int {
	if v == nil {
		onMissing()
		return 0
	}
	return *v
}

func boolOr(v *bool) bool {
	return v != nil && *v
}
