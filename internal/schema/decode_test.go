package schema

import (
	"errors"
	"slices"
	"testing"

	"github.com/droidgen/droidgen/pkg/models"
)

const demoAppJSON = `{
  "project": {
    "name": "Demo App",
    "package": "com.example.demo",
    "minSdk": 24,
    "targetSdk": 34,
    "compileSdk": 34
  },
  "configuration": {
    "uiToolkit": "jetpack-compose",
    "language": "kotlin",
    "dependencyInjection": "hilt",
    "permissions": ["internet", "camera"]
  }
}`

func TestDecodeDemoApp(t *testing.T) {
	t.Parallel()

	cfg, err := Decode([]byte(demoAppJSON))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if cfg.Project.Name != "Demo App" {
		t.Errorf("Project.Name = %q, want %q", cfg.Project.Name, "Demo App")
	}
	c := cfg.Configuration
	if c.UIToolkit != models.UIToolkitCompose {
		t.Errorf("UIToolkit = %q", c.UIToolkit)
	}
	if c.DependencyInjection != models.DIHilt {
		t.Errorf("DependencyInjection = %q", c.DependencyInjection)
	}
	if c.Networking != DefaultNetworking {
		t.Errorf("Networking = %q, want default %q", c.Networking, DefaultNetworking)
	}
	if c.UITheme != DefaultUITheme {
		t.Errorf("UITheme = %q, want default %q", c.UITheme, DefaultUITheme)
	}
	if c.JavaVersion != DefaultJavaVersion {
		t.Errorf("JavaVersion = %q, want default %q", c.JavaVersion, DefaultJavaVersion)
	}
	if c.BuildFormat != models.BuildGradle {
		t.Errorf("BuildFormat = %q", c.BuildFormat)
	}
	if c.ThemeColors.Primary != DefaultPrimaryColor {
		t.Errorf("ThemeColors.Primary = %q", c.ThemeColors.Primary)
	}
	if !slices.Equal(c.Permissions, []string{"internet", "camera"}) {
		t.Errorf("Permissions = %v", c.Permissions)
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"truncated", `{ not json`},
		{"empty", ``},
		{"null document", `null`},
		{"trailing garbage", `{"project": {}} x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(tt.input))
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Decode(%q) error = %v, want ErrMalformedInput", tt.input, err)
			}
		})
	}
}

func TestDecodeMissingRequiredFields(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"project": {"name": "X"}, "configuration": {}}`))
	if err == nil {
		t.Fatal("Decode() expected error for missing fields")
	}
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("error should wrap ErrMissingField, got %v", err)
	}

	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	fields := ve.Fields()
	for _, want := range []string{
		"project.package",
		"project.minSdk",
		"project.targetSdk",
		"project.compileSdk",
		"configuration.uiToolkit",
		"configuration.language",
	} {
		if !slices.Contains(fields, want) {
			t.Errorf("missing field %q in %v", want, fields)
		}
	}
	if slices.Contains(fields, "project.name") {
		t.Errorf("project.name was present and should not be reported: %v", fields)
	}
}

func TestDecodeMissingSectionReportedOnce(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"project": {"name": "X", "package": "com.x.y", "minSdk": 21, "targetSdk": 34, "compileSdk": 34}}`))
	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationErrors, got %v", err)
	}
	if got := ve.Fields(); !slices.Equal(got, []string{"configuration"}) {
		t.Errorf("Fields() = %v, want [configuration]", got)
	}
}

func TestDecodeWrongType(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"project": {"name": "X", "package": "com.x.y", "minSdk": "21", "targetSdk": 34, "compileSdk": 34}}`))
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("error = %v, want ErrInvalidType", err)
	}
	if errors.Is(err, ErrMalformedInput) {
		t.Error("type mismatch must not be reported as malformed input")
	}
}

func TestDecodeWrongTypeKeepsOtherErrors(t *testing.T) {
	t.Parallel()

	doc := `{"project": {"name": "X", "package": "com.x.y", "minSdk": "21", "targetSdk": 34, "compileSdk": 34},
	"configuration": {"uiToolkit": "flutter", "javaVersion": true}}`
	_, err := Decode([]byte(doc))

	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *ValidationErrors", err)
	}
	if !errors.Is(err, ErrInvalidType) || !errors.Is(err, ErrMissingField) || !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("error = %v, want type, missing and enum errors together", err)
	}

	fields := ve.Fields()
	for _, want := range []string{
		"project.minSdk",
		"configuration.uiToolkit",
		"configuration.language",
		"configuration.javaVersion",
	} {
		if !slices.Contains(fields, want) {
			t.Errorf("Fields() = %v, missing %q", fields, want)
		}
	}
	n := 0
	for _, f := range fields {
		if f == "project.minSdk" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("project.minSdk reported %d times, want 1", n)
	}
}

func TestDecodeJavaVersionNumber(t *testing.T) {
	t.Parallel()

	doc := `{"project": {"name": "X", "package": "com.x.y", "minSdk": 21, "targetSdk": 34, "compileSdk": 34},
	"configuration": {"uiToolkit": "xml-views", "language": "java", "javaVersion": 11}}`
	cfg, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg.Configuration.JavaVersion != models.Java11 {
		t.Errorf("JavaVersion = %q, want %q", cfg.Configuration.JavaVersion, models.Java11)
	}
}

func TestDecodeAliasesAndLegacyValues(t *testing.T) {
	t.Parallel()

	doc := `{"project": {"name": "X", "package": "com.x.y", "minSdk": 21, "targetSdk": 34, "compileSdk": 34},
	"configuration": {
		"uiToolkit": "jetpack-compose",
		"language": "kotlin",
		"serialization": "kotlinx.serialization",
		"typography": {"fontName": "Poppins"},
		"themes": {"lightDark": true},
		"permissions": ["  internet "],
		"internationalization": {"enabled": true, "languages": ["fr", "pt-BR", "pt-rBR", "zh-Hant"]}
	}}`
	cfg, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	c := cfg.Configuration
	if c.Serialization != models.SerializationKotlinx {
		t.Errorf("Serialization = %q", c.Serialization)
	}
	if c.FontName != models.FontPoppins {
		t.Errorf("FontName = %q", c.FontName)
	}
	if !c.LightDark {
		t.Error("LightDark should be read from themes.lightDark")
	}
	if !slices.Equal(c.Permissions, []string{"internet"}) {
		t.Errorf("Permissions = %q", c.Permissions)
	}
	want := []string{"fr", "pt-rBR", "b+zh+Hant"}
	if !slices.Equal(c.Internationalization.Languages, want) {
		t.Errorf("Languages = %v, want %v", c.Internationalization.Languages, want)
	}
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	doc := `
project:
  name: Yaml App
  package: com.example.yaml
  minSdk: 26
  targetSdk: 34
  compileSdk: 34
configuration:
  uiToolkit: xml-views
  language: java
  buildFormat: kts
  networking: retrofit
`
	cfg, err := DecodeFile("app.yaml", []byte(doc))
	if err != nil {
		t.Fatalf("DecodeFile() error: %v", err)
	}
	if cfg.Configuration.BuildFormat != models.BuildKTS {
		t.Errorf("BuildFormat = %q", cfg.Configuration.BuildFormat)
	}
	if cfg.Configuration.Networking != models.NetworkingRetrofit {
		t.Errorf("Networking = %q", cfg.Configuration.Networking)
	}

	if _, err := DecodeYAML([]byte("project: [unclosed")); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("DecodeYAML() error = %v, want ErrMalformedInput", err)
	}
}

func TestIssues(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"project": {"name": "X", "package": "com.x.y", "minSdk": 21, "targetSdk": 34, "compileSdk": 34},
	"configuration": {"uiToolkit": "flutter", "language": "kotlin"}}`))
	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationErrors, got %v", err)
	}
	issues := ve.Issues()
	if len(issues) != 1 {
		t.Fatalf("len(Issues()) = %d, want 1: %+v", len(issues), issues)
	}
	got := issues[0]
	if !slices.Equal(got.Loc, []string{"body", "configuration", "uiToolkit"}) {
		t.Errorf("Loc = %v", got.Loc)
	}
	if got.Type != "enum" {
		t.Errorf("Type = %q, want enum", got.Type)
	}
	if got.Input != "flutter" {
		t.Errorf("Input = %v, want flutter", got.Input)
	}
}
