package wizard

import (
	"errors"
	"slices"
	"testing"

	"github.com/droidgen/droidgen/internal/schema"
	"github.com/droidgen/droidgen/pkg/models"
)

func TestRunNoQuestions(t *testing.T) {
	t.Parallel()

	if _, err := Run(nil, schema.NewDefaultConfig()); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Run(nil) error = %v, want ErrNoQuestions", err)
	}
}

func TestDefaultQuestionsCoverApply(t *testing.T) {
	t.Parallel()

	base := schema.NewDefaultConfig()
	seen := make(map[string]bool)
	for _, q := range DefaultQuestions(base) {
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		cfg := clone(base)
		if err := Apply(q.ID, q.Default, cfg); err != nil {
			t.Errorf("Apply(%q, default %q) error: %v", q.ID, q.Default, err)
		}
		if q.Type == QuestionTypeSelect && len(q.Options) > 0 {
			if !slices.ContainsFunc(q.Options, func(o Option) bool { return o.Value == q.Default }) {
				t.Errorf("question %q default %q is not an option", q.ID, q.Default)
			}
		}
	}
}

func TestDefaultsRoundTrip(t *testing.T) {
	t.Parallel()

	base := schema.NewDefaultConfig()
	cfg := clone(base)
	for _, q := range DefaultQuestions(base) {
		if err := Apply(q.ID, q.Default, cfg); err != nil {
			t.Fatalf("Apply(%q) error: %v", q.ID, err)
		}
	}
	if err := schema.Validate(cfg); err != nil {
		t.Errorf("config built from defaults is invalid: %v", err)
	}
	if cfg.Project != base.Project {
		t.Errorf("Project = %+v, want %+v", cfg.Project, base.Project)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id    string
		value string
		check func(*models.ProjectConfig) bool
	}{
		{QProjectName, "Demo App", func(c *models.ProjectConfig) bool { return c.Project.Name == "Demo App" }},
		{QTargetSdk, "33", func(c *models.ProjectConfig) bool { return c.Project.TargetSdk == 33 }},
		{QUIToolkit, "xml-views", func(c *models.ProjectConfig) bool { return c.Configuration.UIToolkit == models.UIToolkitXML }},
		{QLightDark, "true", func(c *models.ProjectConfig) bool { return c.Configuration.LightDark }},
		{QNavigation, "none", func(c *models.ProjectConfig) bool { return c.Configuration.Navigation == models.NavigationNone }},
		{QFont, "none", func(c *models.ProjectConfig) bool { return c.Configuration.FontName == models.FontNone }},
		{QFont, "open sans", func(c *models.ProjectConfig) bool { return c.Configuration.FontName == models.FontOpenSans }},
		{QPermissions, "internet, camera", func(c *models.ProjectConfig) bool {
			return slices.Equal(c.Configuration.Permissions, []string{"internet", "camera"})
		}},
		{QLanguages, "fr,de", func(c *models.ProjectConfig) bool {
			i := c.Configuration.Internationalization
			return i.Enabled && slices.Equal(i.Languages, []string{"fr", "de"})
		}},
		{QLanguages, "", func(c *models.ProjectConfig) bool {
			return !c.Configuration.Internationalization.Enabled
		}},
	}

	for _, tt := range tests {
		t.Run(tt.id+"="+tt.value, func(t *testing.T) {
			t.Parallel()

			cfg := schema.NewDefaultConfig()
			if err := Apply(tt.id, tt.value, cfg); err != nil {
				t.Fatalf("Apply() error: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("Apply(%q, %q) produced %+v", tt.id, tt.value, cfg.Configuration)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	t.Parallel()

	cfg := schema.NewDefaultConfig()
	if err := Apply("bogus", "x", cfg); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("Apply(bogus) error = %v, want ErrUnknownQuestion", err)
	}
	if err := Apply(QMinSdk, "abc", cfg); err == nil {
		t.Error("Apply(min_sdk, abc) expected error")
	}
}

func TestQuestionChecks(t *testing.T) {
	t.Parallel()

	byID := make(map[string]Question)
	for _, q := range DefaultQuestions(schema.NewDefaultConfig()) {
		byID[q.ID] = q
	}

	if err := byID[QPackage].Check("com.example.app"); err != nil {
		t.Errorf("package check rejected valid id: %v", err)
	}
	if err := byID[QPackage].Check("nodots"); err == nil {
		t.Error("package check accepted invalid id")
	}
	if err := byID[QMinSdk].Check("0"); err == nil {
		t.Error("sdk check accepted 0")
	}
	if err := byID[QMinSdk].Check("21"); err != nil {
		t.Errorf("sdk check rejected 21: %v", err)
	}
}

func TestConditions(t *testing.T) {
	t.Parallel()

	byID := make(map[string]Question)
	for _, q := range DefaultQuestions(schema.NewDefaultConfig()) {
		byID[q.ID] = q
	}

	cfg := schema.NewDefaultConfig()
	if byID[QViewBinding].Condition(cfg) {
		t.Error("view binding asked for compose")
	}
	if byID[QVersionCatalog].Condition(cfg) {
		t.Error("version catalog asked for groovy scripts")
	}

	cfg.Configuration.UIToolkit = models.UIToolkitXML
	cfg.Configuration.BuildFormat = models.BuildKTS
	if !byID[QViewBinding].Condition(cfg) {
		t.Error("view binding not asked for xml views")
	}
	if !byID[QVersionCatalog].Condition(cfg) {
		t.Error("version catalog not asked for kts")
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := schema.NewDefaultConfig()
	base.Configuration.Permissions = []string{"internet"}
	cfg := clone(base)
	cfg.Configuration.Permissions[0] = "camera"
	if base.Configuration.Permissions[0] != "internet" {
		t.Error("clone shares the permissions slice")
	}
}

func TestWizardTheme(t *testing.T) {
	t.Parallel()

	if newWizardTheme() == nil {
		t.Fatal("newWizardTheme() returned nil")
	}
}
