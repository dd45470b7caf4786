package cli

import (
	"strings"
	"testing"

	"github.com/droidgen/droidgen/internal/schema"
	"github.com/droidgen/droidgen/pkg/models"
)

func TestPlanCmd(t *testing.T) {
	env := newTestEnv(t)
	cfgPath := env.write(t, "demo.json", demoApp)

	out, _, err := env.run(t, "plan", cfgPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	for _, want := range []string{
		"# DemoApp",
		"`com.example.demo`",
		"`app/src/main/AndroidManifest.xml` (manifest)",
		"`app/src/main/kotlin/com/example/demo/DemoAppApplication.kt` (application)",
		"uses-permission `android.permission.CAMERA`",
		"uses-permission `android.permission.INTERNET`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q", want)
		}
	}
	assertEmptyDir(t, env.scratch)
}

func TestPlanMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(cfg *models.ProjectConfig)
		want   []string
		absent []string
	}{
		{
			name:   "defaults",
			mutate: func(*models.ProjectConfig) {},
			want:   []string{"## Directories", "## Files", "kotlin, jetpack-compose, gradle build"},
			absent: []string{"## Manifest", "**Font:**"},
		},
		{
			name: "font and legacy storage",
			mutate: func(cfg *models.ProjectConfig) {
				cfg.Configuration.FontName = models.FontPoppins
				cfg.Configuration.Permissions = []string{"storage"}
				cfg.Project.TargetSdk = 32
				cfg.Project.CompileSdk = 32
			},
			want: []string{"**Font:** poppins", "maxSdk 28"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := schema.NewDefaultConfig()
			tt.mutate(cfg)
			md := planMarkdown(cfg)
			for _, w := range tt.want {
				if !strings.Contains(md, w) {
					t.Errorf("markdown missing %q:\n%s", w, md)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(md, a) {
					t.Errorf("markdown should not contain %q", a)
				}
			}
		})
	}
}
