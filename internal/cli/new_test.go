package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/droidgen/droidgen/internal/schema"
)

func TestNewCmd(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		file string
		yaml bool
	}{
		{"json", "app.json", false},
		{"yaml", "app.yaml", true},
		{"nested yml", "cfg/app.yml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := filepath.Join(env.dir, tt.file)
			out, _, err := env.run(t, "new", "--non-interactive",
				"--name", "Shop Floor", "--package", "com.acme.shop", "-o", dest)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			if !strings.Contains(out, "Wrote "+dest) {
				t.Errorf("output = %q", out)
			}

			data, err := os.ReadFile(dest)
			if err != nil {
				t.Fatal(err)
			}
			if got := strings.HasPrefix(strings.TrimSpace(string(data)), "{"); got == tt.yaml {
				t.Errorf("JSON document = %v, want %v", got, !tt.yaml)
			}

			cfg, err := schema.DecodeFile(dest, data)
			if err != nil {
				t.Fatalf("written file does not decode: %v", err)
			}
			if cfg.Project.Name != "Shop Floor" || cfg.Project.Package != "com.acme.shop" {
				t.Errorf("project = %+v", cfg.Project)
			}
			if cfg.GeneratorVersion == "" {
				t.Error("generator_version should be recorded")
			}
		})
	}
}

func TestNewCmdRefusesOverwrite(t *testing.T) {
	env := newTestEnv(t)
	dest := env.write(t, "app.json", "{}")

	_, _, err := env.run(t, "new", "--non-interactive", "-o", dest)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("error = %v, want already exists", err)
	}
	if _, _, err := env.run(t, "new", "--non-interactive", "--force", "-o", dest); err != nil {
		t.Fatalf("--force: %v", err)
	}
}

func TestNewCmdRejectsInvalidPackage(t *testing.T) {
	env := newTestEnv(t)
	dest := filepath.Join(env.dir, "app.json")

	_, _, err := env.run(t, "new", "--non-interactive", "--package", "nodots", "-o", dest)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an invalid configuration")
	}
}
