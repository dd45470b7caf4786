package cli

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/droidgen/droidgen/internal/schema"
)

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("%s should be empty, has %d entries", dir, len(entries))
	}
}

func TestGenerateArchive(t *testing.T) {
	env := newTestEnv(t)
	cfgPath := env.write(t, "demo.json", demoApp)
	dest := filepath.Join(env.dir, "out", "demo.zip")

	out, _, err := env.run(t, "generate", cfgPath, "-o", dest)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "Wrote "+dest) {
		t.Errorf("output = %q", out)
	}

	zr, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()

	found := false
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "DemoApp/") {
			t.Errorf("entry %q outside project folder", f.Name)
		}
		if f.Name == "DemoApp/app/src/main/AndroidManifest.xml" {
			found = true
		}
	}
	if !found {
		t.Error("archive is missing the manifest")
	}
	assertEmptyDir(t, env.scratch)
}

func TestGenerateArchiveDefaultName(t *testing.T) {
	env := newTestEnv(t)
	cfgPath := env.write(t, "demo.json", demoApp)
	work := t.TempDir()
	t.Chdir(work)

	if _, _, err := env.run(t, "generate", cfgPath); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(filepath.Join(work, "DemoApp.zip")); err != nil {
		t.Errorf("default archive missing: %v", err)
	}

	_, _, err := env.run(t, "generate", cfgPath)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second run error = %v, want already exists", err)
	}
	if _, _, err := env.run(t, "generate", cfgPath, "--force"); err != nil {
		t.Errorf("--force: %v", err)
	}
}

func TestGenerateTree(t *testing.T) {
	env := newTestEnv(t)
	cfgPath := env.write(t, "demo.yaml", `project:
  name: Notes
  package: com.example.notes
  minSdk: 24
  targetSdk: 34
  compileSdk: 34
configuration:
  uiToolkit: xml-views
  language: java
`)
	outDir := filepath.Join(env.dir, "projects")

	out, _, err := env.run(t, "generate", cfgPath, "--dir", outDir)
	if err != nil {
		t.Fatalf("generate --dir: %v", err)
	}
	if !strings.Contains(out, "Created") {
		t.Errorf("output = %q", out)
	}

	root := filepath.Join(outDir, "Notes")
	for _, rel := range []string{
		"app/src/main/AndroidManifest.xml",
		"app/src/main/res/layout/activity_main.xml",
		"app/src/main/java/com/example/notes/MainActivity.java",
		"build.gradle",
	} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s: %v", rel, err)
		}
	}
}

func TestGenerateFontWarning(t *testing.T) {
	env := newTestEnv(t)
	cfgPath := env.write(t, "demo.json", `{
  "project": {"name": "Fonty", "package": "com.example.fonty", "minSdk": 24, "targetSdk": 34, "compileSdk": 34},
  "configuration": {"uiToolkit": "jetpack-compose", "language": "kotlin", "fontName": "lato"}
}`)

	_, stderr, err := env.run(t, "generate", cfgPath, "--dir", filepath.Join(env.dir, "out"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(stderr, "warning:") || !strings.Contains(stderr, "lato") {
		t.Errorf("stderr = %q, want a font warning", stderr)
	}
}

func TestGenerateErrors(t *testing.T) {
	env := newTestEnv(t)
	invalid := env.write(t, "invalid.json", `{"project": {"name": "X"}, "configuration": {}}`)
	malformed := env.write(t, "malformed.json", `{"project":`)

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"missing file", []string{"generate", filepath.Join(env.dir, "absent.json")}, os.ErrNotExist},
		{"invalid config", []string{"generate", invalid}, schema.ErrInvalidConfig},
		{"malformed config", []string{"generate", malformed}, schema.ErrMalformedInput},
		{"output and dir", []string{"generate", invalid, "-o", "a.zip", "--dir", "b"}, nil},
		{"no args", []string{"generate"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
		})
	}
	assertEmptyDir(t, env.scratch)
}

func TestMoveFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.zip")
	dst := filepath.Join(dir, "b.zip")
	if err := os.WriteFile(src, []byte("zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := moveFile(src, dst); err != nil {
		t.Fatalf("moveFile: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "zip" {
		t.Errorf("dst = %q, %v", data, err)
	}
	if _, err := os.Stat(src); !errors.Is(err, os.ErrNotExist) {
		t.Error("src should be gone")
	}
}
