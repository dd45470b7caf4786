package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/droidgen/droidgen/internal/config"
)

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	env := &testEnv{dir: dir, settings: path}

	if _, _, err := env.run(t, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		t.Fatalf("load written settings: %v", err)
	}
	if cfg.Server.Port != config.DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Server.Port, config.DefaultPort)
	}

	if _, _, err := env.run(t, "config", "init"); err == nil {
		t.Error("second init should refuse to overwrite")
	}
	if _, _, err := env.run(t, "config", "init", "--force"); err != nil {
		t.Errorf("--force: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, "droidgen.yaml", "server:\n  port: 9090\n  read_timeout: 5s\n")

	out, _, err := env.run(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{
		"# source: " + env.settings,
		"port: 9090",
		"read_timeout: 5s",
		"max_upload_bytes:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShowDefaults(t *testing.T) {
	dir := t.TempDir()
	env := &testEnv{dir: dir, settings: filepath.Join(dir, "absent.yaml")}

	out, _, err := env.run(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.HasPrefix(out, "# source: defaults") {
		t.Errorf("output = %q", out)
	}
}
