package cli

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/droidgen/droidgen/internal/config"
)

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestServeStopsOnCancel(t *testing.T) {
	env := newTestEnv(t)
	SetDeps(nil)
	t.Cleanup(func() { SetDeps(nil) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{
		"--no-color", "--config", env.settings,
		"serve", "--host", "127.0.0.1", "--port", strconv.Itoa(freePort(t)),
	})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatalf("serve: %v", err)
	}

	// serve logs without --verbose.
	logs := stderr.String()
	if !strings.Contains(logs, "starting server") || !strings.Contains(logs, "server shutting down") {
		t.Errorf("logs = %q", logs)
	}
}

func TestApplyServeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, cfg *config.Config)
		wantErr bool
	}{
		{
			name: "unset flags keep settings",
			args: nil,
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.Port != config.DefaultPort || cfg.Server.Host != config.DefaultHost {
					t.Errorf("server = %+v", cfg.Server)
				}
			},
		},
		{
			name: "overrides",
			args: []string{"--host", "localhost", "--port", "9000", "--font-dir", "/srv/fonts"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.Addr() != "localhost:9000" {
					t.Errorf("Addr = %q", cfg.Server.Addr())
				}
				if cfg.Generator.FontDir != "/srv/fonts" {
					t.Errorf("FontDir = %q", cfg.Generator.FontDir)
				}
			},
		},
		{name: "invalid port", args: []string{"--port", "0"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd := newServeCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			cfg := config.NewDefaultConfig()
			err := applyServeFlags(cmd, cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
