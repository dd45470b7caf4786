package config

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var text bytes.Buffer
	LogConfig{Level: "warn", Format: "text"}.NewLogger(&text).Info("hidden")
	if text.Len() != 0 {
		t.Errorf("info message logged at warn level: %q", text.String())
	}

	var js bytes.Buffer
	LogConfig{Level: "debug", Format: "json"}.NewLogger(&js).Debug("shown", "k", "v")
	var rec map[string]any
	if err := json.Unmarshal(js.Bytes(), &rec); err != nil {
		t.Fatalf("json handler output %q: %v", js.String(), err)
	}
	if rec["msg"] != "shown" || rec["k"] != "v" {
		t.Errorf("record = %v", rec)
	}

	var def bytes.Buffer
	LogConfig{Level: "bogus"}.NewLogger(&def).Info("info")
	if !strings.Contains(def.String(), "level=INFO") {
		t.Errorf("unknown level should default to info, got %q", def.String())
	}
}
