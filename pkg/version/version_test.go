package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	orig := Commit
	t.Cleanup(func() { Commit = orig })

	tests := []struct {
		commit string
		want   string
	}{
		{"none", Version + " (commit: none, built: " + Date + ")"},
		{"0123456789abcdef", Version + " (commit: 0123456, built: " + Date + ")"},
	}
	for _, tt := range tests {
		Commit = tt.commit
		if got := GetFullVersion(); got != tt.want {
			t.Errorf("GetFullVersion() with commit %q = %q, want %q", tt.commit, got, tt.want)
		}
	}
}
