package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func forcedHeadless(on bool) *HeadlessManager {
	hm := NewHeadlessManager()
	hm.ForceHeadless(on)
	return hm
}

func TestLineTrackerFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := newProgress(NewTheme(false), forcedHeadless(true), &buf).Files("Writing DemoApp", 3)
	for _, f := range []string{"build.gradle", "settings.gradle", "gradle.properties", "extra"} {
		tr.Advance(f)
	}
	if buf.Len() != 0 {
		t.Errorf("Advance wrote output: %q", buf.String())
	}
	tr.Finish()
	tr.Finish()

	if got := buf.String(); got != "Writing DemoApp: 3/3\n" {
		t.Errorf("output = %q", got)
	}
}

func TestLineTrackerBusy(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := newProgress(NewTheme(false), forcedHeadless(true), &buf).Busy("Packing DemoApp")
	tr.Finish()

	if got := buf.String(); got != "Packing DemoApp...\nPacking DemoApp: done\n" {
		t.Errorf("output = %q", got)
	}
}

func TestNoColorThemeIsPlain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := newProgress(NewTheme(true), forcedHeadless(false), &buf).Busy("plain")
	tr.Finish()
	if _, ok := tr.(*lineTracker); !ok {
		t.Errorf("Busy() = %T, want *lineTracker for a no-color theme", tr)
	}
}

func TestTeaTracker(t *testing.T) {
	tests := []struct {
		name  string
		total int
	}{
		{"spinner", 0},
		{"bar", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTaskModel(NewTheme(false), "Writing", tt.total)
			tr := startTeaTracker(m, io.Discard,
				tea.WithInput(strings.NewReader("")),
				tea.WithoutRenderer(),
			)

			finished := make(chan struct{})
			go func() {
				defer close(finished)
				tr.Advance("AndroidManifest.xml")
				tr.Finish()
				tr.Finish()
			}()
			select {
			case <-finished:
			case <-time.After(2 * time.Second):
				t.Fatal("tracker did not finish within 2 seconds")
			}
		})
	}
}

func TestTaskModelBar(t *testing.T) {
	t.Parallel()

	var m tea.Model = newTaskModel(NewTheme(true), "Writing", 2)
	if cmd := m.Init(); cmd != nil {
		t.Error("bar mode should not start a tick")
	}
	m, _ = m.Update(advanceMsg("build.gradle"))
	if view := m.View(); !strings.Contains(view, "1/2") || !strings.Contains(view, "build.gradle") {
		t.Errorf("View() = %q", view)
	}
	m, _ = m.Update(advanceMsg("a"))
	m, _ = m.Update(advanceMsg("b"))
	if got := m.(taskModel).done; got != 2 {
		t.Errorf("done = %d, want capped at 2", got)
	}
	m, cmd := m.Update(finishMsg{})
	if cmd == nil || m.View() != "" {
		t.Error("finish should quit and clear the view")
	}
}

func TestTaskModelSpinner(t *testing.T) {
	t.Parallel()

	m := newTaskModel(NewTheme(false), "Packing", 0)
	if m.Init() == nil {
		t.Fatal("spinner mode should start a tick")
	}
	tick, ok := m.spin.Tick().(spinner.TickMsg)
	if !ok {
		t.Fatal("Tick() did not return a spinner.TickMsg")
	}
	updated, cmd := m.Update(tick)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !strings.Contains(updated.View(), "Packing") {
		t.Errorf("View() = %q", updated.View())
	}
}

func TestHeadlessManagerForce(t *testing.T) {
	t.Parallel()

	hm := forcedHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false after ForceHeadless(true)")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless() = true after ForceHeadless(false)")
	}
	hm.ClearForce()
	_ = hm.IsHeadless()
}
