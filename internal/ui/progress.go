package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tracker is one running progress display.
type Tracker interface {
	// Advance records one finished unit of work. label names it, e.g. the
	// file just written.
	Advance(label string)
	// Finish stops the display. It is safe to call more than once.
	Finish()
}

// Progress creates trackers for generation steps.
type Progress interface {
	// Files tracks a step with a known number of units.
	Files(title string, total int) Tracker
	// Busy tracks a step of unknown length.
	Busy(title string) Tracker
}

type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	w        io.Writer
}

// NewProgress returns a Progress that animates on a TTY and prints plain
// lines to os.Stderr otherwise.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return newProgress(theme, hm, os.Stderr)
}

func newProgress(theme *Theme, hm *HeadlessManager, w io.Writer) *progressImpl {
	return &progressImpl{theme: theme, headless: hm, w: w}
}

func (p *progressImpl) plain() bool {
	return p.theme.NoColor || p.headless.IsHeadless()
}

func (p *progressImpl) Files(title string, total int) Tracker {
	if p.plain() {
		return &lineTracker{w: p.w, title: title, total: total}
	}
	return startTeaTracker(newTaskModel(p.theme, title, total), p.w)
}

func (p *progressImpl) Busy(title string) Tracker {
	if p.plain() {
		_, _ = fmt.Fprintf(p.w, "%s...\n", title)
		return &lineTracker{w: p.w, title: title}
	}
	return startTeaTracker(newTaskModel(p.theme, title, 0), p.w)
}

// advanceMsg and finishMsg drive taskModel from outside the program.
type (
	advanceMsg string
	finishMsg  struct{}
)

// taskModel renders a spinner when total is zero and a bar otherwise.
type taskModel struct {
	spin     spinner.Model
	bar      progress.Model
	title    string
	label    string
	done     int
	total    int
	finished bool
}

func newTaskModel(theme *Theme, title string, total int) taskModel {
	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	bar := progress.New(
		progress.WithWidth(32),
		progress.WithGradient(theme.Colors.Secondary, theme.Colors.Primary),
		progress.WithoutPercentage(),
	)
	return taskModel{spin: spin, bar: bar, title: title, total: total}
}

func (m taskModel) Init() tea.Cmd {
	if m.total == 0 {
		return m.spin.Tick
	}
	return nil
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		m.label = string(msg)
		if m.total > 0 {
			m.done = min(m.done+1, m.total)
		}
	case finishMsg:
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.finished = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m taskModel) View() string {
	if m.finished {
		return ""
	}
	if m.total == 0 {
		return fmt.Sprintf("%s %s\n", m.spin.View(), m.title)
	}
	pct := float64(m.done) / float64(m.total)
	line := fmt.Sprintf("%s %s %d/%d", m.title, m.bar.ViewAs(pct), m.done, m.total)
	if m.label != "" {
		line += "  " + m.label
	}
	return line + "\n"
}

// teaTracker runs a taskModel in its own bubbletea program.
type teaTracker struct {
	program *tea.Program
	once    sync.Once
}

func startTeaTracker(m tea.Model, w io.Writer, opts ...tea.ProgramOption) *teaTracker {
	opts = append([]tea.ProgramOption{tea.WithOutput(w), tea.WithInput(nil)}, opts...)
	t := &teaTracker{program: tea.NewProgram(m, opts...)}
	go func() {
		_, _ = t.program.Run()
	}()
	return t
}

func (t *teaTracker) Advance(label string) {
	t.program.Send(advanceMsg(label))
}

func (t *teaTracker) Finish() {
	t.once.Do(func() {
		t.program.Send(finishMsg{})
		t.program.Wait()
	})
}

// lineTracker prints a single summary line on Finish, so logs stay short
// for projects with many files.
type lineTracker struct {
	w        io.Writer
	title    string
	total    int
	done     int
	finished bool
}

func (t *lineTracker) Advance(string) {
	t.done++
}

func (t *lineTracker) Finish() {
	if t.finished {
		return
	}
	t.finished = true
	if t.total > 0 {
		_, _ = fmt.Fprintf(t.w, "%s: %d/%d\n", t.title, min(t.done, t.total), t.total)
		return
	}
	_, _ = fmt.Fprintf(t.w, "%s: done\n", t.title)
}
