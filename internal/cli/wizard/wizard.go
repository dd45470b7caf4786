package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/droidgen/droidgen/pkg/models"
)

// Run asks every question whose condition holds and applies the answers to
// a copy of base. Each question runs as its own huh.Form so conditions see
// the answers given so far.
func Run(questions []Question, base *models.ProjectConfig) (*models.ProjectConfig, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	cfg := clone(base)
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(cfg) {
			continue
		}

		field, commit := buildField(q)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		if err := Apply(q.ID, commit(), cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// buildField creates the huh field for q and a func returning its answer
// in Apply form.
func buildField(q *Question) (huh.Field, func() string) {
	switch q.Type {
	case QuestionTypeInput:
		return buildInputField(q)
	case QuestionTypeMultiSelect:
		return buildMultiSelectField(q)
	case QuestionTypeConfirm:
		return buildConfirmField(q)
	default:
		return buildSelectField(q)
	}
}

func options(q *Question) []huh.Option[string] {
	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}
	return opts
}

// buildSelectField creates a huh.Select field. Options are static; huh
// v0.8 scrolls the viewport on every update when OptionsFunc is used.
func buildSelectField(q *Question) (huh.Field, func() string) {
	selected := q.Default
	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(options(q)...).
		Value(&selected)
	return sel, func() string { return selected }
}

func buildMultiSelectField(q *Question) (huh.Field, func() string) {
	selected := splitList(q.Default)
	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(options(q)...).
		Value(&selected)
	return ms, func() string { return strings.Join(selected, ",") }
}

func buildConfirmField(q *Question) (huh.Field, func() string) {
	value := q.Default == "true"
	c := huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	return c, func() string {
		if value {
			return "true"
		}
		return "false"
	}
}

func buildInputField(q *Question) (huh.Field, func() string) {
	value := q.Default
	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	defVal, required, check := q.Default, q.Required, q.Check
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New("this field is required")
		}
		if check != nil && v != "" {
			return check(v)
		}
		return nil
	})

	return inp, func() string {
		if v := strings.TrimSpace(value); v != "" {
			return v
		}
		return defVal
	}
}

// clone copies base deeply enough that Apply never aliases its slices.
func clone(base *models.ProjectConfig) *models.ProjectConfig {
	cfg := *base
	cfg.Configuration.Permissions = append([]string{}, base.Configuration.Permissions...)
	cfg.Configuration.Internationalization.Languages = append([]string{}, base.Configuration.Internationalization.Languages...)
	return &cfg
}

// newWizardTheme styles the one-question forms: borderless, Android green
// titles, checkbox prefixes for multi-selects.
func newWizardTheme() *huh.Theme {
	accent := lipgloss.AdaptiveColor{Light: "#1E8E4E", Dark: ColorPrimary}
	link := lipgloss.AdaptiveColor{Light: "#1A56DB", Dark: ColorSecondary}
	faint := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: ColorMuted}
	bad := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	good := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}

	t := huh.ThemeBase()
	f := &t.Focused
	f.Base = f.Base.BorderStyle(lipgloss.HiddenBorder()).PaddingLeft(1)
	f.Card = f.Base
	f.Title = f.Title.Foreground(accent).Bold(true)
	f.Description = f.Description.Foreground(faint).Italic(true)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(bad)
	f.ErrorMessage = f.ErrorMessage.Foreground(bad)
	f.SelectSelector = f.SelectSelector.Foreground(accent).SetString("› ")
	f.MultiSelectSelector = f.MultiSelectSelector.Foreground(accent).SetString("› ")
	f.SelectedOption = f.SelectedOption.Foreground(good)
	f.SelectedPrefix = lipgloss.NewStyle().Foreground(good).SetString("[x] ")
	f.UnselectedPrefix = lipgloss.NewStyle().Foreground(faint).SetString("[ ] ")
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(accent)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(faint)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(link)

	t.Blurred = t.Focused
	t.Group.Title = f.Title
	return t
}
