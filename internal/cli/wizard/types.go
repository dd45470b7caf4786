// Package wizard provides an interactive huh-based wizard that builds a
// project configuration.
package wizard

import (
	"errors"

	"github.com/droidgen/droidgen/pkg/models"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeMultiSelect is a multiple-choice selection question.
	QuestionTypeMultiSelect
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string                           // Unique identifier, see Apply
	Type        QuestionType                     // Select, Input, MultiSelect or Confirm
	Title       string                           // Question title
	Description string                           // Additional description
	Options     []Option                         // Options for select questions
	Default     string                           // Default value; comma-separated for multi-select
	Required    bool                             // Whether the field is required
	Check       func(string) error               // Extra input validation
	Condition   func(*models.ProjectConfig) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrUnknownQuestion is returned by Apply for an unknown question ID.
	ErrUnknownQuestion = errors.New("unknown question id")
)

// Brand colors for the dark background variant.
const (
	ColorPrimary   = "#3DDC84"
	ColorSecondary = "#4285F4"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorMuted     = "#9CA3AF"
)
