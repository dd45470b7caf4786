package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// markdownWidth is the wrap width for rendered markdown.
const markdownWidth = 100

// RenderMarkdown renders md for the terminal. In headless or no-color mode
// the source is returned unchanged.
func RenderMarkdown(md string, theme *Theme, hm *HeadlessManager) (string, error) {
	if theme.NoColor || hm.IsHeadless() {
		return md, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
