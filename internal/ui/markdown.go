package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer is a cached glamour renderer instance
var markdownRenderer *glamour.TermRenderer

// cachedWidth and cachedStyle record what markdownRenderer was built with
var (
	cachedWidth int
	cachedStyle string
)

// rendererFor returns a glamour renderer for width and style, rebuilding the
// cached one only when either changed.
func rendererFor(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	if markdownRenderer != nil && width == cachedWidth && style == cachedStyle {
		return markdownRenderer, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}

	markdownRenderer = renderer
	cachedWidth = width
	cachedStyle = style
	return renderer, nil
}

// RenderMarkdownWithStyle renders markdown content using the specified glamour
// style. Returns the original content if rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}

	r, err := rendererFor(width, style)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}
