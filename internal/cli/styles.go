package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/support-assistant/internal/domain"
)

// styles renders menu output. Colors are dropped automatically when the
// writer is not a terminal.
type styles struct {
	title      lipgloss.Style
	prompt     lipgloss.Style
	muted      lipgloss.Style
	success    lipgloss.Style
	failure    lipgloss.Style
	info       lipgloss.Style
	link       lipgloss.Style
	suggestion lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:      r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		prompt:     r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		muted:      r.NewStyle().Foreground(lipgloss.Color("#626262")),
		success:    r.NewStyle().Foreground(lipgloss.Color("#04B575")),
		failure:    r.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		info:       r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		link:       r.NewStyle().Foreground(lipgloss.Color("#5FAFFF")).Underline(true),
		suggestion: r.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true),
	}
}

func (s styles) forStatus(status domain.ResponseStatus) lipgloss.Style {
	switch status {
	case domain.ResponseSuccess:
		return s.success
	case domain.ResponseValidationFailed, domain.ResponseFailed:
		return s.failure
	default:
		return s.info
	}
}
