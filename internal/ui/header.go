package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one labelled value. Fields render in the order given.
type Field struct {
	Key   string
	Value string
}

// Header is a boxed banner with a title, a subtitle line and a field list.
// The decode and encode commands use it to show a datagram.
type Header struct {
	Title    string  // e.g., "DECODED FRAME"
	Subtitle string  // e.g., "SetAndGetLanguageResponse (263)"
	Fields   []Field // Datagram fields
	Width    int     // Terminal width for responsive rendering
}

// NewHeader creates a new header sized to the terminal
func NewHeader(title, subtitle string, fields []Field) *Header {
	return &Header{
		Title:    title,
		Subtitle: subtitle,
		Fields:   fields,
		Width:    GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	top := titleLine
	if h.Subtitle != "" {
		top = lipgloss.JoinVertical(lipgloss.Left, titleLine, HeaderCommandStyle.Render(h.Subtitle))
	}

	content := top
	if len(h.Fields) > 0 {
		dividerWidth := max(width-6, 10) // Account for border and padding
		divider := RenderHorizontalDivider(dividerWidth, "─")
		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, renderFields(h.Fields))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // Account for border characters
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

// renderFields aligns the values of fields in one column
func renderFields(fields []Field) string {
	keyWidth := 0
	for _, f := range fields {
		keyWidth = max(keyWidth, len(f.Key)+1)
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		key := FieldKeyStyle.Render(f.Key + ":" + strings.Repeat(" ", keyWidth-len(f.Key)-1))
		lines = append(lines, key+" "+FieldValueStyle.Render(f.Value))
	}
	return strings.Join(lines, "\n")
}

// RenderPlain renders fields as "key: value" lines without styling, for
// output that is not a terminal.
func RenderPlain(fields []Field) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
