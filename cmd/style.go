package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avollmer/bujo/internal/journal"
)

var (
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).Strikethrough(true)
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	mediumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	lowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	meetingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	dateStyle    = lipgloss.NewStyle().Bold(true)
)

func priorityGlyph(p journal.Priority) string {
	switch p {
	case journal.High:
		return highStyle.Render(p.Marker()) + " "
	case journal.Medium:
		return mediumStyle.Render(p.Marker()) + " "
	case journal.Low:
		return lowStyle.Render(p.Marker()) + " "
	}
	return ""
}

// renderEntry renders one entry the way `bujo list` shows it:
//
//	  2. [ ] (!!) [mtg 15:00] Team sync #work
//	     ↳ bring the roadmap
func renderEntry(e journal.Entry) string {
	var b strings.Builder

	status := " "
	if e.Done {
		status = "x"
	}
	fmt.Fprintf(&b, "%s [%s] ", idStyle.Render(fmt.Sprintf("%3d.", e.ID)), status)

	if e.Kind == journal.Meeting {
		b.WriteString(meetingStyle.Render("[mtg "+e.Start.String()+"]") + " ")
	}
	b.WriteString(priorityGlyph(e.Priority))

	if e.Done {
		b.WriteString(doneStyle.Render(e.Text))
	} else {
		b.WriteString(e.Text)
	}

	for _, t := range e.Tags {
		b.WriteString(" " + tagStyle.Render("#"+t))
	}
	for _, n := range e.Notes {
		b.WriteString("\n     ↳ " + n)
	}
	return b.String()
}
