package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	if m.mode == formView {
		b.WriteString(titleStyle.Render(m.form.title))
		b.WriteString("\n")
		b.WriteString(m.form.view())
		b.WriteString("\n")
		b.WriteString(m.statusView())
		b.WriteString(helpStyle.Render("tab/shift+tab: move • enter: submit (newline in text areas) • ctrl+s: submit • esc: cancel"))
		b.WriteString("\n")
		return b.String()
	}

	heading := "Blog"
	if m.filter != "" {
		heading += " - " + m.filter
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(m.tableView())
	b.WriteString("\n")

	if m.preview != "" {
		b.WriteString(previewStyle.Render(m.preview))
		b.WriteString("\n")
	}

	b.WriteString(m.statusView())
	b.WriteString(helpStyle.Render("↑/↓: select • a: add • d: delete • m: modify • f: filter • q/e: exit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) tableView() string {
	var b strings.Builder

	header := "  " + cell("Title", titleWidth) + " " + cell("Author", authorWidth) + " " + cell("Content", snippetWidth)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.posts) == 0 {
		b.WriteString(helpStyle.Render("  No posts."))
		b.WriteString("\n")
		return b.String()
	}

	for i, p := range m.posts {
		row := cell(p.Title, titleWidth) + " " + cell(p.Author, authorWidth) + " " + cell(m.snippets[i], snippetWidth)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) statusView() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render(m.status) + "\n"
	}
	return statusStyle.Render(m.status) + "\n"
}

// cell flattens s to one line and fits it to width, cutting with an ellipsis.
func cell(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if lipgloss.Width(s) > width {
		r := []rune(s)
		for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
			r = r[:len(r)-1]
		}
		s = string(r) + "…"
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
