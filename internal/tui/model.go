// Package tui is the terminal front end for the blog: a post table with a
// preview of the highlighted post, plus forms to add, delete and modify posts.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/dfryer1193/blogdesk/blog/application"
	"github.com/dfryer1193/blogdesk/blog/domain"
	"github.com/rs/zerolog/log"
)

type viewMode int

const (
	menuView viewMode = iota
	formView
)

const defaultWrap = 76

// Model is the bubbletea model for the whole application.
type Model struct {
	service *application.PostService

	mode   viewMode
	form   form
	filter string

	posts    []domain.Post
	snippets []string
	cursor   int

	status    string
	statusErr bool

	style    string
	renderer *glamour.TermRenderer
	preview  string
	width    int
}

// NewModel builds the menu over service. style names a glamour style;
// "auto" picks one from the terminal background.
func NewModel(service *application.PostService, style string) Model {
	m := Model{
		service: service,
		mode:    menuView,
		style:   style,
	}
	m.renderer = newRenderer(style, defaultWrap)
	m.refresh()
	return m
}

func newRenderer(style string, wrap int) *glamour.TermRenderer {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		log.Warn().Err(err).Str("style", style).Msg("Failed to create markdown renderer")
		return nil
	}
	return r
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if wrap := msg.Width - 4; wrap > 20 {
			m.renderer = newRenderer(m.style, wrap)
			m.preview = m.renderPreview()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == menuView {
			return m.updateMenu(msg)
		}
		return m.updateForm(msg)
	}

	if m.mode == formView {
		cmd := m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "e":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.preview = m.renderPreview()
		}
	case "down", "j":
		if m.cursor < len(m.posts)-1 {
			m.cursor++
			m.preview = m.renderPreview()
		}
	case "a":
		return m.openForm(newAddForm())
	case "d":
		return m.openForm(newDeleteForm(m.selectedTitle()))
	case "m":
		return m.openForm(newModifyForm(m.selectedTitle()))
	case "f":
		return m.openForm(newFilterForm(m.filter))
	}
	return m, nil
}

func (m Model) openForm(f form) (tea.Model, tea.Cmd) {
	m.form = f
	m.mode = formView
	m.status = ""
	m.statusErr = false
	return m, textinput.Blink
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = menuView
		m.status = ""
		m.statusErr = false
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "tab":
		return m, m.form.next()
	case "shift+tab":
		return m, m.form.prev()
	}

	if !m.form.focusedMultiline() {
		switch msg.String() {
		case "down":
			return m, m.form.next()
		case "up":
			return m, m.form.prev()
		case "enter":
			return m.submit()
		}
	}

	cmd := m.form.update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	vals := m.form.values()

	var (
		notice string
		err    error
	)
	switch m.form.kind {
	case addForm:
		_, err = m.service.AddPost(vals[0], vals[1], vals[2])
		notice = application.AddedMessage
	case deleteForm:
		err = m.service.DeletePost(vals[0])
		notice = application.DeletedMessage
	case modifyForm:
		var outcome application.ModifyOutcome
		outcome, err = m.service.ModifyPost(vals[0], vals[1], vals[2])
		notice = outcome.Message()
	case filterForm:
		m.filter = strings.TrimSpace(vals[0])
		notice = "Showing all posts."
		if m.filter != "" {
			notice = "Showing posts by " + m.filter + "."
		}
	}

	if err != nil {
		m.status = application.UserMessage(err)
		m.statusErr = true
		return m, nil
	}

	m.mode = menuView
	m.status = notice
	m.statusErr = false
	m.refresh()
	return m, nil
}

func (m *Model) refresh() {
	m.posts = m.service.ListPosts(m.filter)
	m.snippets = make([]string, len(m.posts))
	for i, p := range m.posts {
		m.snippets[i] = p.Content
		if result, err := m.service.RenderPost(p); err == nil && result.Snippet != "" {
			m.snippets[i] = result.Snippet
		}
	}
	if m.cursor >= len(m.posts) {
		m.cursor = max(len(m.posts)-1, 0)
	}
	m.preview = m.renderPreview()
}

func (m Model) selectedTitle() string {
	if len(m.posts) == 0 {
		return ""
	}
	return m.posts[m.cursor].Title
}

func (m Model) renderPreview() string {
	if len(m.posts) == 0 {
		return ""
	}

	content := m.posts[m.cursor].Content
	if m.renderer == nil {
		return content
	}

	out, err := m.renderer.Render(content)
	if err != nil {
		log.Warn().Err(err).Str("title", m.posts[m.cursor].Title).Msg("Failed to render preview")
		return content
	}
	return strings.TrimRight(out, "\n")
}
