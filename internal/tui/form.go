package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	addForm formKind = iota
	deleteForm
	modifyForm
	filterForm
)

const (
	areaWidth  = 60
	areaHeight = 6
)

// field is either a single-line input or a multi-line text area.
type field struct {
	label     string
	multiline bool
	input     textinput.Model
	area      textarea.Model
}

func newInputField(label string, width int) field {
	ti := textinput.New()
	ti.Prompt = fmt.Sprintf("%-*s ", width+1, label+":")
	ti.CharLimit = 4096
	return field{label: label, input: ti}
}

func newAreaField(label string) field {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(areaWidth)
	ta.SetHeight(areaHeight)
	return field{label: label, multiline: true, area: ta}
}

func (f *field) focus() tea.Cmd {
	if f.multiline {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *field) blur() {
	if f.multiline {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func (f *field) setValue(v string) {
	if f.multiline {
		f.area.SetValue(v)
		return
	}
	f.input.SetValue(v)
}

func (f field) value() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *field) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

func (f field) view() string {
	if f.multiline {
		return f.label + ":\n" + f.area.View()
	}
	return f.input.View()
}

// form is a column of fields with one focused at a time.
type form struct {
	kind   formKind
	title  string
	fields []field
	focus  int
}

// newForm builds a form from labels; labels in multiline get a text area.
func newForm(kind formKind, title string, labels []string, multiline ...string) form {
	width := 0
	for _, l := range labels {
		width = max(width, len(l))
	}

	fields := make([]field, len(labels))
	for i, l := range labels {
		if slices.Contains(multiline, l) {
			fields[i] = newAreaField(l)
		} else {
			fields[i] = newInputField(l, width)
		}
	}
	fields[0].focus()

	return form{
		kind:   kind,
		title:  title,
		fields: fields,
	}
}

func newAddForm() form {
	return newForm(addForm, "Add post", []string{"Title", "Author", "Content"}, "Content")
}

func newDeleteForm(title string) form {
	f := newForm(deleteForm, "Delete post", []string{"Title"})
	f.fields[0].setValue(title)
	return f
}

func newModifyForm(title string) form {
	f := newForm(modifyForm, "Modify post", []string{"Current title", "New title", "New content"}, "New content")
	f.fields[0].setValue(title)
	if title != "" {
		f.setFocus(1)
	}
	return f
}

func newFilterForm(author string) form {
	f := newForm(filterForm, "Filter by author", []string{"Author"})
	f.fields[0].setValue(author)
	return f
}

func (f *form) setFocus(i int) tea.Cmd {
	f.fields[f.focus].blur()
	f.focus = (i + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].focus()
}

func (f *form) next() tea.Cmd {
	return f.setFocus(f.focus + 1)
}

func (f *form) prev() tea.Cmd {
	return f.setFocus(f.focus - 1)
}

// focusedMultiline reports whether enter and the arrow keys belong to the focused field.
func (f form) focusedMultiline() bool {
	return f.fields[f.focus].multiline
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	return f.fields[f.focus].update(msg)
}

func (f form) values() []string {
	vals := make([]string, len(f.fields))
	for i, fl := range f.fields {
		vals[i] = fl.value()
	}
	return vals
}

func (f form) view() string {
	var b strings.Builder
	for _, fl := range f.fields {
		b.WriteString(fl.view())
		b.WriteString("\n")
	}
	return b.String()
}
