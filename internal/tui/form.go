package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label string
	input textinput.Model
}

func newField(label, placeholder string, limit int) formField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = 40

	return formField{label: label, input: input}
}

func newMaskedField(label, placeholder string, limit int) formField {
	f := newField(label, placeholder, limit)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'

	return f
}

// formModel is a column of labelled text inputs with a single submit.
type formModel struct {
	title  string
	fields []formField
	focus  int

	submitting bool
	errMsg     string
}

func newForm(title string, fields ...formField) formModel {
	if len(fields) > 0 {
		fields[0].input.Focus()
	}

	return formModel{title: title, fields: fields}
}

func (f formModel) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *formModel) reset() {
	for i := range f.fields {
		f.fields[i].input.Reset()
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.fields[0].input.Focus()
	f.submitting = false
	f.errMsg = ""
}

// update moves focus on tab and forwards everything else to the focused
// input. Submit and cancel keys are handled by the owner.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.move(1)
			return f, nil
		case key.Matches(keyMsg, keys.backtab):
			f.move(-1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f *formModel) move(delta int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f formModel) View(note, hotKeys string) string {
	var b strings.Builder

	if note != "" {
		b.WriteString(note)
		b.WriteString("\n\n")
	}

	rows := make([][]string, 0, len(f.fields))
	for _, field := range f.fields {
		rows = append(rows, []string{field.label, "[" + field.input.View() + "]"})
	}
	b.WriteString(renderTable([]string{"Field", "Value"}, rows))

	if f.submitting {
		b.WriteString("\n\n[Submit...]")
	} else {
		b.WriteString("\n\n[Submit]")
	}

	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(renderError(f.errMsg))
	}

	return renderPage(f.title, b.String(), hotKeys)
}
