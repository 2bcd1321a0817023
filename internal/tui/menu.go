package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem is one numbered menu entry.
type MenuItem struct {
	Label string

	// Page is opened with [NavigateTo] when the item is chosen. An item
	// without a page quits.
	Page string
}

// MenuModel is a numbered action list. Items are numbered from zero so the
// numbers match the ones typed in the classic console menu.
type MenuModel struct {
	title   string
	items   []MenuItem
	hotKeys string

	idx    int
	status string
}

func NewMenuModel(title string, items []MenuItem, hotKeys string) *MenuModel {
	return &MenuModel{
		title:   title,
		items:   items,
		hotKeys: hotKeys,
	}
}

// NewStartMenu is the menu shown before login.
func NewStartMenu() *MenuModel {
	return NewMenuModel("NOTE KEEPER", []MenuItem{
		{Label: "exit"},
		{Label: "register", Page: pageRegister},
		{Label: "login", Page: pageLogin},
	}, "enter: select │ ↑/↓: move │ 0-9: jump │ v: version")
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(RegisterSuccessNotice); ok {
		m.status = "User " + notice.Username + " registered"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, m.choose()
	default:
		if n, err := strconv.Atoi(keyMsg.String()); err == nil && n >= 0 && n < len(m.items) {
			m.idx = n
		}
	}

	return m, nil
}

// SetStatus replaces the line shown above the items.
func (m *MenuModel) SetStatus(status string) {
	m.status = status
}

func (m *MenuModel) choose() tea.Cmd {
	item := m.items[m.idx]
	m.status = ""

	if item.Page == "" {
		return func() tea.Msg { return quitMsg{} }
	}
	return func() tea.Msg { return NavigateTo{Page: item.Page} }
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	rows := make([][]string, 0, len(m.items))
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		rows = append(rows, []string{cursor + " " + strconv.Itoa(i), item.Label})
	}
	b.WriteString(renderTable([]string{"ID", "Action"}, rows))

	return renderPage(m.title, b.String(), m.hotKeys)
}
