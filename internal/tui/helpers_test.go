package tui

import (
	"slices"

	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fakeSessions is an unbounded in-memory Sessions.
type fakeSessions struct {
	names  []string
	tokens map[string]models.Token
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: map[string]models.Token{}}
}

func (s *fakeSessions) Lookup(username string) (models.Token, bool) {
	t, ok := s.tokens[username]
	return t, ok
}

func (s *fakeSessions) Keep(username string, token models.Token) {
	if _, ok := s.tokens[username]; !ok {
		s.names = append(s.names, username)
	}
	s.tokens[username] = token
}

func (s *fakeSessions) Forget(username string) {
	delete(s.tokens, username)
	s.names = slices.DeleteFunc(s.names, func(n string) bool { return n == username })
}

func (s *fakeSessions) Usernames() []string {
	return slices.Clone(s.names)
}

func buildInfoForTest() models.AppBuildInfo {
	return models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")
}

func tokenForTest(username string) models.Token {
	return models.Token{SignedString: username + "-token", Username: username}
}
