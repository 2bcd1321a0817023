package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/models"
)

// RootModel drives the login flow. It owns the set of pages, switches
// between them on [NavigateTo] and stops the program once a [LoginResult]
// without error arrives or the user quits.
//
// On the start menu "v" toggles a build information window.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo models.AppBuildInfo
	aboutOpen bool

	session    Session
	quitByUser bool
}

// NewRootModel opens startPage out of pages.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{pages: pages, current: pages[startPage], buildInfo: buildInfo}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := r.handleKey(keyMsg); handled {
			return r, cmd
		}
	}

	switch msg := msg.(type) {
	case quitMsg:
		r.quitByUser = true
		return r, tea.Quit
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			r.session = Session{Username: msg.Username, Token: msg.Token}
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleKey processes the keys owned by the router. While the build
// information window is open every other key is swallowed.
func (r *RootModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		r.quitByUser = true
		return true, tea.Quit
	case key.Matches(msg, keys.about) && r.onMenu():
		r.aboutOpen = !r.aboutOpen
		return true, nil
	case key.Matches(msg, keys.esc) && r.aboutOpen:
		r.aboutOpen = false
		return true, nil
	}

	return r.aboutOpen, nil
}

func (r RootModel) navigate(msg NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[msg.Page]
	if !ok {
		return r, nil
	}

	r.aboutOpen = false
	r.current = next

	if payload := msg.Payload; payload != nil {
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	switch {
	case r.aboutOpen:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("NOTE KEEPER", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) onMenu() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
