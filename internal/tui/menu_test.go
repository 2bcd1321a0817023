package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartMenu_ItemsMatchConsoleNumbering(t *testing.T) {
	view := NewStartMenu().View()

	assert.Contains(t, view, "0 │ exit")
	assert.Contains(t, view, "1 │ register")
	assert.Contains(t, view, "2 │ login")
}

func TestMenu_DigitThenEnterNavigates(t *testing.T) {
	m := NewStartMenu()

	m.Update(keyPress("2"))
	_, cmd := m.Update(keyPress("enter"))

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())
}

func TestMenu_ExitItemQuits(t *testing.T) {
	m := NewStartMenu()

	_, cmd := m.Update(keyPress("enter"))

	require.NotNil(t, cmd)
	assert.Equal(t, quitMsg{}, cmd())
}

func TestMenu_CursorStaysInBounds(t *testing.T) {
	m := NewStartMenu()

	m.Update(keyPress("up"))
	assert.Equal(t, 0, m.idx)

	for range 5 {
		m.Update(keyPress("down"))
	}
	assert.Equal(t, 2, m.idx)

	m.Update(keyPress("9"))
	assert.Equal(t, 2, m.idx, "out of range digit is ignored")
}

func TestMenu_RegisterNoticeShownUntilNextChoice(t *testing.T) {
	m := NewStartMenu()

	m.Update(RegisterSuccessNotice{Username: "alice12"})
	assert.Contains(t, m.View(), "OK: User alice12 registered")

	m.Update(keyPress("enter"))
	assert.NotContains(t, m.View(), "OK:")
}

func TestRootModel_BuildInfoToggleOnMenuOnly(t *testing.T) {
	pages := map[string]tea.Model{
		pageMenu:  NewStartMenu(),
		pageLogin: NewLoginModel(t.Context(), nil, newFakeSessions()),
	}
	r := NewRootModel(pages, pageMenu, buildInfoForTest())

	model, _ := r.Update(keyPress("v"))
	r = model.(RootModel)
	assert.Contains(t, r.View(), "Version: 1.2.3")

	model, _ = r.Update(keyPress("esc"))
	r = model.(RootModel)
	assert.NotContains(t, r.View(), "Version: 1.2.3")

	model, _ = r.Update(NavigateTo{Page: pageLogin})
	r = model.(RootModel)
	model, _ = r.Update(keyPress("v"))
	r = model.(RootModel)
	assert.False(t, r.aboutOpen)
}

func TestRootModel_LoginResultFinishesFlow(t *testing.T) {
	r := NewRootModel(map[string]tea.Model{pageMenu: NewStartMenu()}, pageMenu, buildInfoForTest())
	tok := tokenForTest("alice12")

	model, cmd := r.Update(LoginResult{Username: "alice12", Token: tok})

	r = model.(RootModel)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, Session{Username: "alice12", Token: tok}, r.session)
	assert.False(t, r.quitByUser)
}

func TestRootModel_QuitMsgMarksUserQuit(t *testing.T) {
	r := NewRootModel(map[string]tea.Model{pageMenu: NewStartMenu()}, pageMenu, buildInfoForTest())

	model, cmd := r.Update(quitMsg{})

	assert.True(t, model.(RootModel).quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_NavigateWithPayloadDeliversPayload(t *testing.T) {
	r := NewRootModel(map[string]tea.Model{pageMenu: NewStartMenu()}, pageMenu, buildInfoForTest())
	notice := RegisterSuccessNotice{Username: "alice12"}

	_, cmd := r.Update(NavigateTo{Page: pageMenu, Payload: notice})

	require.NotNil(t, cmd)
	assert.Equal(t, notice, cmd())
}
