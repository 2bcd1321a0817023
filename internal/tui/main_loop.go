package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainStage int

const (
	stageMenu mainStage = iota
	stageForm
	stageResult
	stageConfirmLogout
)

const (
	actionLogout        = "logout"
	actionAddNote       = "add-note"
	actionAddSecretNote = "add-secret-note"
	actionListNotes     = "list-notes"
	actionShowNote      = "show-note"
	actionDeleteNote    = "delete-note"
	actionListShared    = "list-shared"
	actionShowShared    = "show-shared"
	actionDeleteShared  = "delete-shared"
	actionShareNote     = "share-note"
	actionShowSecret    = "show-secret"
	actionEvents        = "events"
)

// eventsLimit is how many journal rows the activity view asks for.
const eventsLimit = 20

const logoutQuestion = "Keep user in cache? (you won't need to enter password again in current session) [y/n]"

var mainMenuItems = []MenuItem{
	{Label: "exit"},
	{Label: "logout", Page: actionLogout},
	{Label: "add note", Page: actionAddNote},
	{Label: "add secret note", Page: actionAddSecretNote},
	{Label: "list notes", Page: actionListNotes},
	{Label: "show note", Page: actionShowNote},
	{Label: "delete note", Page: actionDeleteNote},
	{Label: "list shared notes", Page: actionListShared},
	{Label: "show shared note", Page: actionShowShared},
	{Label: "delete shared note", Page: actionDeleteShared},
	{Label: "share note", Page: actionShareNote},
	{Label: "show secret note", Page: actionShowSecret},
	{Label: "activity journal", Page: actionEvents},
}

type mainLoopModel struct {
	ctx        context.Context
	auth       service.ClientAuthService
	notes      service.ClientNotesService
	sessions   Sessions
	prepareKey KeyPreparer
	session    Session

	stage  mainStage
	action string
	menu   *MenuModel
	form   formModel
	result resultMsg
	status string

	logout      bool
	keptInCache bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, sessions Sessions, prepareKey KeyPreparer, session Session) mainLoopModel {
	return mainLoopModel{
		ctx:        ctx,
		auth:       services.AuthService,
		notes:      services.NotesService,
		sessions:   sessions,
		prepareKey: prepareKey,
		session:    session,
		menu: NewMenuModel("NOTES OF "+session.Username, mainMenuItems,
			"enter: select │ ↑/↓: move │ 0-9: jump"),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case quitMsg:
		return m, tea.Quit
	case NavigateTo:
		return m.open(msg.Page)
	case actionDoneMsg:
		return m.finishAction(msg), nil
	case resultMsg:
		return m.showResult(msg), nil
	}

	switch m.stage {
	case stageForm:
		return m.updateForm(msg)
	case stageResult:
		return m.updateResult(msg)
	case stageConfirmLogout:
		return m.updateConfirmLogout(msg)
	default:
		_, cmd := m.menu.Update(msg)
		return m, cmd
	}
}

func (m mainLoopModel) View() string {
	switch m.stage {
	case stageForm:
		return m.form.View("", "esc: back │ tab: next field │ enter: submit")
	case stageResult:
		return m.resultView()
	case stageConfirmLogout:
		return renderPage("LOGOUT", logoutQuestion, "y: keep │ n: forget │ esc: back")
	default:
		return m.menu.View()
	}
}

// open starts the menu action page. Actions that need input get a form,
// read-only actions go straight to the result page.
func (m mainLoopModel) open(page string) (tea.Model, tea.Cmd) {
	m.action = page
	m.status = ""

	switch page {
	case actionLogout:
		m.stage = stageConfirmLogout
		return m, nil

	case actionListNotes:
		return m.loading("NOTES", m.cmdListNotes(false))
	case actionListShared:
		return m.loading("SHARED NOTES", m.cmdListNotes(true))
	case actionShowSecret:
		return m.loading("SECRET NOTE", m.cmdShowSecretNote())
	case actionEvents:
		return m.loading("ACTIVITY JOURNAL", m.cmdListEvents())

	case actionAddNote:
		m.form = newForm("ADD NOTE",
			newField("Note", "note", 256),
			newField("Additional info", "info", 256),
		)
	case actionAddSecretNote:
		m.form = newForm("ADD SECRET NOTE",
			newField("Secret note", "replaces the current one", 256),
			newMaskedField("Key", "passphrase, or hex:<bytes> for a raw key", 128),
		)
	case actionShowNote:
		m.form = newForm("SHOW NOTE", noteIDField())
	case actionDeleteNote:
		m.form = newForm("DELETE NOTE", noteIDField())
	case actionShowShared:
		m.form = newForm("SHOW SHARED NOTE", noteIDField())
	case actionDeleteShared:
		m.form = newForm("DELETE SHARED NOTE", noteIDField())
	case actionShareNote:
		m.form = newForm("SHARE NOTE",
			noteIDField(),
			newField("Recipient", "username", 31),
		)
	default:
		return m, nil
	}

	m.stage = stageForm
	return m, textinput.Blink
}

func (m mainLoopModel) loading(title string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.stage = stageResult
	m.result = resultMsg{title: title, body: "Loading..."}
	return m, cmd
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.stage = stageMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}

			cmd, err := m.submit()
			if err != nil {
				m.form.errMsg = humanizeError(err)
				return m, nil
			}

			m.form.errMsg = ""
			m.form.submitting = true
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submit validates the form locally and returns the server command.
func (m mainLoopModel) submit() (tea.Cmd, error) {
	switch m.action {
	case actionAddNote:
		note := strings.TrimSpace(m.form.value(0))
		info := strings.TrimSpace(m.form.value(1))
		return m.cmdAddNote(note, info), nil

	case actionAddSecretNote:
		note := m.form.value(0)
		secretKey, err := m.prepareKey(m.form.value(1), note, m.session.Username)
		if err != nil {
			return nil, err
		}
		return m.cmdAddSecretNote(note, secretKey), nil

	case actionShareNote:
		id, err := parseNoteID(m.form.value(0))
		if err != nil {
			return nil, err
		}
		return m.cmdShareNote(id, strings.TrimSpace(m.form.value(1))), nil
	}

	id, err := parseNoteID(m.form.value(0))
	if err != nil {
		return nil, err
	}

	switch m.action {
	case actionShowNote:
		return m.cmdGetNote(id, false), nil
	case actionShowShared:
		return m.cmdGetNote(id, true), nil
	case actionDeleteNote:
		return m.cmdDeleteNote(id, false), nil
	case actionDeleteShared:
		return m.cmdDeleteNote(id, true), nil
	}

	return nil, fmt.Errorf("unknown action %q", m.action)
}

func (m mainLoopModel) finishAction(msg actionDoneMsg) mainLoopModel {
	if m.stage != stageForm {
		return m
	}

	m.form.submitting = false
	if msg.err != nil {
		m.form.errMsg = humanizeError(msg.err)
		return m
	}

	m.stage = stageMenu
	m.menu.SetStatus(msg.status)
	return m
}

func (m mainLoopModel) showResult(msg resultMsg) mainLoopModel {
	// the user left before the answer arrived
	if m.stage == stageMenu {
		return m
	}

	if m.stage == stageForm {
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m
		}
	}

	m.stage = stageResult
	m.result = msg
	return m
}

func (m mainLoopModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		m.stage = stageMenu
	case key.Matches(keyMsg, keys.copy):
		if m.result.secret == "" {
			return m, nil
		}
		if err := clipboard.WriteAll(m.result.secret); err != nil {
			m.status = "Copy failed: " + err.Error()
			return m, nil
		}
		m.status = "Copied to clipboard"
	}

	return m, nil
}

func (m mainLoopModel) resultView() string {
	var b strings.Builder

	if m.result.err != nil {
		b.WriteString(renderError(humanizeError(m.result.err)))
	} else {
		b.WriteString(m.result.body)
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	hotKeys := "esc: back"
	if m.result.secret != "" {
		hotKeys += " │ c: copy"
	}

	return renderPage(m.result.title, b.String(), hotKeys)
}

func (m mainLoopModel) updateConfirmLogout(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.stage = stageMenu
		return m, nil
	case key.Matches(keyMsg, keys.yes):
		m.sessions.Keep(m.session.Username, m.session.Token)
		m.keptInCache = true
	case key.Matches(keyMsg, keys.no):
		m.sessions.Forget(m.session.Username)
	default:
		return m, nil
	}

	m.auth.Logout()
	m.logout = true
	return m, tea.Quit
}

func noteIDField() formField {
	return newField("Note id", "0", 6)
}

func parseNoteID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errInvalidNoteID
	}

	return id, nil
}

func (m mainLoopModel) cmdAddNote(note, info string) tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		err := notes.AddNote(ctx, models.NoteRequest{Note: note, Info: info})
		return actionDoneMsg{status: "Note added", err: err}
	}
}

func (m mainLoopModel) cmdAddSecretNote(note string, secretKey []byte) tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		err := notes.AddSecretNote(ctx, note, secretKey)
		return actionDoneMsg{status: "Secret note saved", err: err}
	}
}

func (m mainLoopModel) cmdShareNote(id int, recipient string) tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		err := notes.ShareNote(ctx, id, recipient)
		return actionDoneMsg{status: fmt.Sprintf("Note %d shared with %s", id, recipient), err: err}
	}
}

func (m mainLoopModel) cmdDeleteNote(id int, shared bool) tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		if shared {
			return actionDoneMsg{status: "Shared note deleted", err: notes.DeleteSharedNote(ctx, id)}
		}
		return actionDoneMsg{status: "Note deleted", err: notes.DeleteNote(ctx, id)}
	}
}

func (m mainLoopModel) cmdGetNote(id int, shared bool) tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		var (
			note models.Note
			err  error
		)

		title := fmt.Sprintf("NOTE %d", id)
		if shared {
			title = fmt.Sprintf("SHARED NOTE %d", id)
			note, err = notes.GetSharedNote(ctx, id)
		} else {
			note, err = notes.GetNote(ctx, id)
		}

		return resultMsg{title: title, body: renderNote(note), err: err}
	}
}

func (m mainLoopModel) cmdListNotes(shared bool) tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		var (
			list []models.NoteSummary
			err  error
		)

		title := "NOTES"
		if shared {
			title = "SHARED NOTES"
			list, err = notes.ListSharedNotes(ctx)
		} else {
			list, err = notes.ListNotes(ctx)
		}

		return resultMsg{title: title, body: renderNoteList(list), err: err}
	}
}

func (m mainLoopModel) cmdShowSecretNote() tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		secret, err := notes.ShowSecretNote(ctx)
		return resultMsg{
			title:  "SECRET NOTE",
			body:   secret.Note,
			secret: secret.Note,
			err:    err,
		}
	}
}

func (m mainLoopModel) cmdListEvents() tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		events, err := notes.ListEvents(ctx, eventsLimit)
		return resultMsg{title: "ACTIVITY JOURNAL", body: renderEvents(events), err: err}
	}
}
