package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/notesbox/internal/notesclient"
)

const requiredHint = "title and content are required"

type focus int

const (
	focusList focus = iota
	focusTitle
	focusContent
)

// Model is the single notes screen: the list mirroring the server collection
// and one form used both for creating and for editing notes.
type Model struct {
	ctx context.Context
	api notesAPI

	notes  []notesclient.Note
	cursor int

	titleInput   textinput.Model
	contentInput textarea.Model
	// nil means the form creates a new note
	selected *notesclient.Note
	focus    focus
	hint     string

	width  int
	height int
}

func NewModel(ctx context.Context, api notesAPI) *Model {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Content"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(50)
	ta.SetHeight(5)

	return &Model{
		ctx:          ctx,
		api:          api,
		notes:        []notesclient.Note{},
		titleInput:   ti,
		contentInput: ta,
		focus:        focusList,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return loadNotesCmd(m.ctx, m.api)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeForm()
		return m, nil

	case notesLoadedMsg:
		m.notes = msg.Notes
		if m.notes == nil {
			m.notes = []notesclient.Note{}
		}
		m.clampCursor()
		return m, nil

	case noteCreatedMsg:
		m.notes = append(m.notes, msg.Note)
		m.resetForm()
		return m, nil

	case noteUpdatedMsg:
		for i := range m.notes {
			if m.notes[i].ID == msg.Note.ID {
				m.notes[i] = msg.Note
				break
			}
		}
		m.resetForm()
		return m, nil

	case noteDeletedMsg:
		for i := range m.notes {
			if m.notes[i].ID == msg.ID {
				m.notes = append(m.notes[:i], m.notes[i+1:]...)
				break
			}
		}
		m.clampCursor()
		return m, nil

	case requestFailedMsg:
		log.Errorf("%s note: %s", msg.Op, msg.Err)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus == focusList {
			return m.handleListKeys(msg)
		}
		return m.handleFormKeys(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.notes)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.notes) == 0 {
			return m, nil
		}
		return m, m.selectNote(m.notes[m.cursor])
	case "d", "x":
		// deleting leaves selection and form untouched
		if len(m.notes) == 0 {
			return m, nil
		}
		return m, deleteNoteCmd(m.ctx, m.api, m.notes[m.cursor].ID)
	case "n", "tab":
		return m, m.setFocus(focusTitle)
	}
	return m, nil
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.resetForm()
		return m, nil
	case "ctrl+s":
		return m, m.submit()
	case "tab", "shift+tab":
		if m.focus == focusTitle {
			return m, m.setFocus(focusContent)
		}
		return m, m.setFocus(focusTitle)
	case "enter":
		if m.focus == focusTitle {
			return m, m.setFocus(focusContent)
		}
	}

	m.hint = ""
	return m.updateFocusedInput(msg)
}

func (m *Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case focusContent:
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	title := m.titleInput.Value()
	content := m.contentInput.Value()
	if title == "" || content == "" {
		m.hint = requiredHint
		return nil
	}
	m.hint = ""

	if m.selected != nil {
		return updateNoteCmd(m.ctx, m.api, m.selected.ID, title, content)
	}
	return createNoteCmd(m.ctx, m.api, title, content)
}

func (m *Model) selectNote(note notesclient.Note) tea.Cmd {
	m.selected = &note
	m.titleInput.SetValue(note.Title)
	m.contentInput.SetValue(note.Content)
	m.hint = ""
	return m.setFocus(focusTitle)
}

func (m *Model) resetForm() {
	m.selected = nil
	m.titleInput.Reset()
	m.contentInput.Reset()
	m.hint = ""
	m.setFocus(focusList)
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.titleInput.Blur()
	m.contentInput.Blur()
	switch f {
	case focusTitle:
		return m.titleInput.Focus()
	case focusContent:
		return m.contentInput.Focus()
	}
	return nil
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.notes) {
		m.cursor = len(m.notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) resizeForm() {
	width := m.width - 6
	if width < 20 {
		width = 20
	}
	m.titleInput.Width = width
	m.contentInput.SetWidth(width)
}

// Notes returns a copy of the current mirror.
func (m *Model) Notes() []notesclient.Note {
	return append([]notesclient.Note{}, m.notes...)
}
