package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/notesbox/internal/notesclient"
)

type apiCall struct {
	Op      string
	ID      int
	Title   string
	Content string
}

type fakeAPI struct {
	notes  []notesclient.Note
	lastID int
	err    error
	calls  []apiCall
}

func (f *fakeAPI) List(context.Context) ([]notesclient.Note, error) {
	f.calls = append(f.calls, apiCall{Op: "list"})
	if f.err != nil {
		return nil, f.err
	}
	return append([]notesclient.Note{}, f.notes...), nil
}

func (f *fakeAPI) Create(_ context.Context, title, content string) (*notesclient.Note, error) {
	f.calls = append(f.calls, apiCall{Op: "create", Title: title, Content: content})
	if f.err != nil {
		return nil, f.err
	}
	f.lastID++
	return &notesclient.Note{ID: f.lastID, Title: title, Content: content}, nil
}

func (f *fakeAPI) Update(_ context.Context, id int, title, content string) (*notesclient.Note, error) {
	f.calls = append(f.calls, apiCall{Op: "update", ID: id, Title: title, Content: content})
	if f.err != nil {
		return nil, f.err
	}
	return &notesclient.Note{ID: id, Title: title, Content: content}, nil
}

func (f *fakeAPI) Delete(_ context.Context, id int) error {
	f.calls = append(f.calls, apiCall{Op: "delete", ID: id})
	return f.err
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends the key and, for keys issuing requests, feeds the result back.
// Other commands only drive cursor blinking and are dropped.
func press(m *Model, k string) {
	_, cmd := m.Update(key(k))
	switch k {
	case "ctrl+s", "d", "x":
		run(m, cmd)
	}
}

func run(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case notesLoadedMsg, noteCreatedMsg, noteUpdatedMsg, noteDeletedMsg, requestFailedMsg:
		m.Update(msg)
	}
}

func loadedModel(t *testing.T, api *fakeAPI) *Model {
	t.Helper()
	m := NewModel(context.Background(), api)
	run(m, m.Init())
	return m
}

func seededAPI() *fakeAPI {
	return &fakeAPI{
		notes: []notesclient.Note{
			{ID: 1, Title: "groceries", Content: "milk"},
			{ID: 2, Title: "todo", Content: "call mom"},
		},
		lastID: 2,
	}
}

func TestModel_InitLoadsNotes(t *testing.T) {
	m := loadedModel(t, seededAPI())
	assert.Len(t, m.Notes(), 2)
	assert.NotContains(t, m.View(), emptyListText)
	assert.Contains(t, m.View(), "groceries")
}

func TestModel_InitFailureLeavesMirrorEmpty(t *testing.T) {
	m := loadedModel(t, &fakeAPI{err: errors.New("connection refused")})
	assert.Empty(t, m.Notes())
	assert.Contains(t, m.View(), emptyListText)
}

func TestModel_SelectCopiesNoteIntoForm(t *testing.T) {
	m := loadedModel(t, seededAPI())

	press(m, "down")
	press(m, "enter")

	require.NotNil(t, m.selected)
	assert.Equal(t, 2, m.selected.ID)
	assert.Equal(t, "todo", m.titleInput.Value())
	assert.Equal(t, "call mom", m.contentInput.Value())
	assert.Equal(t, focusTitle, m.focus)
	assert.Contains(t, m.View(), "Editing note #2")
}

func TestModel_SubmitWithSelectionUpdates(t *testing.T) {
	api := seededAPI()
	m := loadedModel(t, api)

	press(m, "enter")
	m.titleInput.SetValue("groceries!")
	press(m, "ctrl+s")

	assert.Equal(t, apiCall{Op: "update", ID: 1, Title: "groceries!", Content: "milk"}, api.calls[len(api.calls)-1])
	assert.Equal(t, []notesclient.Note{
		{ID: 1, Title: "groceries!", Content: "milk"},
		{ID: 2, Title: "todo", Content: "call mom"},
	}, m.Notes())
	assert.Nil(t, m.selected)
	assert.Empty(t, m.titleInput.Value())
	assert.Empty(t, m.contentInput.Value())
}

func TestModel_SelectKeepsLongFieldsIntact(t *testing.T) {
	longTitle := strings.Repeat("t", 300)
	longContent := strings.TrimSuffix(strings.Repeat("line of content\n", 150), "\n")
	api := &fakeAPI{
		notes:  []notesclient.Note{{ID: 9, Title: longTitle, Content: longContent}},
		lastID: 9,
	}
	m := loadedModel(t, api)

	press(m, "enter")
	assert.Equal(t, longTitle, m.titleInput.Value())
	assert.Equal(t, longContent, m.contentInput.Value())

	press(m, "ctrl+s")
	assert.Equal(t, apiCall{Op: "update", ID: 9, Title: longTitle, Content: longContent}, api.calls[len(api.calls)-1])
	assert.Equal(t, []notesclient.Note{{ID: 9, Title: longTitle, Content: longContent}}, m.Notes())
}

func TestModel_UpdateFailureKeepsState(t *testing.T) {
	api := seededAPI()
	m := loadedModel(t, api)

	press(m, "enter")
	m.titleInput.SetValue("changed")
	api.err = errors.New("Oops, something went wrong")
	press(m, "ctrl+s")

	require.NotNil(t, m.selected)
	assert.Equal(t, "changed", m.titleInput.Value())
	assert.Equal(t, "groceries", m.Notes()[0].Title)
}

func TestModel_SubmitWithoutSelectionCreates(t *testing.T) {
	api := seededAPI()
	m := loadedModel(t, api)

	press(m, "n")
	m.titleInput.SetValue("new")
	m.contentInput.SetValue("note")
	press(m, "ctrl+s")

	notes := m.Notes()
	require.Len(t, notes, 3)
	assert.Equal(t, notesclient.Note{ID: 3, Title: "new", Content: "note"}, notes[2])
	assert.Empty(t, m.titleInput.Value())
	assert.Empty(t, m.contentInput.Value())
	assert.Equal(t, focusList, m.focus)
}

func TestModel_SubmitRequiresBothFields(t *testing.T) {
	api := seededAPI()
	m := loadedModel(t, api)
	callsBefore := len(api.calls)

	press(m, "n")
	m.titleInput.SetValue("only title")
	press(m, "ctrl+s")

	assert.Len(t, api.calls, callsBefore)
	assert.Equal(t, requiredHint, m.hint)
	assert.Contains(t, m.View(), requiredHint)
	assert.Len(t, m.Notes(), 2)
}

func TestModel_DeleteNeverSelects(t *testing.T) {
	api := seededAPI()
	m := loadedModel(t, api)

	press(m, "d")

	assert.Equal(t, apiCall{Op: "delete", ID: 1}, api.calls[len(api.calls)-1])
	assert.Nil(t, m.selected)
	assert.Empty(t, m.titleInput.Value())
	assert.Equal(t, []notesclient.Note{{ID: 2, Title: "todo", Content: "call mom"}}, m.Notes())
}

func TestModel_DeleteKeepsExistingSelection(t *testing.T) {
	api := seededAPI()
	m := loadedModel(t, api)

	press(m, "down")
	press(m, "enter")
	// back to the list without cancelling the edit
	m.setFocus(focusList)
	m.cursor = 0
	press(m, "x")

	require.NotNil(t, m.selected)
	assert.Equal(t, 2, m.selected.ID)
	assert.Equal(t, "todo", m.titleInput.Value())
	assert.Equal(t, []notesclient.Note{{ID: 2, Title: "todo", Content: "call mom"}}, m.Notes())
}

func TestModel_DeleteFailureKeepsMirror(t *testing.T) {
	api := seededAPI()
	m := loadedModel(t, api)
	api.err = errors.New("Oops, something went wrong")

	press(m, "d")
	assert.Len(t, m.Notes(), 2)
}

func TestModel_CancelClearsFormWithoutRequest(t *testing.T) {
	api := seededAPI()
	m := loadedModel(t, api)
	callsBefore := len(api.calls)

	press(m, "enter")
	press(m, "esc")

	assert.Len(t, api.calls, callsBefore)
	assert.Nil(t, m.selected)
	assert.Empty(t, m.titleInput.Value())
	assert.Empty(t, m.contentInput.Value())
	assert.Equal(t, focusList, m.focus)
}

func TestModel_DeleteLastNoteShowsEmptyIndicator(t *testing.T) {
	api := &fakeAPI{notes: []notesclient.Note{{ID: 5, Title: "a", Content: "b"}}, lastID: 5}
	m := loadedModel(t, api)

	press(m, "d")

	assert.Empty(t, m.Notes())
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), emptyListText)

	// nothing to select or delete
	press(m, "enter")
	press(m, "d")
	assert.Nil(t, m.selected)
	assert.Equal(t, "delete", api.calls[len(api.calls)-1].Op)
	assert.Len(t, api.calls, 2)
}

func Test_firstLine(t *testing.T) {
	assert.Equal(t, "short", firstLine("short", 10))
	assert.Equal(t, "one …", firstLine("one\ntwo", 10))
	assert.Equal(t, "abcd…", firstLine("abcdefgh", 5))
}
