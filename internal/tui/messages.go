package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2beens/notesbox/internal/notesclient"
)

type notesAPI interface {
	List(ctx context.Context) ([]notesclient.Note, error)
	Create(ctx context.Context, title, content string) (*notesclient.Note, error)
	Update(ctx context.Context, id int, title, content string) (*notesclient.Note, error)
	Delete(ctx context.Context, id int) error
}

// notesLoadedMsg carries the collection fetched on startup
type notesLoadedMsg struct {
	Notes []notesclient.Note
}

type noteCreatedMsg struct {
	Note notesclient.Note
}

type noteUpdatedMsg struct {
	Note notesclient.Note
}

type noteDeletedMsg struct {
	ID int
}

// requestFailedMsg is sent when any API call fails; it never changes the mirror
type requestFailedMsg struct {
	Op  string
	Err error
}

func loadNotesCmd(ctx context.Context, api notesAPI) tea.Cmd {
	return func() tea.Msg {
		notes, err := api.List(ctx)
		if err != nil {
			return requestFailedMsg{Op: "load", Err: err}
		}
		return notesLoadedMsg{Notes: notes}
	}
}

func createNoteCmd(ctx context.Context, api notesAPI, title, content string) tea.Cmd {
	return func() tea.Msg {
		note, err := api.Create(ctx, title, content)
		if err != nil {
			return requestFailedMsg{Op: "create", Err: err}
		}
		return noteCreatedMsg{Note: *note}
	}
}

func updateNoteCmd(ctx context.Context, api notesAPI, id int, title, content string) tea.Cmd {
	return func() tea.Msg {
		note, err := api.Update(ctx, id, title, content)
		if err != nil {
			return requestFailedMsg{Op: "update", Err: err}
		}
		return noteUpdatedMsg{Note: *note}
	}
}

func deleteNoteCmd(ctx context.Context, api notesAPI, id int) tea.Cmd {
	return func() tea.Msg {
		if err := api.Delete(ctx, id); err != nil {
			return requestFailedMsg{Op: "delete", Err: err}
		}
		return noteDeletedMsg{ID: id}
	}
}
