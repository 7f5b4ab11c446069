package notes_box_test

import (
	"context"
	"sort"
	"sync"

	"github.com/2beens/notesbox/internal/notes_box"
)

// memRepo is an in-memory notes repo with sequential, never reused ids.
type memRepo struct {
	mutex  sync.Mutex
	lastID int
	notes  map[int]notes_box.Note
}

func newMemRepo() *memRepo {
	return &memRepo{
		notes: make(map[int]notes_box.Note),
	}
}

func (r *memRepo) List(context.Context) ([]notes_box.Note, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	notes := make([]notes_box.Note, 0, len(r.notes))
	for _, n := range r.notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].ID < notes[j].ID
	})
	return notes, nil
}

func (r *memRepo) Add(_ context.Context, note *notes_box.Note) (*notes_box.Note, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.lastID++
	note.ID = r.lastID
	r.notes[note.ID] = *note
	return note, nil
}

func (r *memRepo) Update(_ context.Context, note *notes_box.Note) (*notes_box.Note, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.notes[note.ID]; !ok {
		return nil, notes_box.ErrNoteNotFound
	}
	r.notes[note.ID] = *note
	updated := *note
	return &updated, nil
}

func (r *memRepo) Delete(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.notes[id]; !ok {
		return notes_box.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}
