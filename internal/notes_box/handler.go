package notes_box

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/notesbox/internal/telemetry/metrics"
	"github.com/2beens/notesbox/internal/telemetry/tracing"
	"github.com/2beens/notesbox/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=notes_mocks_test.go -package=notes_box_test

type notesRepo interface {
	List(ctx context.Context) ([]Note, error)
	Add(ctx context.Context, note *Note) (*Note, error)
	Update(ctx context.Context, note *Note) (*Note, error)
	Delete(ctx context.Context, id int) error
}

type Handler struct {
	repo    notesRepo
	metrics *metrics.Manager
}

func NewHandler(repo notesRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

// SetupRoutes registers the notes API on router. Middlewares in
// mutationMiddlewares wrap only the routes that change state.
func (handler *Handler) SetupRoutes(router *mux.Router, mutationMiddlewares ...mux.MiddlewareFunc) {
	router.HandleFunc("/api/notes", handler.HandleList).Methods("GET", "OPTIONS").Name("list-notes")

	mutations := router.NewRoute().Subrouter()
	mutations.Use(mutationMiddlewares...)
	mutations.HandleFunc("/api/notes", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-note")
	mutations.HandleFunc("/api/notes/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-note")
	mutations.HandleFunc("/api/notes/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-note")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notes.list")
	defer span.End()

	notes, err := handler.repo.List(ctx)
	if err != nil {
		writeError(w, &StorageError{Op: "list notes", Err: err})
		return
	}

	if notes == nil {
		notes = []Note{}
	}

	notesJson, err := json.Marshal(notes)
	if err != nil {
		log.Errorf("marshal notes error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, notesJson, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notes.add")
	defer span.End()

	req, err := decodeNoteRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	addedNote, err := handler.repo.Add(ctx, &Note{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, &StorageError{Op: "add note", Err: err})
		return
	}

	handler.metrics.NoteMutated(metrics.NoteOpCreate)
	log.Debugf("new note added: %d [%s]", addedNote.ID, addedNote.Title)

	handler.writeNote(w, addedNote)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notes.update")
	defer span.End()

	req, err := decodeNoteRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := parseNoteID(mux.Vars(r)["id"], msgInvalidID)
	if err != nil {
		writeError(w, err)
		return
	}

	updatedNote, err := handler.repo.Update(ctx, &Note{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, &StorageError{Op: "update note " + strconv.Itoa(id), Err: err})
		return
	}

	handler.metrics.NoteMutated(metrics.NoteOpUpdate)
	log.Debugf("note updated: %d [%s]", updatedNote.ID, updatedNote.Title)

	handler.writeNote(w, updatedNote)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notes.delete")
	defer span.End()

	id, err := parseNoteID(mux.Vars(r)["id"], msgIDRequired)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		writeError(w, &StorageError{Op: "delete note " + strconv.Itoa(id), Err: err})
		return
	}

	handler.metrics.NoteMutated(metrics.NoteOpDelete)
	log.Debugf("note deleted: %d", id)

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) writeNote(w http.ResponseWriter, note *Note) {
	noteJson, err := json.Marshal(note)
	if err != nil {
		log.Errorf("marshal note %d error: %s", note.ID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, noteJson, http.StatusOK)
}

// decodeNoteRequest reads {title, content} from a JSON body; both are required.
func decodeNoteRequest(r *http.Request) (*noteRequest, error) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("decode note request: %s", err)
		return nil, &ValidationError{Message: "title and content fields required"}
	}
	if req.Title == "" || req.Content == "" {
		return nil, &ValidationError{Message: "title and content fields required"}
	}
	return &req, nil
}

const (
	msgInvalidID  = "ID must be a valid number"
	msgIDRequired = "ID field required"
)

// parseNoteID accepts only positive integers; ids start at 1.
// invalidMsg is reported for anything else, so each route keeps its own wording.
func parseNoteID(idStr, invalidMsg string) (int, error) {
	if idStr == "" {
		return 0, &ValidationError{Message: msgIDRequired}
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Message: invalidMsg}
	}
	return id, nil
}
