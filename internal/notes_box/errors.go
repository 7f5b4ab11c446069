package notes_box

import (
	"errors"
	"net/http"

	"github.com/2beens/notesbox/pkg"

	log "github.com/sirupsen/logrus"
)

var ErrNoteNotFound = errors.New("note not found")

// ValidationError is malformed or missing client input, reported as 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError is any persistence failure, not found included, reported as 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func writeError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		pkg.WriteResponse(w, pkg.ContentType.Text, validationErr.Message, http.StatusBadRequest)
		return
	}

	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		log.Errorf("notes storage error: %s", storageErr)
	} else {
		log.Errorf("notes unexpected error: %s", err)
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, "Oops, something went wrong", http.StatusInternalServerError)
}
