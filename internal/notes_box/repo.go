package notes_box

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errNoteFieldsEmpty = errors.New("note title or content empty")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context) ([]Note, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, content FROM note ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *Repo) Add(ctx context.Context, note *Note) (*Note, error) {
	if note.Title == "" || note.Content == "" {
		return nil, errNoteFieldsEmpty
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO note (title, content) VALUES ($1, $2) RETURNING id;`,
		note.Title, note.Content,
	).Scan(&note.ID); err != nil {
		return nil, err
	}

	return note, nil
}

func (r *Repo) Update(ctx context.Context, note *Note) (*Note, error) {
	if note.Title == "" || note.Content == "" {
		return nil, errNoteFieldsEmpty
	}

	var updated Note
	err := r.db.QueryRow(
		ctx,
		`UPDATE note SET title = $1, content = $2 WHERE id = $3 RETURNING id, title, content;`,
		note.Title, note.Content, note.ID,
	).Scan(&updated.ID, &updated.Title, &updated.Content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *Repo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM note WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}
