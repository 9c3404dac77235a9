package projects

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound means no project row matched the requested id.
var ErrNotFound = errors.New("project not found")

type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, title, description string) (*Project, error) {
	const q = `
insert into projects (title, description)
values (?, ?)
returning id, title, description;
`
	var p Project
	err := r.db.QueryRowContext(ctx, q, title, description).
		Scan(&p.ID, &p.Title, &p.Description)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (*Project, error) {
	const q = `
select id, title, description
from projects
where id = ?;
`
	var p Project
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Title, &p.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns rows in rowid order, skipping skip rows and returning
// at most limit.
func (r *Repo) List(ctx context.Context, skip, limit int) ([]Project, error) {
	const q = `
select id, title, description
from projects
order by id
limit ? offset ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0, 16)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update overwrites every field of the row; the id never changes.
func (r *Repo) Update(ctx context.Context, id int64, title, description string) (*Project, error) {
	const q = `
update projects
set title = ?, description = ?
where id = ?
returning id, title, description;
`
	var p Project
	err := r.db.QueryRowContext(ctx, q, title, description, id).
		Scan(&p.ID, &p.Title, &p.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes the row and returns its pre-deletion values.
func (r *Repo) Delete(ctx context.Context, id int64) (*Project, error) {
	const q = `
delete from projects
where id = ?
returning id, title, description;
`
	var p Project
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Title, &p.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
