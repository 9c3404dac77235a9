package blogposts

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound means no blog post row matched the requested id.
var ErrNotFound = errors.New("blog post not found")

type BlogPost struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, title, content string) (*BlogPost, error) {
	const q = `
insert into blog_posts (title, content)
values (?, ?)
returning id, title, content;
`
	var b BlogPost
	err := r.db.QueryRowContext(ctx, q, title, content).
		Scan(&b.ID, &b.Title, &b.Content)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (*BlogPost, error) {
	const q = `
select id, title, content
from blog_posts
where id = ?;
`
	var b BlogPost
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&b.ID, &b.Title, &b.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repo) List(ctx context.Context, skip, limit int) ([]BlogPost, error) {
	const q = `
select id, title, content
from blog_posts
order by id
limit ? offset ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BlogPost, 0, 16)
	for rows.Next() {
		var b BlogPost
		if err := rows.Scan(&b.ID, &b.Title, &b.Content); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, id int64, title, content string) (*BlogPost, error) {
	const q = `
update blog_posts
set title = ?, content = ?
where id = ?
returning id, title, content;
`
	var b BlogPost
	err := r.db.QueryRowContext(ctx, q, title, content, id).
		Scan(&b.ID, &b.Title, &b.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) (*BlogPost, error) {
	const q = `
delete from blog_posts
where id = ?
returning id, title, content;
`
	var b BlogPost
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&b.ID, &b.Title, &b.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}
