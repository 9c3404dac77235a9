package contactinfo

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound means no contact info row matched the requested id.
var ErrNotFound = errors.New("contact info not found")

type ContactInfo struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, email, phone, address string) (*ContactInfo, error) {
	const q = `
insert into contact_info (email, phone, address)
values (?, ?, ?)
returning id, email, phone, address;
`
	var ci ContactInfo
	err := r.db.QueryRowContext(ctx, q, email, phone, address).
		Scan(&ci.ID, &ci.Email, &ci.Phone, &ci.Address)
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (*ContactInfo, error) {
	const q = `
select id, email, phone, address
from contact_info
where id = ?;
`
	var ci ContactInfo
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&ci.ID, &ci.Email, &ci.Phone, &ci.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ci, nil
}

func (r *Repo) List(ctx context.Context, skip, limit int) ([]ContactInfo, error) {
	const q = `
select id, email, phone, address
from contact_info
order by id
limit ? offset ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ContactInfo, 0, 16)
	for rows.Next() {
		var ci ContactInfo
		if err := rows.Scan(&ci.ID, &ci.Email, &ci.Phone, &ci.Address); err != nil {
			return nil, err
		}
		out = append(out, ci)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, id int64, email, phone, address string) (*ContactInfo, error) {
	const q = `
update contact_info
set email = ?, phone = ?, address = ?
where id = ?
returning id, email, phone, address;
`
	var ci ContactInfo
	err := r.db.QueryRowContext(ctx, q, email, phone, address, id).
		Scan(&ci.ID, &ci.Email, &ci.Phone, &ci.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ci, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) (*ContactInfo, error) {
	const q = `
delete from contact_info
where id = ?
returning id, email, phone, address;
`
	var ci ContactInfo
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&ci.ID, &ci.Email, &ci.Phone, &ci.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ci, nil
}
