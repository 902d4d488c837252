package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// GuestRepo provides read and create operations over guests and their
// historical stays. Stays are read-only records; nothing here inserts
// them, they are imported from past data.
type GuestRepo struct {
	db *sql.DB
}

// NewGuestRepo returns a GuestRepo bound to the given database.
func NewGuestRepo(db *sql.DB) *GuestRepo { return &GuestRepo{db: db} }

// List returns all guests with their stays attached, ordered by name. A
// non-empty search term filters by name or email substring.
func (r *GuestRepo) List(ctx context.Context, search string) ([]model.Guest, error) {
	q := "SELECT id, name, email, phone FROM guests ORDER BY name"
	args := []any{}
	if search != "" {
		q = "SELECT id, name, email, phone FROM guests WHERE name LIKE ? OR email LIKE ? ORDER BY name"
		like := "%" + search + "%"
		args = append(args, like, like)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := []model.Guest{}
	index := map[uint64]int{}
	for rows.Next() {
		var g model.Guest
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.Phone); err != nil {
			return nil, err
		}
		g.Stays = []model.Stay{}
		index[g.ID] = len(guests)
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(guests) == 0 {
		return guests, nil
	}

	stayRows, err := r.db.QueryContext(ctx,
		"SELECT guest_id, check_in, check_out, nights, total_spent FROM stays ORDER BY guest_id, check_in")
	if err != nil {
		return nil, err
	}
	defer stayRows.Close()

	for stayRows.Next() {
		var (
			guestID uint64
			in, out time.Time
			s       model.Stay
		)
		if err := stayRows.Scan(&guestID, &in, &out, &s.Nights, &s.TotalSpent); err != nil {
			return nil, err
		}
		i, ok := index[guestID]
		if !ok {
			continue // stay of a guest the filter excluded
		}
		s.CheckIn = in.Format("2006-01-02")
		s.CheckOut = out.Format("2006-01-02")
		guests[i].Stays = append(guests[i].Stays, s)
	}
	return guests, stayRows.Err()
}

// GetByID returns one guest with stays attached, or ErrNotFound.
func (r *GuestRepo) GetByID(ctx context.Context, id uint64) (model.Guest, error) {
	var g model.Guest
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone FROM guests WHERE id = ?", id).
		Scan(&g.ID, &g.Name, &g.Email, &g.Phone)
	if err == sql.ErrNoRows {
		return model.Guest{}, ErrNotFound
	}
	if err != nil {
		return model.Guest{}, err
	}

	g.Stays = []model.Stay{}
	rows, err := r.db.QueryContext(ctx,
		"SELECT check_in, check_out, nights, total_spent FROM stays WHERE guest_id = ? ORDER BY check_in", id)
	if err != nil {
		return model.Guest{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			in, out time.Time
			s       model.Stay
		)
		if err := rows.Scan(&in, &out, &s.Nights, &s.TotalSpent); err != nil {
			return model.Guest{}, err
		}
		s.CheckIn = in.Format("2006-01-02")
		s.CheckOut = out.Format("2006-01-02")
		g.Stays = append(g.Stays, s)
	}
	return g, rows.Err()
}

// Create inserts a guest and populates its generated ID. New guests start
// with no stays.
func (r *GuestRepo) Create(ctx context.Context, g *model.Guest) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO guests (name, email, phone) VALUES (?, ?, ?)", g.Name, g.Email, g.Phone)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	g.Stays = []model.Stay{}
	return nil
}
