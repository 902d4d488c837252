package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// RoomRepo provides CRUD operations over the rooms table.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = "id, number, type, status, rate, capacity"

func scanRoom(row interface{ Scan(...any) error }) (model.Room, error) {
	var r model.Room
	err := row.Scan(&r.ID, &r.Number, &r.Type, &r.Status, &r.Rate, &r.Capacity)
	return r, err
}

// List returns all rooms ordered by number. When status is non-empty only
// rooms with that status are returned (the housekeeping filter).
func (r *RoomRepo) List(ctx context.Context, status string) ([]model.Room, error) {
	q := "SELECT " + roomColumns + " FROM rooms ORDER BY number"
	args := []any{}
	if status != "" {
		q = "SELECT " + roomColumns + " FROM rooms WHERE status = ? ORDER BY number"
		args = append(args, status)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []model.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// GetByID returns one room or ErrNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	const q = "SELECT " + roomColumns + " FROM rooms WHERE id = ?"
	room, err := scanRoom(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return model.Room{}, ErrNotFound
	}
	return room, err
}

// Create inserts a room and populates its generated ID.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	const q = "INSERT INTO rooms (number, type, status, rate, capacity) VALUES (?, ?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, room.Number, room.Type, room.Status, room.Rate, room.Capacity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)
	return nil
}

// Update replaces all mutable fields of a room. Returns ErrNotFound when
// the id does not exist.
func (r *RoomRepo) Update(ctx context.Context, room model.Room) (model.Room, error) {
	const q = "UPDATE rooms SET number = ?, type = ?, status = ?, rate = ?, capacity = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, room.Number, room.Type, room.Status, room.Rate, room.Capacity, room.ID)
	if err != nil {
		return model.Room{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Zero rows can also mean an identical update; confirm existence.
		if _, err := r.GetByID(ctx, room.ID); err != nil {
			return model.Room{}, err
		}
	}
	return r.GetByID(ctx, room.ID)
}

// Delete removes a room by id. Returns ErrNotFound when nothing matched.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
