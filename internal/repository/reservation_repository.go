package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// ReservationRepo provides CRUD operations over the reservations table.
// Date columns are MySQL DATE; the repo converts them to the API's
// "2006-01-02" strings on the way out.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationColumns = `id, guest_id, room_id, check_in, check_out, total_amount, status,
	guests_count, children_count, early_check_in, late_check_out, extra_bed,
	down_payment_amount, down_payment_method, booking_source, guest_name, room_type, room_number`

func scanReservation(row interface{ Scan(...any) error }) (model.Reservation, error) {
	var (
		res     model.Reservation
		in, out time.Time
	)
	err := row.Scan(
		&res.ID, &res.GuestID, &res.RoomID, &in, &out, &res.TotalAmount, &res.Status,
		&res.GuestsCount, &res.ChildrenCount, &res.EarlyCheckIn, &res.LateCheckOut, &res.ExtraBed,
		&res.DownPaymentAmount, &res.DownPaymentMethod, &res.BookingSource,
		&res.GuestName, &res.RoomType, &res.RoomNumber,
	)
	if err != nil {
		return model.Reservation{}, err
	}
	res.CheckIn = in.Format("2006-01-02")
	res.CheckOut = out.Format("2006-01-02")
	return res, nil
}

// List returns all reservations, newest booking first.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []model.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// ListByGuest returns the guest's reservations ordered by check-in date.
func (r *ReservationRepo) ListByGuest(ctx context.Context, guestID uint64) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE guest_id = ? ORDER BY check_in", guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []model.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// GetByID returns one reservation or ErrNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	res, err := scanReservation(r.db.QueryRowContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrNotFound
	}
	return res, err
}

// Create inserts a reservation and populates its generated ID.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations
		(guest_id, room_id, check_in, check_out, total_amount, status,
		 guests_count, children_count, early_check_in, late_check_out, extra_bed,
		 down_payment_amount, down_payment_method, booking_source, guest_name, room_type, room_number)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q,
		res.GuestID, res.RoomID, res.CheckIn, res.CheckOut, res.TotalAmount, res.Status,
		res.GuestsCount, res.ChildrenCount, res.EarlyCheckIn, res.LateCheckOut, res.ExtraBed,
		res.DownPaymentAmount, res.DownPaymentMethod, res.BookingSource,
		res.GuestName, res.RoomType, res.RoomNumber,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

// UpdateStatus sets the status of a reservation and returns the updated
// row, or ErrNotFound when the id does not exist.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Reservation, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Reservation{}, err
	}
	if _, err := r.db.ExecContext(ctx,
		"UPDATE reservations SET status = ? WHERE id = ?", status, id); err != nil {
		return model.Reservation{}, err
	}
	return r.GetByID(ctx, id)
}
