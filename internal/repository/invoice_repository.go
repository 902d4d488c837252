package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// InvoiceRepo provides create/read/status operations over the invoices
// table. Invoices are append-only billing documents; only their status
// column is ever updated after insertion.
type InvoiceRepo struct {
	db *sql.DB
}

// NewInvoiceRepo returns an InvoiceRepo bound to the given database.
func NewInvoiceRepo(db *sql.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

const invoiceColumns = `id, reservation_id, guest_name, room_number, check_in_date, check_out_date,
	room_charge, additional_charges, total_amount, payment_method, status`

func scanInvoice(row interface{ Scan(...any) error }) (model.Invoice, error) {
	var (
		inv     model.Invoice
		in, out time.Time
	)
	err := row.Scan(
		&inv.ID, &inv.ReservationID, &inv.GuestName, &inv.RoomNumber, &in, &out,
		&inv.RoomCharge, &inv.AdditionalCharges, &inv.TotalAmount, &inv.PaymentMethod, &inv.Status,
	)
	if err != nil {
		return model.Invoice{}, err
	}
	inv.CheckInDate = in.Format("2006-01-02")
	inv.CheckOutDate = out.Format("2006-01-02")
	return inv, nil
}

// List returns all invoices, newest first.
func (r *InvoiceRepo) List(ctx context.Context) ([]model.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+invoiceColumns+" FROM invoices ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []model.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// GetByID returns one invoice or ErrNotFound.
func (r *InvoiceRepo) GetByID(ctx context.Context, id uint64) (model.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRowContext(ctx,
		"SELECT "+invoiceColumns+" FROM invoices WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return model.Invoice{}, ErrNotFound
	}
	return inv, err
}

// Create inserts an invoice, forcing the initial status to "unpaid"
// regardless of what the caller set, and populates the generated ID.
func (r *InvoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	inv.Status = model.InvoiceStatusUnpaid
	const q = `INSERT INTO invoices
		(reservation_id, guest_name, room_number, check_in_date, check_out_date,
		 room_charge, additional_charges, total_amount, payment_method, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q,
		inv.ReservationID, inv.GuestName, inv.RoomNumber, inv.CheckInDate, inv.CheckOutDate,
		inv.RoomCharge, inv.AdditionalCharges, inv.TotalAmount, inv.PaymentMethod, inv.Status,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	inv.ID = uint64(id)
	return nil
}

// UpdateStatus sets the status of an invoice in place and returns the
// updated row, or ErrNotFound when the id does not exist.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Invoice, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Invoice{}, err
	}
	if _, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = ? WHERE id = ?", status, id); err != nil {
		return model.Invoice{}, err
	}
	return r.GetByID(ctx, id)
}
