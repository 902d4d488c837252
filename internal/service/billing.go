package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// ErrSettingsNotLoaded is returned by billing operations when the hotel
// settings document does not exist yet. Invoices cannot render without a
// currency symbol, so issuance is refused rather than degraded.
var ErrSettingsNotLoaded = errors.New("hotel settings not loaded")

// defaultPaymentMethod is applied to invoices created by the billing flow
// when the front desk has not recorded a specific method.
const defaultPaymentMethod = "cash"

// BillingStep identifies one stage of the full-payment chain. Failures are
// wrapped in a BillingError carrying the step so each of the three failure
// points surfaces its own message.
type BillingStep int

const (
	StepCreateInvoice BillingStep = iota + 1
	StepMarkInvoicePaid
	StepMarkReservationPaid
)

func (s BillingStep) String() string {
	switch s {
	case StepCreateInvoice:
		return "creating invoice"
	case StepMarkInvoicePaid:
		return "updating invoice status"
	case StepMarkReservationPaid:
		return "updating reservation status"
	default:
		return "unknown billing step"
	}
}

// BillingError reports which step of a billing chain failed. Earlier steps
// have already taken effect; the caller can observe the intermediate state
// and retry the remaining steps manually.
type BillingError struct {
	Step BillingStep
	Err  error
}

func (e *BillingError) Error() string { return fmt.Sprintf("%s: %v", e.Step, e.Err) }
func (e *BillingError) Unwrap() error { return e.Err }

// InvoiceStore is the persistence surface the billing chain needs for
// invoices. *repository.InvoiceRepo satisfies it.
type InvoiceStore interface {
	Create(ctx context.Context, inv *model.Invoice) error
	UpdateStatus(ctx context.Context, id uint64, status string) (model.Invoice, error)
}

// ReservationStore is the persistence surface the billing chain needs for
// reservations. *repository.ReservationRepo satisfies it.
type ReservationStore interface {
	UpdateStatus(ctx context.Context, id uint64, status string) (model.Reservation, error)
}

// Billing runs the invoice issuance and payment chains. The stores are the
// only side effects; all amount math is in the pure builders below.
type Billing struct {
	Invoices     InvoiceStore
	Reservations ReservationStore
}

func NewBilling(invoices InvoiceStore, reservations ReservationStore) *Billing {
	if invoices == nil || reservations == nil {
		panic("nil store passed to NewBilling")
	}
	return &Billing{Invoices: invoices, Reservations: reservations}
}

// DownPaymentInvoice builds the invoice for a reservation's down payment:
// the room charge and total both equal the down-payment amount and there
// are no additional charges.
func DownPaymentInvoice(res model.Reservation) model.Invoice {
	return model.Invoice{
		ReservationID:     res.ID,
		GuestName:         res.GuestName,
		RoomNumber:        res.RoomNumber,
		CheckInDate:       res.CheckIn,
		CheckOutDate:      res.CheckOut,
		RoomCharge:        res.DownPaymentAmount,
		AdditionalCharges: 0,
		TotalAmount:       res.DownPaymentAmount,
		PaymentMethod:     defaultPaymentMethod,
	}
}

// FullPaymentInvoice builds the invoice for the remaining balance:
// totalAmount minus downPaymentAmount. The remainder is deliberately not
// clamped at zero; a negative balance signals a data-entry error upstream
// and must stay visible.
func FullPaymentInvoice(res model.Reservation) model.Invoice {
	remaining := res.TotalAmount - res.DownPaymentAmount
	return model.Invoice{
		ReservationID:     res.ID,
		GuestName:         res.GuestName,
		RoomNumber:        res.RoomNumber,
		CheckInDate:       res.CheckIn,
		CheckOutDate:      res.CheckOut,
		RoomCharge:        remaining,
		AdditionalCharges: 0,
		TotalAmount:       remaining,
		PaymentMethod:     defaultPaymentMethod,
	}
}

// IssueDownPayment creates an unpaid invoice for the reservation's down
// payment. The reservation's own status is left untouched. Settings must be
// loaded because the stored invoice is rendered with the hotel currency.
func (b *Billing) IssueDownPayment(ctx context.Context, res model.Reservation, settings *model.Settings) (model.Invoice, error) {
	if settings == nil {
		return model.Invoice{}, ErrSettingsNotLoaded
	}
	inv := DownPaymentInvoice(res)
	if err := b.Invoices.Create(ctx, &inv); err != nil {
		return model.Invoice{}, &BillingError{Step: StepCreateInvoice, Err: err}
	}
	return inv, nil
}

// ProcessFullPayment runs the strict three-step payment chain:
//
//  1. create an invoice for the remaining balance
//  2. mark that invoice paid
//  3. mark the reservation paid
//
// Each step runs only after the previous one succeeded, and a failure
// aborts the rest, returning a BillingError naming the failed step. Effects
// of completed steps are kept: an invoice that exists but is unpaid, or an
// invoice paid with the reservation still confirmed, is a visible state the
// front desk can retry from.
func (b *Billing) ProcessFullPayment(ctx context.Context, res model.Reservation, settings *model.Settings) (model.Invoice, error) {
	if settings == nil {
		return model.Invoice{}, ErrSettingsNotLoaded
	}

	inv := FullPaymentInvoice(res)
	if err := b.Invoices.Create(ctx, &inv); err != nil {
		return model.Invoice{}, &BillingError{Step: StepCreateInvoice, Err: err}
	}

	updated, err := b.Invoices.UpdateStatus(ctx, inv.ID, model.InvoiceStatusPaid)
	if err != nil {
		return inv, &BillingError{Step: StepMarkInvoicePaid, Err: err}
	}

	if _, err := b.Reservations.UpdateStatus(ctx, res.ID, model.ReservationStatusPaid); err != nil {
		return updated, &BillingError{Step: StepMarkReservationPaid, Err: err}
	}

	return updated, nil
}

// PrintableInvoice is the render-ready payload for a printed invoice. It is
// a pure projection; building one changes nothing.
type PrintableInvoice struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	HotelName     string  `json:"hotelName"`
	HotelAddress  string  `json:"hotelAddress"`
	HotelPhone    string  `json:"hotelPhone"`
	GuestName     string  `json:"guestName"`
	RoomNumber    string  `json:"roomNumber"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	Currency      string  `json:"currency"`
	TotalAmount   float64 `json:"totalAmount"`
	BalanceDue    float64 `json:"balanceDue"`
	Status        string  `json:"status"`
}

// BuildPrintableInvoice projects an invoice and the hotel settings into a
// printable document. The displayed balance is derived from the invoice
// status: zero once paid, otherwise the full invoice total.
func BuildPrintableInvoice(inv model.Invoice, settings model.Settings) PrintableInvoice {
	balance := inv.TotalAmount
	if inv.Status == model.InvoiceStatusPaid {
		balance = 0
	}
	return PrintableInvoice{
		InvoiceNumber: inv.Number(),
		HotelName:     settings.HotelName,
		HotelAddress:  settings.Address,
		HotelPhone:    settings.PhoneNumber,
		GuestName:     inv.GuestName,
		RoomNumber:    inv.RoomNumber,
		CheckInDate:   inv.CheckInDate,
		CheckOutDate:  inv.CheckOutDate,
		Currency:      settings.Currency,
		TotalAmount:   inv.TotalAmount,
		BalanceDue:    balance,
		Status:        inv.Status,
	}
}
