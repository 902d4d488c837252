package service

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// fakeInvoiceStore records calls and can be told to fail a given call.
type fakeInvoiceStore struct {
	nextID        uint64
	created       []model.Invoice
	statusUpdates map[uint64]string
	createErr     error
	updateErr     error
}

func (f *fakeInvoiceStore) Create(_ context.Context, inv *model.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	inv.ID = f.nextID
	inv.Status = model.InvoiceStatusUnpaid
	f.created = append(f.created, *inv)
	return nil
}

func (f *fakeInvoiceStore) UpdateStatus(_ context.Context, id uint64, status string) (model.Invoice, error) {
	if f.updateErr != nil {
		return model.Invoice{}, f.updateErr
	}
	if f.statusUpdates == nil {
		f.statusUpdates = map[uint64]string{}
	}
	f.statusUpdates[id] = status
	for _, inv := range f.created {
		if inv.ID == id {
			inv.Status = status
			return inv, nil
		}
	}
	return model.Invoice{}, errors.New("invoice not found")
}

type fakeReservationStore struct {
	statusUpdates map[uint64]string
	updateErr     error
}

func (f *fakeReservationStore) UpdateStatus(_ context.Context, id uint64, status string) (model.Reservation, error) {
	if f.updateErr != nil {
		return model.Reservation{}, f.updateErr
	}
	if f.statusUpdates == nil {
		f.statusUpdates = map[uint64]string{}
	}
	f.statusUpdates[id] = status
	return model.Reservation{ID: id, Status: status}, nil
}

func testReservation() model.Reservation {
	return model.Reservation{
		ID:                7,
		GuestName:         "John Doe",
		RoomNumber:        "101",
		CheckIn:           "2023-06-01",
		CheckOut:          "2023-06-05",
		TotalAmount:       400,
		DownPaymentAmount: 100,
		Status:            model.ReservationStatusConfirmed,
	}
}

func TestDownPaymentInvoiceAmounts(t *testing.T) {
	inv := DownPaymentInvoice(testReservation())
	if inv.RoomCharge != 100 || inv.TotalAmount != 100 {
		t.Errorf("room charge and total must equal the down payment, got %v / %v", inv.RoomCharge, inv.TotalAmount)
	}
	if inv.AdditionalCharges != 0 {
		t.Errorf("additional charges must be zero, got %v", inv.AdditionalCharges)
	}
	if inv.PaymentMethod != "cash" {
		t.Errorf("default payment method should be cash, got %q", inv.PaymentMethod)
	}
}

func TestFullPaymentInvoiceRemaining(t *testing.T) {
	cases := []struct {
		name  string
		total float64
		down  float64
		want  float64
	}{
		{"normal", 400, 100, 300},
		{"no down payment", 250, 0, 250},
		{"overpaid down payment stays negative", 100, 150, -50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := testReservation()
			res.TotalAmount = tc.total
			res.DownPaymentAmount = tc.down
			inv := FullPaymentInvoice(res)
			if inv.RoomCharge != tc.want || inv.TotalAmount != tc.want {
				t.Errorf("want remaining %v, got roomCharge=%v total=%v", tc.want, inv.RoomCharge, inv.TotalAmount)
			}
		})
	}
}

func TestIssueDownPaymentRequiresSettings(t *testing.T) {
	b := NewBilling(&fakeInvoiceStore{}, &fakeReservationStore{})
	if _, err := b.IssueDownPayment(context.Background(), testReservation(), nil); !errors.Is(err, ErrSettingsNotLoaded) {
		t.Errorf("want ErrSettingsNotLoaded, got %v", err)
	}
}

func TestIssueDownPaymentLeavesReservationAlone(t *testing.T) {
	invoices := &fakeInvoiceStore{}
	reservations := &fakeReservationStore{}
	b := NewBilling(invoices, reservations)

	inv, err := b.IssueDownPayment(context.Background(), testReservation(), &model.Settings{Currency: "$"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Status != model.InvoiceStatusUnpaid {
		t.Errorf("down-payment invoice should start unpaid, got %q", inv.Status)
	}
	if len(reservations.statusUpdates) != 0 {
		t.Errorf("down-payment issuance must not touch the reservation status")
	}
}

func TestProcessFullPaymentHappyPath(t *testing.T) {
	invoices := &fakeInvoiceStore{}
	reservations := &fakeReservationStore{}
	b := NewBilling(invoices, reservations)

	inv, err := b.ProcessFullPayment(context.Background(), testReservation(), &model.Settings{Currency: "$"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.TotalAmount != 300 {
		t.Errorf("want invoice total 300, got %v", inv.TotalAmount)
	}
	if inv.Status != model.InvoiceStatusPaid {
		t.Errorf("invoice should end paid, got %q", inv.Status)
	}
	if got := reservations.statusUpdates[7]; got != model.ReservationStatusPaid {
		t.Errorf("reservation should end paid, got %q", got)
	}
}

func TestProcessFullPaymentStopsAtFirstFailure(t *testing.T) {
	t.Run("create invoice fails", func(t *testing.T) {
		invoices := &fakeInvoiceStore{createErr: errors.New("insert failed")}
		reservations := &fakeReservationStore{}
		b := NewBilling(invoices, reservations)

		_, err := b.ProcessFullPayment(context.Background(), testReservation(), &model.Settings{})
		var be *BillingError
		if !errors.As(err, &be) || be.Step != StepCreateInvoice {
			t.Fatalf("want BillingError at StepCreateInvoice, got %v", err)
		}
		if len(invoices.statusUpdates) != 0 || len(reservations.statusUpdates) != 0 {
			t.Errorf("no later step may run after invoice creation fails")
		}
	})

	t.Run("mark invoice paid fails", func(t *testing.T) {
		invoices := &fakeInvoiceStore{updateErr: errors.New("update failed")}
		reservations := &fakeReservationStore{}
		b := NewBilling(invoices, reservations)

		_, err := b.ProcessFullPayment(context.Background(), testReservation(), &model.Settings{})
		var be *BillingError
		if !errors.As(err, &be) || be.Step != StepMarkInvoicePaid {
			t.Fatalf("want BillingError at StepMarkInvoicePaid, got %v", err)
		}
		if len(invoices.created) != 1 {
			t.Errorf("the invoice from step 1 must remain")
		}
		if len(reservations.statusUpdates) != 0 {
			t.Errorf("reservation must not be touched after step 2 fails")
		}
	})

	t.Run("mark reservation paid fails", func(t *testing.T) {
		invoices := &fakeInvoiceStore{}
		reservations := &fakeReservationStore{updateErr: errors.New("update failed")}
		b := NewBilling(invoices, reservations)

		_, err := b.ProcessFullPayment(context.Background(), testReservation(), &model.Settings{})
		var be *BillingError
		if !errors.As(err, &be) || be.Step != StepMarkReservationPaid {
			t.Fatalf("want BillingError at StepMarkReservationPaid, got %v", err)
		}
		// Invoice is paid, reservation is not: the documented recoverable state.
		if got := invoices.statusUpdates[1]; got != model.InvoiceStatusPaid {
			t.Errorf("invoice should already be paid, got %q", got)
		}
	})
}

func TestInvoiceNumberFormat(t *testing.T) {
	cases := []struct {
		id   uint64
		want string
	}{
		{1, "INV-000001"},
		{42, "INV-000042"},
		{123456, "INV-123456"},
		{9999999, "INV-9999999"},
	}
	for _, tc := range cases {
		if got := (model.Invoice{ID: tc.id}).Number(); got != tc.want {
			t.Errorf("Number(%d) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestBuildPrintableInvoiceBalance(t *testing.T) {
	settings := model.Settings{HotelName: "Seaside", Address: "1 Shore Rd", PhoneNumber: "555-0100", Currency: "$"}

	paid := model.Invoice{ID: 3, TotalAmount: 300, Status: model.InvoiceStatusPaid, GuestName: "John Doe"}
	p := BuildPrintableInvoice(paid, settings)
	if p.BalanceDue != 0 {
		t.Errorf("paid invoice should show zero balance, got %v", p.BalanceDue)
	}
	if p.InvoiceNumber != "INV-000003" {
		t.Errorf("want INV-000003, got %q", p.InvoiceNumber)
	}

	open := model.Invoice{ID: 4, TotalAmount: 120, Status: model.InvoiceStatusUnpaid}
	if got := BuildPrintableInvoice(open, settings).BalanceDue; got != 120 {
		t.Errorf("unpaid invoice should show its total as balance, got %v", got)
	}
}
