package model

import "fmt"

// Invoice is a billing document issued against a reservation, either for a
// down payment or for the remaining balance. Guest and room fields are
// denormalized copies taken from the reservation at issuance. The status is
// updated in place by the payment flow and never re-derived.
//
// Fields:
//  ID                – primary key identifier.
//  ReservationID     – owning reservation.
//  GuestName         – billed guest's name at issuance.
//  RoomNumber        – room number at issuance.
//  CheckInDate       – reservation arrival date, "2006-01-02".
//  CheckOutDate      – reservation departure date, "2006-01-02".
//  RoomCharge        – room portion of the amount.
//  AdditionalCharges – extras on top of the room charge.
//  TotalAmount       – RoomCharge + AdditionalCharges.
//  PaymentMethod     – how the invoice is to be settled.
//  Status            – "unpaid", "paid" or "partially_paid".
type Invoice struct {
	ID                uint64  `json:"id"`                // invoices.id
	ReservationID     uint64  `json:"reservationId"`     // invoices.reservation_id
	GuestName         string  `json:"guestName"`         // invoices.guest_name
	RoomNumber        string  `json:"roomNumber"`        // invoices.room_number
	CheckInDate       string  `json:"checkInDate"`       // invoices.check_in_date
	CheckOutDate      string  `json:"checkOutDate"`      // invoices.check_out_date
	RoomCharge        float64 `json:"roomCharge"`        // invoices.room_charge
	AdditionalCharges float64 `json:"additionalCharges"` // invoices.additional_charges
	TotalAmount       float64 `json:"totalAmount"`       // invoices.total_amount
	PaymentMethod     string  `json:"paymentMethod"`     // invoices.payment_method
	Status            string  `json:"status"`            // invoices.status
}

// Invoice status values.
const (
	InvoiceStatusPaid          = "paid"
	InvoiceStatusUnpaid        = "unpaid"
	InvoiceStatusPartiallyPaid = "partially_paid"
)

// Number returns the display identifier for the invoice: the id zero-padded
// to six digits with an "INV-" prefix. It is never stored; every view
// recomputes it the same way.
func (i Invoice) Number() string {
	return fmt.Sprintf("INV-%06d", i.ID)
}
