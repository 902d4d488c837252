package model

// Reservation records an upcoming or current booking of a room by a guest.
// CheckOut is exclusive: the last occupied night is the day before it, and
// the room turns over on the check-out day itself.
//
// GuestName, RoomType and RoomNumber are denormalized at booking time so
// lists and invoices render without joins. Status transitions forward
// (confirmed -> paid) through the billing flow; the column itself accepts
// any string.
//
// Fields:
//  ID                – primary key identifier.
//  GuestID           – booking guest.
//  RoomID            – booked room.
//  CheckIn           – arrival date, "2006-01-02".
//  CheckOut          – departure date, exclusive, "2006-01-02".
//  TotalAmount       – full amount due for the stay.
//  Status            – reservation state string.
//  GuestsCount       – adults in the party.
//  ChildrenCount     – children in the party.
//  EarlyCheckIn      – early check-in requested.
//  LateCheckOut      – late check-out requested.
//  ExtraBed          – extra bed requested.
//  DownPaymentAmount – amount already paid up front.
//  DownPaymentMethod – how the down payment was made.
//  BookingSource     – where the booking came from ("walk-in", "phone", ...).
type Reservation struct {
	ID                uint64  `json:"id"`                // reservations.id
	GuestID           uint64  `json:"guestId"`           // reservations.guest_id
	RoomID            uint64  `json:"roomId"`            // reservations.room_id
	CheckIn           string  `json:"checkIn"`           // reservations.check_in
	CheckOut          string  `json:"checkOut"`          // reservations.check_out
	TotalAmount       float64 `json:"totalAmount"`       // reservations.total_amount
	Status            string  `json:"status"`            // reservations.status
	GuestsCount       int     `json:"guestsCount"`       // reservations.guests_count
	ChildrenCount     int     `json:"childrenCount"`     // reservations.children_count
	EarlyCheckIn      bool    `json:"earlyCheckIn"`      // reservations.early_check_in
	LateCheckOut      bool    `json:"lateCheckOut"`      // reservations.late_check_out
	ExtraBed          bool    `json:"extraBed"`          // reservations.extra_bed
	DownPaymentAmount float64 `json:"downPaymentAmount"` // reservations.down_payment_amount
	DownPaymentMethod string  `json:"downPaymentMethod"` // reservations.down_payment_method
	BookingSource     string  `json:"bookingSource"`     // reservations.booking_source
	GuestName         string  `json:"guestName"`         // reservations.guest_name (denormalized)
	RoomType          string  `json:"roomType"`          // reservations.room_type (denormalized)
	RoomNumber        string  `json:"roomNumber"`        // reservations.room_number (denormalized)
}

// Reservation status values written by this service. The column also
// accepts arbitrary strings coming from older data.
const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusPaid      = "paid"
)
