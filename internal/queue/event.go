// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into log lines.
package queue

// Queue names. Routing uses the default exchange, so the queue name doubles
// as the routing key.
const (
	ReservationBookedQueue = "reservation.booked"
	PaymentCompletedQueue  = "payment.completed"
)

// ReservationBookedEvent is published when a new reservation is created.
// It carries enough detail for downstream consumers to log or notify
// without querying the primary database.
type ReservationBookedEvent struct {
	ReservationID uint64  `json:"reservation_id"`
	GuestID       uint64  `json:"guest_id"`
	GuestName     string  `json:"guest_name"`
	RoomID        uint64  `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalAmount   float64 `json:"total_amount"`
	BookingSource string  `json:"booking_source"`
	BookedAt      string  `json:"booked_at"`
}

// PaymentCompletedEvent is published after the full-payment flow finishes:
// the invoice is paid and the reservation marked accordingly.
type PaymentCompletedEvent struct {
	ReservationID uint64  `json:"reservation_id"`
	InvoiceID     uint64  `json:"invoice_id"`
	InvoiceNumber string  `json:"invoice_number"`
	GuestName     string  `json:"guest_name"`
	RoomNumber    string  `json:"room_number"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PaidAt        string  `json:"paid_at"`
}
