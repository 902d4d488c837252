package service

import (
	"fmt"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// NotificationType classifies a derived front-desk alert.
type NotificationType string

const (
	NotificationCheckIn  NotificationType = "check-in"
	NotificationCheckOut NotificationType = "check-out"
	NotificationPayment  NotificationType = "payment"
)

// Notification is one derived alert. There is no read/unread state and
// nothing is persisted; the list is recomputed from the reservation set
// whenever it changes.
type Notification struct {
	ID            string           `json:"id"`
	Type          NotificationType `json:"type"`
	Message       string           `json:"message"`
	ReservationID uint64           `json:"reservationId"`
}

// DeriveNotifications scans the reservations against "now" and produces:
//
//   - a check-in alert for every reservation arriving today,
//   - a check-out alert for every reservation departing today,
//   - a payment-due alert for every reservation whose total exceeds its
//     down payment, independent of date.
//
// One reservation may produce several alerts at once. Day equality is
// calendar-day equality in loc; the server passes one location for the
// whole run so midnight does not shift between calls.
func DeriveNotifications(reservations []model.Reservation, now time.Time, loc *time.Location) []Notification {
	if loc == nil {
		loc = time.Local
	}
	today := now.In(loc)
	ty, tm, td := today.Date()

	var out []Notification
	for _, res := range reservations {
		if sameDay(res.CheckIn, ty, tm, td) {
			out = append(out, Notification{
				ID:            fmt.Sprintf("checkin-%d", res.ID),
				Type:          NotificationCheckIn,
				Message:       "Check-in today: " + res.GuestName,
				ReservationID: res.ID,
			})
		}
		if sameDay(res.CheckOut, ty, tm, td) {
			out = append(out, Notification{
				ID:            fmt.Sprintf("checkout-%d", res.ID),
				Type:          NotificationCheckOut,
				Message:       "Check-out today: " + res.GuestName,
				ReservationID: res.ID,
			})
		}
		if res.TotalAmount > res.DownPaymentAmount {
			out = append(out, Notification{
				ID:            fmt.Sprintf("payment-%d", res.ID),
				Type:          NotificationPayment,
				Message:       "Payment due: " + res.GuestName,
				ReservationID: res.ID,
			})
		}
	}
	return out
}

// sameDay reports whether the "2006-01-02" date string names the given
// calendar day. Unparsable dates never match.
func sameDay(date string, year int, month time.Month, day int) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return d.Year() == year && d.Month() == month && d.Day() == day
}
