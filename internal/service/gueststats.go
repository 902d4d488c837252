package service

import (
	"math"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// GuestStats are the per-guest lifetime totals shown on the guest list:
// completed stays and upcoming reservations folded together.
type GuestStats struct {
	TotalVisits int     `json:"totalVisits"`
	TotalNights int     `json:"totalNights"`
	TotalSpent  float64 `json:"totalSpent"`
}

// AggregateGuest sums a guest's historical stays and upcoming reservations.
// Visits count both. Nights use the recorded `nights` for stays and the
// ceiling of the day span for reservations. Spend adds stay totals and
// reservation amounts. Absent or unparsable values count as zero; this
// function never fails.
func AggregateGuest(stays []model.Stay, reservations []model.Reservation) GuestStats {
	stats := GuestStats{TotalVisits: len(stays) + len(reservations)}

	for _, s := range stays {
		stats.TotalNights += s.Nights
		stats.TotalSpent += s.TotalSpent
	}
	for _, r := range reservations {
		stats.TotalNights += reservationNights(r)
		stats.TotalSpent += r.TotalAmount
	}
	return stats
}

// reservationNights returns the whole-day span between check-in and
// check-out, rounded up. Bad dates or a non-positive span yield zero.
func reservationNights(r model.Reservation) int {
	in, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return 0
	}
	n := int(math.Ceil(out.Sub(in).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}
