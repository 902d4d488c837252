package service

import "github.com/iliyamo/hotel-front-desk/internal/model"

// BookingSourceCounts tallies reservations by where the booking came from.
// Reservations without a recorded source are grouped under "Unknown".
func BookingSourceCounts(reservations []model.Reservation) map[string]int {
	counts := make(map[string]int)
	for _, r := range reservations {
		source := r.BookingSource
		if source == "" {
			source = "Unknown"
		}
		counts[source]++
	}
	return counts
}
