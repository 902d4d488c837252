// Package service holds the front-desk domain engines. Every function here
// is a pure computation over immutable snapshots of rooms, guests,
// reservations and settings; nothing in this package touches the database
// or mutates its inputs.
package service

import (
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// dateLayout is the wire format for calendar dates throughout the API.
const dateLayout = "2006-01-02"

// AvailabilityMap maps room id -> date ("2006-01-02") -> available.
type AvailabilityMap map[uint64]map[string]bool

// MonthlyAvailability computes the availability grid for one calendar
// month. Every day of the month starts available for every room; each
// reservation then blocks the days it occupies. The check-out day itself is
// never blocked (exclusive end, same-day turnover).
//
// Reservations that reference a room absent from the given room set are
// skipped, as are reservations whose dates do not parse. Empty inputs yield
// an empty map; callers render a loading state rather than a broken grid.
// The grid is rebuilt from scratch on every call, so navigating months back
// and forth always reproduces the same result.
func MonthlyAvailability(rooms []model.Room, reservations []model.Reservation, year int, month time.Month) AvailabilityMap {
	avail := make(AvailabilityMap, len(rooms))

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	for _, room := range rooms {
		days := make(map[string]bool, daysInMonth)
		for day := 1; day <= daysInMonth; day++ {
			days[time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout)] = true
		}
		avail[room.ID] = days
	}

	for _, res := range reservations {
		days, ok := avail[res.RoomID]
		if !ok {
			continue
		}
		checkIn, err := time.Parse(dateLayout, res.CheckIn)
		if err != nil {
			continue
		}
		checkOut, err := time.Parse(dateLayout, res.CheckOut)
		if err != nil {
			continue
		}
		for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
			if d.Year() == year && d.Month() == month {
				days[d.Format(dateLayout)] = false
			}
		}
	}

	return avail
}
