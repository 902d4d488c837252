package service

import (
	"testing"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

func TestBookingSourceCounts(t *testing.T) {
	reservations := []model.Reservation{
		{ID: 1, BookingSource: "walk-in"},
		{ID: 2, BookingSource: "phone"},
		{ID: 3, BookingSource: "walk-in"},
		{ID: 4},
	}

	got := BookingSourceCounts(reservations)
	if got["walk-in"] != 2 || got["phone"] != 1 || got["Unknown"] != 1 {
		t.Errorf("unexpected counts %v", got)
	}
	if len(BookingSourceCounts(nil)) != 0 {
		t.Errorf("no reservations should tally nothing")
	}
}
