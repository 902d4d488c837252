package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

func TestMonthlyAvailabilityBlocksReservedNights(t *testing.T) {
	rooms := []model.Room{{ID: 1, Number: "101"}}
	reservations := []model.Reservation{
		{ID: 1, RoomID: 1, CheckIn: "2023-06-01", CheckOut: "2023-06-05"},
	}

	got := MonthlyAvailability(rooms, reservations, 2023, time.June)

	days, ok := got[1]
	if !ok {
		t.Fatalf("no entry for room 1")
	}
	if len(days) != 30 {
		t.Fatalf("June should have 30 days, got %d", len(days))
	}
	for _, d := range []string{"2023-06-01", "2023-06-02", "2023-06-03", "2023-06-04"} {
		if days[d] {
			t.Errorf("%s should be unavailable", d)
		}
	}
	// Check-out day stays open for same-day turnover.
	if !days["2023-06-05"] {
		t.Errorf("2023-06-05 (check-out day) should be available")
	}
	if !days["2023-06-30"] {
		t.Errorf("2023-06-30 should be available")
	}
}

func TestMonthlyAvailabilityUnknownRoomIgnored(t *testing.T) {
	rooms := []model.Room{{ID: 1}}
	reservations := []model.Reservation{
		{ID: 1, RoomID: 99, CheckIn: "2023-06-01", CheckOut: "2023-06-03"},
	}

	got := MonthlyAvailability(rooms, reservations, 2023, time.June)
	for d, free := range got[1] {
		if !free {
			t.Errorf("room 1 day %s should be untouched by a reservation for an unknown room", d)
		}
	}
}

func TestMonthlyAvailabilityClipsToMonth(t *testing.T) {
	rooms := []model.Room{{ID: 2}}
	reservations := []model.Reservation{
		// Spans the May/June boundary; only June days belong in a June grid.
		{ID: 1, RoomID: 2, CheckIn: "2023-05-30", CheckOut: "2023-06-02"},
	}

	got := MonthlyAvailability(rooms, reservations, 2023, time.June)
	days := got[2]
	if days["2023-06-01"] {
		t.Errorf("2023-06-01 should be unavailable")
	}
	if !days["2023-06-02"] {
		t.Errorf("2023-06-02 should be available")
	}
	if _, present := days["2023-05-31"]; present {
		t.Errorf("May dates must not appear in a June grid")
	}
}

func TestMonthlyAvailabilityRecomputationIsIdempotent(t *testing.T) {
	rooms := []model.Room{{ID: 1}, {ID: 2}}
	reservations := []model.Reservation{
		{ID: 1, RoomID: 1, CheckIn: "2023-06-10", CheckOut: "2023-06-12"},
		{ID: 2, RoomID: 2, CheckIn: "2023-06-28", CheckOut: "2023-07-03"},
	}

	first := MonthlyAvailability(rooms, reservations, 2023, time.June)
	// Simulate navigating away and back.
	_ = MonthlyAvailability(rooms, reservations, 2023, time.July)
	second := MonthlyAvailability(rooms, reservations, 2023, time.June)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("recomputing the same month produced a different grid")
	}
}

func TestMonthlyAvailabilityMissingData(t *testing.T) {
	if got := MonthlyAvailability(nil, nil, 2023, time.June); len(got) != 0 {
		t.Errorf("no rooms should yield an empty map, got %v", got)
	}

	// Rooms without reservations: everything available.
	got := MonthlyAvailability([]model.Room{{ID: 7}}, nil, 2024, time.February)
	if len(got[7]) != 29 {
		t.Fatalf("February 2024 should have 29 days, got %d", len(got[7]))
	}
	for d, free := range got[7] {
		if !free {
			t.Errorf("day %s should be available with no reservations", d)
		}
	}
}

func TestMonthlyAvailabilityBadDatesSkipped(t *testing.T) {
	rooms := []model.Room{{ID: 1}}
	reservations := []model.Reservation{
		{ID: 1, RoomID: 1, CheckIn: "not-a-date", CheckOut: "2023-06-03"},
		{ID: 2, RoomID: 1, CheckIn: "2023-06-10", CheckOut: ""},
	}

	got := MonthlyAvailability(rooms, reservations, 2023, time.June)
	for d, free := range got[1] {
		if !free {
			t.Errorf("day %s blocked by a reservation with unparsable dates", d)
		}
	}
}
