package service

import (
	"testing"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

func TestLoyaltyPoints(t *testing.T) {
	reservations := []model.Reservation{
		{ID: 1, GuestID: 1, Status: model.ReservationStatusConfirmed},
		{ID: 2, GuestID: 1, Status: model.ReservationStatusCancelled},
		{ID: 3, GuestID: 1, Status: model.ReservationStatusPaid},
		{ID: 4, GuestID: 2, Status: model.ReservationStatusConfirmed},
	}

	if got := LoyaltyPoints(1, reservations); got != 300 {
		t.Errorf("guest 1 has 3 reservations, want 300 points, got %d", got)
	}
	// Cancelled bookings score the same as any other.
	if got := LoyaltyPoints(2, reservations); got != 100 {
		t.Errorf("guest 2 want 100 points, got %d", got)
	}
	if got := LoyaltyPoints(99, reservations); got != 0 {
		t.Errorf("unknown guest must score exactly 0, got %d", got)
	}
	if got := LoyaltyPoints(1, nil); got != 0 {
		t.Errorf("no reservations must score 0, got %d", got)
	}
}

func TestRankLoyaltyOrderAndStability(t *testing.T) {
	guests := []model.Guest{
		{ID: 1, Name: "Ada"},
		{ID: 2, Name: "Ben"},
		{ID: 3, Name: "Cleo"},
		{ID: 4, Name: "Dana"},
	}
	reservations := []model.Reservation{
		{ID: 1, GuestID: 2},
		{ID: 2, GuestID: 2},
		{ID: 3, GuestID: 1},
		{ID: 4, GuestID: 3},
	}

	got := RankLoyalty(guests, reservations)
	if len(got) != 4 {
		t.Fatalf("want 4 entries, got %d", len(got))
	}
	if got[0].Guest.ID != 2 || got[0].Points != 200 {
		t.Errorf("Ben should rank first with 200, got guest %d with %d", got[0].Guest.ID, got[0].Points)
	}
	// Ada and Cleo tie at 100; input order must be preserved.
	if got[1].Guest.ID != 1 || got[2].Guest.ID != 3 {
		t.Errorf("tie order broken: got %d then %d, want 1 then 3", got[1].Guest.ID, got[2].Guest.ID)
	}
	if got[3].Guest.ID != 4 || got[3].Points != 0 {
		t.Errorf("Dana should rank last with 0, got guest %d with %d", got[3].Guest.ID, got[3].Points)
	}
}

func TestTopLoyalTruncation(t *testing.T) {
	guests := make([]model.Guest, 8)
	for i := range guests {
		guests[i] = model.Guest{ID: uint64(i + 1)}
	}

	if got := TopLoyal(guests, nil, 5); len(got) != 5 {
		t.Errorf("want top 5, got %d", len(got))
	}
	if got := TopLoyal(guests, nil, 20); len(got) != 8 {
		t.Errorf("limit above population should return everyone, got %d", len(got))
	}
	if got := TopLoyal(guests, nil, 0); len(got) != 0 {
		t.Errorf("limit 0 should return nothing, got %d", len(got))
	}
	if got := TopLoyal(nil, nil, 5); len(got) != 0 {
		t.Errorf("no guests should return nothing, got %d", len(got))
	}
}
