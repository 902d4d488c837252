package service

import (
	"testing"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

func TestAggregateGuestEmpty(t *testing.T) {
	got := AggregateGuest(nil, nil)
	if got.TotalVisits != 0 || got.TotalNights != 0 || got.TotalSpent != 0 {
		t.Errorf("empty inputs must aggregate to zeroes, got %+v", got)
	}
}

func TestAggregateGuestMixed(t *testing.T) {
	stays := []model.Stay{
		{CheckIn: "2022-01-10", CheckOut: "2022-01-13", Nights: 3, TotalSpent: 450},
		{CheckIn: "2022-08-01", CheckOut: "2022-08-02", Nights: 1, TotalSpent: 120},
	}
	reservations := []model.Reservation{
		{CheckIn: "2023-06-01", CheckOut: "2023-06-05", TotalAmount: 400},
	}

	got := AggregateGuest(stays, reservations)
	if got.TotalVisits != 3 {
		t.Errorf("want 3 visits, got %d", got.TotalVisits)
	}
	if got.TotalNights != 8 { // 3 + 1 recorded, 4 computed
		t.Errorf("want 8 nights, got %d", got.TotalNights)
	}
	if got.TotalSpent != 970 {
		t.Errorf("want 970 spent, got %v", got.TotalSpent)
	}
}

func TestAggregateGuestZeroValuesNotErrors(t *testing.T) {
	stays := []model.Stay{{}} // no nights, no spend recorded
	reservations := []model.Reservation{
		{CheckIn: "bad", CheckOut: "2023-06-05"}, // unparsable check-in
		{CheckIn: "2023-06-10", CheckOut: "2023-06-08"}, // inverted range
	}

	got := AggregateGuest(stays, reservations)
	if got.TotalVisits != 3 {
		t.Errorf("every record still counts as a visit, got %d", got.TotalVisits)
	}
	if got.TotalNights != 0 || got.TotalSpent != 0 {
		t.Errorf("missing numbers must count as zero, got %+v", got)
	}
}

func TestReservationNightsCeiling(t *testing.T) {
	cases := []struct {
		in, out string
		want    int
	}{
		{"2023-06-01", "2023-06-05", 4},
		{"2023-06-01", "2023-06-02", 1},
		{"2023-06-01", "2023-06-01", 0},
	}
	for _, tc := range cases {
		r := model.Reservation{CheckIn: tc.in, CheckOut: tc.out}
		if got := reservationNights(r); got != tc.want {
			t.Errorf("nights(%s, %s) = %d, want %d", tc.in, tc.out, got, tc.want)
		}
	}
}
