package service

import (
	"errors"
	"testing"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

func quoteSettings() model.Settings {
	return model.Settings{
		Currency:          "$",
		TaxRate:           10,
		DefaultRoomRate:   80,
		AllowEarlyCheckIn: true,
		AllowLateCheckOut: false,
		EarlyCheckInFee:   25,
		LateCheckOutFee:   30,
		ExtraBedFee:       15,
		RoomTypes: []model.RoomTypeSetting{
			{Name: "Single", WeekdayRate: 100, WeekendRate: 140},
			{Name: "Double", WeekdayRate: 150, WeekendRate: 200},
		},
	}
}

func TestQuoteStayWeekdayWeekendSplit(t *testing.T) {
	// 2023-06-01 is a Thursday: nights Thu, Fri, Sat, Sun.
	q, err := QuoteStay(quoteSettings(), "Single", "2023-06-01", "2023-06-05", StayOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Nights != 4 {
		t.Errorf("want 4 nights, got %d", q.Nights)
	}
	want := 100.0 + 100 + 140 + 140 // Thu + Fri weekday, Sat + Sun weekend
	if q.RoomTotal != want {
		t.Errorf("want room total %v, got %v", want, q.RoomTotal)
	}
	if q.Tax != want/10 {
		t.Errorf("want 10%% tax %v, got %v", want/10, q.Tax)
	}
	if q.Total != want+want/10 {
		t.Errorf("want total %v, got %v", want+want/10, q.Total)
	}
}

func TestQuoteStayFees(t *testing.T) {
	opts := StayOptions{EarlyCheckIn: true, LateCheckOut: true, ExtraBed: true}
	// Monday to Tuesday, one weekday night at 100.
	q, err := QuoteStay(quoteSettings(), "Single", "2023-06-05", "2023-06-06", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Early check-in allowed (25) + extra bed (15); late check-out disabled by settings.
	if q.Fees != 40 {
		t.Errorf("want fees 40, got %v", q.Fees)
	}
	if q.Total != (100+40)*1.1 {
		t.Errorf("want total %v, got %v", (100+40)*1.1, q.Total)
	}
}

func TestQuoteStayUnknownTypeFallsBack(t *testing.T) {
	q, err := QuoteStay(quoteSettings(), "Penthouse", "2023-06-02", "2023-06-04", StayOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.RoomTotal != 160 { // 2 nights at the default rate, weekend split does not apply
		t.Errorf("want default-rate total 160, got %v", q.RoomTotal)
	}
}

func TestQuoteStayInvalidRange(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2023-06-05", "2023-06-05"},
		{"2023-06-05", "2023-06-01"},
		{"junk", "2023-06-01"},
		{"2023-06-01", ""},
	}
	for _, tc := range cases {
		if _, err := QuoteStay(quoteSettings(), "Single", tc.in, tc.out, StayOptions{}); !errors.Is(err, ErrInvalidStayRange) {
			t.Errorf("QuoteStay(%q, %q): want ErrInvalidStayRange, got %v", tc.in, tc.out, err)
		}
	}
}
