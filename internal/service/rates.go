package service

import (
	"errors"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// ErrInvalidStayRange is returned when a quote is requested for dates that
// do not parse or where check-out is not after check-in.
var ErrInvalidStayRange = errors.New("check-out must be after check-in")

// StayOptions are the per-booking extras that carry fees from the settings
// schedule.
type StayOptions struct {
	EarlyCheckIn bool
	LateCheckOut bool
	ExtraBed     bool
}

// Quote is a priced stay. RoomTotal covers the nightly rates, Fees the
// granted extras, Tax the settings tax rate applied to both, and Total the
// sum of all three.
type Quote struct {
	RoomType  string  `json:"roomType"`
	Nights    int     `json:"nights"`
	RoomTotal float64 `json:"roomTotal"`
	Fees      float64 `json:"fees"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
}

// QuoteStay prices a stay from the hotel rate schedule. Each occupied night
// (check-in inclusive, check-out exclusive) is charged the room type's
// weekday or weekend rate; Saturday and Sunday nights are weekend nights.
// Room types without a schedule entry fall back to the default room rate
// for every night. Extras are charged only when the hotel allows them:
// early check-in and late check-out fees are gated by their settings flags,
// the extra bed fee applies whenever requested. Tax is TaxRate percent on
// rooms plus fees.
func QuoteStay(settings model.Settings, roomType, checkIn, checkOut string, opts StayOptions) (Quote, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return Quote{}, ErrInvalidStayRange
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return Quote{}, ErrInvalidStayRange
	}
	if !out.After(in) {
		return Quote{}, ErrInvalidStayRange
	}

	schedule, scheduled := settings.RoomType(roomType)

	q := Quote{RoomType: roomType, Currency: settings.Currency}
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		q.Nights++
		switch {
		case !scheduled:
			q.RoomTotal += settings.DefaultRoomRate
		case d.Weekday() == time.Saturday || d.Weekday() == time.Sunday:
			q.RoomTotal += schedule.WeekendRate
		default:
			q.RoomTotal += schedule.WeekdayRate
		}
	}

	if opts.EarlyCheckIn && settings.AllowEarlyCheckIn {
		q.Fees += settings.EarlyCheckInFee
	}
	if opts.LateCheckOut && settings.AllowLateCheckOut {
		q.Fees += settings.LateCheckOutFee
	}
	if opts.ExtraBed {
		q.Fees += settings.ExtraBedFee
	}

	q.Tax = (q.RoomTotal + q.Fees) * settings.TaxRate / 100
	q.Total = q.RoomTotal + q.Fees + q.Tax
	return q, nil
}
