package model

// RoomTypeSetting is one entry of the hotel's rate schedule: a room type
// name with its weekday and weekend nightly rates. Order is significant for
// display and is preserved on update.
type RoomTypeSetting struct {
	Name        string  `json:"name"`
	WeekdayRate float64 `json:"weekdayRate"`
	WeekendRate float64 `json:"weekendRate"`
}

// Settings is the hotel-wide configuration document. It is stored as a
// single row and always replaced wholesale (PUT, never PATCH). Engines that
// need currency or fee data take the value as an argument; nothing reads it
// from ambient state.
type Settings struct {
	HotelName           string            `json:"hotelName"`
	Address             string            `json:"address"`
	PhoneNumber         string            `json:"phoneNumber"`
	Email               string            `json:"email"`
	CheckInTime         string            `json:"checkInTime"`
	CheckOutTime        string            `json:"checkOutTime"`
	Currency            string            `json:"currency"`
	TaxRate             float64           `json:"taxRate"`
	DefaultRoomRate     float64           `json:"defaultRoomRate"`
	MaxOccupancyPerRoom int               `json:"maxOccupancyPerRoom"`
	AllowEarlyCheckIn   bool              `json:"allowEarlyCheckIn"`
	AllowLateCheckOut   bool              `json:"allowLateCheckOut"`
	EarlyCheckInFee     float64           `json:"earlyCheckInFee"`
	LateCheckOutFee     float64           `json:"lateCheckOutFee"`
	ExtraBedFee         float64           `json:"extraBedFee"`
	RoomTypes           []RoomTypeSetting `json:"roomTypes"`
}

// RoomType returns the schedule entry for the named room type, or false
// when the type has no entry and callers should fall back to
// DefaultRoomRate.
func (s Settings) RoomType(name string) (RoomTypeSetting, bool) {
	for _, rt := range s.RoomTypes {
		if rt.Name == name {
			return rt, true
		}
	}
	return RoomTypeSetting{}, false
}
